// Package performer rewrites performer credit tags into a configurable
// display format.
//
// A performer tag key has the form "performer:<role>", where the role may
// list several instruments ("guitar and bass", "drums, percussion") and
// carry the keywords "guest", "solo" and "additional" or a vocal qualifier
// ("lead vocals"). The formatter moves each of these into one of four
// display groups and rebuilds the key:
//
//	[1]Instrument/Vocals[2][3]: Performer[4]
//
// Groups 1-3 become part of the new key; group 4 is appended to each value.
//
// # Usage
//
//	f, err := performer.New(performer.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	f.FormatPerformerTags(md)
//
// With the default configuration, "performer:additional solo guest lead vocals"
// with value "Sandy Denny" becomes "performer:vocals, lead (additional solo)"
// with value "Sandy Denny (guest)".
//
// # Previews
//
// BuildExample renders sample credits the way the settings view shows them:
//
//	fmt.Println(performer.BuildExample(f, performer.InstrumentCredits))
//	// guitar: Johnny Flux, John Watson, Jimmy Page (guest)
//	// guitar (additional solo): Jimmy Page (guest)
package performer
