package performer

import (
	"fmt"
	"strings"

	"github.com/handiism/format-performer-tags/internal/model"
)

// ExampleCredit is a sample performer credit used to preview a configuration.
type ExampleCredit struct {
	Role       string
	Performers []string
}

// InstrumentCredits are the instrument samples shown in the settings view.
var InstrumentCredits = []ExampleCredit{
	{Role: "guitar", Performers: []string{"Johnny Flux", "John Watson"}},
	{Role: "guest guitar", Performers: []string{"Jimmy Page"}},
	{Role: "additional guest solo guitar", Performers: []string{"Jimmy Page"}},
}

// VocalCredits are the vocal samples shown in the settings view.
var VocalCredits = []ExampleCredit{
	{Role: "additional solo lead vocals", Performers: []string{"Robert Plant"}},
	{Role: "additional solo guest lead vocals", Performers: []string{"Sandy Denny"}},
}

// BuildExample formats credits with f and renders the result one tag per
// line as "role: performer, performer".
//
// A throwaway Metadata is used as the sink, so building an example has no
// side effects.
func BuildExample(f *Formatter, credits []ExampleCredit) string {
	const prefix = PerformerKey + ":"

	md := &model.Metadata{}
	for _, c := range credits {
		f.RewriteTag(prefix+c.Role, c.Performers, md)
	}

	lines := make([]string, 0, md.Len())
	for _, tag := range md.RawItems() {
		line := fmt.Sprintf("%s: %s", tag.Key, strings.Join(tag.Values, ", "))
		lines = append(lines, strings.TrimPrefix(line, prefix))
	}
	return strings.Join(lines, "\n")
}
