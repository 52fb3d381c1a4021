package performer

import (
	"regexp"
	"slices"
	"strings"

	"github.com/handiism/format-performer-tags/internal/model"
	"github.com/hashicorp/go-hclog"
)

// Main keys whose tags are rewritten by FormatPerformerTags.
const (
	PerformerKey     = model.PerformerKey
	PerformerSortKey = "~performersort"
)

var performersSplit = regexp.MustCompile(`, | and `)

// Sink receives rewritten tags.
//
// *model.Metadata satisfies Sink.
type Sink interface {
	Delete(key string)
	AddUnique(key, value string)
}

// Formatter rewrites performer tags according to a Config.
//
// A Formatter holds no state besides its configuration and logger, so one
// instance can be shared by concurrent callers and reused to build examples
// against a throwaway sink.
//
// Example:
//
//	f, err := performer.New(performer.DefaultConfig(), nil)
//	if err != nil {
//	    return err
//	}
//	md := model.NewMetadata(model.Tag{Key: "performer:guest guitar", Values: []string{"Jimmy Page"}})
//	f.FormatPerformerTags(md)
//	// md.Get("performer:guitar") == []string{"Jimmy Page (guest)"}
type Formatter struct {
	config Config
	logger hclog.Logger
}

// New creates a Formatter.
//
// The configuration is validated once here; rewriting never fails.
// If logger is nil, a null logger is used.
func New(cfg Config, logger hclog.Logger) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Formatter{config: cfg, logger: logger.Named("format-performer-tags")}, nil
}

// Config returns the formatter's configuration.
func (f *Formatter) Config() Config {
	return f.config
}

// IsPerformerKey reports whether key belongs to the performer tag family.
func IsPerformerKey(key string) bool {
	return strings.HasPrefix(key, PerformerKey) || strings.HasPrefix(key, PerformerSortKey)
}

// RewriteTag removes key from sink and adds the rewritten tags in its place.
func (f *Formatter) RewriteTag(key string, values []string, sink Sink) {
	f.logger.Debug("removing key", "key", key)
	sink.Delete(key)
	for _, tag := range f.Rewrite(key, values) {
		for _, value := range tag.Values {
			sink.AddUnique(tag.Key, value)
		}
	}
}

// FormatPerformerTags rewrites every performer-family tag in md.
//
// All matching tags are removed before any rewritten tag is added, so a
// rewritten key that collides with a not-yet-processed original key keeps
// its values.
func (f *Formatter) FormatPerformerTags(md *model.Metadata) {
	var originals []model.Tag
	for _, tag := range md.RawItems() {
		if IsPerformerKey(tag.Key) {
			originals = append(originals, tag)
		}
	}
	for _, tag := range originals {
		f.logger.Debug("removing key", "key", tag.Key)
		md.Delete(tag.Key)
	}
	for _, tag := range originals {
		for _, out := range f.Rewrite(tag.Key, tag.Values) {
			for _, value := range out.Values {
				md.AddUnique(out.Key, value)
			}
		}
	}
}

// Rewrite returns the tags that replace key. It does not deduplicate;
// callers add the result with add-unique semantics.
//
// The key is split into "mainkey:subkey". The subkey is split on ", " and
// " and " into role descriptors, and each descriptor yields one new key
// holding every value.
func (f *Formatter) Rewrite(key string, values []string) []model.Tag {
	mainKey, subKey, _ := strings.Cut(key, ":")
	f.logger.Debug("formatting performer", "subkey", subKey, "values", values)

	if subKey == "" {
		return []model.Tag{f.newTag(mainKey+":", values, "")}
	}

	descriptors := performersSplit.Split(subKey, -1)
	tags := make([]model.Tag, 0, len(descriptors))
	for _, descriptor := range descriptors {
		newKey, suffix := f.formatDescriptor(mainKey, descriptor)
		tags = append(tags, f.newTag(newKey, values, suffix))
	}
	return tags
}

func (f *Formatter) newTag(key string, values []string, suffix string) model.Tag {
	f.logger.Debug("new key", "key", key)
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = value + suffix
	}
	return model.Tag{Key: key, Values: out}
}

// formatDescriptor builds the new key for a single role descriptor and the
// suffix to append to each value.
func (f *Formatter) formatDescriptor(mainKey, descriptor string) (string, string) {
	var groups [NumGroups][]string
	var words []string

	for _, word := range strings.Fields(descriptor) {
		if g, ok := f.config.Keywords.groupFor(word); ok {
			groups[g-1] = append(groups[g-1], word)
			continue
		}
		words = append(words, word)
	}

	instrument := strings.Join(words, " ")
	if n := len(words); n > 1 && (words[n-1] == "vocal" || words[n-1] == "vocals") {
		qualifier := strings.Join(words[:n-1], " ")
		instrument = words[n-1]

		// Vocal qualifiers follow keywords in group 1 and precede them
		// in every other group.
		g := f.config.Keywords.Vocals
		if g < Group2 {
			groups[g-1] = append(slices.Clone(groups[g-1]), qualifier)
		} else {
			groups[g-1] = slices.Insert(slices.Clone(groups[g-1]), 0, qualifier)
		}
	}

	var display [NumGroups]string
	for i, members := range groups {
		display[i] = f.config.Groups[i].Render(members)
	}

	newKey := mainKey + ":" + display[0] + instrument + display[1] + display[2]
	return newKey, display[3]
}
