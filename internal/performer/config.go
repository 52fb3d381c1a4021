package performer

import (
	"fmt"
	"strings"
)

// GroupNumber identifies one of the four display groups (1-4).
type GroupNumber int

// Display groups. Groups 1-3 are rendered into the tag key around the
// instrument; group 4 is appended to each tag value.
const (
	Group1 GroupNumber = iota + 1
	Group2
	Group3
	Group4
)

// NumGroups is the number of display groups.
const NumGroups = 4

// Valid reports whether g is one of the four display groups.
func (g GroupNumber) Valid() bool {
	return g >= Group1 && g <= Group4
}

// Keywords recognised in performer roles.
const (
	KeywordGuest      = "guest"
	KeywordSolo       = "solo"
	KeywordAdditional = "additional"
)

// Group holds the display template for one group.
//
// A non-empty group renders as Start + strings.Join(words, Separator) + End.
// Leading and trailing spaces are significant and are never added
// automatically, except that an empty Separator means a single space.
type Group struct {
	Start     string
	Separator string
	End       string
}

// Render returns the display string for words, or "" if words is empty.
func (g Group) Render(words []string) string {
	if len(words) == 0 {
		return ""
	}
	sep := g.Separator
	if sep == "" {
		sep = " "
	}
	return g.Start + strings.Join(words, sep) + g.End
}

// KeywordGroups assigns each keyword, and the vocal qualifier, to a group.
type KeywordGroups struct {
	Additional GroupNumber
	Guest      GroupNumber
	Solo       GroupNumber
	Vocals     GroupNumber
}

// groupFor returns the group assigned to a bucket keyword.
func (k KeywordGroups) groupFor(word string) (GroupNumber, bool) {
	switch word {
	case KeywordAdditional:
		return k.Additional, true
	case KeywordGuest:
		return k.Guest, true
	case KeywordSolo:
		return k.Solo, true
	}
	return 0, false
}

// Config is the complete formatter configuration.
type Config struct {
	// Groups holds the templates for groups 1-4 at indices 0-3.
	Groups [NumGroups]Group

	// Keywords assigns keywords to groups.
	Keywords KeywordGroups
}

// DefaultConfig returns the default layout:
//
//	[1]Instrument/Vocals[2][3]: Performer[4]
//
// with "additional" and "solo" in parentheses after the instrument,
// vocal qualifiers after a comma, and "guest" in parentheses after the
// performer's name.
func DefaultConfig() Config {
	return Config{
		Groups: [NumGroups]Group{
			{End: " "},
			{Start: ", "},
			{Start: " (", End: ")"},
			{Start: " (", End: ")"},
		},
		Keywords: KeywordGroups{
			Additional: Group3,
			Guest:      Group4,
			Solo:       Group3,
			Vocals:     Group2,
		},
	}
}

// Group returns the template for group n.
func (c Config) Group(n GroupNumber) Group {
	return c.Groups[n-1]
}

// Validate checks that every keyword is assigned to a valid group.
func (c Config) Validate() error {
	assignments := []struct {
		name  string
		group GroupNumber
	}{
		{KeywordAdditional, c.Keywords.Additional},
		{KeywordGuest, c.Keywords.Guest},
		{KeywordSolo, c.Keywords.Solo},
		{"vocals", c.Keywords.Vocals},
	}
	for _, a := range assignments {
		if !a.group.Valid() {
			return fmt.Errorf("keyword %q: group %d out of range 1-%d", a.name, a.group, NumGroups)
		}
	}
	return nil
}
