package model

import "strings"

// PerformerKey is the main key used for performer credits.
const PerformerKey = "performer"

// Credit is one musician credit as stored in an audio file: the role the
// person played and the person's name.
//
// In ID3v2.4 credits are stored in the TMCL frame as (role, person) pairs;
// a credit maps to the metadata tag "performer:<role>" with value <person>.
type Credit struct {
	// Role is the instrument or vocal description, e.g. "guest guitar".
	// An empty role is allowed.
	Role string

	// Person is the performer's name.
	Person string
}

// Key returns the performer tag key for the credit.
func (c Credit) Key() string {
	return PerformerKey + ":" + c.Role
}

// CreditsToMetadata converts credits to performer tags, preserving order.
func CreditsToMetadata(credits []Credit) *Metadata {
	md := &Metadata{}
	for _, c := range credits {
		md.AddUnique(c.Key(), c.Person)
	}
	return md
}

// MetadataToCredits converts performer tags back to credits.
//
// Only keys in the "performer" family are converted; sort keys such as
// "~performersort" are hidden variables and are never written to files.
// A key without a ":" separator yields credits with an empty role.
func MetadataToCredits(md *Metadata) []Credit {
	var credits []Credit
	for _, tag := range md.RawItems() {
		mainKey, role, _ := strings.Cut(tag.Key, ":")
		if mainKey != PerformerKey {
			continue
		}
		for _, person := range tag.Values {
			credits = append(credits, Credit{Role: role, Person: person})
		}
	}
	return credits
}
