// Package model defines the core data structures used throughout
// format-performer-tags.
//
// # Metadata
//
// Metadata is an ordered, multi-valued tag store. It plays the role of the
// tagger's metadata object: the performer formatter reads tags from it and
// writes rewritten tags back through AddUnique:
//
//	md := model.NewMetadata(model.Tag{Key: "performer:guest guitar", Values: []string{"Jimmy Page"}})
//	for _, tag := range md.RawItems() {
//	    fmt.Println(tag.Key, tag.Values)
//	}
//
// # Credit
//
// Credit is a (role, person) pair as stored in an audio file. Use
// CreditsToMetadata and MetadataToCredits to move between the file
// representation and performer tags:
//
//	md := model.CreditsToMetadata([]model.Credit{{Role: "guitar", Person: "Jimmy Page"}})
//	// md.Get("performer:guitar") == []string{"Jimmy Page"}
package model
