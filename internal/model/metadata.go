package model

import "slices"

// Tag is a single key with its ordered values.
//
// Performer keys take the form "mainkey:subkey", where mainkey is usually
// "performer" or "~performersort" and subkey is the raw role description,
// for example "additional guest solo guitar".
type Tag struct {
	// Key is the full tag key, including any ":subkey" part.
	Key string

	// Values holds the tag values in their original order.
	Values []string
}

// Metadata is an insertion-ordered, multi-valued tag store.
//
// Metadata mirrors the tag container of a music tagger: keys keep the order
// in which they were first added, and each key holds an ordered list of
// values. AddUnique gives "add if not already present" semantics, which is
// what the performer formatter uses when it emits rewritten tags.
//
// The zero value is ready to use.
//
// Example:
//
//	md := &Metadata{}
//	md.Add("performer:guitar", "Jimmy Page")
//	md.AddUnique("performer:guitar", "Jimmy Page") // no-op
//	md.Get("performer:guitar")                     // []string{"Jimmy Page"}
type Metadata struct {
	keys   []string
	values map[string][]string
}

// NewMetadata creates a Metadata pre-filled with the given tags.
func NewMetadata(tags ...Tag) *Metadata {
	md := &Metadata{}
	for _, tag := range tags {
		for _, value := range tag.Values {
			md.Add(tag.Key, value)
		}
	}
	return md
}

// Add appends value to key, creating the key if needed.
func (m *Metadata) Add(key, value string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// AddUnique appends value to key unless the pair is already present.
func (m *Metadata) AddUnique(key, value string) {
	if slices.Contains(m.values[key], value) {
		return
	}
	m.Add(key, value)
}

// Delete removes key and all of its values. Deleting a missing key is a no-op.
func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Get returns a copy of the values stored under key.
func (m *Metadata) Get(key string) []string {
	return slices.Clone(m.values[key])
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// RawItems returns a snapshot of all tags in key order.
//
// The snapshot is detached from the store, so callers may modify the
// Metadata while iterating over the result.
func (m *Metadata) RawItems() []Tag {
	items := make([]Tag, 0, len(m.keys))
	for _, key := range m.keys {
		items = append(items, Tag{Key: key, Values: slices.Clone(m.values[key])})
	}
	return items
}
