package component

import (
	"github.com/zeebo/xxh3"
)

// TagSet is an immutable set of ground tags. Tags are hashed once on construction so that
// the per-tick lookup only hashes the ground's tag.
type TagSet struct {
	tags map[uint64][]string
}

// NewTagSet returns a set containing tags.
func NewTagSet(tags ...string) TagSet {
	s := TagSet{tags: make(map[uint64][]string, len(tags))}
	for _, tag := range tags {
		h := xxh3.HashString(tag)
		s.tags[h] = append(s.tags[h], tag)
	}
	return s
}

// Contains reports whether tag is part of the set.
func (s TagSet) Contains(tag string) bool {
	if len(s.tags) == 0 {
		return false
	}
	for _, t := range s.tags[xxh3.HashString(tag)] {
		if t == tag {
			return true
		}
	}
	return false
}

// Len returns the number of distinct hashes in the set.
func (s TagSet) Len() int {
	return len(s.tags)
}
