// Package domain contains the core models of the static data classifier:
// category groups, their parent-pointer hierarchy, items and classification results.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// ID identifies a group or an item in the reference dataset.
type ID int64

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal id.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// IDSet is an unordered set of ids.
type IDSet map[ID]struct{}

// NewIDSet creates a set holding the given ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id ID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []ID {
	return slices.Sorted(maps.Keys(s))
}

// All yields the ids in ascending order.
func (s IDSet) All() iter.Seq[ID] {
	return slices.Values(s.Sorted())
}
