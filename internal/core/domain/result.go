package domain

import (
	"slices"
	"strings"
)

// ClassificationResult holds the groups rooted at a target and the final name list.
type ClassificationResult struct {
	RootID   ID
	GroupIDs IDSet
	Names    []string
}

// Contains reports whether name is part of the result, ignoring case.
func (r *ClassificationResult) Contains(name string) bool {
	needle := strings.ToUpper(strings.TrimSpace(name))
	return slices.ContainsFunc(r.Names, func(n string) bool {
		return strings.ToUpper(n) == needle
	})
}
