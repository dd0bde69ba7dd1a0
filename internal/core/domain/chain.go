package domain

import (
	"slices"
	"strings"
)

// AncestorChain is the sequence of group ids visited from a starting group up to
// the furthest reachable ancestor. The starting group comes first.
type AncestorChain []ID

// Start returns the first id of the chain, or 0 for an empty chain.
func (c AncestorChain) Start() ID {
	if len(c) == 0 {
		return 0
	}
	return c[0]
}

// Terminal returns the furthest reachable ancestor, or 0 for an empty chain.
func (c AncestorChain) Terminal() ID {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Index returns the position of id within the chain, or -1.
func (c AncestorChain) Index(id ID) int {
	return slices.Index(c, id)
}

// Through returns the prefix of the chain ending at id (inclusive).
// It returns nil if id is not on the chain.
func (c AncestorChain) Through(id ID) AncestorChain {
	i := c.Index(id)
	if i < 0 {
		return nil
	}
	return c[:i+1]
}

// String renders the chain as "11 -> 10 -> 4".
func (c AncestorChain) String() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}
