package domain

import (
	"iter"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// GroupNode is a category in the parent-pointer hierarchy.
// A nil ParentID marks a top-level group.
type GroupNode struct {
	ID         ID             `json:"id"`
	ParentID   *ID            `json:"parent_id,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Parent returns the parent id and whether the group has one.
func (n GroupNode) Parent() (ID, bool) {
	if n.ParentID == nil {
		return 0, false
	}
	return *n.ParentID, true
}

// GroupIndex maps group ids to their nodes. It is immutable once built.
type GroupIndex struct {
	nodes map[ID]GroupNode
}

// NewGroupIndex builds an index from raw group records in a single pass.
// It returns ErrDuplicateID if two records share an id.
func NewGroupIndex(records []GroupNode) (*GroupIndex, error) {
	nodes := make(map[ID]GroupNode, len(records))
	for _, rec := range records {
		if _, exists := nodes[rec.ID]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateID, "failed to build group index"), "group_id", rec.ID.String())
		}
		nodes[rec.ID] = rec
	}
	return &GroupIndex{nodes: nodes}, nil
}

// Len returns the number of groups in the index.
func (g *GroupIndex) Len() int {
	return len(g.nodes)
}

// Get returns the group with the given id.
func (g *GroupIndex) Get(id ID) (GroupNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IDs yields every group id in ascending order.
func (g *GroupIndex) IDs() iter.Seq[ID] {
	return slices.Values(slices.Sorted(maps.Keys(g.nodes)))
}

// Children returns the ids of the direct children of id, in ascending order.
func (g *GroupIndex) Children(id ID) []ID {
	var children []ID
	for childID := range g.IDs() {
		if parent, ok := g.nodes[childID].Parent(); ok && parent == id {
			children = append(children, childID)
		}
	}
	return children
}

// AncestorChain follows parent pointers from start until a group has no parent
// or its parent is not in the index. The absent parent is not part of the chain.
// Parent pointers come from external data, so a revisited group stops the walk
// with ErrCycleDetected.
func (g *GroupIndex) AncestorChain(start ID) (AncestorChain, error) {
	node, ok := g.nodes[start]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrGroupNotFound, "failed to walk ancestors"), "group_id", start.String())
	}

	chain := AncestorChain{start}
	visited := map[ID]struct{}{start: {}}

	for {
		parentID, hasParent := node.Parent()
		if !hasParent {
			return chain, nil
		}

		parent, exists := g.nodes[parentID]
		if !exists {
			return chain, nil
		}

		if _, seen := visited[parentID]; seen {
			return nil, g.buildCycleError(chain, parentID)
		}

		visited[parentID] = struct{}{}
		chain = append(chain, parentID)
		node = parent
	}
}

// buildCycleError constructs an error with the looping part of the chain as metadata.
func (g *GroupIndex) buildCycleError(chain AncestorChain, revisited ID) error {
	loop := append(slices.Clone(chain[chain.Index(revisited):]), revisited)
	err := zerr.Wrap(ErrCycleDetected, "failed to walk ancestors")
	err = zerr.With(err, "group_id", chain.Start().String())
	return zerr.With(err, "cycle", loop.String())
}

// DescendantsOfRoot returns root together with every group whose ancestor chain
// passes through root. For each such chain, all ids from its start up to root are
// included. A root that is not in the index has no descendants.
// Any cycle in the hierarchy aborts the query.
func (g *GroupIndex) DescendantsOfRoot(root ID) (IDSet, error) {
	result := make(IDSet)
	for id := range g.IDs() {
		if result.Has(id) {
			continue
		}

		chain, err := g.AncestorChain(id)
		if err != nil {
			return nil, err
		}

		for _, member := range chain.Through(root) {
			result.Add(member)
		}
	}

	return result, nil
}
