// Package classifier selects the items that fall under a root group and
// merges their names with a hand-maintained override list.
package classifier

import (
	"context"
	"strings"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hierarchy resolves the set of groups under a root.
type Hierarchy interface {
	DescendantsOfRoot(ctx context.Context, root domain.ID) (domain.IDSet, error)
}

// Classifier filters items by group membership.
type Classifier struct {
	hierarchy Hierarchy
	nameField string
	locale    string
}

// New creates a new Classifier reading display names from nameField in locale.
func New(hierarchy Hierarchy, nameField, locale string) *Classifier {
	return &Classifier{
		hierarchy: hierarchy,
		nameField: nameField,
		locale:    locale,
	}
}

// NamesForRoot returns the display names of the items whose group lies under rootID,
// in the order the items are given.
func (c *Classifier) NamesForRoot(ctx context.Context, rootID domain.ID, items []domain.Item) ([]string, error) {
	groups, err := c.hierarchy.DescendantsOfRoot(ctx, rootID)
	if err != nil {
		return nil, err
	}
	return c.namesIn(groups, items)
}

// Classify computes the names under rootID and merges them with overrides.
func (c *Classifier) Classify(
	ctx context.Context,
	rootID domain.ID,
	items []domain.Item,
	overrides []string,
) (*domain.ClassificationResult, error) {
	groups, err := c.hierarchy.DescendantsOfRoot(ctx, rootID)
	if err != nil {
		return nil, err
	}

	computed, err := c.namesIn(groups, items)
	if err != nil {
		return nil, zerr.With(err, "root_group_id", rootID.String())
	}

	return &domain.ClassificationResult{
		RootID:   rootID,
		GroupIDs: groups,
		Names:    Merge(overrides, computed),
	}, nil
}

func (c *Classifier) namesIn(groups domain.IDSet, items []domain.Item) ([]string, error) {
	names := make([]string, 0)
	for _, item := range items {
		if !groups.Has(item.GroupID) {
			continue
		}
		name, err := item.DisplayName(c.nameField, c.locale)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Merge returns overrides followed by the upper-cased computed names,
// keeping only the first occurrence of each exact string.
func Merge(overrides, computed []string) []string {
	merged := make([]string, 0, len(overrides)+len(computed))
	seen := make(map[string]struct{}, len(overrides)+len(computed))

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		merged = append(merged, name)
	}

	for _, name := range overrides {
		add(name)
	}
	for _, name := range computed {
		add(strings.ToUpper(name))
	}
	return merged
}
