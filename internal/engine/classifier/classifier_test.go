package classifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/engine/classifier"
	"go.trai.ch/zerr"
)

// indexHierarchy adapts a GroupIndex to the classifier.
type indexHierarchy struct {
	index *domain.GroupIndex
	calls int
}

func (h *indexHierarchy) DescendantsOfRoot(_ context.Context, root domain.ID) (domain.IDSet, error) {
	h.calls++
	return h.index.DescendantsOfRoot(root)
}

func parent(id domain.ID) *domain.ID {
	return &id
}

func newHierarchy(t *testing.T, records ...domain.GroupNode) *indexHierarchy {
	t.Helper()
	index, err := domain.NewGroupIndex(records)
	require.NoError(t, err)
	return &indexHierarchy{index: index}
}

func named(id, group domain.ID, name string) domain.Item {
	return domain.Item{
		ID:         id,
		GroupID:    group,
		Attributes: map[string]any{"name": map[string]any{"en": name}},
	}
}

func shipTree(t *testing.T) *indexHierarchy {
	t.Helper()
	return newHierarchy(t,
		domain.GroupNode{ID: 4},
		domain.GroupNode{ID: 10, ParentID: parent(4)},
		domain.GroupNode{ID: 11, ParentID: parent(10)},
	)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		computed  []string
		want      []string
	}{
		{
			name:      "overrides first and computed upper-cased",
			overrides: []string{"ALPHA"},
			computed:  []string{"Alpha", "Beta"},
			want:      []string{"ALPHA", "BETA"},
		},
		{
			name:     "no overrides",
			computed: []string{"Rifter", "rifter", "Merlin"},
			want:     []string{"RIFTER", "MERLIN"},
		},
		{
			name:      "overrides kept verbatim",
			overrides: []string{"Capsule", "Capsule", "CAPSULE"},
			computed:  []string{"capsule"},
			want:      []string{"Capsule", "CAPSULE"},
		},
		{
			name: "both empty",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Merge(tt.overrides, tt.computed))
		})
	}
}

func TestNamesForRoot(t *testing.T) {
	c := classifier.New(shipTree(t), "name", "en")

	items := []domain.Item{
		named(1, 11, "Rifter"),
		named(2, 99, "Tritanium"),
		named(3, 4, "Capsule"),
	}

	names, err := c.NamesForRoot(context.Background(), 4, items)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rifter", "Capsule"}, names)
}

func TestNamesForRoot_SubtreeRoot(t *testing.T) {
	c := classifier.New(shipTree(t), "name", "en")

	items := []domain.Item{
		named(1, 11, "Rifter"),
		named(3, 4, "Capsule"),
	}

	names, err := c.NamesForRoot(context.Background(), 10, items)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rifter"}, names)
}

func TestNamesForRoot_MissingName(t *testing.T) {
	c := classifier.New(shipTree(t), "name", "en")

	items := []domain.Item{
		{ID: 7, GroupID: 11, Attributes: map[string]any{"name": map[string]any{"de": "Rifter"}}},
		// Items outside the root are never inspected.
		{ID: 8, GroupID: 99},
	}

	_, err := c.NamesForRoot(context.Background(), 4, items)
	require.ErrorIs(t, err, domain.ErrMissingDisplayName)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "7", meta["item_id"])
	assert.Equal(t, "en", meta["locale"])
}

func TestNamesForRoot_UnrelatedItemWithoutName(t *testing.T) {
	c := classifier.New(shipTree(t), "name", "en")

	names, err := c.NamesForRoot(context.Background(), 4, []domain.Item{{ID: 8, GroupID: 99}})
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNamesForRoot_Cycle(t *testing.T) {
	h := newHierarchy(t,
		domain.GroupNode{ID: 1, ParentID: parent(2)},
		domain.GroupNode{ID: 2, ParentID: parent(1)},
	)
	c := classifier.New(h, "name", "en")

	_, err := c.NamesForRoot(context.Background(), 4, []domain.Item{named(1, 1, "Loop")})
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestClassify(t *testing.T) {
	h := shipTree(t)
	c := classifier.New(h, "name", "en")

	items := []domain.Item{
		named(1, 11, "Rifter"),
		named(2, 99, "Tritanium"),
	}

	result, err := c.Classify(context.Background(), 4, items, []string{"SHUTTLE", "RIFTER"})
	require.NoError(t, err)

	assert.Equal(t, domain.ID(4), result.RootID)
	assert.Equal(t, []domain.ID{4, 10, 11}, result.GroupIDs.Sorted())
	assert.Equal(t, []string{"SHUTTLE", "RIFTER"}, result.Names)
	assert.True(t, result.Contains("rifter"))
	assert.False(t, result.Contains("Tritanium"))
	assert.Equal(t, 1, h.calls)
}
