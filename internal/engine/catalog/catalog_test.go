package catalog_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sde/internal/adapters/cas"
	"go.trai.ch/sde/internal/adapters/logger"
	"go.trai.ch/sde/internal/adapters/telemetry"
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports/mocks"
	"go.trai.ch/sde/internal/engine/catalog"
	"go.uber.org/mock/gomock"
)

func parent(id domain.ID) *domain.ID {
	return &id
}

func sampleGroups() []domain.GroupNode {
	return []domain.GroupNode{
		{ID: 4},
		{ID: 10, ParentID: parent(4)},
		{ID: 11, ParentID: parent(10)},
		{ID: 20},
	}
}

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: 1, GroupID: 11, Attributes: map[string]any{"name": map[string]any{"en": "Rifter"}}},
		{ID: 2, GroupID: 99, Attributes: map[string]any{"name": map[string]any{"en": "Tritanium"}}},
	}
}

func newCatalog(t *testing.T, source *mocks.MockRecordSource, cacheDir string) *catalog.Catalog {
	t.Helper()
	log := logger.NewWithWriter(io.Discard)
	cfg := domain.DefaultConfig()
	cfg.CacheDir = cacheDir
	return catalog.New(cas.NewStore(cacheDir, log), source, telemetry.NewNoOp(), log, cfg)
}

func TestCatalog_GroupsLoadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	cfg := domain.DefaultConfig()
	source.EXPECT().LoadGroups(gomock.Any(), cfg.GroupsFile).Return(sampleGroups(), nil).Times(1)

	c := newCatalog(t, source, t.TempDir())

	first, err := c.Groups(context.Background())
	require.NoError(t, err)
	second, err := c.Groups(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 4, first.Len())
}

func TestCatalog_PersistentAcrossInstances(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return(sampleGroups(), nil).Times(1)
	source.EXPECT().LoadItems(gomock.Any(), gomock.Any()).Return(sampleItems(), nil).Times(1)

	dir := t.TempDir()

	first := newCatalog(t, source, dir)
	_, err := first.Groups(context.Background())
	require.NoError(t, err)
	_, err = first.Items(context.Background())
	require.NoError(t, err)

	second := newCatalog(t, source, dir)
	index, err := second.Groups(context.Background())
	require.NoError(t, err)
	items, err := second.Items(context.Background())
	require.NoError(t, err)

	chain, err := index.AncestorChain(11)
	require.NoError(t, err)
	assert.Equal(t, domain.AncestorChain{11, 10, 4}, chain)

	require.Len(t, items, 2)
	name, err := items[0].DisplayName("name", "en")
	require.NoError(t, err)
	assert.Equal(t, "Rifter", name)
}

func TestCatalog_LoadErrorNotRemembered(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	errRead := errors.New("disk on fire")

	gomock.InOrder(
		source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return(nil, errRead),
		source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return(sampleGroups(), nil),
	)

	c := newCatalog(t, source, t.TempDir())

	_, err := c.Groups(context.Background())
	require.ErrorIs(t, err, errRead)

	index, err := c.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, index.Len())
}

func TestCatalog_DescendantsOfRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return(sampleGroups(), nil).Times(1)

	c := newCatalog(t, source, t.TempDir())

	ships, err := c.DescendantsOfRoot(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{4, 10, 11}, ships.Sorted())

	sub, err := c.DescendantsOfRoot(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{10, 11}, sub.Sorted())

	unknown, err := c.DescendantsOfRoot(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, 0, unknown.Len())

	again, err := c.DescendantsOfRoot(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, ships, again)
}

func TestCatalog_DescendantsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return([]domain.GroupNode{
		{ID: 1, ParentID: parent(2)},
		{ID: 2, ParentID: parent(1)},
	}, nil)

	c := newCatalog(t, source, t.TempDir())

	_, err := c.DescendantsOfRoot(context.Background(), 4)
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestCatalog_DuplicateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return([]domain.GroupNode{{ID: 1}, {ID: 1}}, nil)

	c := newCatalog(t, source, t.TempDir())

	_, err := c.Ancestors(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestCatalog_ConcurrentWarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().LoadGroups(gomock.Any(), gomock.Any()).Return(sampleGroups(), nil).MinTimes(1)
	source.EXPECT().LoadItems(gomock.Any(), gomock.Any()).Return(sampleItems(), nil).MinTimes(1)

	c := newCatalog(t, source, t.TempDir())

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := c.Groups(context.Background())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := c.Items(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := c.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
