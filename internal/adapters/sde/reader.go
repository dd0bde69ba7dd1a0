// Package sde reads the static data export: YAML record files and the override name list.
package sde

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecordSource = (*Reader)(nil)

// Reader implements ports.RecordSource over a directory of YAML files.
type Reader struct {
	root   string
	fields domain.Fields
	logger ports.Logger
}

// NewReader creates a Reader resolving paths against root.
func NewReader(root string, fields domain.Fields, logger ports.Logger) *Reader {
	return &Reader{
		root:   filepath.Clean(root),
		fields: fields,
		logger: logger,
	}
}

// LoadGroups reads a YAML sequence of group mappings.
// Every record must carry the group id field; the parent field is optional.
func (r *Reader) LoadGroups(ctx context.Context, path string) ([]domain.GroupNode, error) {
	var raw []map[string]any
	if err := r.decode(ctx, path, &raw); err != nil {
		return nil, err
	}

	groups := make([]domain.GroupNode, 0, len(raw))
	for i, rec := range raw {
		attrs := normalizeMap(rec)

		id, ok := toID(attrs[r.fields.GroupID])
		if !ok {
			err := zerr.Wrap(domain.ErrInvalidRecord, "group record without id")
			err = zerr.With(err, "path", path)
			err = zerr.With(err, "index", i)
			return nil, zerr.With(err, "field", r.fields.GroupID)
		}
		delete(attrs, r.fields.GroupID)

		node := domain.GroupNode{ID: id}
		if v, present := attrs[r.fields.ParentID]; present && v != nil {
			parentID, ok := toID(v)
			if !ok {
				err := zerr.Wrap(domain.ErrInvalidRecord, "malformed parent id")
				err = zerr.With(err, "path", path)
				return nil, zerr.With(err, "group_id", id.String())
			}
			node.ParentID = &parentID
		}
		delete(attrs, r.fields.ParentID)

		if len(attrs) > 0 {
			node.Attributes = attrs
		}
		groups = append(groups, node)
	}

	r.logger.Debug("groups parsed", "path", path, "count", len(groups))
	return groups, nil
}

// LoadItems reads a YAML mapping of item id to item attributes.
// Items without the group field are not categorized and are skipped.
// The result is ordered by item id.
func (r *Reader) LoadItems(ctx context.Context, path string) ([]domain.Item, error) {
	var raw map[string]map[string]any
	if err := r.decode(ctx, path, &raw); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(raw))
	skipped := 0
	for key, rec := range raw {
		id, ok := toID(key)
		if !ok {
			err := zerr.Wrap(domain.ErrInvalidRecord, "malformed item id")
			err = zerr.With(err, "path", path)
			return nil, zerr.With(err, "item_id", key)
		}

		attrs := normalizeMap(rec)
		groupID, ok := toID(attrs[r.fields.ItemGroup])
		if !ok {
			skipped++
			continue
		}

		items = append(items, domain.Item{ID: id, GroupID: groupID, Attributes: attrs})
	}

	slices.SortFunc(items, func(a, b domain.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})

	r.logger.Debug("items parsed", "path", path, "count", len(items), "uncategorized", skipped)
	return items, nil
}

func (r *Reader) decode(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(r.root, path)
	data, err := os.ReadFile(fullPath) //nolint:gosec // path is taken from configuration
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, "failed to load dataset"), "cause", err.Error())
		return zerr.With(err, "path", fullPath)
	}

	if err := yaml.Unmarshal(data, dst); err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrSourceParseFailed, "failed to load dataset"), "cause", err.Error())
		return zerr.With(err, "path", fullPath)
	}

	return nil
}

// toID converts a decoded scalar into an id.
func toID(v any) (domain.ID, bool) {
	switch n := v.(type) {
	case int:
		return domain.ID(n), true
	case int64:
		return domain.ID(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return domain.ID(n), true
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return domain.ID(n), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return domain.ID(id), true
	default:
		return 0, false
	}
}

// normalizeMap copies m, turning nested mappings with non-string keys into
// map[string]any so records stay JSON serializable.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}
