package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en"

// Item is a leaf record classified by the group it belongs to.
type Item struct {
	ID         ID             `json:"id"`
	GroupID    ID             `json:"group_id"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// DisplayName returns the item's name for locale.
// The attribute under field is either a plain string or a map of locale to name.
func (it Item) DisplayName(field, locale string) (string, error) {
	var name string
	switch v := it.Attributes[field].(type) {
	case string:
		name = v
	case map[string]any:
		name, _ = v[locale].(string)
	case map[string]string:
		name = v[locale]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		err := zerr.Wrap(ErrMissingDisplayName, "failed to read item name")
		err = zerr.With(err, "item_id", it.ID.String())
		return "", zerr.With(err, "locale", locale)
	}
	return name, nil
}
