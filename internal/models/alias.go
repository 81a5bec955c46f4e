package models

import "encoding/json"

// Historically the builder UI and older documents used different field names
// for the same logical content ("name" vs "title" for a service's display
// name, "items" vs "subServices" for its children, "name"/"text"/"label" for
// an item's text). The alias tables below make the lookup order an explicit
// contract instead of incidental code order: aliases are tried in declared
// sequence and the first one yielding any usable value wins.

type fieldAliases []string

var (
	// ServiceNameAliases resolves a service's display name.
	ServiceNameAliases = fieldAliases{"name", "title"}
	// ServiceItemsAliases resolves a service's list of sub-items.
	ServiceItemsAliases = fieldAliases{"items", "subServices"}
	// ItemTextAliases resolves a sub-item's display text.
	ItemTextAliases = fieldAliases{"name", "text", "label"}
)

// pickLocalized tries each alias in order and returns the first value that
// decodes to usable text. If every alias is absent or empty, the first present
// alias is returned anyway (preserving e.g. an empty bilingual object), and
// failing that the zero value.
func (a fieldAliases) pickLocalized(raw map[string]json.RawMessage) LocalizedValue {
	var first *LocalizedValue
	for _, key := range a {
		data, ok := raw[key]
		if !ok {
			continue
		}
		var v LocalizedValue
		_ = v.UnmarshalJSON(data)
		if !v.IsZero() {
			return v
		}
		if first == nil {
			clone := v
			first = &clone
		}
	}
	if first != nil {
		return *first
	}
	return LocalizedValue{}
}

// pickRaw returns the raw fragment of the first present alias.
func (a fieldAliases) pickRaw(raw map[string]json.RawMessage) json.RawMessage {
	for _, key := range a {
		if data, ok := raw[key]; ok {
			return data
		}
	}
	return nil
}
