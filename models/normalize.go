package models

import (
	"encoding/json"
	"strings"
)

// NormalizeIngredients decodes an ingredients field that may arrive as a
// native JSON array, a JSON string containing an encoded array, or be absent
// entirely. Absent and null both yield an empty slice.
func NormalizeIngredients(raw json.RawMessage) ([]Ingredient, error) {
	data, empty, err := unwrapArray(raw)
	if err != nil || empty {
		return []Ingredient{}, err
	}

	var out []Ingredient
	if err = json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Ingredient{}
	}
	return out, nil
}

// NormalizeStrings is the string-slice counterpart of NormalizeIngredients,
// used for the links and photos fields.
func NormalizeStrings(raw json.RawMessage) ([]string, error) {
	data, empty, err := unwrapArray(raw)
	if err != nil || empty {
		return []string{}, err
	}

	var out []string
	if err = json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// unwrapArray strips one level of string encoding off a raw JSON value:
// `"[\"a\"]"` becomes `["a"]`. It reports empty=true for missing, null,
// or empty-string input.
func unwrapArray(raw json.RawMessage) (json.RawMessage, bool, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, true, nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, false, err
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return nil, true, nil
		}
		return json.RawMessage(inner), false, nil
	}

	return raw, false, nil
}
