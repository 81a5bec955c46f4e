package models

import (
	"encoding/json"
	"strings"
)

// LocalizedValue holds display text in zero or more of the two supported
// languages. Legacy documents store bare strings with no language tag attached;
// newer documents store {ar, en} objects. Decoding is tolerant: numbers,
// arrays, null and foreign object shapes all degrade to the zero value instead
// of failing, so a single malformed field can never break a whole document.
type LocalizedValue struct {
	// Plain carries the text of a bare-string (legacy) value. Only meaningful
	// when IsPlain is true.
	Plain string
	// Ar and En carry the per-language sides of an object value.
	Ar string
	En string
	// IsPlain marks the value as a legacy bare string.
	IsPlain bool
}

// PlainValue builds a legacy bare-string value.
func PlainValue(text string) LocalizedValue {
	return LocalizedValue{Plain: text, IsPlain: true}
}

// BilingualValue builds an object value from its two sides.
func BilingualValue(ar, en string) LocalizedValue {
	return LocalizedValue{Ar: ar, En: en}
}

// IsZero reports whether the value carries no usable text at all.
func (v LocalizedValue) IsZero() bool {
	if v.IsPlain {
		return strings.TrimSpace(v.Plain) == ""
	}
	return strings.TrimSpace(v.Ar) == "" && strings.TrimSpace(v.En) == ""
}

// Side returns the requested language side of an object value, or "" when the
// side is absent or the value is a bare string (which has no sides).
func (v LocalizedValue) Side(lang Language) string {
	if v.IsPlain {
		return ""
	}
	if lang == LanguageArabic {
		return v.Ar
	}
	return v.En
}

// SetSide writes the given language side of an object value. Calling SetSide
// on a bare-string value promotes it to an object first, keeping the original
// text under the opposite side so no content is lost.
func (v *LocalizedValue) SetSide(lang Language, text string) {
	if v.IsPlain {
		original := v.Plain
		*v = LocalizedValue{}
		v.setSide(lang.Other(), original)
	}
	v.setSide(lang, text)
}

func (v *LocalizedValue) setSide(lang Language, text string) {
	if lang == LanguageArabic {
		v.Ar = text
	} else {
		v.En = text
	}
}

// UnmarshalJSON accepts a bare string, an {ar, en} object, or any other JSON
// shape. Unknown shapes decode to the zero value; this method never returns an
// error.
func (v *LocalizedValue) UnmarshalJSON(data []byte) error {
	*v = LocalizedValue{}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Plain = s
		v.IsPlain = true
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		v.Ar = stringFromRaw(obj["ar"])
		v.En = stringFromRaw(obj["en"])
	}
	return nil
}

// MarshalJSON preserves the stored shape: bare strings stay bare strings,
// object values serialize with their ar/en keys (empty sides omitted).
func (v LocalizedValue) MarshalJSON() ([]byte, error) {
	if v.IsPlain {
		return json.Marshal(v.Plain)
	}
	return json.Marshal(struct {
		Ar string `json:"ar,omitempty"`
		En string `json:"en,omitempty"`
	}{Ar: v.Ar, En: v.En})
}

// stringFromRaw decodes a raw JSON fragment as a string, returning "" for any
// other shape.
func stringFromRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
