package domain

import "encoding/json"

// Supported content languages. LangEN is the default language used when a
// legacy flat value carries no language information.
const (
	LangEN = "en"
	LangID = "id"
)

// LocalizedText holds a bilingual text value. Legacy records stored these
// fields as plain strings; UnmarshalJSON normalizes that shape into the
// default-language slot so the rest of the code only ever sees the map form.
type LocalizedText struct {
	EN string `json:"en"`
	ID string `json:"id"`
}

// UnmarshalJSON accepts either {"en":...,"id":...} or a legacy plain string.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var flat string
	if err := json.Unmarshal(data, &flat); err == nil {
		*t = LocalizedText{EN: flat}
		return nil
	}

	type localizedText LocalizedText
	var v localizedText
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = LocalizedText(v)
	return nil
}

// Get returns the exact value stored for lang, without fallback.
func (t LocalizedText) Get(lang string) string {
	if lang == LangID {
		return t.ID
	}
	return t.EN
}

// Resolve returns the value for lang, falling back to the default language
// and then to whichever language has a value.
func (t LocalizedText) Resolve(lang string) string {
	if lang == LangID && t.ID != "" {
		return t.ID
	}
	if t.EN != "" {
		return t.EN
	}
	return t.ID
}

// IsEmpty reports whether no language carries a value.
func (t LocalizedText) IsEmpty() bool {
	return t.EN == "" && t.ID == ""
}

// LocalizedTagList holds per-language tag lists. The legacy shape is a flat
// list, normalized into the default language on unmarshal.
type LocalizedTagList struct {
	EN []string `json:"en"`
	ID []string `json:"id"`
}

// UnmarshalJSON accepts either {"en":[...],"id":[...]} or a legacy flat list.
func (l *LocalizedTagList) UnmarshalJSON(data []byte) error {
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		*l = LocalizedTagList{EN: flat}
		return nil
	}

	type localizedTagList LocalizedTagList
	var v localizedTagList
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = LocalizedTagList(v)
	return nil
}

// Normalize deduplicates each language's tags, preserving order and dropping
// empty entries.
func (l LocalizedTagList) Normalize() LocalizedTagList {
	return LocalizedTagList{
		EN: dedupeTags(l.EN),
		ID: dedupeTags(l.ID),
	}
}

// Resolve returns the tag list for lang with default-language fallback.
func (l LocalizedTagList) Resolve(lang string) []string {
	if lang == LangID && len(l.ID) > 0 {
		return l.ID
	}
	if len(l.EN) > 0 {
		return l.EN
	}
	return l.ID
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
