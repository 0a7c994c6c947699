package review

import (
	"strings"

	"partsort/internal/parts"
	"partsort/internal/scanner"
)

// View is an ordered, filtered projection of an index. It holds no cursor;
// navigation state belongs to the caller and is re-applied after rebuilds.
type View struct {
	keys []parts.Key
}

// Build derives a view from the index. Keys come out sorted by (gender,
// category, numeric part value). The free-text filter keeps a key when the
// text is a case-insensitive substring of the gender, the category, the raw
// part number, or the part number prefixed with "p". The missing-only filter
// keeps keys with at least one empty main role. Both filters apply
// conjunctively.
func Build(idx *scanner.Index, filterText string, missingOnly bool) *View {
	text := strings.ToLower(strings.TrimSpace(filterText))

	var keys []parts.Key
	for _, key := range idx.Keys() {
		if text != "" && !matchesText(key, text) {
			continue
		}
		if missingOnly && !hasMissingMain(idx.Group(key)) {
			continue
		}
		keys = append(keys, key)
	}
	return &View{keys: keys}
}

// Len reports the number of identities in the view.
func (v *View) Len() int {
	return len(v.keys)
}

// Keys returns the ordered identities.
func (v *View) Keys() []parts.Key {
	return v.keys
}

// At returns the identity at position i, or false when the view is empty or
// i is out of range.
func (v *View) At(i int) (parts.Key, bool) {
	if i < 0 || i >= len(v.keys) {
		return parts.Key{}, false
	}
	return v.keys[i], true
}

// Clamp bounds a caller-held cursor to [0, Len-1]. An empty view clamps to
// zero; callers must treat that position as "no current identity".
func (v *View) Clamp(i int) int {
	if len(v.keys) == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= len(v.keys) {
		return len(v.keys) - 1
	}
	return i
}

// IndexOf locates an identity in the view so a caller can re-seat its cursor
// by key after a rescan.
func (v *View) IndexOf(key parts.Key) (int, bool) {
	for i, k := range v.keys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

func matchesText(key parts.Key, text string) bool {
	return strings.Contains(strings.ToLower(key.Gender), text) ||
		strings.Contains(strings.ToLower(key.Category), text) ||
		strings.Contains(strings.ToLower(key.PartNum), text) ||
		strings.Contains(strings.ToLower("p"+key.PartNum), text)
}

func hasMissingMain(group *parts.PartGroup) bool {
	if group == nil {
		return false
	}
	for _, role := range parts.Roles() {
		if group.CandidateCount(role) == 0 {
			return true
		}
	}
	return false
}
