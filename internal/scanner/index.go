package scanner

import (
	"sort"
	"strconv"

	"partsort/internal/parts"
)

// Index maps identity keys to their part groups for exactly one scan pass.
type Index struct {
	groups map[parts.Key]*parts.PartGroup
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{groups: make(map[parts.Key]*parts.PartGroup)}
}

// Group returns the part group for the key, or nil when the key is unknown.
func (idx *Index) Group(key parts.Key) *parts.PartGroup {
	return idx.groups[key]
}

// Len reports how many identities the index covers.
func (idx *Index) Len() int {
	return len(idx.groups)
}

// Keys returns every identity sorted by (gender, category, numeric part
// value). Numeric comparison keeps p2 ahead of p10.
func (idx *Index) Keys() []parts.Key {
	keys := make([]parts.Key, 0, len(idx.groups))
	for key := range idx.groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Gender != b.Gender {
			return a.Gender < b.Gender
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return partValue(a.PartNum) < partValue(b.PartNum)
	})
	return keys
}

// FileCount reports the total number of indexed files.
func (idx *Index) FileCount() int {
	total := 0
	for _, group := range idx.groups {
		total += group.FileCount()
	}
	return total
}

func (idx *Index) group(key parts.Key) *parts.PartGroup {
	if g, ok := idx.groups[key]; ok {
		return g
	}
	g := parts.NewPartGroup(key)
	idx.groups[key] = g
	return g
}

func (idx *Index) prune() {
	for key, group := range idx.groups {
		if group.Empty() {
			delete(idx.groups, key)
		}
	}
}

func partValue(partNum string) int {
	n, err := strconv.Atoi(partNum)
	if err != nil {
		return 0
	}
	return n
}
