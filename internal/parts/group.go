package parts

// FileEntry is one discovered file. Identity is structural: two entries are
// the same file iff their paths are equal.
type FileEntry struct {
	Path string
	Name string
}

// PartGroup aggregates every file discovered for one Key, split per component
// role into main candidates and mask sheets. Lists keep discovery order and
// the group is rebuilt wholesale on every scan, never patched in place.
type PartGroup struct {
	Key        Key
	candidates map[ComponentRole][]FileEntry
	masks      map[ComponentRole][]FileEntry
}

// NewPartGroup returns an empty group for the given key with all role lists
// initialized.
func NewPartGroup(key Key) *PartGroup {
	g := &PartGroup{
		Key:        key,
		candidates: make(map[ComponentRole][]FileEntry, len(Roles())),
		masks:      make(map[ComponentRole][]FileEntry, len(MaskRoles())),
	}
	for _, role := range Roles() {
		g.candidates[role] = nil
	}
	for _, role := range MaskRoles() {
		g.masks[role] = nil
	}
	return g
}

// AddCandidate appends a main candidate for the role, preserving discovery
// order.
func (g *PartGroup) AddCandidate(role ComponentRole, entry FileEntry) {
	g.candidates[role] = append(g.candidates[role], entry)
}

// AddMask appends a mask sheet for the role, preserving discovery order.
func (g *PartGroup) AddMask(role ComponentRole, entry FileEntry) {
	g.masks[role] = append(g.masks[role], entry)
}

// Candidates returns the ordered main candidates for the role.
func (g *PartGroup) Candidates(role ComponentRole) []FileEntry {
	return g.candidates[role]
}

// Masks returns the ordered mask sheets for the role.
func (g *PartGroup) Masks(role ComponentRole) []FileEntry {
	return g.masks[role]
}

// CandidateCount reports how many main candidates the role has.
func (g *PartGroup) CandidateCount(role ComponentRole) int {
	return len(g.candidates[role])
}

// MaskCount reports how many mask sheets the role has.
func (g *PartGroup) MaskCount(role ComponentRole) int {
	return len(g.masks[role])
}

// HasAnyMain reports whether any role has at least one main candidate.
func (g *PartGroup) HasAnyMain() bool {
	for _, role := range Roles() {
		if len(g.candidates[role]) > 0 {
			return true
		}
	}
	return false
}

// HasAnyMask reports whether any mask-capable role has at least one mask.
func (g *PartGroup) HasAnyMask() bool {
	for _, role := range MaskRoles() {
		if len(g.masks[role]) > 0 {
			return true
		}
	}
	return false
}

// Empty reports whether every candidate and mask list is empty. Empty groups
// are pruned from the index after a scan.
func (g *PartGroup) Empty() bool {
	return !g.HasAnyMain() && !g.HasAnyMask()
}

// FileCount reports the total number of files in the group across all roles.
func (g *PartGroup) FileCount() int {
	total := 0
	for _, role := range Roles() {
		total += len(g.candidates[role])
	}
	for _, role := range MaskRoles() {
		total += len(g.masks[role])
	}
	return total
}
