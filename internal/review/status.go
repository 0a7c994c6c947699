package review

import "partsort/internal/parts"

// RoleStatus describes the mask/main situation for one battler role.
type RoleStatus int

const (
	// NoFiles means the role has neither a main candidate nor a mask.
	NoFiles RoleStatus = iota
	// MaskMissing means a main candidate exists but no mask was found.
	MaskMissing
	// MaskOrphan means masks exist but the main sheet is missing.
	MaskOrphan
	// MaskAndMain means both a main candidate and at least one mask exist.
	MaskAndMain
)

// String renders the status for display.
func (s RoleStatus) String() string {
	switch s {
	case MaskAndMain:
		return "mask present"
	case MaskOrphan:
		return "mask found but main sheet missing"
	case MaskMissing:
		return "mask missing"
	default:
		return "no mask, no main sheet"
	}
}

// StatusFor classifies the role within the group. Only meaningful for
// mask-capable roles; roles without mask support always report mask counts
// of zero.
func StatusFor(group *parts.PartGroup, role parts.ComponentRole) RoleStatus {
	hasMain := group.CandidateCount(role) > 0
	hasMask := group.MaskCount(role) > 0
	switch {
	case hasMain && hasMask:
		return MaskAndMain
	case hasMask:
		return MaskOrphan
	case hasMain:
		return MaskMissing
	default:
		return NoFiles
	}
}

// IsMaskOnly reports whether the group is an orphan mask-only entry: masks
// exist for some battler role but no role has a main candidate at all.
func IsMaskOnly(group *parts.PartGroup) bool {
	return !group.HasAnyMain() && group.HasAnyMask()
}
