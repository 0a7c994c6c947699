package parts

import "fmt"

// Key uniquely names one logical asset slot. PartNum is the canonical
// zero-padded decimal string ("01", "13", "123"); values are never mutated
// after construction and equality is plain field equality.
type Key struct {
	Gender   string
	Category string
	PartNum  string
}

// String renders the key the way the review UI labels it.
func (k Key) String() string {
	return fmt.Sprintf("%s %s p%s", k.Gender, k.Category, k.PartNum)
}

// Slug renders the key as the destination folder stem, e.g. "Clothing_p01".
func (k Key) Slug() string {
	return fmt.Sprintf("%s_p%s", k.Category, k.PartNum)
}

// ComponentRole identifies which visual representation a file is, determined
// solely by the sub-tree the file was discovered under.
type ComponentRole string

const (
	RoleFace ComponentRole = "FACE"
	RoleSV   ComponentRole = "SV"
	RoleTV   ComponentRole = "TV"
	RoleTVD  ComponentRole = "TVD"
	RoleIcon ComponentRole = "ICON"
)

// Roles lists every component role in presentation order.
func Roles() []ComponentRole {
	return []ComponentRole{RoleFace, RoleSV, RoleTV, RoleTVD, RoleIcon}
}

// MaskRoles lists the roles whose sub-trees may contain mask sheets.
func MaskRoles() []ComponentRole {
	return []ComponentRole{RoleSV, RoleTV, RoleTVD}
}

// SupportsMask reports whether files under the role's sub-tree are ever
// classified as masks.
func (r ComponentRole) SupportsMask() bool {
	switch r {
	case RoleSV, RoleTV, RoleTVD:
		return true
	}
	return false
}

// ComponentFolders maps root sub-tree folder names to component roles. The
// table is fixed: routing depends on directory placement, never on filename
// content.
func ComponentFolders() map[string]ComponentRole {
	return map[string]ComponentRole{
		"Face":      RoleFace,
		"SV":        RoleSV,
		"TV":        RoleTV,
		"TVD":       RoleTVD,
		"Variation": RoleIcon,
	}
}
