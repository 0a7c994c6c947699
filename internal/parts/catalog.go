package parts

import "strings"

// Catalog holds the token tables classification operates on. The zero value
// is not usable; start from DefaultCatalog and override fields from config.
type Catalog struct {
	// Categories are the recognized category tokens, in match priority order
	// for the non-layered pass.
	Categories []string
	// Layered names the categories that admit an optional trailing 1/2
	// disambiguator in filenames. Matching normalizes back to the base name.
	Layered map[string]struct{}
	// Genders are the gender folder names nested under each component
	// sub-tree.
	Genders []string
	// Extensions is the image extension allow-list, lower-case with leading
	// dot.
	Extensions []string
}

// DefaultCatalog returns the stock generator token tables.
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []string{
			"AccA", "AccB", "Beard", "BeastEars", "Cloak", "Clothing", "Ears",
			"Eyebrows", "Eyes", "Face", "FacialMark", "FrontHair", "Glasses",
			"Mouth", "Nose", "RearHair", "Tail", "Wing",
		},
		Layered:    LayeredSet("Cloak", "Clothing", "RearHair", "Beard", "FrontHair", "Tail", "Wing"),
		Genders:    []string{"Female", "Male", "Kid"},
		Extensions: []string{".png", ".jpg", ".jpeg", ".webp"},
	}
}

// LayeredSet builds the layered-category set from a list of base names.
func LayeredSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// IsLayered reports whether the category admits a 1/2 layer suffix.
func (c Catalog) IsLayered(category string) bool {
	_, ok := c.Layered[category]
	return ok
}

// AllowsExtension reports whether the filename carries an allow-listed image
// extension. Comparison is case-insensitive on the full suffix.
func (c Catalog) AllowsExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// CanonicalGender maps a case-insensitive gender spelling to the catalog's
// folder name. Returns false when the catalog has no such gender.
func (c Catalog) CanonicalGender(name string) (string, bool) {
	for _, gender := range c.Genders {
		if strings.EqualFold(gender, name) {
			return gender, true
		}
	}
	return "", false
}

// CanonicalCategory maps a case-insensitive category spelling to the
// catalog's token. Returns false when the catalog has no such category.
func (c Catalog) CanonicalCategory(name string) (string, bool) {
	for _, category := range c.Categories {
		if strings.EqualFold(category, name) {
			return category, true
		}
	}
	return "", false
}
