package classify

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"partsort/internal/parts"
)

// partNumberPattern matches a "p" + 1-3 digit token anchored by start or a
// separator before, and by a separator, the extension dot, or end after.
var partNumberPattern = regexp.MustCompile(`(?i)(?:^|[_-])p(\d{1,3})(?:[_.-]|$)`)

// maskSuffixPattern matches a stem ending in _c / -c with optional trailing
// digits (_c, _c1, -c2, ...).
var maskSuffixPattern = regexp.MustCompile(`[_-]c\d*$`)

var (
	categoryPatternMu sync.Mutex
	categoryPatterns  = map[string]*regexp.Regexp{}
)

func categoryPattern(base string, layered bool) *regexp.Regexp {
	suffix := ""
	if layered {
		suffix = "(?:[12])?"
	}
	expr := fmt.Sprintf(`(?i)(?:^|[_-])%s%s(?:[_-]|$)`, regexp.QuoteMeta(base), suffix)

	categoryPatternMu.Lock()
	defer categoryPatternMu.Unlock()
	if re, ok := categoryPatterns[expr]; ok {
		return re
	}
	re := regexp.MustCompile(expr)
	categoryPatterns[expr] = re
	return re
}

// DetectCategory finds the category token in the filename. Layered categories
// are tried first and may carry an optional trailing 1/2 that is normalized
// away; the remaining categories must appear with no trailing digit. Matching
// is case-insensitive but the returned category keeps the catalog spelling.
func DetectCategory(cat parts.Catalog, filename string) (string, bool) {
	for _, base := range cat.Categories {
		if !cat.IsLayered(base) {
			continue
		}
		if categoryPattern(base, true).MatchString(filename) {
			return base, true
		}
	}
	for _, base := range cat.Categories {
		if cat.IsLayered(base) {
			continue
		}
		if categoryPattern(base, false).MatchString(filename) {
			return base, true
		}
	}
	return "", false
}

// DetectPartNumber finds the first part-number token and returns its
// canonical form: the decimal value zero-padded to at least two digits.
// Three-digit values pass through untruncated ("p123" -> "123").
func DetectPartNumber(filename string) (string, bool) {
	m := partNumberPattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// IsMask reports whether the filename names a mask sheet: its extension-less
// stem ends in _c/-c optionally followed by digits. The scanner consults this
// only for files under mask-capable component roles.
func IsMask(filename string) bool {
	stem := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
	return maskSuffixPattern.MatchString(stem)
}

// Identify combines category and part-number detection into a full key for
// the given gender. A miss on either token yields no key.
func Identify(cat parts.Catalog, gender, filename string) (parts.Key, bool) {
	category, ok := DetectCategory(cat, filename)
	if !ok {
		return parts.Key{}, false
	}
	partNum, ok := DetectPartNumber(filename)
	if !ok {
		return parts.Key{}, false
	}
	return parts.Key{Gender: gender, Category: category, PartNum: partNum}, true
}
