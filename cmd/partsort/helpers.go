package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"partsort/internal/config"
	"partsort/internal/faults"
	"partsort/internal/parts"
)

var titleCaser = cases.Title(language.English)

// validateRoot checks the generator root before any scan is attempted.
func validateRoot(root string) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(root))
	if err != nil {
		return "", err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", faults.Wrap(faults.ErrValidation, "scan", "validate root", expanded+" does not exist", nil)
		}
		return "", faults.Wrap(faults.ErrValidation, "scan", "validate root", expanded, err)
	}
	if !info.IsDir() {
		return "", faults.Wrap(faults.ErrValidation, "scan", "validate root", expanded+" is not a directory", nil)
	}
	return expanded, nil
}

// parseKeyArg turns a Gender/Category/pNN argument into an identity key.
// Spelling is forgiving: gender is title-cased, category matched against the
// catalog case-insensitively, and the part number may carry its p prefix or
// not.
func parseKeyArg(cat parts.Catalog, arg string) (parts.Key, error) {
	segments := strings.Split(strings.TrimSpace(arg), "/")
	if len(segments) != 3 {
		return parts.Key{}, fmt.Errorf("identity must be Gender/Category/pNN, got %q", arg)
	}

	gender, ok := cat.CanonicalGender(titleCaser.String(strings.TrimSpace(segments[0])))
	if !ok {
		return parts.Key{}, fmt.Errorf("unknown gender %q (expected one of %s)", segments[0], strings.Join(cat.Genders, ", "))
	}

	category, ok := cat.CanonicalCategory(strings.TrimSpace(segments[1]))
	if !ok {
		return parts.Key{}, fmt.Errorf("unknown category %q", segments[1])
	}

	partNum := strings.TrimSpace(segments[2])
	partNum = strings.TrimPrefix(strings.ToLower(partNum), "p")
	if partNum == "" {
		return parts.Key{}, fmt.Errorf("missing part number in %q", arg)
	}
	var n int
	if _, err := fmt.Sscanf(partNum, "%d", &n); err != nil || n < 0 {
		return parts.Key{}, fmt.Errorf("invalid part number %q", segments[2])
	}
	return parts.Key{Gender: gender, Category: category, PartNum: fmt.Sprintf("%02d", n)}, nil
}

// keyArg renders a key in the form parseKeyArg accepts.
func keyArg(key parts.Key) string {
	return fmt.Sprintf("%s/%s/p%s", key.Gender, key.Category, key.PartNum)
}
