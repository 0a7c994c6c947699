package review_test

import (
	"testing"

	"partsort/internal/parts"
	"partsort/internal/review"
	"partsort/internal/scanner"
	"partsort/internal/testsupport"
)

func seedIndex(t *testing.T) (*scanner.Index, string) {
	t.Helper()
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		// Complete identity: every main role filled.
		"Face/Female/FG_AccA_p01.png":        "",
		"SV/Female/SV_AccA_p01.png":          "",
		"TV/Female/TV_AccA_p01.png":          "",
		"TVD/Female/TVD_AccA_p01.png":        "",
		"Variation/Female/icon_AccA_p01.png": "",
		// Incomplete identity: SV only.
		"SV/Female/SV_Clothing_p02.png": "",
		// Different gender.
		"SV/Male/SV_AccA_p01.png": "",
	})
	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return idx, root
}

func TestBuildOrdersAndFilters(t *testing.T) {
	idx, _ := seedIndex(t)

	view := review.Build(idx, "", false)
	if view.Len() != 3 {
		t.Fatalf("unfiltered view length = %d, want 3", view.Len())
	}
	// Female sorts before Male, AccA before Clothing.
	first, _ := view.At(0)
	if first != (parts.Key{Gender: "Female", Category: "AccA", PartNum: "01"}) {
		t.Fatalf("unexpected first key: %v", first)
	}

	// Substring matching: "fem" hits both Female identities, and "male"
	// would hit Female too (it is a substring), matching the original tool.
	byGender := review.Build(idx, "fem", false)
	if byGender.Len() != 2 {
		t.Fatalf("gender filter length = %d, want 2", byGender.Len())
	}

	byCategory := review.Build(idx, "clothing", false)
	if byCategory.Len() != 1 {
		t.Fatalf("category filter length = %d, want 1", byCategory.Len())
	}

	byPart := review.Build(idx, "p02", false)
	if byPart.Len() != 1 {
		t.Fatalf("part filter length = %d, want 1", byPart.Len())
	}

	noMatch := review.Build(idx, "no-such-token", false)
	if noMatch.Len() != 0 {
		t.Fatalf("bogus filter length = %d, want 0", noMatch.Len())
	}
}

func TestBuildMissingOnlyExcludesCompleteIdentities(t *testing.T) {
	idx, _ := seedIndex(t)

	view := review.Build(idx, "", true)
	for _, key := range view.Keys() {
		if key == (parts.Key{Gender: "Female", Category: "AccA", PartNum: "01"}) {
			t.Fatal("complete identity should be excluded by missing-only")
		}
	}
	if view.Len() != 2 {
		t.Fatalf("missing-only view length = %d, want 2", view.Len())
	}

	// Filters combine conjunctively.
	combined := review.Build(idx, "female", true)
	if combined.Len() != 1 {
		t.Fatalf("combined filter length = %d, want 1", combined.Len())
	}
	key, _ := combined.At(0)
	if key.Category != "Clothing" {
		t.Fatalf("unexpected key: %v", key)
	}
}

func TestCursorClampAndLookup(t *testing.T) {
	idx, _ := seedIndex(t)
	view := review.Build(idx, "", false)

	if got := view.Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %d", got)
	}
	if got := view.Clamp(99); got != view.Len()-1 {
		t.Errorf("Clamp(99) = %d", got)
	}

	key, ok := view.At(1)
	if !ok {
		t.Fatal("At(1) should succeed")
	}
	if i, ok := view.IndexOf(key); !ok || i != 1 {
		t.Fatalf("IndexOf(%v) = %d, %v", key, i, ok)
	}
	if _, ok := view.IndexOf(parts.Key{Gender: "Kid", Category: "Tail", PartNum: "99"}); ok {
		t.Fatal("IndexOf should miss for unknown key")
	}

	empty := review.Build(idx, "zz-nothing", false)
	if empty.Clamp(3) != 0 {
		t.Error("empty view clamps to 0")
	}
	if _, ok := empty.At(0); ok {
		t.Error("empty view has no current identity")
	}
}

func TestRoleStatusFourStates(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"SV/Female/SV_Wing_p01.png":    "main",
		"SV/Female/SV_Wing_p01_c.png":  "mask",
		"TV/Female/TV_Wing_p01_c1.png": "orphan mask",
		"TVD/Female/TVD_Wing_p01.png":  "main only",
	})
	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	group := idx.Group(parts.Key{Gender: "Female", Category: "Wing", PartNum: "01"})
	if group == nil {
		t.Fatal("missing group")
	}

	if got := review.StatusFor(group, parts.RoleSV); got != review.MaskAndMain {
		t.Errorf("SV status = %v, want MaskAndMain", got)
	}
	if got := review.StatusFor(group, parts.RoleTV); got != review.MaskOrphan {
		t.Errorf("TV status = %v, want MaskOrphan", got)
	}
	if got := review.StatusFor(group, parts.RoleTVD); got != review.MaskMissing {
		t.Errorf("TVD status = %v, want MaskMissing", got)
	}
	if review.IsMaskOnly(group) {
		t.Error("group with mains is not mask-only")
	}
}

func TestIsMaskOnly(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"TV/Male/TV_Tail_p03_c.png": "only a mask",
	})
	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	group := idx.Group(parts.Key{Gender: "Male", Category: "Tail", PartNum: "03"})
	if group == nil {
		t.Fatal("missing group")
	}
	if !review.IsMaskOnly(group) {
		t.Error("expected mask-only detection")
	}
	if got := review.StatusFor(group, parts.RoleSV); got != review.NoFiles {
		t.Errorf("SV status = %v, want NoFiles", got)
	}
}
