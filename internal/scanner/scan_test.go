package scanner_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"partsort/internal/parts"
	"partsort/internal/scanner"
	"partsort/internal/testsupport"
)

func TestScanGroupsFilesByIdentity(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"Face/Female/FG_AccA_p01.png":      "face",
		"SV/Female/SV_AccA_p01.png":        "sv",
		"SV/Female/SV_AccA_p01_alt.png":    "sv alt",
		"SV/Female/SV_AccA_p01_c.png":      "sv mask",
		"TV/Female/TV_AccA_p01_c1.png":     "tv mask",
		"Variation/Female/icon_AccA_p01.png": "icon",
	})

	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected a single identity, got %d", idx.Len())
	}

	key := parts.Key{Gender: "Female", Category: "AccA", PartNum: "01"}
	group := idx.Group(key)
	if group == nil {
		t.Fatalf("missing group for %v", key)
	}

	if got := group.CandidateCount(parts.RoleFace); got != 1 {
		t.Errorf("FACE candidates = %d, want 1", got)
	}
	if got := group.CandidateCount(parts.RoleSV); got != 2 {
		t.Errorf("SV candidates = %d, want 2", got)
	}
	if got := group.MaskCount(parts.RoleSV); got != 1 {
		t.Errorf("SV masks = %d, want 1", got)
	}
	if got := group.MaskCount(parts.RoleTV); got != 1 {
		t.Errorf("TV masks = %d, want 1", got)
	}
	if got := group.CandidateCount(parts.RoleTV); got != 0 {
		t.Errorf("TV candidates = %d, want 0", got)
	}
	if got := group.CandidateCount(parts.RoleIcon); got != 1 {
		t.Errorf("ICON candidates = %d, want 1", got)
	}

	// Candidates keep discovery order (directory listing order).
	sv := group.Candidates(parts.RoleSV)
	if sv[0].Name != "SV_AccA_p01.png" || sv[1].Name != "SV_AccA_p01_alt.png" {
		t.Errorf("unexpected SV candidate order: %v", sv)
	}
	wantPath := filepath.Join(root, "SV", "Female", "SV_AccA_p01.png")
	if sv[0].Path != wantPath {
		t.Errorf("candidate path = %q, want %q", sv[0].Path, wantPath)
	}
}

func TestScanSkipsUnclassifiableFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"SV/Female/SV_AccA_p01.png":  "keep",
		"SV/Female/readme.txt":       "not an image",
		"SV/Female/SV_AccA.png":      "no part number",
		"SV/Female/SV_p01.png":       "no category",
		"SV/Female/SV_Mystery_p01.png": "unknown category",
	})

	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected one identity, got %d", idx.Len())
	}
	if idx.FileCount() != 1 {
		t.Fatalf("expected one indexed file, got %d", idx.FileCount())
	}
}

func TestScanMissingRootYieldsEmptyIndex(t *testing.T) {
	idx, err := scanner.Scan(filepath.Join(t.TempDir(), "does-not-exist"), parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d identities", idx.Len())
	}
}

func TestScanMaskOnlyGroupSurvivesPruning(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"TV/Male/TV_Wing_p05_c.png": "orphan mask",
	})

	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	key := parts.Key{Gender: "Male", Category: "Wing", PartNum: "05"}
	group := idx.Group(key)
	if group == nil {
		t.Fatal("mask-only group should be retained")
	}
	if group.HasAnyMain() {
		t.Error("group should have no main candidates")
	}
	if !group.HasAnyMask() {
		t.Error("group should have masks")
	}
}

func TestScanMaskNamingOutsideBattlerRolesStaysMain(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		// A _c suffix under a non-battler sub-tree is an ordinary candidate.
		"Face/Kid/FG_Eyes_p02_c.png": "not a mask here",
	})

	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	key := parts.Key{Gender: "Kid", Category: "Eyes", PartNum: "02"}
	group := idx.Group(key)
	if group == nil {
		t.Fatal("missing group")
	}
	if got := group.CandidateCount(parts.RoleFace); got != 1 {
		t.Errorf("FACE candidates = %d, want 1", got)
	}
	if group.HasAnyMask() {
		t.Error("no mask should be recorded for a face file")
	}
}

func TestScanIsIdempotent(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"SV/Female/SV_AccA_p01.png":   "a",
		"SV/Female/SV_AccA_p01_c.png": "b",
		"TV/Male/TV_Tail_p10.png":     "c",
		"Face/Kid/FG_Nose_p02.png":    "d",
	})
	cat := parts.DefaultCatalog()

	first, err := scanner.Scan(root, cat)
	if err != nil {
		t.Fatalf("first Scan: %v", err)
	}
	second, err := scanner.Scan(root, cat)
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}

	if !reflect.DeepEqual(first.Keys(), second.Keys()) {
		t.Fatalf("key sets differ: %v vs %v", first.Keys(), second.Keys())
	}
	for _, key := range first.Keys() {
		a, b := first.Group(key), second.Group(key)
		for _, role := range parts.Roles() {
			if !reflect.DeepEqual(a.Candidates(role), b.Candidates(role)) {
				t.Errorf("%v %s candidates differ", key, role)
			}
		}
		for _, role := range parts.MaskRoles() {
			if !reflect.DeepEqual(a.Masks(role), b.Masks(role)) {
				t.Errorf("%v %s masks differ", key, role)
			}
		}
	}
}

func TestKeysSortNumerically(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"SV/Female/SV_AccA_p10.png": "",
		"SV/Female/SV_AccA_p2.png":  "",
		"SV/Female/SV_AccA_p1.png":  "",
	})

	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	keys := idx.Keys()
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	want := []string{"01", "02", "10"}
	for i, key := range keys {
		if key.PartNum != want[i] {
			t.Fatalf("keys out of order: %v", keys)
		}
	}
}
