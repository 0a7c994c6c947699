package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"partsort/internal/history"
	"partsort/internal/logging"
	"partsort/internal/parts"
	"partsort/internal/relocate"
	"partsort/internal/scanner"
	"partsort/internal/testsupport"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReviewedMarksPersist(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	key := parts.Key{Gender: "Female", Category: "AccA", PartNum: "01"}

	reviewed, err := store.IsReviewed(ctx, key)
	if err != nil {
		t.Fatalf("IsReviewed: %v", err)
	}
	if reviewed {
		t.Fatal("fresh store should have no marks")
	}

	if err := store.MarkReviewed(ctx, key); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	// Marking twice refreshes rather than failing.
	if err := store.MarkReviewed(ctx, key); err != nil {
		t.Fatalf("MarkReviewed again: %v", err)
	}

	reviewed, err = store.IsReviewed(ctx, key)
	if err != nil {
		t.Fatalf("IsReviewed: %v", err)
	}
	if !reviewed {
		t.Fatal("mark should persist")
	}

	keys, err := store.ReviewedKeys(ctx)
	if err != nil {
		t.Fatalf("ReviewedKeys: %v", err)
	}
	if _, ok := keys[key]; !ok || len(keys) != 1 {
		t.Fatalf("reviewed keys = %v", keys)
	}
}

func TestRecordAndListRelocations(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"SV/Female/SV_AccA_p01.png": "sv",
	})
	idx, err := scanner.Scan(root, parts.DefaultCatalog())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	key := parts.Key{Gender: "Female", Category: "AccA", PartNum: "01"}
	group := idx.Group(key)

	engine := relocate.NewEngine(testsupport.NewConfig(t), logging.NewNop())
	selection := relocate.Selection{parts.RoleSV: group.Candidates(parts.RoleSV)[0]}
	manifest, err := engine.Relocate(ctx, root, group, selection, relocate.ModeCopy)
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}

	id := uuid.NewString()
	if err := store.RecordRelocation(ctx, id, key, manifest); err != nil {
		t.Fatalf("RecordRelocation: %v", err)
	}

	records, err := store.ListRelocations(ctx, 10)
	if err != nil {
		t.Fatalf("ListRelocations: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d", len(records))
	}
	rec := records[0]
	if rec.ID != id || rec.Key != key || rec.Mode != "copy" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.FileCount != 1 {
		t.Fatalf("file count = %d", rec.FileCount)
	}
	if rec.ManifestPath != manifest.Path {
		t.Fatalf("manifest path = %q, want %q", rec.ManifestPath, manifest.Path)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("created_at should parse")
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	key := parts.Key{Gender: "Kid", Category: "Tail", PartNum: "07"}
	if err := store.MarkReviewed(context.Background(), key); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	ok, err := reopened.IsReviewed(context.Background(), key)
	if err != nil {
		t.Fatalf("IsReviewed: %v", err)
	}
	if !ok {
		t.Fatal("mark should survive reopen")
	}
}
