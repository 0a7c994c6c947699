package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"partsort/internal/parts"
	"partsort/internal/relocate"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear or delete the database after a mismatch.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Relocation is one row of the relocation audit trail.
type Relocation struct {
	ID           string
	Mode         string
	Key          parts.Key
	Destination  string
	ManifestPath string
	FileCount    int
	CreatedAt    time.Time
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// RecordRelocation appends one relocation to the audit trail.
func (s *Store) RecordRelocation(ctx context.Context, id string, key parts.Key, manifest *relocate.Manifest) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO relocations (
            id, mode, gender, category, part_num,
            destination, manifest_path, file_count, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		string(manifest.Mode),
		key.Gender,
		key.Category,
		key.PartNum,
		manifest.Destination,
		manifest.Path,
		manifest.TransferCount(),
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert relocation: %w", err)
	}
	return nil
}

// ListRelocations returns the most recent relocations, newest first. A
// limit <= 0 returns everything.
func (s *Store) ListRelocations(ctx context.Context, limit int) ([]Relocation, error) {
	query := `SELECT id, mode, gender, category, part_num, destination, manifest_path, file_count, created_at
        FROM relocations ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query relocations: %w", err)
	}
	defer rows.Close()

	var result []Relocation
	for rows.Next() {
		var rec Relocation
		var createdAt string
		if err := rows.Scan(
			&rec.ID, &rec.Mode,
			&rec.Key.Gender, &rec.Key.Category, &rec.Key.PartNum,
			&rec.Destination, &rec.ManifestPath, &rec.FileCount, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan relocation: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = parsed
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// MarkReviewed records that the operator signed off on the identity without
// relocating it. Marking twice refreshes the timestamp.
func (s *Store) MarkReviewed(ctx context.Context, key parts.Key) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO reviewed (gender, category, part_num, reviewed_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT (gender, category, part_num) DO UPDATE SET reviewed_at = excluded.reviewed_at`,
		key.Gender, key.Category, key.PartNum, timestamp,
	)
	if err != nil {
		return fmt.Errorf("mark reviewed: %w", err)
	}
	return nil
}

// IsReviewed reports whether the identity carries a review mark.
func (s *Store) IsReviewed(ctx context.Context, key parts.Key) (bool, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM reviewed WHERE gender = ? AND category = ? AND part_num = ?`,
		key.Gender, key.Category, key.PartNum,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query reviewed: %w", err)
	}
	return count > 0, nil
}

// ReviewedKeys returns every identity with a review mark.
func (s *Store) ReviewedKeys(ctx context.Context) (map[parts.Key]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT gender, category, part_num FROM reviewed`)
	if err != nil {
		return nil, fmt.Errorf("query reviewed keys: %w", err)
	}
	defer rows.Close()

	result := make(map[parts.Key]struct{})
	for rows.Next() {
		var key parts.Key
		if err := rows.Scan(&key.Gender, &key.Category, &key.PartNum); err != nil {
			return nil, fmt.Errorf("scan reviewed key: %w", err)
		}
		result[key] = struct{}{}
	}
	return result, rows.Err()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}
