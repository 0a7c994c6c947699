// Package history persists the operator's review marks and the relocation
// audit trail in SQLite.
//
// The database is supplemental state: the grouping index is always rebuilt
// from disk and never derived from history. Losing the database loses which
// identities were marked reviewed and the relocation listing, nothing else;
// the per-identity manifests on disk remain authoritative for what moved.
package history
