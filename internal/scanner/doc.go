// Package scanner walks a generator root and builds the grouping index.
//
// A scan visits every component sub-tree x gender directory that exists,
// classifies each allow-listed image file, and routes it into the owning
// identity's candidate or mask list. The resulting Index is derived data:
// it is rebuilt wholesale by every scan and superseded, never mutated, when
// the underlying tree changes. Scanning never writes to disk.
//
// Failure policy: a missing root or sub-tree contributes nothing and is not
// an error, but an unreadable directory fails the scan loudly with the
// offending path. A partial index produced silently could lead an operator
// to relocate the wrong file set.
package scanner
