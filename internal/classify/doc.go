// Package classify derives structured identity from generator filenames.
//
// Everything here is a pure function over a parts.Catalog: no I/O, no state.
// Token detection uses separator-anchored substring matching rather than
// strict segment parsing because generator filenames mix "_" and "-"
// delimiters inconsistently; requiring a boundary on both sides of every
// token keeps false positives out. A filename that yields no category or no
// part number is simply not indexed; that silent-skip policy is deliberate
// (best-effort discovery, not validation).
package classify
