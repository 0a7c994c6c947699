// Package review projects a scanned index into an ordered, filterable
// sequence of identities for sequential operator review.
//
// A View is a stateless projection: it is rebuilt from scratch whenever the
// index or a filter changes, and the only review state that survives a
// rebuild is the cursor integer held by the caller. RoleStatus classifies
// the mask/main situation per battler role so the presentation layer can
// flag orphan masks distinctly from merely missing ones.
package review
