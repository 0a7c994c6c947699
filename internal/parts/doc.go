// Package parts defines the identity model for generator part assets.
//
// A Key names one logical asset slot as (gender, category, part number). A
// PartGroup aggregates every file discovered for one Key across the component
// sub-trees, split into main candidates and mask sheets per component role.
// The Catalog carries the token tables (categories, layered categories,
// genders, image extensions) that classification and scanning operate on, so
// callers can override the defaults from configuration.
package parts
