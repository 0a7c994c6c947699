// Package config loads and validates the partsort configuration file.
//
// Configuration is TOML. All values have working defaults, so running with
// no config file at all is supported; the file exists mainly to override the
// catalog token tables (categories, layered categories, genders, image
// extensions), relocate the history database, and tune logging. Load
// resolves an explicit path, then ~/.config/partsort/config.toml, then a
// project-local partsort.toml.
package config
