// Package main hosts the partsort CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into scans of
// a generator asset tree, sequential review listings, relocation runs with
// audit manifests, review bookkeeping, and configuration scaffolding. It
// centralizes configuration resolution, history access, and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
