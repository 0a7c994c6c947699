// Package relocate moves or copies a reviewed identity's files into the
// canonical sorted layout and writes the audit manifest.
//
// One relocation call transfers the operator's chosen main file per
// component role plus every mask sheet the identity owns, into
// <root>/<sort dir>/<gender>/<category>_p<NN>/ with per-role subfolders and
// <role>_MASK folders. The manifest (manifest.json for move, copy_log.json
// for copy) is written only after every transfer succeeded, so a crash
// mid-relocation leaves no manifest that overstates what happened; partial
// transfers must be detected by inspecting the destination tree.
//
// A destination file with the same base name is overwritten, matching the
// original tool; the engine logs a warning naming both paths first. After a
// move the index that produced the group is stale and must be rebuilt by a
// fresh scan before anything else trusts it.
package relocate
