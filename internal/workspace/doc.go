// Package workspace creates and reads the .reqt metadata workspace of a
// project.
//
// A workspace is a single .reqt directory under the project root holding
// three JSON artifacts:
//
//	config.reqt.json        where the other two artifacts live
//	itemTemplate.reqt.json  the placeholder record every entry follows
//	<SafeTitle>.reqt.json   the source-of-truth (SOT) record list
//
// Initializer leaves the root either untouched or freshly and completely
// initialized. An existing workspace is only replaced after the injected
// confirmation returns true, and the three files are written in the fixed
// order config, template, SOT. There is no rollback: a failure part way
// through leaves an incomplete .reqt directory which the next confirmed
// run replaces.
package workspace
