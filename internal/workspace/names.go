package workspace

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// File and directory names inside a project root.
const (
	DirName          = ".reqt"
	ConfigFileName   = "config.reqt.json"
	TemplateFileName = "itemTemplate.reqt.json"
	recordFileSuffix = ".reqt.json"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// ProjectTitle joins the invocation arguments with single spaces. The result
// is kept verbatim for display and for config.reqt.json.
func ProjectTitle(args []string) string {
	return strings.Join(args, " ")
}

// HasTitle reports whether args name a project. Arguments that join to
// whitespace only do not.
func HasTitle(args []string) bool {
	return strings.TrimSpace(ProjectTitle(args)) != ""
}

// SafeTitle derives the filename component for the project from the same
// arguments ProjectTitle uses.
func SafeTitle(args []string) string {
	return Sanitize(strings.Join(args, " "))
}

// Sanitize replaces every character outside [A-Za-z0-9-_] with "_", one
// underscore per character. Input is NFC-normalized first so composed and
// decomposed spellings of the same title map to the same filename.
func Sanitize(title string) string {
	return unsafeChars.ReplaceAllString(norm.NFC.String(title), "_")
}

// SOTFileName returns the source-of-truth file name for a SafeTitle.
func SOTFileName(safeTitle string) string {
	return safeTitle + recordFileSuffix
}

// relPath returns a workspace file path relative to the project root, always
// slash-separated so config.reqt.json is portable across platforms.
func relPath(name string) string {
	return path.Join(DirName, name)
}
