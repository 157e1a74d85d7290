package errors

import "fmt"

// Common error messages for the reqt CLI.

// WorkspaceIOFailure reports a filesystem failure while initializing the
// workspace. The directory may be left partially written.
func WorkspaceIOFailure(dir string, err error) *CLIError {
	return WrapWithMessage(err, Filesystem,
		fmt.Sprintf("initializing workspace %s failed", dir),
		"Check permissions and free space for "+dir,
		"Inspect "+dir+" before using it: it may be incomplete",
		"Re-run 'reqt init <project name>' and confirm the overwrite to start clean",
	)
}

// IdentityFailure reports that the seed record ID could not be generated.
// config.reqt.json and itemTemplate.reqt.json may already exist.
func IdentityFailure(dir string, err error) *CLIError {
	return WrapWithMessage(err, Identity,
		"generating the seed record ID failed",
		"The source-of-truth file was not written; "+dir+" is incomplete",
		"Re-run 'reqt init <project name>' and confirm the overwrite",
	)
}

// ConfigLoadFailure reports an unreadable or invalid reqt config.
func ConfigLoadFailure(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"loading reqt configuration failed",
		"Check the file for YAML syntax errors",
		"Unset REQT_* environment variables to fall back to defaults",
	)
}

// NoWorkspace reports that no .reqt workspace exists under root.
func NoWorkspace(root string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("no reqt workspace found in %s", root),
		"reqt init <project name>",
		"Initialize the project first: reqt init \"My Project\"",
		"Or point at an existing project with --root",
	)
}

// WorkspaceUnreadable reports a workspace whose artifacts cannot be parsed.
func WorkspaceUnreadable(dir string, err error) *CLIError {
	return WrapWithMessage(err, Filesystem,
		fmt.Sprintf("reading workspace %s failed", dir),
		"Validate the files with: jq . "+dir+"/*.reqt.json",
		"Re-initialize with 'reqt init <project name>' if the workspace is incomplete",
	)
}
