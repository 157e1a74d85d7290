package workspace

import (
	"errors"
	"fmt"
)

// State is where an Initialize call ended.
type State int

const (
	// StateUsageShown: no project name was given; nothing was touched.
	StateUsageShown State = iota
	// StateAborted: a workspace existed and the overwrite was declined.
	StateAborted
	// StateWorkspaceCreated: a new .reqt directory was made.
	StateWorkspaceCreated
	// StateWorkspaceReset: an existing .reqt directory was removed and recreated.
	StateWorkspaceReset
	// StateArtifactsWritten: all three files were written.
	StateArtifactsWritten
	// StateFailed: an I/O or identity failure stopped the run.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUsageShown:
		return "usage-shown"
	case StateAborted:
		return "aborted"
	case StateWorkspaceCreated:
		return "workspace-created"
	case StateWorkspaceReset:
		return "workspace-reset"
	case StateArtifactsWritten:
		return "artifacts-written"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result describes the outcome of Initialize.
type Result struct {
	State        State
	ProjectTitle string
	SafeTitle    string
	// Dir is the workspace directory. Empty for StateUsageShown.
	Dir string
	// Files lists the artifacts written, in write order.
	Files []string
}

// ErrNoWorkspace is returned by Load when the root has no .reqt workspace.
var ErrNoWorkspace = errors.New("no reqt workspace")

// IOError is a failed filesystem primitive. The workspace may be left
// incomplete.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IdentityError means the seed record ID could not be produced. Config and
// template have already been written when it is returned; the SOT file has
// not.
type IdentityError struct {
	// ID is the rejected value, empty when the generator itself failed.
	ID  string
	Err error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("generating seed record id: %v", e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }
