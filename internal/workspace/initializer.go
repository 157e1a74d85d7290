package workspace

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/reqt-tools/reqt/internal/progress"
)

// Permissions for the workspace directory and its files.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// UsageText is printed when init is invoked without a project name.
const UsageText = `Usage: reqt init <project name>

The project name may be several words; they are joined with spaces.
Example: reqt init My Project   ->  .reqt/My_Project.reqt.json
`

var debugLog = log.New(io.Discard, "[workspace] debug: ", 0)

// SetDebugOutput routes workspace debug traces to w. Pass nil to silence them.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debugLog.SetOutput(w)
}

var (
	cGreen  = color.New(color.FgGreen).SprintFunc()
	cYellow = color.New(color.FgYellow).SprintFunc()
	cDim    = color.New(color.Faint).SprintFunc()
	cBold   = color.New(color.Bold).SprintFunc()
)

// ConfirmFunc asks the user a yes/no question. defaultAnswer is what an
// empty reply means.
type ConfirmFunc func(message string, defaultAnswer bool) bool

// IDGenerator returns an ID unique across the project's record corpus.
type IDGenerator interface {
	Generate() (string, error)
}

// Initializer creates the .reqt workspace under Root.
//
// Initialize calls Confirm at most once, only when a workspace already
// exists, and IDs at most once, after config and template are written.
type Initializer struct {
	Root    string
	FS      FS
	Confirm ConfirmFunc
	IDs     IDGenerator
	// Out receives progress lines. Nil discards them.
	Out     io.Writer
	Symbols progress.Symbols
}

// NewInitializer returns an Initializer on the real filesystem.
func NewInitializer(root string, confirm ConfirmFunc, ids IDGenerator, out io.Writer) *Initializer {
	return &Initializer{
		Root:    root,
		FS:      OSFS{},
		Confirm: confirm,
		IDs:     ids,
		Out:     out,
		Symbols: progress.ASCIISymbols(),
	}
}

// Initialize runs the init protocol for the project named by args.
//
// UsageShown and Aborted are returned with a nil error: neither touches the
// filesystem. Any filesystem failure returns *IOError and an identity
// failure returns *IdentityError, both with State Failed. The Result is
// never nil.
func (in *Initializer) Initialize(args []string) (*Result, error) {
	res := &Result{State: StateUsageShown}
	out := in.out()

	if !HasTitle(args) {
		fmt.Fprint(out, UsageText)
		return res, nil
	}
	res.ProjectTitle = ProjectTitle(args)
	res.SafeTitle = SafeTitle(args)
	res.Dir = filepath.Join(in.Root, DirName)
	debugLog.Printf("project=%q safe=%q dir=%s", res.ProjectTitle, res.SafeTitle, res.Dir)

	exists, err := in.FS.Exists(res.Dir)
	if err != nil {
		return in.fail(res, &IOError{Op: "stat", Path: res.Dir, Err: err})
	}

	if exists {
		if !in.confirm(res.Dir) {
			fmt.Fprintf(out, "%s Aborted: %s left unchanged, no changes made\n", cYellow(in.Symbols.Warning), res.Dir)
			res.State = StateAborted
			return res, nil
		}
		if err := in.FS.RemoveAll(res.Dir); err != nil {
			return in.fail(res, &IOError{Op: "remove", Path: res.Dir, Err: err})
		}
		if err := in.FS.Mkdir(res.Dir, dirPerm); err != nil {
			return in.fail(res, &IOError{Op: "mkdir", Path: res.Dir, Err: err})
		}
		res.State = StateWorkspaceReset
		fmt.Fprintf(out, "%s %s: overwritten %s\n", cGreen(in.Symbols.Checkmark), cBold("Directory"), cDim(res.Dir))
	} else {
		if err := in.FS.Mkdir(res.Dir, dirPerm); err != nil {
			return in.fail(res, &IOError{Op: "mkdir", Path: res.Dir, Err: err})
		}
		res.State = StateWorkspaceCreated
		fmt.Fprintf(out, "%s %s: created %s\n", cGreen(in.Symbols.Checkmark), cBold("Directory"), cDim(res.Dir))
	}

	if err := in.writeArtifacts(res); err != nil {
		return in.fail(res, err)
	}

	res.State = StateArtifactsWritten
	fmt.Fprintf(out, "%s Project %q initialized in %s\n", cGreen(in.Symbols.Checkmark), res.ProjectTitle, res.Dir)
	return res, nil
}

// writeArtifacts writes config, template and SOT in that order. The ID is
// generated only after the first two writes succeed.
func (in *Initializer) writeArtifacts(res *Result) error {
	cfg := NewConfigRecord(res.ProjectTitle, res.SafeTitle)
	if err := in.writeRecord(res, "Config", ConfigFileName, cfg); err != nil {
		return err
	}

	if err := in.writeRecord(res, "Template", TemplateFileName, ItemTemplate()); err != nil {
		return err
	}

	if in.IDs == nil {
		return &IdentityError{Err: fmt.Errorf("no id generator configured")}
	}
	id, err := in.IDs.Generate()
	if err != nil {
		return &IdentityError{Err: err}
	}
	if err := ValidateID(id); err != nil {
		return &IdentityError{ID: id, Err: err}
	}
	debugLog.Printf("seed record id=%s", id)

	sot := []Item{SeedItem(id, res.SafeTitle)}
	return in.writeRecord(res, "Source of truth", SOTFileName(res.SafeTitle), sot)
}

func (in *Initializer) writeRecord(res *Result, label, name string, v any) error {
	path := filepath.Join(res.Dir, name)
	data, err := marshalRecord(v)
	if err != nil {
		return fmt.Errorf("preparing %s: %w", name, err)
	}
	if err := in.FS.WriteFile(path, data, filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	res.Files = append(res.Files, path)
	debugLog.Printf("wrote %s (%d bytes)", path, len(data))
	fmt.Fprintf(in.out(), "%s %s: written %s\n", cGreen(in.Symbols.Checkmark), cBold(label), cDim(path))
	return nil
}

func (in *Initializer) confirm(dir string) bool {
	if in.Confirm == nil {
		return false
	}
	msg := fmt.Sprintf("%s already exists. Overwriting deletes it and everything inside it "+
		"(config, item template and all source-of-truth records). Overwrite?", dir)
	return in.Confirm(msg, false)
}

func (in *Initializer) fail(res *Result, err error) (*Result, error) {
	res.State = StateFailed
	debugLog.Printf("failed after %d file(s): %v", len(res.Files), err)
	return res, err
}

func (in *Initializer) out() io.Writer {
	if in.Out == nil {
		return io.Discard
	}
	return in.Out
}
