package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	// Progress-line assertions match plain text.
	color.NoColor = true
}

// recordingFS wraps OSFS, logs every primitive call and fails the ones
// listed in failOn (keyed by "op:basename").
type recordingFS struct {
	OSFS
	ops    []string
	failOn map[string]error
}

func (r *recordingFS) record(op, path string) error {
	key := op + ":" + filepath.Base(path)
	r.ops = append(r.ops, key)
	return r.failOn[key]
}

func (r *recordingFS) Exists(path string) (bool, error) {
	if err := r.record("exists", path); err != nil {
		return false, err
	}
	return r.OSFS.Exists(path)
}

func (r *recordingFS) RemoveAll(path string) error {
	if err := r.record("remove", path); err != nil {
		return err
	}
	return r.OSFS.RemoveAll(path)
}

func (r *recordingFS) Mkdir(path string, perm fs.FileMode) error {
	if err := r.record("mkdir", path); err != nil {
		return err
	}
	return r.OSFS.Mkdir(path, perm)
}

func (r *recordingFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := r.record("write", path); err != nil {
		return err
	}
	return r.OSFS.WriteFile(path, data, perm)
}

type confirmSpy struct {
	answer   bool
	calls    int
	messages []string
	defaults []bool
}

func (c *confirmSpy) confirm(message string, defaultAnswer bool) bool {
	c.calls++
	c.messages = append(c.messages, message)
	c.defaults = append(c.defaults, defaultAnswer)
	return c.answer
}

type failingIDs struct{ err error }

func (f failingIDs) Generate() (string, error) { return "", f.err }

type constantIDs string

func (c constantIDs) Generate() (string, error) { return string(c), nil }

// snapshotDir returns relative path -> content for every file under dir.
// Directories map to "<dir>".
func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	snap := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			snap[rel] = "<dir>"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return snap
}

// seedExistingWorkspace creates a .reqt directory with stale content.
func seedExistingWorkspace(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, DirName)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"projectTitle":"Old"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Old.reqt.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "notes.txt"), []byte("keep?"), 0o644))
	return dir
}
