package workspace

import (
	"errors"
	"io/fs"
	"os"
)

// FS is the set of filesystem primitives the Initializer needs.
type FS interface {
	Exists(path string) (bool, error)
	RemoveAll(path string) error
	Mkdir(path string, perm fs.FileMode) error
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// OSFS implements FS on the real filesystem.
type OSFS struct{}

// Exists reports whether path exists. A stat failure other than "not
// exist" is returned as an error rather than treated as absence.
func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (OSFS) RemoveAll(path string) error { return os.RemoveAll(path) }

// Mkdir creates path only. A missing parent is an error, so nothing is
// ever created above the workspace directory.
func (OSFS) Mkdir(path string, perm fs.FileMode) error { return os.Mkdir(path, perm) }

// WriteFile truncates and fully rewrites path.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}
