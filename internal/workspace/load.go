package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Workspace is an initialized .reqt directory read back from disk.
type Workspace struct {
	Root    string
	Dir     string
	Config  ConfigRecord
	Records []Item
}

// Load reads the workspace under root: config.reqt.json first, then the
// SOT file it points to. Returns ErrNoWorkspace if the config is missing.
func Load(root string) (*Workspace, error) {
	dir := filepath.Join(root, DirName)
	cfgPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(cfgPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoWorkspace, root)
		}
		return nil, fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(cfgPath), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfgPath, err)
	}

	var cfg ConfigRecord
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", cfgPath, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating %s: %w", cfgPath, err)
	}

	sotPath := filepath.Join(root, filepath.FromSlash(cfg.SotPath))
	data, err := os.ReadFile(sotPath)
	if err != nil {
		return nil, fmt.Errorf("reading source of truth: %w", err)
	}

	var records []Item
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", sotPath, err)
	}

	return &Workspace{
		Root:    root,
		Dir:     dir,
		Config:  cfg,
		Records: records,
	}, nil
}

// Seed returns the project's own entry: the record at outline "0".
func (w *Workspace) Seed() (Item, bool) {
	for _, r := range w.Records {
		if r.Outline == SeedOutline {
			return r, true
		}
	}
	return Item{}, false
}

// SOTPath returns the absolute path of the source-of-truth file.
func (w *Workspace) SOTPath() string {
	return filepath.Join(w.Root, filepath.FromSlash(w.Config.SotPath))
}
