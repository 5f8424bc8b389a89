// Package config loads asmir.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"asmir/internal/dialect"
	"asmir/internal/emit"
)

// FileName is the project file searched for upward from the working directory.
const FileName = "asmir.toml"

// Manifest is a loaded project file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors asmir.toml.
type Config struct {
	Emit    EmitConfig    `toml:"emit"`
	Program ProgramConfig `toml:"program"`
}

// EmitConfig is the [emit] table.
type EmitConfig struct {
	Dialect string `toml:"dialect"`
	Out     string `toml:"out"`
	Format  string `toml:"format"`
}

// ProgramConfig is the [program] table.
type ProgramConfig struct {
	Entry   string `toml:"entry"`
	Message string `toml:"message"`
	Newline bool   `toml:"newline"`
}

// Default is the configuration used without a project file.
func Default() Config {
	return Config{
		Emit: EmitConfig{Dialect: dialect.ATT.String(), Format: emit.EncodingText.String()},
	}
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads the nearest project file. ok is false when none
// exists; the returned manifest then holds Default().
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load reads and validates the project file at path.
func Load(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("emit", "dialect") {
		if _, err := dialect.ParseList(cfg.Emit.Dialect); err != nil {
			return nil, fmt.Errorf("%s: [emit].dialect: %w", path, err)
		}
	}
	if meta.IsDefined("emit", "format") {
		if _, err := emit.ParseEncoding(cfg.Emit.Format); err != nil {
			return nil, fmt.Errorf("%s: [emit].format: %w", path, err)
		}
	}
	if meta.IsDefined("program", "entry") && strings.TrimSpace(cfg.Program.Entry) == "" {
		return nil, fmt.Errorf("%s: [program].entry is empty", path)
	}
	root := filepath.Dir(path)
	if cfg.Emit.Out != "" && !filepath.IsAbs(cfg.Emit.Out) {
		cfg.Emit.Out = filepath.Join(root, filepath.FromSlash(cfg.Emit.Out))
	}
	return &Manifest{Path: path, Root: root, Config: cfg}, nil
}
