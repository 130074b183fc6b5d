// Package config loads .yulfmt.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"yulfmt/internal/ast"
	"yulfmt/internal/dialect"
	yerrors "yulfmt/internal/errors"
	"yulfmt/internal/version"
)

// FileName is the name of the configuration file searched for.
const FileName = ".yulfmt.toml"

// ErrVersionConstraint is returned when the running tool does not satisfy required_version.
var ErrVersionConstraint = errors.New("yulfmt version does not satisfy required_version")

// Config holds project settings. Zero values mean "use the default".
type Config struct {
	EVMVersion      string      `toml:"evm_version"`
	Indent          int         `toml:"indent"`
	MaxDiagnostics  int         `toml:"max_diagnostics"`
	Jobs            int         `toml:"jobs"`
	Verify          bool        `toml:"verify"`
	RequiredVersion string      `toml:"required_version"`
	Cache           CacheConfig `toml:"cache"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type CacheConfig struct {
	Enabled *bool  `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		EVMVersion:     dialect.Default,
		Indent:         ast.DefaultIndent,
		MaxDiagnostics: yerrors.DefaultMaxDiagnostics,
	}
}

// CacheEnabled reports whether the on-disk cache should be used. It defaults to true.
func (c Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// Find walks up from startDir looking for FileName.
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
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and reads the config for startDir, falling back to Default.
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads one config file and validates it.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that do not depend on the file format.
func (c Config) Validate() error {
	if _, ok := dialect.ParseVersion(c.EVMVersion); !ok {
		return fmt.Errorf("evm_version: %w: %q", dialect.ErrUnknownVersion, c.EVMVersion)
	}
	if c.Indent < 1 || c.Indent > 16 {
		return fmt.Errorf("indent must be between 1 and 16, got %d", c.Indent)
	}
	if c.MaxDiagnostics < 1 {
		return fmt.Errorf("max_diagnostics must be positive, got %d", c.MaxDiagnostics)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return c.CheckRequiredVersion(version.Version)
}

// CheckRequiredVersion verifies running against the required_version constraint.
func (c Config) CheckRequiredVersion(running string) error {
	if c.RequiredVersion == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.RequiredVersion)
	if err != nil {
		return fmt.Errorf("required_version %q: %w", c.RequiredVersion, err)
	}
	v, err := semver.NewVersion(running)
	if err != nil {
		return fmt.Errorf("running version %q: %w", running, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not match %q", ErrVersionConstraint, running, c.RequiredVersion)
	}
	return nil
}
