package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-csslink/internal/fileutil"
	"github.com/alnah/go-csslink/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxDirectoryLength = 4096 // PATH_MAX on Linux
	MaxCSSLength       = 255  // NAME_MAX, generous for a relative href
)

// appDir is the directory name under the user config dir.
const appDir = "go-csslink"

// Config holds defaults for a run. Command-line flags take precedence.
type Config struct {
	Directory string `yaml:"directory"` // Root to scan (empty = ".")
	CSS       string `yaml:"css"`       // Stylesheet name (empty = built-in default)
	DryRun    bool   `yaml:"dryRun"`
}

// Validate checks field lengths only. The CSS name is otherwise free text,
// the same as --css.
func (c *Config) Validate() error {
	if err := validateFieldLength("directory", c.Directory, MaxDirectoryLength); err != nil {
		return err
	}
	return validateFieldLength("css", c.CSS, MaxCSSLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; callers fall back to their
// own defaults for unset fields.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name on fsys.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// A relative Directory is resolved against the config file's directory.
func LoadConfig(fsys afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(fsys, nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := afero.ReadFile(fsys, configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Directory != "" && !filepath.IsAbs(cfg.Directory) {
		cfg.Directory = filepath.Join(filepath.Dir(configPath), cfg.Directory)
	}

	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory, then the user config directory, each as .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(fsys afero.Fs, name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(fsys, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
