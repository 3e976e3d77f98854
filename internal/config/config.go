package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-bloqs/internal/assets"
	"github.com/alnah/go-bloqs/internal/fileutil"
	"github.com/alnah/go-bloqs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidName     = errors.New("invalid resource name")
)

// Field length limits.
const (
	MaxTitleLength     = 200  // Document title
	MaxLangLength      = 35   // BCP 47 tag, "en" or "zh-Hant-TW"
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxResourceName    = 100  // Script or style name
	MaxStyleNameLength = 50   // Chroma style name
	MaxIncludes        = 64   // Entries per include list
)

// Config holds all configuration for document builds.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Assets    AssetsConfig    `yaml:"assets"`
	Scripts   ScriptsConfig   `yaml:"scripts"`
	Styles    StylesConfig    `yaml:"styles"`
	Highlight HighlightConfig `yaml:"highlight"`
	Document  DocumentConfig  `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ScriptsConfig lists scripts added to every document.
type ScriptsConfig struct {
	Compress *bool    `yaml:"compress"` // nil = compress
	Include  []string `yaml:"include"`  // Named scripts, resolved as {name}.js
	Files    []string `yaml:"files"`    // .js files embedded inline
}

// StylesConfig lists styles added to every document.
type StylesConfig struct {
	Include []string `yaml:"include"` // Named styles, resolved as {name}.css
	Files   []string `yaml:"files"`   // .css files embedded inline
}

// HighlightConfig selects the code highlighting theme.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style (empty = github)
}

// DocumentConfig holds document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Empty = first H1, then file name
	Lang  string `yaml:"lang"`  // Empty = "en"
}

// Compression reports whether scripts should be compressed.
func (c *Config) Compression() bool {
	return c.Scripts.Compress == nil || *c.Scripts.Compress
}

// Validate checks names and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateNames("scripts.include", c.Scripts.Include); err != nil {
		return err
	}
	if err := validateNames("styles.include", c.Styles.Include); err != nil {
		return err
	}
	if err := validatePaths("scripts.files", c.Scripts.Files, ".js"); err != nil {
		return err
	}
	if err := validatePaths("styles.files", c.Styles.Files, ".css"); err != nil {
		return err
	}

	return nil
}

func validateNames(field string, names []string) error {
	if len(names) > MaxIncludes {
		return fmt.Errorf("%s: too many entries (%d, max %d)", field, len(names), MaxIncludes)
	}
	for i, name := range names {
		key := fmt.Sprintf("%s[%d]", field, i)
		if err := validateFieldLength(key, name, MaxResourceName); err != nil {
			return err
		}
		if err := assets.ValidateAssetName(name); err != nil {
			return fmt.Errorf("%w: %s: %q", ErrInvalidName, key, name)
		}
	}
	return nil
}

func validatePaths(field string, paths []string, ext string) error {
	if len(paths) > MaxIncludes {
		return fmt.Errorf("%s: too many entries (%d, max %d)", field, len(paths), MaxIncludes)
	}
	for i, p := range paths {
		key := fmt.Sprintf("%s[%d]", field, i)
		if err := validateFieldLength(key, p, MaxPathLength); err != nil {
			return err
		}
		if !strings.EqualFold(filepath.Ext(p), ext) {
			return fmt.Errorf("%s: %q must have a %s extension", key, p, ext)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration using embedded assets and compression.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Paths: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg, yamlutil.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NotFoundError lists the locations searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Paths, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-bloqs/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-bloqs", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Paths: triedPaths}
}
