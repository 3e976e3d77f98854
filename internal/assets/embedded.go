package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed static/*
var static embed.FS

// staticDir is the package-relative directory holding embedded assets.
const staticDir = "static"

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Locate returns the embedded path static/{name}{ext}.
func (e *EmbeddedLoader) Locate(name, ext string) (string, error) {
	if err := validate(name, ext); err != nil {
		return "", err
	}

	p := path.Join(staticDir, name+ext)
	if _, err := fs.Stat(static, p); err != nil {
		return "", fmt.Errorf("%w: %q", ErrAssetNotFound, name+ext)
	}
	return p, nil
}

// Load reads an embedded asset by name and extension.
func (e *EmbeddedLoader) Load(name, ext string) ([]byte, error) {
	p, err := e.Locate(name, ext)
	if err != nil {
		return nil, err
	}

	content, err := static.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// List returns the embedded asset file names in lexical order.
func (e *EmbeddedLoader) List() []string {
	entries, err := static.ReadDir(staticDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
