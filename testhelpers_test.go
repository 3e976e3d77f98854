package bloqs

import (
	"fmt"
	"sync"
)

// mapLoader serves assets from memory and counts reads.
type mapLoader struct {
	mu    sync.Mutex
	files map[string]string
	reads map[string]int
}

func newMapLoader(files map[string]string) *mapLoader {
	return &mapLoader{files: files, reads: make(map[string]int)}
}

func (m *mapLoader) Locate(name, ext string) (string, error) {
	if _, ok := m.files[name+ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name+ext)
	}
	return "mem/" + name + ext, nil
}

func (m *mapLoader) Load(name, ext string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.files[name+ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name+ext)
	}
	m.reads[name+ext]++
	return []byte(content), nil
}

func (m *mapLoader) readCount(file string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[file]
}

// Compile-time interface check.
var _ AssetLoader = (*mapLoader)(nil)
