package pipeline

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	bloqs "github.com/alnah/go-bloqs"
)

// fileDigestLen is the number of path digest bytes kept in file resource names.
const fileDigestLen = 6

// ResourceFromFile reads a user-supplied .js or .css file into an inline
// resource named after the file and its absolute path, so the same file
// given twice embeds once while same-named files in other directories do not
// collide.
// Returns bloqs.ErrInvalidData for other extensions or non UTF-8 content.
func ResourceFromFile(path string) (bloqs.Resource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".js" && ext != ".css" {
		return nil, fmt.Errorf("%w: %s: extension must be .js or .css", bloqs.ErrInvalidData, path)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", bloqs.ErrInvalidData, path)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s: not valid UTF-8", bloqs.ErrInvalidData, path)
	}

	name := fileResourceName(path)

	if ext == ".js" {
		return bloqs.NewScript(bloqs.ScriptDef{Name: name, Inline: string(content)})
	}
	return bloqs.NewStyle(bloqs.StyleDef{Name: name, Inline: string(content)})
}

// fileResourceName returns "file-<base>-<digest>" where digest identifies the
// cleaned absolute path.
func fileResourceName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := blake3.Sum256([]byte(abs))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return "file-" + base + "-" + hex.EncodeToString(sum[:fileDigestLen])
}
