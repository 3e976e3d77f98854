package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Interior dots are allowed ("jquery.min"). Returns ErrInvalidAssetName if the
// name is empty, starts with a dot, or contains path separators, NUL or "..".
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") ||
		strings.HasPrefix(name, ".") ||
		strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateExtension accepts only the script and style extensions.
func ValidateExtension(ext string) error {
	switch ext {
	case ScriptExt, StyleExt:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
	}
}

func validate(name, ext string) error {
	if err := ValidateAssetName(name); err != nil {
		return err
	}
	return ValidateExtension(ext)
}
