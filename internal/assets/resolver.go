package assets

import "errors"

// NewLoader returns the single loader serving basePath.
// If basePath is empty, embedded assets are used.
// Otherwise every asset is read from basePath; embedded assets are not consulted.
// Returns ErrInvalidBasePath if basePath is set but invalid.
func NewLoader(basePath string) (AssetLoader, error) {
	if basePath == "" {
		return NewEmbeddedLoader(), nil
	}

	fsLoader, err := NewFilesystemLoader(basePath)
	if err != nil {
		return nil, err
	}
	return fsLoader, nil
}

// IsNotFound reports whether err indicates a missing asset.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAssetNotFound)
}
