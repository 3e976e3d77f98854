package bloqs

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidConfiguration indicates a resource was defined without a
	// name or an inline payload.
	ErrInvalidConfiguration = errors.New("invalid resource configuration")

	// ErrAssetNotFound indicates a named resource file does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetName indicates a resource name cannot be used as a file name.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidAssetPath indicates the asset directory is missing or unusable.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrInvalidData indicates external content could not be converted into
	// a resource or document body.
	ErrInvalidData = errors.New("invalid data")
)
