package bloqs

import (
	"errors"

	"github.com/alnah/go-bloqs/internal/assets"
)

// Resource file extensions.
const (
	scriptExt = assets.ScriptExt
	styleExt  = assets.StyleExt
)

// Names of the bootstrap scripts every document starts with.
const (
	// CoreScript defines blocksEval and the block lifecycle helpers.
	CoreScript = "block-core"

	// InflateScript defines RawDeflate.inflate, used to unpack compressed scripts.
	InflateScript = "jsinflate"

	// BaseStyle is the name of the built-in stylesheet.
	BaseStyle = "bloqs"
)

// AssetLoader resolves named resources to files.
// Implementations may load from filesystem, embedded assets, S3, database, etc.
//
// The library provides NewAssetLoader() for directory-based loading.
// Implement this interface for custom backends.
type AssetLoader interface {
	// Locate returns where {name}{ext} lives without reading it.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	Locate(name, ext string) (string, error)

	// Load reads {name}{ext}.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	Load(name, ext string) ([]byte, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, the loader serves the embedded assets.
// If basePath is set, every asset is read from {basePath}/{name}{ext}.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	loader, err := assets.NewLoader(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{loader: loader}, nil
}

// EmbeddedAssets lists the file names shipped with the library.
func EmbeddedAssets() []string {
	return assets.NewEmbeddedLoader().List()
}

// defaultAssetLoader serves embedded assets.
func defaultAssetLoader() AssetLoader {
	return &assetLoaderAdapter{loader: assets.NewEmbeddedLoader()}
}

// assetLoaderAdapter wraps an internal loader to return public errors.
type assetLoaderAdapter struct {
	loader assets.AssetLoader
}

func (a *assetLoaderAdapter) Locate(name, ext string) (string, error) {
	p, err := a.loader.Locate(name, ext)
	if err != nil {
		return "", convertAssetError(err)
	}
	return p, nil
}

func (a *assetLoaderAdapter) Load(name, ext string) ([]byte, error) {
	content, err := a.loader.Load(name, ext)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
// Errors that already carry a public sentinel pass through.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrAssetNotFound),
		errors.Is(err, ErrInvalidAssetName),
		errors.Is(err, ErrInvalidAssetPath):
		return err
	case errors.Is(err, assets.ErrAssetNotFound):
		return wrapError(ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrInvalidExtension):
		return wrapError(ErrInvalidAssetName, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
