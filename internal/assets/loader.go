package assets

// Resource file extensions.
const (
	ScriptExt = ".js"
	StyleExt  = ".css"
)

// AssetLoader defines the contract for resolving and reading resource files.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// Locate returns the location of {name}{ext} without reading it.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Locate(name, ext string) (string, error)

	// Load reads the bytes of {name}{ext}.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Load(name, ext string) ([]byte, error)
}
