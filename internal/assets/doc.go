// Package assets locates and reads the script and style files embedded into
// generated documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (bootstrap scripts, base style)
//	    └── FilesystemLoader  - loads from one directory on disk
//
// NewLoader picks exactly one of them. There is no fallback between loaders:
// an asset lives in one location, and a missing asset is a configuration error.
//
// # Directory Structure
//
// Assets are stored flat, one file per resource:
//
//	{basePath}/
//	├── {name}.js     # script resources (e.g., block-core.js)
//	└── {name}.css    # style resources (e.g., bloqs.css)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
