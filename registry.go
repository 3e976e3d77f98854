package bloqs

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-bloqs/internal/markup"
)

// registryConfig holds options applied by NewRegistry.
type registryConfig struct {
	compress  bool
	assetPath string
	loader    AssetLoader
}

// Option configures a Registry.
type Option func(*registryConfig)

// WithCompression turns script compression on or off for every script the
// registry flushes. Compression is on by default.
func WithCompression(enabled bool) Option {
	return func(c *registryConfig) {
		c.compress = enabled
	}
}

// WithAssetPath reads named resources from dir instead of the embedded
// assets. The directory must also hold the bootstrap scripts.
func WithAssetPath(dir string) Option {
	return func(c *registryConfig) {
		c.assetPath = dir
	}
}

// WithAssetLoader sets a custom loader for named resources.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *registryConfig) {
		c.loader = loader
	}
}

// Registry collects the resources one document needs and writes them out.
// It always starts with the bootstrap scripts, so they precede every
// registered script, compressed or not.
//
// Create one Registry per document build. A Registry is not safe for
// concurrent use.
type Registry struct {
	env       Env
	tracker   *Tracker
	bootstrap map[Key]struct{}
}

// NewRegistry creates a Registry seeded with the core and inflate scripts.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := registryConfig{compress: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader := cfg.loader
	if loader == nil {
		var err error
		loader, err = NewAssetLoader(cfg.assetPath)
		if err != nil {
			return nil, err
		}
	}

	core := MustScript(ScriptDef{Name: CoreScript, Uncompressed: true})
	inflate := MustScript(ScriptDef{Name: InflateScript, Uncompressed: true})

	return &Registry{
		env:     Env{Loader: loader, Compress: cfg.compress},
		tracker: NewTracker(core, inflate),
		bootstrap: map[Key]struct{}{
			core.Key():    {},
			inflate.Key(): {},
		},
	}, nil
}

// Register adds resources the document requires. Resources already
// registered, under the same key, are ignored.
func (r *Registry) Register(resources ...Resource) {
	r.tracker.Add(resources...)
}

// Tracker returns the underlying tracker.
func (r *Registry) Tracker() *Tracker {
	return r.tracker
}

// Env returns the materialization settings.
func (r *Registry) Env() Env {
	return r.env
}

// IsBootstrap reports whether key names one of the seeded bootstrap scripts.
func (r *Registry) IsBootstrap(key Key) bool {
	_, ok := r.bootstrap[key]
	return ok
}

// Flush materializes every tracked resource, in order, and writes the
// compact markup to w. Nothing is written if any resource fails.
func (r *Registry) Flush(w io.Writer) error {
	var b strings.Builder

	for res := range r.tracker.All() {
		el, err := res.Materialize(r.env, nil)
		if err != nil {
			return fmt.Errorf("materializing %s: %w", res.Key(), err)
		}
		if err := markup.Render(&b, el, false); err != nil {
			return fmt.Errorf("rendering %s: %w", res.Key(), err)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing resources: %w", err)
	}
	return nil
}
