package bloqs

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/net/html"
)

// Kind distinguishes the resource families a document can embed.
type Kind int

const (
	// KindScript is an executable script payload.
	KindScript Kind = iota + 1
	// KindStyle is a stylesheet payload.
	KindStyle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Key identifies a dependency. Two resources with equal keys are the same
// dependency regardless of how they were configured; the first one
// registered wins.
type Key struct {
	Kind Kind
	Name string
}

// String returns "kind:name".
func (k Key) String() string {
	return k.Kind.String() + ":" + k.Name
}

// Resource is an asset that can materialize itself as a markup element.
type Resource interface {
	// Key returns the dependency identity.
	Key() Key

	// Materialize builds the element for this resource. The element is
	// appended to parent, or returned as a root element if parent is nil.
	Materialize(env Env, parent *html.Node) (*html.Node, error)
}

// Env carries the settings materialization depends on.
type Env struct {
	// Loader resolves named resources.
	Loader AssetLoader

	// Compress enables script compression. When false no script is
	// compressed, whatever its own setting.
	Compress bool
}

// DefaultEnv returns an Env using embedded assets with compression enabled.
func DefaultEnv() Env {
	return Env{
		Loader:   defaultAssetLoader(),
		Compress: true,
	}
}

// sourceKind tells where a resource payload comes from.
type sourceKind int

const (
	sourceNamed sourceKind = iota + 1
	sourceInline
)

// source is the immutable origin of a resource payload.
type source struct {
	kind   sourceKind
	name   string
	inline string
}

// newSource validates that at least one of name or inline is set.
// An inline payload takes precedence as content; the name, if any,
// still provides the identity.
func newSource(name, inline string) (source, error) {
	switch {
	case inline != "":
		if name == "" {
			name = inlineName(inline)
		}
		return source{kind: sourceInline, name: name, inline: inline}, nil
	case name != "":
		return source{kind: sourceNamed, name: name}, nil
	default:
		return source{}, ErrInvalidConfiguration
	}
}

// inlineNameLen is the number of digest bytes kept in generated names.
const inlineNameLen = 8

// inlineName derives a stable identity for an unnamed inline payload.
func inlineName(payload string) string {
	sum := blake3.Sum256([]byte(payload))
	return "inline-" + hex.EncodeToString(sum[:inlineNameLen])
}

// load returns the payload bytes, reading named sources through the loader.
func (s source) load(loader AssetLoader, ext string) ([]byte, error) {
	if s.kind == sourceInline {
		return []byte(s.inline), nil
	}
	if loader == nil {
		loader = defaultAssetLoader()
	}
	return loader.Load(s.name, ext)
}
