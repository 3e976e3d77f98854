package bloqs

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/net/html"

	"github.com/alnah/go-bloqs/internal/codec"
	"github.com/alnah/go-bloqs/internal/markup"
)

// loadGuardPrefix starts every load guard identifier. Documents produced by
// earlier report builders use the same prefix, so it must not change.
const loadGuardPrefix = "_pybloqs_load_sentinel_"

// ScriptDef describes a script resource.
// At least one of Name or Inline must be set.
type ScriptDef struct {
	// Name is the canonical asset name, resolved as {Name}.js.
	Name string

	// Inline is the script source. When set, no file is read; Name (if any)
	// only provides the identity.
	Inline string

	// Uncompressed embeds the payload as-is instead of compressing it.
	Uncompressed bool
}

// Script embeds a JavaScript payload as a <script> element.
// Named scripts are wrapped in a load guard so their body runs once per
// document even if embedded twice.
type Script struct {
	src      source
	compress bool

	mu       sync.Mutex
	rendered string
	done     bool
}

// NewScript creates a Script from def.
// Returns ErrInvalidConfiguration if neither Name nor Inline is set.
func NewScript(def ScriptDef) (*Script, error) {
	src, err := newSource(def.Name, def.Inline)
	if err != nil {
		return nil, fmt.Errorf("%w: script needs a name or an inline source", err)
	}
	return &Script{src: src, compress: !def.Uncompressed}, nil
}

// MustScript is like NewScript but panics on error.
// Intended for package-level declarations.
func MustScript(def ScriptDef) *Script {
	s, err := NewScript(def)
	if err != nil {
		panic(err)
	}
	return s
}

// Key returns the script identity.
func (s *Script) Key() Key {
	return Key{Kind: KindScript, Name: s.src.name}
}

// Name returns the canonical or generated name.
func (s *Script) Name() string {
	return s.src.name
}

// IsInline reports whether the payload was supplied inline.
func (s *Script) IsInline() bool {
	return s.src.kind == sourceInline
}

// LoadGuard returns the guard identifier wrapping a named script.
// Inline scripts have no guard and return "".
func (s *Script) LoadGuard() string {
	if s.IsInline() {
		return ""
	}
	return LoadGuard(s.src.name)
}

// LoadGuard returns the document-scoped flag name for a named script.
// Hyphens and other characters not valid in an identifier become underscores.
func LoadGuard(name string) string {
	var b strings.Builder
	b.Grow(len(loadGuardPrefix) + len(name))
	b.WriteString(loadGuardPrefix)
	for _, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// Render returns the script text embedded in the element.
// The text is composed on first call and reused afterwards, so later calls
// ignore env.
func (s *Script) Render(env Env) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.rendered, nil
	}

	text, err := s.compose(env)
	if err != nil {
		return "", err
	}

	s.rendered = text
	s.done = true
	return text, nil
}

func (s *Script) compose(env Env) (string, error) {
	enabled := s.compress && env.Compress

	var sb strings.Builder

	if s.IsInline() {
		if err := codec.WriteCompressed(&sb, []byte(s.src.inline), enabled); err != nil {
			return "", fmt.Errorf("compressing inline script %q: %w", s.src.name, err)
		}
		return sb.String(), nil
	}

	data, err := s.src.load(env.Loader, scriptExt)
	if err != nil {
		return "", fmt.Errorf("loading script %q: %w", s.src.name, convertAssetError(err))
	}

	guard := LoadGuard(s.src.name)
	sb.WriteString("if(typeof(" + guard + ") == 'undefined'){")
	if err := codec.WriteCompressed(&sb, data, enabled); err != nil {
		return "", fmt.Errorf("compressing script %q: %w", s.src.name, err)
	}
	sb.WriteString("\n" + guard + " = true;}")

	return sb.String(), nil
}

// Materialize returns a <script> element holding the rendered text.
func (s *Script) Materialize(env Env, parent *html.Node) (*html.Node, error) {
	text, err := s.Render(env)
	if err != nil {
		return nil, err
	}

	el := markup.AppendChild(parent, "script")
	markup.SetText(el, text)
	return el, nil
}

// Compile-time interface check.
var _ Resource = (*Script)(nil)
