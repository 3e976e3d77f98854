package bloqs

import (
	"fmt"
	"sync"

	"golang.org/x/net/html"

	"github.com/alnah/go-bloqs/internal/markup"
)

// StyleDef describes a style resource.
// At least one of Name or Inline must be set.
type StyleDef struct {
	// Name is the canonical asset name, resolved as {Name}.css.
	Name string

	// Inline is the stylesheet text. When set, no file is read.
	Inline string

	// ID is written as the element id attribute when non-empty.
	ID string
}

// Style embeds a stylesheet as a <style type="text/css"> element.
// Styles are never compressed.
type Style struct {
	src source
	id  string

	mu      sync.Mutex
	payload string
	loaded  bool
}

// NewStyle creates a Style from def.
// Returns ErrInvalidConfiguration if neither Name nor Inline is set.
func NewStyle(def StyleDef) (*Style, error) {
	src, err := newSource(def.Name, def.Inline)
	if err != nil {
		return nil, fmt.Errorf("%w: style needs a name or an inline source", err)
	}
	return &Style{src: src, id: def.ID}, nil
}

// MustStyle is like NewStyle but panics on error.
func MustStyle(def StyleDef) *Style {
	s, err := NewStyle(def)
	if err != nil {
		panic(err)
	}
	return s
}

// Key returns the style identity.
func (s *Style) Key() Key {
	return Key{Kind: KindStyle, Name: s.src.name}
}

// Name returns the canonical or generated name.
func (s *Style) Name() string {
	return s.src.name
}

// Payload returns the stylesheet text, reading a named file once.
func (s *Style) Payload(env Env) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.payload, nil
	}

	data, err := s.src.load(env.Loader, styleExt)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", s.src.name, convertAssetError(err))
	}

	s.payload = string(data)
	s.loaded = true
	return s.payload, nil
}

// Materialize returns a <style> element holding the stylesheet verbatim.
func (s *Style) Materialize(env Env, parent *html.Node) (*html.Node, error) {
	payload, err := s.Payload(env)
	if err != nil {
		return nil, err
	}

	el := markup.AppendChild(parent, "style")
	markup.SetAttr(el, "type", "text/css")
	if s.id != "" {
		markup.SetAttr(el, "id", s.id)
	}
	markup.SetText(el, payload)
	return el, nil
}

// Compile-time interface check.
var _ Resource = (*Style)(nil)
