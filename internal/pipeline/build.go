package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	bloqs "github.com/alnah/go-bloqs"
)

// BuildOptions configures a Builder.
type BuildOptions struct {
	Compress       bool
	AssetPath      string   // empty = embedded assets
	Scripts        []string // named scripts registered in every document
	Styles         []string // named styles registered in every document
	Files          []string // .js/.css files embedded inline in every document
	HighlightStyle string   // chroma style name, empty = DefaultHighlightStyle
	Lang           string   // document language, empty = "en"
}

// Builder produces documents sharing one set of resources. Each Build uses
// a fresh Registry, so concurrent builds do not share dependency state.
type Builder struct {
	opts      BuildOptions
	converter HTMLConverter
	highlight bloqs.Resource
	resources []bloqs.Resource
}

// NewBuilder validates opts and prepares the shared resources.
func NewBuilder(opts BuildOptions) (*Builder, error) {
	conv, err := NewGoldmarkConverter(opts.HighlightStyle)
	if err != nil {
		return nil, err
	}

	highlight, err := conv.HighlightStyle()
	if err != nil {
		return nil, err
	}

	var resources []bloqs.Resource
	for _, name := range opts.Styles {
		s, err := bloqs.NewStyle(bloqs.StyleDef{Name: name})
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		resources = append(resources, s)
	}
	for _, name := range opts.Scripts {
		s, err := bloqs.NewScript(bloqs.ScriptDef{Name: name})
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", name, err)
		}
		resources = append(resources, s)
	}
	for _, path := range opts.Files {
		r, err := ResourceFromFile(path)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}

	return &Builder{
		opts:      opts,
		converter: conv,
		highlight: highlight,
		resources: resources,
	}, nil
}

// NewRegistry returns a registry configured from the builder options.
func (b *Builder) NewRegistry() (*bloqs.Registry, error) {
	return bloqs.NewRegistry(
		bloqs.WithCompression(b.opts.Compress),
		bloqs.WithAssetPath(b.opts.AssetPath),
	)
}

// Build converts markdown and writes the assembled document to w.
// The highlight stylesheet is registered only if the body has highlighted code.
func (b *Builder) Build(ctx context.Context, w io.Writer, markdown, title string) error {
	body, err := b.converter.ToHTML(ctx, markdown)
	if err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	reg, err := b.NewRegistry()
	if err != nil {
		return err
	}

	reg.Register(b.resources...)
	if strings.Contains(body, `class="chroma"`) {
		reg.Register(b.highlight)
	}

	return Assemble(ctx, w, reg, Page{Title: title, Lang: b.opts.Lang, Body: body})
}
