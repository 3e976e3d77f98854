package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	bloqs "github.com/alnah/go-bloqs"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Sentinel errors for markdown conversion.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// HTMLConverter abstracts Markdown to HTML body conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// Code blocks are highlighted with CSS classes; HighlightStyle returns the
// matching stylesheet.
type GoldmarkConverter struct {
	md    goldmark.Markdown
	style string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting. An empty style selects DefaultHighlightStyle.
// Returns ErrUnknownHighlightStyle if chroma has no such style.
func NewGoldmarkConverter(style string) (*GoldmarkConverter, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}
	if _, ok := styles.Registry[style]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not used: raw HTML in markdown is dropped.
		),
	)
	return &GoldmarkConverter{md: md, style: style}, nil
}

// ToHTML converts Markdown content to an HTML body fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightStyle returns the chroma stylesheet for the converter's style as
// an inline style resource named highlight-{style}.
func (c *GoldmarkConverter) HighlightStyle() (*bloqs.Style, error) {
	var buf bytes.Buffer

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(c.style)); err != nil {
		return nil, fmt.Errorf("writing highlight stylesheet: %w", err)
	}

	return bloqs.NewStyle(bloqs.StyleDef{
		Name:   "highlight-" + c.style,
		Inline: buf.String(),
		ID:     "highlight",
	})
}
