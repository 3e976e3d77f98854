package pipeline

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	bloqs "github.com/alnah/go-bloqs"
)

// noscriptNotice is shown when a document relies on scripts beyond the
// bootstrap ones.
const noscriptNotice = "<noscript><p>This document contains interactive content that requires JavaScript.</p></noscript>"

// Page is the content of one output document.
type Page struct {
	Title string
	Lang  string // defaults to "en"
	Body  string // HTML fragment
}

// Assemble writes a complete HTML5 document to w. The registry is flushed
// into <head>, so every registered resource appears before the body.
// Nothing is written if flushing fails.
func Assemble(ctx context.Context, w io.Writer, reg *bloqs.Registry, page Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + html.EscapeString(lang) + `">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + html.EscapeString(page.Title) + "</title>\n")
	if err := reg.Flush(&b); err != nil {
		return fmt.Errorf("flushing resources: %w", err)
	}
	b.WriteString("\n</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(page.Body)
	if needsScripting(reg) {
		b.WriteString(noscriptNotice + "\n")
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// needsScripting reports whether any script beyond the bootstrap set is registered.
func needsScripting(reg *bloqs.Registry) bool {
	if !bloqs.AnyOf[*bloqs.Script](reg.Tracker()) {
		return false
	}
	return reg.Tracker().AnyFunc(func(r bloqs.Resource) bool {
		_, isScript := r.(*bloqs.Script)
		return isScript && !reg.IsBootstrap(r.Key())
	})
}
