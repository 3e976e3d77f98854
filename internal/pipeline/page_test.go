package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	bloqs "github.com/alnah/go-bloqs"
)

func newRegistry(t *testing.T, opts ...bloqs.Option) *bloqs.Registry {
	t.Helper()

	reg, err := bloqs.NewRegistry(opts...)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func assemble(t *testing.T, reg *bloqs.Registry, page Page) string {
	t.Helper()

	var b strings.Builder
	if err := Assemble(context.Background(), &b, reg, page); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return b.String()
}

func TestAssemble_Structure(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, bloqs.WithCompression(false))
	got := assemble(t, reg, Page{Title: "Q3 <Results>", Body: "<p>hello</p>\n"})

	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html lang=\"en\">") {
		t.Errorf("unexpected document start: %.60q", got)
	}
	if !strings.Contains(got, "<title>Q3 &lt;Results&gt;</title>") {
		t.Error("title should be escaped")
	}

	headEnd := strings.Index(got, "</head>")
	core := strings.Index(got, "_pybloqs_load_sentinel_block_core")
	body := strings.Index(got, "<p>hello</p>")
	if core == -1 || core > headEnd {
		t.Error("bootstrap scripts should be flushed into <head>")
	}
	if body < headEnd {
		t.Error("body content should follow </head>")
	}
	if strings.Contains(got, "<noscript>") {
		t.Error("noscript notice should be absent with only bootstrap scripts")
	}
}

func TestAssemble_NoscriptWithUserScript(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	reg.Register(bloqs.MustScript(bloqs.ScriptDef{Inline: "draw();"}))

	got := assemble(t, reg, Page{Title: "t", Body: ""})
	if !strings.Contains(got, "<noscript>") {
		t.Error("noscript notice expected when a user script is registered")
	}
}

func TestAssemble_NoscriptIgnoresStyles(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	reg.Register(bloqs.MustStyle(bloqs.StyleDef{Inline: "p{}"}))

	got := assemble(t, reg, Page{Title: "t", Lang: "fr"})
	if strings.Contains(got, "<noscript>") {
		t.Error("styles alone should not trigger the noscript notice")
	}
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Error("lang attribute not applied")
	}
}

func TestAssemble_FlushFailureWritesNothing(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	reg.Register(bloqs.MustScript(bloqs.ScriptDef{Name: "not-shipped"}))

	var b strings.Builder
	err := Assemble(context.Background(), &b, reg, Page{Title: "t"})
	if !errors.Is(err, bloqs.ErrAssetNotFound) {
		t.Errorf("Assemble() error = %v, want ErrAssetNotFound", err)
	}
	if b.Len() != 0 {
		t.Errorf("Assemble() wrote %d bytes on failure", b.Len())
	}
}

func TestAssemble_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := Assemble(ctx, &b, newRegistry(t), Page{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble() error = %v, want context.Canceled", err)
	}
}
