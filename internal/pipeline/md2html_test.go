package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewGoldmarkConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{"default style", "", nil},
		{"named style", "monokai", nil},
		{"unknown style", "no-such-style-xyz", ErrUnknownHighlightStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewGoldmarkConverter(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewGoldmarkConverter(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGoldmarkConverter(%q) unexpected error: %v", tt.style, err)
			}
			if conv == nil {
				t.Fatal("NewGoldmarkConverter() returned nil")
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv, err := NewGoldmarkConverter("")
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "heading with id",
			input:       "# Quarterly Report",
			wantContain: []string{`<h1 id="quarterly-report">Quarterly Report</h1>`},
		},
		{
			name:        "table",
			input:       "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "highlighted code block",
			input:       "```go\nfunc main() {}\n```",
			wantContain: []string{`class="chroma"`},
		},
		{
			name:       "raw html is dropped",
			input:      "<script>alert(1)</script>",
			wantAbsent: []string{"<script>"},
		},
		{
			name:       "fragment only",
			input:      "text",
			wantAbsent: []string{"<html", "<body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want to contain %q", got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, absent)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	conv, err := NewGoldmarkConverter("")
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = conv.ToHTML(ctx, "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestGoldmarkConverter_HighlightStyle(t *testing.T) {
	t.Parallel()

	conv, err := NewGoldmarkConverter("monokai")
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	style, err := conv.HighlightStyle()
	if err != nil {
		t.Fatalf("HighlightStyle() error = %v", err)
	}
	if style.Name() != "highlight-monokai" {
		t.Errorf("Name() = %q, want %q", style.Name(), "highlight-monokai")
	}

	css, err := style.Payload(bloqsEnv())
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("stylesheet should target .chroma classes, got %.120q", css)
	}
}
