package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bloqs "github.com/alnah/go-bloqs"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

func TestResourceFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	js := writeFile(t, dir, "chart.js", []byte("draw();"))
	css := writeFile(t, dir, "Theme.CSS", []byte("p{}"))
	txt := writeFile(t, dir, "notes.txt", []byte("hello"))
	empty := writeFile(t, dir, "empty.js", nil)
	binary := writeFile(t, dir, "bin.js", []byte{0xff, 0xfe, 0x00})

	tests := []struct {
		name     string
		path     string
		wantKind bloqs.Kind
		wantName string
		wantErr  error
		anyError bool
	}{
		{name: "script file", path: js, wantKind: bloqs.KindScript, wantName: "file-chart-"},
		{name: "style file", path: css, wantKind: bloqs.KindStyle, wantName: "file-Theme-"},
		{name: "unsupported extension", path: txt, wantErr: bloqs.ErrInvalidData},
		{name: "empty file", path: empty, wantErr: bloqs.ErrInvalidData},
		{name: "invalid utf-8", path: binary, wantErr: bloqs.ErrInvalidData},
		{name: "missing file", path: filepath.Join(dir, "missing.js"), anyError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := ResourceFromFile(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResourceFromFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.anyError {
				if err == nil {
					t.Error("ResourceFromFile() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ResourceFromFile() error = %v", err)
			}
			key := r.Key()
			if key.Kind != tt.wantKind || !strings.HasPrefix(key.Name, tt.wantName) {
				t.Errorf("Key() = %v, want kind %v and name prefix %q", key, tt.wantKind, tt.wantName)
			}
		})
	}
}

func TestResourceFromFile_SameBaseName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", sub, err)
		}
	}
	first := writeFile(t, filepath.Join(dir, "a"), "x.js", []byte("var A=1;"))
	second := writeFile(t, filepath.Join(dir, "b"), "x.js", []byte("var B=2;"))

	resA, err := ResourceFromFile(first)
	if err != nil {
		t.Fatalf("ResourceFromFile(a/x.js) error = %v", err)
	}
	resB, err := ResourceFromFile(second)
	if err != nil {
		t.Fatalf("ResourceFromFile(b/x.js) error = %v", err)
	}
	if resA.Key() == resB.Key() {
		t.Fatalf("files in different directories share key %v", resA.Key())
	}

	// Same file reached through a different spelling of its path
	again, err := ResourceFromFile(dir + "/b/../a/x.js")
	if err != nil {
		t.Fatalf("ResourceFromFile(b/../a/x.js) error = %v", err)
	}
	if again.Key() != resA.Key() {
		t.Errorf("same file keys differ: %v vs %v", again.Key(), resA.Key())
	}

	reg, err := bloqs.NewRegistry(bloqs.WithCompression(false))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	reg.Register(resA, resB, again)

	if got := reg.Tracker().Len(); got != 4 {
		t.Errorf("tracked = %d, want 4 (2 bootstrap + 2 files)", got)
	}

	var out strings.Builder
	if err := reg.Flush(&out); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	for _, want := range []string{"var A=1;", "var B=2;"} {
		if strings.Count(out.String(), want) != 1 {
			t.Errorf("output contains %q %d times, want 1", want, strings.Count(out.String(), want))
		}
	}
}
