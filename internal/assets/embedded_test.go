package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_Load(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		assetName   string
		ext         string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads block-core script",
			assetName:   "block-core",
			ext:         ScriptExt,
			wantContain: "blocksEval",
		},
		{
			name:        "loads jsinflate script",
			assetName:   "jsinflate",
			ext:         ScriptExt,
			wantContain: "RawDeflate",
		},
		{
			name:        "loads base style",
			assetName:   "bloqs",
			ext:         StyleExt,
			wantContain: "font-family",
		},
		{
			name:      "returns ErrAssetNotFound for nonexistent",
			assetName: "nonexistent-asset-xyz",
			ext:       ScriptExt,
			wantErr:   ErrAssetNotFound,
		},
		{
			name:      "returns ErrAssetNotFound for wrong extension",
			assetName: "block-core",
			ext:       StyleExt,
			wantErr:   ErrAssetNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			assetName: "",
			ext:       ScriptExt,
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			assetName: "../secret",
			ext:       ScriptExt,
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidExtension for unknown extension",
			assetName: "block-core",
			ext:       ".html",
			wantErr:   ErrInvalidExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.Load(tt.assetName, tt.ext)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Load(%q, %q) error = %v, want %v", tt.assetName, tt.ext, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load(%q, %q) unexpected error: %v", tt.assetName, tt.ext, err)
			}

			if !strings.Contains(string(got), tt.wantContain) {
				t.Errorf("Load(%q, %q) content should contain %q", tt.assetName, tt.ext, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_Locate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.Locate("block-core", ScriptExt)
	if err != nil {
		t.Fatalf("Locate() unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, "block-core.js") {
		t.Errorf("Locate() = %q, want suffix %q", got, "block-core.js")
	}

	if _, err := loader.Locate("missing", ScriptExt); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Locate(missing) error = %v, want ErrAssetNotFound", err)
	}
}

func TestEmbeddedLoader_List(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().List()
	want := []string{"block-core.js", "bloqs.css", "jsinflate.js"}

	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
