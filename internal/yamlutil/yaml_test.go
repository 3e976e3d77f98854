package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-bloqs/internal/yamlutil"
)

type testConfig struct {
	Name    string   `yaml:"name"`
	Include []string `yaml:"include"`
	Enabled *bool    `yaml:"enabled"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		opts    []yamlutil.Option
		wantErr error
		check   func(t *testing.T, cfg *testConfig)
	}{
		{
			name: "valid YAML",
			data: []byte("name: report\ninclude: [charts, tables]\nenabled: false"),
			dest: &testConfig{},
			check: func(t *testing.T, cfg *testConfig) {
				if cfg.Name != "report" {
					t.Errorf("Name = %q, want %q", cfg.Name, "report")
				}
				if len(cfg.Include) != 2 || cfg.Include[1] != "tables" {
					t.Errorf("Include = %v", cfg.Include)
				}
				if cfg.Enabled == nil || *cfg.Enabled {
					t.Errorf("Enabled = %v, want pointer to false", cfg.Enabled)
				}
			},
		},
		{
			name: "unknown field accepted when lenient",
			data: []byte("name: a\nextra: 1"),
			dest: &testConfig{},
			check: func(t *testing.T, cfg *testConfig) {
				if cfg.Name != "a" {
					t.Errorf("Name = %q, want %q", cfg.Name, "a")
				}
			},
		},
		{
			name:    "unknown field rejected when strict",
			data:    []byte("name: a\nextra: 1"),
			dest:    &testConfig{},
			opts:    []yamlutil.Option{yamlutil.Strict()},
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "over custom size limit",
			data:    []byte("name: " + strings.Repeat("x", 100)),
			dest:    &testConfig{},
			opts:    []yamlutil.Option{yamlutil.MaxSize(50)},
			wantErr: yamlutil.ErrInputTooLarge,
		},
		{
			name: "non-positive size limit ignored",
			data: []byte("name: ok"),
			dest: &testConfig{},
			opts: []yamlutil.Option{yamlutil.MaxSize(0)},
			check: func(t *testing.T, cfg *testConfig) {
				if cfg.Name != "ok" {
					t.Errorf("Name = %q, want %q", cfg.Name, "ok")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Decode(tt.data, tt.dest, tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest.(*testConfig))
			}
		})
	}
}

func TestDecode_DefaultLimit(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.DefaultMaxSize))
	err := yamlutil.Decode(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Decode() error = %v, want ErrInputTooLarge", err)
	}
}

func TestDecode_ErrorNamesLine(t *testing.T) {
	t.Parallel()

	err := yamlutil.Decode([]byte("name: a\nbogus: 1\n"), &testConfig{}, yamlutil.Strict())
	if err == nil {
		t.Fatal("Decode() expected error")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should quote the offending field, got %q", err.Error())
	}
}
