package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-bloqs/internal/browser"
)

// fakeChecker implements GuardChecker for testing.
type fakeChecker struct {
	missing map[string][]string // path -> missing guards
	err     error
	paths   []string
	guards  []string
	timeout time.Duration
	closed  bool
}

func (f *fakeChecker) CheckFile(_ context.Context, path string, guards []string) (*browser.Report, error) {
	f.paths = append(f.paths, path)
	f.guards = guards
	if f.err != nil {
		return nil, f.err
	}

	report := &browser.Report{Path: path}
	missing := f.missing[path]
	for _, g := range guards {
		if contains(missing, g) {
			report.Missing = append(report.Missing, g)
		} else {
			report.Present = append(report.Present, g)
		}
	}
	if !report.OK() {
		return report, browser.ErrGuardMissing
	}
	return report, nil
}

func (f *fakeChecker) Close() error {
	f.closed = true
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// testEnv returns an Environment writing to buffers, with a fake browser.
func testEnv(checker *fakeChecker) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if checker == nil {
		checker = &fakeChecker{}
	}
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
		NewChecker: func(timeout time.Duration) GuardChecker {
			checker.timeout = timeout
			return checker
		},
	}
	return env, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
