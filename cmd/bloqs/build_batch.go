package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-bloqs/internal/fileutil"
	"github.com/alnah/go-bloqs/internal/pipeline"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DocumentBuilder turns markdown into a complete HTML document.
type DocumentBuilder interface {
	Build(ctx context.Context, w io.Writer, markdown, title string) error
}

// Compile-time interface implementation check.
var _ DocumentBuilder = (*pipeline.Builder)(nil)

// BuildResult holds the outcome of a single build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// buildBatch processes files concurrently with the given number of workers.
// Every document gets its own registry inside builder.Build.
func buildBatch(ctx context.Context, builder DocumentBuilder, files []FileToBuild, workers int, title string, env *Environment) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]BuildResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildFile(ctx, builder, files[idx], title, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildFile processes a single file and returns the result.
// The output file is replaced only once the whole document is built.
func buildFile(ctx context.Context, builder DocumentBuilder, f FileToBuild, title string, env *Environment) BuildResult {
	start := env.Now()
	result := BuildResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) BuildResult {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}
	markdown := string(content)

	if title == "" {
		title = documentTitle(markdown, f.InputPath)
	}

	var buf bytes.Buffer
	if err := builder.Build(ctx, &buf, markdown, title); err != nil {
		return done(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return done(fmt.Errorf("%w: creating output directory: %v", ErrWriteHTML, err))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, buf.Bytes(), filePermissions); err != nil {
		return done(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	return done(nil)
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed builds.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs build results and returns an error wrapping the
// first failure, if any.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	switch {
	case firstErr == nil:
		return nil
	case len(results) == 1:
		return fmt.Errorf("%s: %w", results[0].InputPath, firstErr)
	default:
		return fmt.Errorf("%d build(s) failed: %w", summary.Failed, firstErr)
	}
}

// documentTitle returns the text of the first level-one heading, or the
// file name without extension.
func documentTitle(markdown, path string) string {
	inFence := false
	for line := range strings.Lines(markdown) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "# ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimRight(trimmed[2:], "#"))
		if title != "" {
			return title
		}
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

