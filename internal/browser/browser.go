// Package browser opens built documents in headless Chrome and reports which
// load guards were set once the page finished loading. A guard is only set
// after its script body ran, so a present guard proves the script was
// decoded, inflated and evaluated.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-bloqs/internal/fileutil"
)

// DefaultTimeout bounds page load and guard evaluation.
const DefaultTimeout = 30 * time.Second

// Sentinel errors for browser checks.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrEvaluate       = errors.New("failed to evaluate script")
	ErrGuardMissing   = errors.New("load guard not set")
)

// definedJS reports whether a global with the given name exists.
const definedJS = `(name) => typeof globalThis[name] !== 'undefined'`

// prober loads a file and reports, per global name, whether it is defined.
type prober interface {
	Probe(ctx context.Context, filePath string, globals []string) (map[string]bool, error)
	Close() error
}

// Report is the outcome of one check.
type Report struct {
	Path    string
	Present []string
	Missing []string
}

// OK reports whether every guard was set.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Checker verifies load guards in a browser. The browser is started on
// first use and reused until Close. Not safe for concurrent use.
type Checker struct {
	prober prober
}

// NewChecker creates a Checker whose page operations time out after timeout.
// A non-positive timeout selects DefaultTimeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{prober: &rodProber{timeout: timeout}}
}

// CheckFile opens the document at path and looks up every guard.
// Returns ErrGuardMissing, along with the report, if any guard is not set.
func (c *Checker) CheckFile(ctx context.Context, path string, guards []string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}

	found, err := c.prober.Probe(ctx, abs, guards)
	if err != nil {
		return nil, err
	}

	report := &Report{Path: path}
	for _, g := range guards {
		if found[g] {
			report.Present = append(report.Present, g)
		} else {
			report.Missing = append(report.Missing, g)
		}
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %v", ErrGuardMissing, report.Missing)
	}
	return report, nil
}

// CheckHTML writes document to a temporary file and checks it.
func (c *Checker) CheckHTML(ctx context.Context, document string, guards []string) (*Report, error) {
	path, cleanup, err := fileutil.WriteTempFile(document, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.CheckFile(ctx, path, guards)
}

// Close releases browser resources.
func (c *Checker) Close() error {
	return c.prober.Close()
}

// rodProber implements prober using go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodProber struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// ensureBrowser lazily connects to the browser.
func (r *rodProber) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l
	return nil
}

func (r *rodProber) Probe(ctx context.Context, filePath string, globals []string) (map[string]bool, error) {
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filepath.ToSlash(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	found := make(map[string]bool, len(globals))
	for _, name := range slices.Compact(slices.Sorted(slices.Values(globals))) {
		res, err := page.Eval(definedJS, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEvaluate, name, err)
		}
		found[name] = res.Value.Bool()
	}
	return found, nil
}

// Close releases browser resources and kills the launched process.
func (r *rodProber) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// Compile-time interface check.
var _ prober = (*rodProber)(nil)
