package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// resourceFlags holds resources registered in every document.
type resourceFlags struct {
	scripts       []string // named scripts
	styles        []string // named styles
	inlineScripts []string // .js files embedded inline
	inlineStyles  []string // .css files embedded inline
	assetPath     string   // override asset directory
	noCompress    bool     // embed scripts as plain text
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title     string
	lang      string
	highlight string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	output    string
	workers   int
	resources resourceFlags
	document  documentFlags
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	quiet   bool
	verbose bool
	guards  []string
	timeout time.Duration
}

// assetsFlags holds flags for the assets command.
type assetsFlags struct {
	export string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addResourceFlags adds resource flags to a FlagSet.
func addResourceFlags(fs *flag.FlagSet, f *resourceFlags) {
	fs.StringArrayVar(&f.scripts, "script", nil, "named script to embed (repeatable)")
	fs.StringArrayVar(&f.styles, "style", nil, "named style to embed (repeatable)")
	fs.StringArrayVar(&f.inlineScripts, "inline-script", nil, ".js file to embed inline (repeatable)")
	fs.StringArrayVar(&f.inlineStyles, "inline-style", nil, ".css file to embed inline (repeatable)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noCompress, "no-compress", false, "embed scripts uncompressed")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.lang, "lang", "", "document language (default: en)")
	fs.StringVar(&f.highlight, "highlight", "", "code highlighting style (default: github)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("build", printBuildUsage, stderr)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addResourceFlags(fs, &f.resources)
	addDocumentFlags(fs, &f.document)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, stderr io.Writer) (*checkFlags, []string, error) {
	fs := newFlagSet("check", printCheckUsage, stderr)
	f := &checkFlags{}

	fs.StringArrayVarP(&f.guards, "guard", "g", nil, "script name whose load guard must be set (repeatable)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "page load timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "list every guard checked")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseAssetsFlags parses assets command flags.
func parseAssetsFlags(args []string, stderr io.Writer) (*assetsFlags, []string, error) {
	fs := newFlagSet("assets", printAssetsUsage, stderr)
	f := &assetsFlags{}

	fs.StringVar(&f.export, "export", "", "copy embedded assets into a directory")
	fs.BoolVar(&f.force, "force", false, "overwrite existing files when exporting")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse, passing flag.ErrHelp through and wrapping other
// failures in ErrUsage.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
