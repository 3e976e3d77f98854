package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-bloqs/internal/config"
	"github.com/alnah/go-bloqs/internal/pipeline"
)

// runBuildCmd parses build flags and builds every discovered document.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runBuild(ctx, positional, flags, env)
}

// runBuild orchestrates the build process.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins), then validate the result
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	builder, err := pipeline.NewBuilder(pipeline.BuildOptions{
		Compress:       cfg.Compression(),
		AssetPath:      cfg.Assets.BasePath,
		Scripts:        cfg.Scripts.Include,
		Styles:         cfg.Styles.Include,
		Files:          append(append([]string{}, cfg.Styles.Files...), cfg.Scripts.Files...),
		HighlightStyle: cfg.Highlight.Style,
		Lang:           cfg.Document.Lang,
	})
	if err != nil {
		return err
	}

	// Reject an unusable asset directory once instead of once per file
	if _, err := builder.NewRegistry(); err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := buildBatch(ctx, builder, files, workers, cfg.Document.Title, env)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// mergeFlags merges CLI flags into config. CLI values override config values;
// resource flags add to the configured lists.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	r := flags.resources
	if r.assetPath != "" {
		cfg.Assets.BasePath = r.assetPath
	}
	if r.noCompress {
		off := false
		cfg.Scripts.Compress = &off
	}
	cfg.Scripts.Include = append(cfg.Scripts.Include, r.scripts...)
	cfg.Styles.Include = append(cfg.Styles.Include, r.styles...)
	cfg.Scripts.Files = append(cfg.Scripts.Files, r.inlineScripts...)
	cfg.Styles.Files = append(cfg.Styles.Files, r.inlineStyles...)

	d := flags.document
	if d.title != "" {
		cfg.Document.Title = d.title
	}
	if d.lang != "" {
		cfg.Document.Lang = d.lang
	}
	if d.highlight != "" {
		cfg.Highlight.Style = d.highlight
	}
}

// resolveInputPath returns the positional input or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	default:
		return "", ErrNoInput
	}
}

// resolveOutputDir returns the output flag or the configured default.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
