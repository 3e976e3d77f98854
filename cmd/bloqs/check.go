package main

import (
	"context"
	"fmt"
	"strings"

	bloqs "github.com/alnah/go-bloqs"
)

// runCheckCmd verifies load guards for each document in a headless browser.
// Stops at the first document whose check fails.
func runCheckCmd(ctx context.Context, args []string, env *Environment) error {
	flags, files, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: check needs at least one HTML file", ErrUsage)
	}

	guards, err := resolveGuards(flags.guards)
	if err != nil {
		return err
	}

	checker := env.NewChecker(flags.timeout)
	defer func() { _ = checker.Close() }()

	for _, path := range files {
		report, err := checker.CheckFile(ctx, path, guards)
		if err != nil {
			if report != nil && !flags.quiet {
				fmt.Fprintf(env.Stderr, "FAILED %s: missing %s\n", path, strings.Join(report.Missing, ", "))
			}
			return fmt.Errorf("checking %s: %w", path, err)
		}

		if flags.quiet {
			continue
		}
		fmt.Fprintf(env.Stdout, "OK %s (%d guards)\n", path, len(report.Present))
		if flags.verbose {
			for _, g := range report.Present {
				fmt.Fprintf(env.Stdout, "  %s\n", g)
			}
		}
	}
	return nil
}

// resolveGuards returns the bootstrap guards followed by one guard per name.
func resolveGuards(names []string) ([]string, error) {
	guards := []string{
		bloqs.LoadGuard(bloqs.CoreScript),
		bloqs.LoadGuard(bloqs.InflateScript),
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: --guard needs a script name", ErrUsage)
		}
		guards = append(guards, bloqs.LoadGuard(name))
	}
	return guards, nil
}
