package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-bloqs/internal/browser"
)

// GuardChecker verifies load guards in a built document.
type GuardChecker interface {
	CheckFile(ctx context.Context, path string, guards []string) (*browser.Report, error)
	Close() error
}

// Compile-time interface implementation check.
var _ GuardChecker = (*browser.Checker)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewChecker func(timeout time.Duration) GuardChecker
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewChecker: func(timeout time.Duration) GuardChecker {
			return browser.NewChecker(timeout)
		},
	}
}
