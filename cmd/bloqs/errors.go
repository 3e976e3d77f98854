package main

import (
	"errors"

	bloqs "github.com/alnah/go-bloqs"
	"github.com/alnah/go-bloqs/internal/browser"
	"github.com/alnah/go-bloqs/internal/config"
	"github.com/alnah/go-bloqs/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrExportAssets       = errors.New("failed to export assets")
)

// formatError renders err with a hint when one applies.
func formatError(err error) string {
	msg := err.Error()

	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		msg += hints.ForConfigNotFound(notFound.Paths)
	case errors.Is(err, browser.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, browser.ErrPageLoad):
		msg += hints.ForTimeout()
	case errors.Is(err, browser.ErrGuardMissing):
		msg += hints.ForMissingGuard()
	case errors.Is(err, bloqs.ErrInvalidAssetPath):
		msg += hints.ForAssetPath()
	case errors.Is(err, bloqs.ErrAssetNotFound):
		msg += hints.ForAssetNotFound(bloqs.EmbeddedAssets())
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrExportAssets):
		msg += hints.ForOutputDirectory()
	}
	return msg
}
