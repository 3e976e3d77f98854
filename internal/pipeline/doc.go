// Package pipeline turns markdown files into self-contained HTML documents.
//
// It is the document-building side of bloqs used by the CLI:
//   - Markdown to HTML body conversion via Goldmark
//   - Syntax highlighting stylesheet as an inline style resource
//   - Conversion of user-supplied script and style files into resources
//   - Document assembly around a bloqs.Registry flush
//
// Asset deduplication and embedding are handled by the root bloqs package.
// This package only decides what a document registers and where the
// flushed markup goes.
package pipeline
