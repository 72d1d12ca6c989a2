// Package extract provides text extraction from uploaded documents.
// It is the boundary between the session pipeline and the document parsing
// library; the pipeline only ever sees plain text or a typed error.
package extract

import (
	"context"
	"errors"
	"io"
)

// Extraction errors
var (
	// ErrInvalidFileType is returned when the uploaded file's declared media
	// type is not one the extractor supports. The check happens before any
	// bytes are read.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrExtractionFailed is returned when the document cannot be parsed.
	ErrExtractionFailed = errors.New("failed to extract text from document")
)

// TextExtractor converts an uploaded document into its concatenated plain text.
type TextExtractor interface {
	// CheckMediaType reports whether the client-declared media type is one
	// the extractor supports. A mismatch fails with ErrInvalidFileType.
	CheckMediaType(contentType string) error

	// Extract reads the document from r and returns its plain text.
	// contentType is the client-declared media type; a mismatch fails with
	// ErrInvalidFileType without touching r.
	Extract(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
