// Package export serializes the current flashcard set into downloadable
// documents. Exporting never mutates session state.
package export

import (
	"errors"
	"fmt"
)

// Format identifies a supported export format.
type Format string

// Supported export formats.
const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ErrUnknownFormat is returned when an export format is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Attachment metadata per format.
const (
	CSVFileName    = "flashcards.csv"
	CSVContentType = "text/csv"
	PDFFileName    = "flashcards.pdf"
	PDFContentType = "application/pdf"
)

// ParseFormat validates a format string from the outside world.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FileName returns the download file name for the format.
func (f Format) FileName() string {
	if f == FormatPDF {
		return PDFFileName
	}
	return CSVFileName
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return PDFContentType
	}
	return CSVContentType
}
