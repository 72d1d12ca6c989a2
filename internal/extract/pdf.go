package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfMediaType is the only media type the PDF extractor accepts.
const pdfMediaType = "application/pdf"

// Verify interface compliance at compile time
var _ TextExtractor = (*PDFExtractor)(nil)

// PDFExtractor extracts plain text from PDF documents.
type PDFExtractor struct {
	logger *slog.Logger
}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{
		logger: logger.With(slog.String("component", "pdf_extractor")),
	}
}

// CheckMediaType implements TextExtractor. The declared media type must be
// application/pdf; any parameters (e.g. charset) are ignored for the check.
func (e *PDFExtractor) CheckMediaType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != pdfMediaType {
		return fmt.Errorf("%w: got %q, want %q", ErrInvalidFileType, contentType, pdfMediaType)
	}
	return nil
}

// Extract implements TextExtractor.
func (e *PDFExtractor) Extract(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := e.CheckMediaType(contentType); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %v", ErrExtractionFailed, name, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parsing %q: %v", ErrExtractionFailed, name, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting text from %q: %v", ErrExtractionFailed, name, err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return "", fmt.Errorf("%w: reading text from %q: %v", ErrExtractionFailed, name, err)
	}

	text := strings.TrimSpace(sb.String())
	e.logger.DebugContext(ctx, "extracted text from PDF",
		slog.String("file_name", name),
		slog.Int("page_count", reader.NumPage()),
		slog.Int("text_length", len(text)))

	return text, nil
}
