// Package session owns the per-user study pipeline: uploaded document text,
// the flashcards generated from it, and the currently running quiz. A
// Controller holds that state for one session; a Manager keys controllers by
// session ID for the HTTP layer.
package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/export"
	"github.com/flashmind/flashmind-api/internal/extract"
	"github.com/flashmind/flashmind-api/internal/generation"
	"github.com/flashmind/flashmind-api/internal/quiz"
)

// Controller serializes the upload → generate → study pipeline for a single
// session. At most one extraction and one generation may be in flight at a
// time; overlapping requests of the same kind fail fast with ErrBusy instead
// of queueing.
type Controller struct {
	mu sync.Mutex

	fileName      string
	extractedText string
	flashcards    []domain.Flashcard
	progress      string
	quiz          *quiz.Session

	extracting bool
	generating bool

	extractor extract.TextExtractor
	generator generation.Generator
	evaluator generation.Evaluator
	explainer generation.Explainer
	logger    *slog.Logger
}

// NewController creates a session controller with the given dependencies.
func NewController(
	extractor extract.TextExtractor,
	generator generation.Generator,
	evaluator generation.Evaluator,
	explainer generation.Explainer,
	logger *slog.Logger,
) *Controller {
	if extractor == nil {
		panic("extractor cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if generator == nil {
		panic("generator cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if evaluator == nil {
		panic("evaluator cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if explainer == nil {
		panic("explainer cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		extractor: extractor,
		generator: generator,
		evaluator: evaluator,
		explainer: explainer,
		logger:    logger.With(slog.String("component", "session_controller")),
	}
}

// Upload extracts text from the given document and stores it as the source
// for subsequent generation. A rejected media type leaves all state
// untouched. An accepted upload discards the previous text, flashcards and
// any active quiz before extraction starts, so nothing can generate from a
// stale document while the new one is still being parsed. If extraction
// then fails the session simply stays empty.
func (c *Controller) Upload(ctx context.Context, name, contentType string, r io.Reader) error {
	c.mu.Lock()
	if c.extracting {
		c.mu.Unlock()
		return ErrBusy
	}
	if err := c.extractor.CheckMediaType(contentType); err != nil {
		c.mu.Unlock()
		return err
	}
	c.extracting = true
	c.fileName = ""
	c.extractedText = ""
	c.flashcards = nil
	c.progress = ""
	c.quiz = nil
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.extracting = false
		c.mu.Unlock()
	}()

	text, err := c.extractor.Extract(ctx, name, contentType, r)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		return err
	}

	c.fileName = name
	c.extractedText = text
	return nil
}

// Generate produces flashcards from the previously extracted text. The
// zero values of numFlashcards, detail and language request the generator's
// defaults. Invalid parameters are rejected before anything is discarded;
// once the request is accepted the previous flashcards are dropped, so a
// failed generation leaves the session with no cards.
func (c *Controller) Generate(
	ctx context.Context,
	numFlashcards int,
	detail domain.DetailLevel,
	language string,
) (*generation.Result, error) {
	c.mu.Lock()
	if c.generating {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	if c.extractedText == "" {
		c.mu.Unlock()
		return nil, ErrNoTextAvailable
	}
	// An invalid request must not cost the caller their current cards.
	req, err := domain.NewGenerationRequest(c.extractedText, numFlashcards, detail, language)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.flashcards = nil
	c.progress = ""
	c.quiz = nil
	c.generating = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.generating = false
		c.mu.Unlock()
	}()

	result, err := c.generator.GenerateFlashcards(ctx, *req)
	if err != nil {
		c.logger.WarnContext(ctx, "flashcard generation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	c.mu.Lock()
	c.flashcards = result.Flashcards
	c.progress = result.Progress
	c.mu.Unlock()

	return result, nil
}

// Export renders the current flashcards in the given format. Returns
// ErrNothingToExport when the session has no cards.
func (c *Controller) Export(format export.Format) ([]byte, error) {
	c.mu.Lock()
	cards := c.flashcards
	c.mu.Unlock()

	if len(cards) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(&buf, cards)
	case export.FormatPDF:
		err = export.WritePDF(&buf, cards)
	default:
		return nil, export.ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", format, err)
	}
	return buf.Bytes(), nil
}

// StartQuiz begins a new quiz over a random subset of the current
// flashcards, replacing any quiz already in progress.
func (c *Controller) StartQuiz() (*quiz.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, err := quiz.NewSession(c.flashcards, c.evaluator, c.explainer, c.logger)
	if err != nil {
		return nil, err
	}
	c.quiz = q
	return q, nil
}

// Quiz returns the quiz in progress, or ErrNoQuiz when none is active.
func (c *Controller) Quiz() (*quiz.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quiz == nil {
		return nil, ErrNoQuiz
	}
	return c.quiz, nil
}

// ExitQuiz discards the quiz in progress. Exiting with no active quiz is a
// no-op.
func (c *Controller) ExitQuiz() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz = nil
}

// FileName returns the name of the currently uploaded document, if any.
func (c *Controller) FileName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fileName
}

// HasText reports whether extracted text is available for generation.
func (c *Controller) HasText() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.extractedText != ""
}

// Flashcards returns a copy of the current flashcards and the progress
// message from the generation that produced them.
func (c *Controller) Flashcards() ([]domain.Flashcard, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cards := make([]domain.Flashcard, len(c.flashcards))
	copy(cards, c.flashcards)
	return cards, c.progress
}
