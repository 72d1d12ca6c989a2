package api

import (
	"errors"
	"net/http"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/export"
	"github.com/flashmind/flashmind-api/internal/extract"
	"github.com/flashmind/flashmind-api/internal/generation"
	"github.com/flashmind/flashmind-api/internal/leaderboard"
	"github.com/flashmind/flashmind-api/internal/quiz"
	"github.com/flashmind/flashmind-api/internal/session"
	"github.com/flashmind/flashmind-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, extract.ErrInvalidFileType),
		errors.Is(err, quiz.ErrEmptyAnswer),
		errors.Is(err, leaderboard.ErrNameRequired),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, store.ErrInvalidEntry),
		errors.Is(err, domain.ErrGenerationTextEmpty),
		errors.Is(err, domain.ErrNumFlashcardsOutOfRange),
		errors.Is(err, domain.ErrUnknownDetailLevel),
		errors.Is(err, domain.ErrEntryNameEmpty),
		errors.Is(err, domain.ErrEntryScoreNegative),
		errors.Is(err, domain.ErrEntryTotalInvalid):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrNoQuiz):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, session.ErrBusy),
		errors.Is(err, quiz.ErrInvalidState):
		return http.StatusConflict

	// Requests that are well-formed but cannot be acted on in the
	// session's current state
	case errors.Is(err, session.ErrNoTextAvailable),
		errors.Is(err, session.ErrNothingToExport),
		errors.Is(err, quiz.ErrNoCards),
		errors.Is(err, extract.ErrExtractionFailed):
		return http.StatusUnprocessableEntity

	// Upstream AI failures
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, quiz.ErrEvaluationFailed),
		errors.Is(err, quiz.ErrExplanationFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, extract.ErrInvalidFileType):
		return "Only PDF files are supported"

	case errors.Is(err, extract.ErrExtractionFailed):
		return "Could not extract text from the uploaded file"

	case errors.Is(err, session.ErrNoTextAvailable):
		return "Upload a document before generating flashcards"

	case errors.Is(err, session.ErrNothingToExport):
		return "There are no flashcards to export"

	case errors.Is(err, session.ErrBusy):
		return "Another operation is already in progress"

	case errors.Is(err, session.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, session.ErrNoQuiz):
		return "No quiz in progress"

	case errors.Is(err, export.ErrUnknownFormat):
		return "Unknown export format"

	case errors.Is(err, domain.ErrNumFlashcardsOutOfRange):
		return "Requested number of flashcards is out of range"

	case errors.Is(err, domain.ErrUnknownDetailLevel):
		return "Unknown detail level"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The document was rejected by the content filter"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The AI service returned an unusable response"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Flashcard generation failed"

	case errors.Is(err, quiz.ErrNoCards):
		return "Generate flashcards before starting a quiz"

	case errors.Is(err, quiz.ErrEmptyAnswer):
		return "An answer is required"

	case errors.Is(err, quiz.ErrInvalidState):
		return "That action is not available right now"

	case errors.Is(err, quiz.ErrEvaluationFailed):
		return "Answer evaluation failed"

	case errors.Is(err, quiz.ErrExplanationFailed):
		return "Could not fetch an explanation"

	case errors.Is(err, leaderboard.ErrNameRequired):
		return "A name is required to submit a score"

	case errors.Is(err, leaderboard.ErrSubmissionFailed):
		return "Score submission failed"

	case errors.Is(err, store.ErrInvalidEntry):
		return "Invalid leaderboard entry"

	default:
		return "An unexpected error occurred"
	}
}
