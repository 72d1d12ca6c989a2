package generation

import (
	"context"

	"github.com/flashmind/flashmind-api/internal/domain"
)

// Result is the typed outcome of one successful generation call: the ordered
// flashcard sequence plus the service's human-readable progress summary.
// The sequence size is not bound to the requested count; callers must accept
// any non-empty well-formed sequence.
type Result struct {
	Flashcards []domain.Flashcard
	Progress   string
}

// Evaluation is the typed outcome of one answer evaluation: whether the
// user's free-text answer was semantically correct, and a one-sentence
// feedback line.
type Evaluation struct {
	IsCorrect bool
	Feedback  string
}

// Explanation is the typed outcome of one explanation call.
type Explanation struct {
	Explanation string
}

// Generator defines the interface for generating flashcards from text.
// This interface is the boundary between the application core and the
// external AI service; implementations live under internal/platform.
type Generator interface {
	// GenerateFlashcards creates flashcards from the request's source text.
	// The request must already be validated. A response that does not parse
	// against the expected schema is reported via ErrInvalidResponse, never
	// coerced into a partial result.
	GenerateFlashcards(ctx context.Context, req domain.GenerationRequest) (*Result, error)
}

// Evaluator defines the interface for grading a user's free-text answer
// against a flashcard's canonical answer.
type Evaluator interface {
	// EvaluateAnswer compares userAnswer to correctAnswer in the context of
	// question. The comparison is semantic, not literal; the service decides.
	EvaluateAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*Evaluation, error)
}

// Explainer defines the interface for producing a one-sentence explanation
// of a quiz question's answer.
type Explainer interface {
	ExplainQuestion(ctx context.Context, question string) (*Explanation, error)
}
