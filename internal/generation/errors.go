package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when card generation fails for any
	// transport or service reason.
	ErrGenerationFailed = errors.New("failed to generate flashcards from text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed
	// against the expected schema or is missing required fields.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEvaluationFailed is returned when an answer evaluation call fails.
	ErrEvaluationFailed = errors.New("failed to evaluate answer")

	// ErrExplanationFailed is returned when an explanation call fails.
	ErrExplanationFailed = errors.New("failed to explain question")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
