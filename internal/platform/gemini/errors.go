package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptySourceText is returned when the generation source text is empty.
	ErrEmptySourceText = errors.New("source text cannot be empty")

	// ErrEmptyQuestion is returned when an evaluation or explanation call is
	// attempted without a question.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)
