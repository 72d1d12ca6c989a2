package quiz

import "errors"

// Common error types for the quiz state machine.
var (
	// ErrNoCards indicates that a quiz cannot start without flashcards.
	ErrNoCards = errors.New("cannot start a quiz without flashcards")

	// ErrEmptyAnswer indicates a blank answer submission. The state machine
	// does not change state and no evaluation call is made.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrEvaluationFailed indicates the evaluation service call failed. The
	// question stays active and the user may retry.
	ErrEvaluationFailed = errors.New("failed to evaluate answer")

	// ErrExplanationFailed indicates the explanation service call failed.
	// Score and position are unaffected.
	ErrExplanationFailed = errors.New("failed to get explanation")

	// ErrInvalidState indicates an operation was attempted in a state that
	// does not permit it.
	ErrInvalidState = errors.New("operation not valid in current quiz state")
)
