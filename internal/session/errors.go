package session

import "errors"

var (
	// ErrNoTextAvailable indicates flashcard generation was requested before
	// any document text was extracted.
	ErrNoTextAvailable = errors.New("no extracted text available")

	// ErrNothingToExport indicates an export was requested while no
	// flashcards exist.
	ErrNothingToExport = errors.New("no flashcards to export")

	// ErrBusy indicates an operation of the same kind is already in flight
	// for this session.
	ErrBusy = errors.New("operation already in progress")

	// ErrNoQuiz indicates a quiz operation was requested while no quiz is
	// active.
	ErrNoQuiz = errors.New("no active quiz")

	// ErrSessionNotFound indicates the requested session ID is unknown to
	// the manager.
	ErrSessionNotFound = errors.New("session not found")
)
