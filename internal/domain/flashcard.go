package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty or nil.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardQuestionEmpty is returned when a flashcard has no question text.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardAnswerEmpty is returned when a flashcard has no answer text.
	ErrFlashcardAnswerEmpty = errors.New("flashcard answer cannot be empty")
)

// Flashcard is a question/answer pair synthesized from uploaded source text.
// The emoji is an optional single grapheme chosen by the generation service.
// Flashcards are immutable once generated; a new generation replaces the
// whole set rather than mutating individual cards.
type Flashcard struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Emoji    string    `json:"emoji,omitempty"`
}

// NewFlashcard creates a Flashcard with a fresh ID.
// Returns an error if validation fails.
func NewFlashcard(question, answer, emoji string) (*Flashcard, error) {
	card := &Flashcard{
		ID:       uuid.New(),
		Question: question,
		Answer:   answer,
		Emoji:    emoji,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (f *Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}

	if f.Answer == "" {
		return ErrFlashcardAnswerEmpty
	}

	return nil
}
