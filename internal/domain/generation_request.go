package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DetailLevel controls how much depth the generation service puts into each card.
type DetailLevel string

// Supported detail levels.
const (
	DetailLevelBasic        DetailLevel = "basic"
	DetailLevelIntermediate DetailLevel = "intermediate"
	DetailLevelDetailed     DetailLevel = "detailed"
)

// Defaults applied by NewGenerationRequest when the caller leaves a field unset.
const (
	DefaultNumFlashcards = 5
	MinNumFlashcards     = 1
	MaxNumFlashcards     = 20
	DefaultLanguage      = "English"
)

// GenerationRequest validation errors
var (
	// ErrGenerationTextEmpty is returned when the source text is empty.
	ErrGenerationTextEmpty = errors.New("generation text cannot be empty")

	// ErrNumFlashcardsOutOfRange is returned when the requested card count
	// falls outside [MinNumFlashcards, MaxNumFlashcards].
	ErrNumFlashcardsOutOfRange = fmt.Errorf(
		"number of flashcards must be between %d and %d", MinNumFlashcards, MaxNumFlashcards)

	// ErrUnknownDetailLevel is returned when the detail level is not one of
	// the supported values.
	ErrUnknownDetailLevel = errors.New("unknown detail level")
)

// GenerationRequest describes one request to the generation service.
// It is validated before any network call is dispatched; an invalid request
// never reaches the service.
type GenerationRequest struct {
	Text          string      `json:"text"`
	NumFlashcards int         `json:"num_flashcards"`
	DetailLevel   DetailLevel `json:"detail_level"`
	Language      string      `json:"language"`
}

// NewGenerationRequest builds a request from the given source text, applying
// defaults for unset options and validating the result.
func NewGenerationRequest(text string, numFlashcards int, detail DetailLevel, language string) (*GenerationRequest, error) {
	if numFlashcards == 0 {
		numFlashcards = DefaultNumFlashcards
	}
	if detail == "" {
		detail = DetailLevelIntermediate
	}
	if language == "" {
		language = DefaultLanguage
	}

	req := &GenerationRequest{
		Text:          text,
		NumFlashcards: numFlashcards,
		DetailLevel:   detail,
		Language:      language,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks the request against the contract of the generation service.
func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrGenerationTextEmpty
	}

	if r.NumFlashcards < MinNumFlashcards || r.NumFlashcards > MaxNumFlashcards {
		return ErrNumFlashcardsOutOfRange
	}

	switch r.DetailLevel {
	case DetailLevelBasic, DetailLevelIntermediate, DetailLevelDetailed:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDetailLevel, r.DetailLevel)
	}

	return nil
}
