package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashmind/flashmind-api/internal/domain"
)

// Common request/response structures

// CreateSessionResponse defines the response for session creation.
type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// UploadResponse defines the response for a successful document upload.
type UploadResponse struct {
	FileName string `json:"file_name"`
}

// GenerateFlashcardsRequest defines the payload for the flashcard
// generation endpoint. All fields are optional; zero values request the
// generator's defaults.
type GenerateFlashcardsRequest struct {
	NumFlashcards int    `json:"num_flashcards" validate:"omitempty,min=1,max=20"`
	DetailLevel   string `json:"detail_level"   validate:"omitempty,oneof=basic intermediate detailed"`
	Language      string `json:"language"       validate:"omitempty,max=64"`
}

// FlashcardResponse represents one flashcard in API responses.
type FlashcardResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Emoji    string    `json:"emoji,omitempty"`
}

// FlashcardsResponse defines the response for generation and listing
// endpoints.
type FlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
	Progress   string              `json:"progress,omitempty"`
}

// SubmitAnswerRequest defines the payload for answering the current quiz
// question. Blank answers are rejected by the quiz itself so that
// whitespace-only input gets the same treatment as an empty string.
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitScoreRequest defines the payload for the leaderboard submission
// endpoint.
type SubmitScoreRequest struct {
	Name           string `json:"name"`
	Score          int    `json:"score"           validate:"min=0"`
	TotalQuestions int    `json:"total_questions" validate:"required,min=1"`
}

// LeaderboardEntryResponse represents one leaderboard row.
type LeaderboardEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// LeaderboardResponse defines the response for the leaderboard listing
// endpoint.
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}

func flashcardsToResponse(cards []domain.Flashcard, progress string) FlashcardsResponse {
	out := FlashcardsResponse{
		Flashcards: make([]FlashcardResponse, 0, len(cards)),
		Progress:   progress,
	}
	for _, card := range cards {
		out.Flashcards = append(out.Flashcards, FlashcardResponse{
			ID:       card.ID,
			Question: card.Question,
			Answer:   card.Answer,
			Emoji:    card.Emoji,
		})
	}
	return out
}

func entriesToResponse(entries []domain.LeaderboardEntry) LeaderboardResponse {
	out := LeaderboardResponse{
		Entries: make([]LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		out.Entries = append(out.Entries, LeaderboardEntryResponse{
			ID:             entry.ID,
			Name:           entry.Name,
			Score:          entry.Score,
			TotalQuestions: entry.TotalQuestions,
			CreatedAt:      entry.CreatedAt,
		})
	}
	return out
}
