package api

import (
	"log/slog"
	"net/http"

	"github.com/flashmind/flashmind-api/internal/api/shared"
	"github.com/flashmind/flashmind-api/internal/leaderboard"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
)

// LeaderboardHandler handles score submission and leaderboard reads.
type LeaderboardHandler struct {
	service *leaderboard.Service
	logger  *slog.Logger
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(service *leaderboard.Service, logger *slog.Logger) *LeaderboardHandler {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for LeaderboardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LeaderboardHandler")
	}

	return &LeaderboardHandler{
		service: service,
		logger:  logger.With(slog.String("component", "leaderboard_handler")),
	}
}

// SubmitScore handles POST /api/leaderboard requests.
func (h *LeaderboardHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubmitScoreRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid score submission")
		return
	}

	entry, err := h.service.SubmitScore(r.Context(), req.Name, req.Score, req.TotalQuestions)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("score submitted", slog.String("entry_id", entry.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, LeaderboardEntryResponse{
		ID:             entry.ID,
		Name:           entry.Name,
		Score:          entry.Score,
		TotalQuestions: entry.TotalQuestions,
		CreatedAt:      entry.CreatedAt,
	})
}

// GetLeaderboard handles GET /api/leaderboard requests. A store failure is
// absorbed by the service, so this endpoint always returns 200.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.service.ListTop(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}
