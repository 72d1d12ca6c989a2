package api

import (
	"log/slog"
	"net/http"

	"github.com/flashmind/flashmind-api/internal/api/shared"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
	"github.com/flashmind/flashmind-api/internal/quiz"
	"github.com/flashmind/flashmind-api/internal/session"
)

// QuizHandler handles quiz lifecycle and answering.
type QuizHandler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(manager *session.Manager, logger *slog.Logger) *QuizHandler {
	if manager == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("manager cannot be nil for QuizHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}

	return &QuizHandler{
		manager: manager,
		logger:  logger.With(slog.String("component", "quiz_handler")),
	}
}

// quizFromRequest resolves the {id} URL parameter to the session's active
// quiz, writing the error response itself when resolution fails.
func (h *QuizHandler) quizFromRequest(w http.ResponseWriter, r *http.Request) (*quiz.Session, bool) {
	controller, ok := controllerFromRequest(h.manager, w, r)
	if !ok {
		return nil, false
	}

	q, err := controller.Quiz()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}
	return q, true
}

// StartQuiz handles POST /api/sessions/{id}/quiz requests.
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	controller, ok := controllerFromRequest(h.manager, w, r)
	if !ok {
		return
	}

	q, err := controller.StartQuiz()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	snap := q.Snapshot()
	log.Debug("quiz started", slog.Int("total_questions", snap.TotalQuestions))
	shared.RespondWithJSON(w, r, http.StatusCreated, snap)
}

// ExitQuiz handles DELETE /api/sessions/{id}/quiz requests.
func (h *QuizHandler) ExitQuiz(w http.ResponseWriter, r *http.Request) {
	controller, ok := controllerFromRequest(h.manager, w, r)
	if !ok {
		return
	}

	controller.ExitQuiz()
	w.WriteHeader(http.StatusNoContent)
}

// GetQuiz handles GET /api/sessions/{id}/quiz requests with the current
// state snapshot.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizFromRequest(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, q.Snapshot())
}

// SubmitAnswer handles POST /api/sessions/{id}/quiz/answer requests.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizFromRequest(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, err := q.SubmitAnswer(r.Context(), req.Answer); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, q.Snapshot())
}

// RequestExplanation handles POST /api/sessions/{id}/quiz/explanation
// requests.
func (h *QuizHandler) RequestExplanation(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizFromRequest(w, r)
	if !ok {
		return
	}

	if _, err := q.RequestExplanation(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, q.Snapshot())
}

// NextQuestion handles POST /api/sessions/{id}/quiz/next requests.
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizFromRequest(w, r)
	if !ok {
		return
	}

	if err := q.NextQuestion(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, q.Snapshot())
}

// RestartQuiz handles POST /api/sessions/{id}/quiz/restart requests.
func (h *QuizHandler) RestartQuiz(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizFromRequest(w, r)
	if !ok {
		return
	}

	if err := q.Restart(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, q.Snapshot())
}
