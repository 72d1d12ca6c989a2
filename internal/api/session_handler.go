package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flashmind/flashmind-api/internal/api/shared"
	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/export"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
	"github.com/flashmind/flashmind-api/internal/session"
)

// maxUploadBytes bounds the size of an uploaded document.
const maxUploadBytes = 20 << 20 // 20 MiB

// SessionHandler handles session lifecycle and the upload → generate →
// export pipeline.
type SessionHandler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(manager *session.Manager, logger *slog.Logger) *SessionHandler {
	if manager == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("manager cannot be nil for SessionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		manager: manager,
		logger:  logger.With(slog.String("component", "session_handler")),
	}
}

// controllerFromRequest resolves the {id} URL parameter to a session
// controller, writing the error response itself when resolution fails.
func (h *SessionHandler) controllerFromRequest(
	w http.ResponseWriter,
	r *http.Request,
) (*session.Controller, bool) {
	return controllerFromRequest(h.manager, w, r)
}

func controllerFromRequest(
	manager *session.Manager,
	w http.ResponseWriter,
	r *http.Request,
) (*session.Controller, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return nil, false
	}

	controller, err := manager.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}
	return controller, true
}

// CreateSession handles POST /api/sessions requests.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, _ := h.manager.Create()
	log.Debug("session created", slog.String("session_id", id.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateSessionResponse{SessionID: id})
}

// DeleteSession handles DELETE /api/sessions/{id} requests.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}

	if err := h.manager.Delete(id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Upload handles POST /api/sessions/{id}/upload requests. The document is
// expected as the "file" part of a multipart form.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	controller, ok := h.controllerFromRequest(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A file upload is required")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if err := controller.Upload(r.Context(), header.Filename, contentType, file); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("document uploaded",
		slog.String("file_name", header.Filename),
		slog.Int64("size_bytes", header.Size))
	shared.RespondWithJSON(w, r, http.StatusOK, UploadResponse{FileName: header.Filename})
}

// GenerateFlashcards handles POST /api/sessions/{id}/flashcards requests.
func (h *SessionHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	controller, ok := h.controllerFromRequest(w, r)
	if !ok {
		return
	}

	// An absent body means "use the defaults". Anything else, including a
	// chunked body without a Content-Length, is decoded and validated.
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid generation options")
		return
	}

	result, err := controller.Generate(
		r.Context(),
		req.NumFlashcards,
		domain.DetailLevel(req.DetailLevel),
		req.Language,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("flashcards generated", slog.Int("count", len(result.Flashcards)))
	shared.RespondWithJSON(w, r, http.StatusOK, flashcardsToResponse(result.Flashcards, result.Progress))
}

// ListFlashcards handles GET /api/sessions/{id}/flashcards requests.
func (h *SessionHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controllerFromRequest(w, r)
	if !ok {
		return
	}

	cards, progress := controller.Flashcards()
	shared.RespondWithJSON(w, r, http.StatusOK, flashcardsToResponse(cards, progress))
}

// ExportFlashcards handles GET /api/sessions/{id}/flashcards/export
// requests. The format query parameter selects csv or pdf; the result is
// served as an attachment.
func (h *SessionHandler) ExportFlashcards(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controllerFromRequest(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	data, err := controller.Export(format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write export response", slog.String("error", err.Error()))
	}
}
