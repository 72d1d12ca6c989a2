package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/flashmind/flashmind-api/internal/api"
	apiMiddleware "github.com/flashmind/flashmind-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(httprate.LimitByIP(100, time.Minute))

	sessionHandler := api.NewSessionHandler(app.sessionManager, app.logger)
	quizHandler := api.NewQuizHandler(app.sessionManager, app.logger)
	leaderboardHandler := api.NewLeaderboardHandler(app.leaderboardService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Delete("/", sessionHandler.DeleteSession)
			r.Post("/upload", sessionHandler.Upload)
			r.Post("/flashcards", sessionHandler.GenerateFlashcards)
			r.Get("/flashcards", sessionHandler.ListFlashcards)
			r.Get("/flashcards/export", sessionHandler.ExportFlashcards)
			r.Route("/quiz", func(r chi.Router) {
				r.Post("/", quizHandler.StartQuiz)
				r.Delete("/", quizHandler.ExitQuiz)
				r.Get("/", quizHandler.GetQuiz)
				r.Post("/answer", quizHandler.SubmitAnswer)
				r.Post("/explanation", quizHandler.RequestExplanation)
				r.Post("/next", quizHandler.NextQuestion)
				r.Post("/restart", quizHandler.RestartQuiz)
			})
		})

		r.Post("/leaderboard", leaderboardHandler.SubmitScore)
		r.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
