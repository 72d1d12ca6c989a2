package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/flashmind/flashmind-api/internal/extract"
	"github.com/flashmind/flashmind-api/internal/generation"
)

// Manager keys session controllers by ID so the HTTP layer can route
// requests to the right pipeline state.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Controller

	extractor extract.TextExtractor
	generator generation.Generator
	evaluator generation.Evaluator
	explainer generation.Explainer
	logger    *slog.Logger
}

// NewManager creates a session manager that builds controllers with the
// given dependencies.
func NewManager(
	extractor extract.TextExtractor,
	generator generation.Generator,
	evaluator generation.Evaluator,
	explainer generation.Explainer,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions:  make(map[uuid.UUID]*Controller),
		extractor: extractor,
		generator: generator,
		evaluator: evaluator,
		explainer: explainer,
		logger:    logger,
	}
}

// Create registers a fresh session and returns its ID and controller.
func (m *Manager) Create() (uuid.UUID, *Controller) {
	id := uuid.New()
	controller := NewController(m.extractor, m.generator, m.evaluator, m.explainer, m.logger)

	m.mu.Lock()
	m.sessions[id] = controller
	m.mu.Unlock()

	return id, controller
}

// Get returns the controller for the given session ID.
func (m *Manager) Get(id uuid.UUID) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	controller, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return controller, nil
}

// Delete removes a session and all of its state.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}
