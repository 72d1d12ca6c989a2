// Package quiz implements the quiz state machine: an ordered walk over a
// shuffled subset of flashcards with per-question evaluation, optional
// explanation, and score tracking.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/generation"
)

// State identifies where the session is in the
// active → awaiting-evaluation → showing-result cycle.
type State string

// Session states.
const (
	// StateActive means a question is presented and awaiting the user's answer.
	StateActive State = "active"

	// StateAwaitingEvaluation means an answer is being evaluated by the
	// external service. A second submission in this state is rejected.
	StateAwaitingEvaluation State = "awaiting_evaluation"

	// StateShowingResult means the evaluation result is available; the user
	// may request an explanation or advance to the next question.
	StateShowingResult State = "showing_result"

	// StateFinished means every question in the subset has been answered.
	StateFinished State = "finished"
)

// MaxQuestions is the size cap of the question subset taken from the
// generated flashcard set.
const MaxQuestions = 5

// Session walks a subset of flashcards, tracking position and score.
// All methods are safe for concurrent use; the state machine itself
// serializes overlapping operations by rejecting calls made in the wrong
// state.
type Session struct {
	mu sync.Mutex

	cards []domain.Flashcard
	index int
	score int
	state State

	evaluation  *generation.Evaluation
	explanation string

	evaluator generation.Evaluator
	explainer generation.Explainer
	logger    *slog.Logger
}

// Snapshot is a read-only view of the session for presentation layers.
type Snapshot struct {
	State          State                  `json:"state"`
	QuestionNumber int                    `json:"question_number"` // 1-based; 0 once finished
	TotalQuestions int                    `json:"total_questions"`
	Score          int                    `json:"score"`
	Question       string                 `json:"question,omitempty"`
	CorrectAnswer  string                 `json:"correct_answer,omitempty"`
	Evaluation     *generation.Evaluation `json:"evaluation,omitempty"`
	Explanation    string                 `json:"explanation,omitempty"`
}

// NewSession starts a quiz over a random subset of at most MaxQuestions of
// the given cards. Requires a non-empty card sequence.
func NewSession(
	cards []domain.Flashcard,
	evaluator generation.Evaluator,
	explainer generation.Explainer,
	logger *slog.Logger,
) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	if evaluator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("evaluator cannot be nil")
	}
	if explainer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("explainer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	subset := lo.Samples(cards, MaxQuestions)

	return &Session{
		cards:     subset,
		state:     StateActive,
		evaluator: evaluator,
		explainer: explainer,
		logger:    logger.With(slog.String("component", "quiz_session")),
	}, nil
}

// SubmitAnswer evaluates the user's free-text answer to the current
// question. A blank answer fails with ErrEmptyAnswer and changes nothing.
// While the evaluation call is in flight the session is in
// StateAwaitingEvaluation and rejects further submissions. On evaluation
// failure the question reverts to StateActive so the user can retry.
func (s *Session) SubmitAnswer(ctx context.Context, userText string) (*generation.Evaluation, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, ErrEmptyAnswer
	}

	s.mu.Lock()
	if s.state != StateActive {
		defer s.mu.Unlock()
		return nil, fmt.Errorf("%w: submit requires %q, session is %q", ErrInvalidState, StateActive, s.state)
	}
	card := s.cards[s.index]
	s.state = StateAwaitingEvaluation
	s.mu.Unlock()

	// The canonical answer is passed verbatim even when empty; whether a
	// blank reference answer can be matched is the service's call.
	evaluation, err := s.evaluator.EvaluateAnswer(ctx, card.Question, card.Answer, userText)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateActive
		s.logger.WarnContext(ctx, "answer evaluation failed",
			slog.Int("question_index", s.index),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	if evaluation.IsCorrect {
		s.score++
	}
	s.evaluation = evaluation
	s.state = StateShowingResult

	s.logger.DebugContext(ctx, "answer evaluated",
		slog.Int("question_index", s.index),
		slog.Bool("is_correct", evaluation.IsCorrect),
		slog.Int("score", s.score))

	return evaluation, nil
}

// RequestExplanation fetches a one-sentence explanation for the current
// question. Valid only while showing a result; a failure leaves score and
// position untouched. Repeat calls are permitted and simply refresh the
// stored explanation.
func (s *Session) RequestExplanation(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.state != StateShowingResult {
		defer s.mu.Unlock()
		return "", fmt.Errorf("%w: explanation requires %q, session is %q", ErrInvalidState, StateShowingResult, s.state)
	}
	question := s.cards[s.index].Question
	s.mu.Unlock()

	explanation, err := s.explainer.ExplainQuestion(ctx, question)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.WarnContext(ctx, "explanation failed",
			slog.Int("question_index", s.index),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", ErrExplanationFailed, err)
	}

	s.explanation = explanation.Explanation
	return s.explanation, nil
}

// NextQuestion clears the stored evaluation and explanation and advances to
// the next question, or finishes the quiz on the last one. Valid only while
// showing a result.
func (s *Session) NextQuestion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateShowingResult {
		return fmt.Errorf("%w: next requires %q, session is %q", ErrInvalidState, StateShowingResult, s.state)
	}

	s.evaluation = nil
	s.explanation = ""
	s.index++

	if s.index < len(s.cards) {
		s.state = StateActive
	} else {
		s.state = StateFinished
		s.logger.Debug("quiz finished",
			slog.Int("score", s.score),
			slog.Int("total", len(s.cards)))
	}

	return nil
}

// Restart resets position and score over the same question subset.
// Valid only from the finished state. The subset is deliberately not
// reshuffled, matching the reference behavior.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFinished {
		return fmt.Errorf("%w: restart requires %q, session is %q", ErrInvalidState, StateFinished, s.state)
	}

	s.index = 0
	s.score = 0
	s.evaluation = nil
	s.explanation = ""
	s.state = StateActive

	return nil
}

// Score returns the current score and the total number of questions.
func (s *Session) Score() (score, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, len(s.cards)
}

// Snapshot returns a read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:          s.state,
		TotalQuestions: len(s.cards),
		Score:          s.score,
		Explanation:    s.explanation,
	}

	if s.state != StateFinished {
		snap.QuestionNumber = s.index + 1
		snap.Question = s.cards[s.index].Question
	}

	if s.state == StateShowingResult {
		snap.Evaluation = s.evaluation
		snap.CorrectAnswer = s.cards[s.index].Answer
	}

	return snap
}
