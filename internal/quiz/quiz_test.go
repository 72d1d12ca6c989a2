package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/generation"
	"github.com/flashmind/flashmind-api/internal/quiz"
)

// MockEvaluator is a mock implementation of the generation.Evaluator interface
type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) EvaluateAnswer(
	ctx context.Context,
	question, correctAnswer, userAnswer string,
) (*generation.Evaluation, error) {
	args := m.Called(ctx, question, correctAnswer, userAnswer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.Evaluation), args.Error(1)
}

// MockExplainer is a mock implementation of the generation.Explainer interface
type MockExplainer struct {
	mock.Mock
}

func (m *MockExplainer) ExplainQuestion(
	ctx context.Context,
	question string,
) (*generation.Explanation, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.Explanation), args.Error(1)
}

// makeCards builds n distinct flashcards for tests.
func makeCards(n int) []domain.Flashcard {
	cards := make([]domain.Flashcard, n)
	for i := range cards {
		cards[i] = domain.Flashcard{
			ID:       uuid.New(),
			Question: "Q" + string(rune('A'+i)),
			Answer:   "A" + string(rune('A'+i)),
		}
	}
	return cards
}

func newSession(t *testing.T, cards []domain.Flashcard, ev *MockEvaluator, ex *MockExplainer) *quiz.Session {
	t.Helper()
	s, err := quiz.NewSession(cards, ev, ex, nil)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("requires cards", func(t *testing.T) {
		t.Parallel()

		_, err := quiz.NewSession(nil, &MockEvaluator{}, &MockExplainer{}, nil)
		assert.ErrorIs(t, err, quiz.ErrNoCards)
	})

	t.Run("caps the subset at MaxQuestions", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, makeCards(12), &MockEvaluator{}, &MockExplainer{})
		snap := s.Snapshot()
		assert.Equal(t, quiz.MaxQuestions, snap.TotalQuestions)
		assert.Equal(t, quiz.StateActive, snap.State)
		assert.Equal(t, 1, snap.QuestionNumber)
		assert.Zero(t, snap.Score)
	})

	t.Run("takes all cards when fewer than the cap", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, makeCards(2), &MockEvaluator{}, &MockExplainer{})
		assert.Equal(t, 2, s.Snapshot().TotalQuestions)
	})
}

func TestSubmitAnswer(t *testing.T) {
	t.Parallel()

	t.Run("blank answer is rejected without a service call", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		s := newSession(t, makeCards(1), evaluator, &MockExplainer{})

		_, err := s.SubmitAnswer(context.Background(), "   ")
		assert.ErrorIs(t, err, quiz.ErrEmptyAnswer)
		assert.Equal(t, quiz.StateActive, s.Snapshot().State)
		evaluator.AssertNotCalled(t, "EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("correct answer increments score by exactly one", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, "light into energy").
			Return(&generation.Evaluation{IsCorrect: true, Feedback: "Close enough."}, nil)

		s := newSession(t, makeCards(1), evaluator, &MockExplainer{})
		eval, err := s.SubmitAnswer(context.Background(), "light into energy")

		require.NoError(t, err)
		assert.True(t, eval.IsCorrect)

		snap := s.Snapshot()
		assert.Equal(t, quiz.StateShowingResult, snap.State)
		assert.Equal(t, 1, snap.Score)
		require.NotNil(t, snap.Evaluation)
		assert.Equal(t, "Close enough.", snap.Evaluation.Feedback)
		assert.NotEmpty(t, snap.CorrectAnswer)
	})

	t.Run("incorrect answer leaves score unchanged", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&generation.Evaluation{IsCorrect: false, Feedback: "Not quite."}, nil)

		s := newSession(t, makeCards(1), evaluator, &MockExplainer{})
		_, err := s.SubmitAnswer(context.Background(), "wrong")

		require.NoError(t, err)
		snap := s.Snapshot()
		assert.Zero(t, snap.Score)
		assert.Equal(t, quiz.StateShowingResult, snap.State)
	})

	t.Run("evaluation failure reverts to active at the same question", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("transport error")).Once()
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&generation.Evaluation{IsCorrect: true, Feedback: "Yes."}, nil).Once()

		s := newSession(t, makeCards(1), evaluator, &MockExplainer{})

		_, err := s.SubmitAnswer(context.Background(), "first try")
		assert.ErrorIs(t, err, quiz.ErrEvaluationFailed)

		snap := s.Snapshot()
		assert.Equal(t, quiz.StateActive, snap.State)
		assert.Zero(t, snap.Score)
		assert.Equal(t, 1, snap.QuestionNumber)

		// The user may retry after a failure
		_, err = s.SubmitAnswer(context.Background(), "second try")
		require.NoError(t, err)
		assert.Equal(t, 1, s.Snapshot().Score)
	})

	t.Run("rejected while showing a result", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&generation.Evaluation{IsCorrect: true, Feedback: "Yes."}, nil).Once()

		s := newSession(t, makeCards(1), evaluator, &MockExplainer{})
		_, err := s.SubmitAnswer(context.Background(), "answer")
		require.NoError(t, err)

		_, err = s.SubmitAnswer(context.Background(), "again")
		assert.ErrorIs(t, err, quiz.ErrInvalidState)
	})
}

func TestRequestExplanation(t *testing.T) {
	t.Parallel()

	t.Run("only valid while showing a result", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, makeCards(1), &MockEvaluator{}, &MockExplainer{})
		_, err := s.RequestExplanation(context.Background())
		assert.ErrorIs(t, err, quiz.ErrInvalidState)
	})

	t.Run("stores the explanation", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&generation.Evaluation{IsCorrect: false, Feedback: "No."}, nil)
		explainer := &MockExplainer{}
		explainer.On("ExplainQuestion", mock.Anything, mock.Anything).
			Return(&generation.Explanation{Explanation: "Because chlorophyll absorbs light."}, nil)

		s := newSession(t, makeCards(1), evaluator, explainer)
		_, err := s.SubmitAnswer(context.Background(), "answer")
		require.NoError(t, err)

		explanation, err := s.RequestExplanation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Because chlorophyll absorbs light.", explanation)
		assert.Equal(t, explanation, s.Snapshot().Explanation)
	})

	t.Run("failure leaves score and position untouched", func(t *testing.T) {
		t.Parallel()

		evaluator := &MockEvaluator{}
		evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&generation.Evaluation{IsCorrect: true, Feedback: "Yes."}, nil)
		explainer := &MockExplainer{}
		explainer.On("ExplainQuestion", mock.Anything, mock.Anything).
			Return(nil, errors.New("transport error"))

		s := newSession(t, makeCards(1), evaluator, explainer)
		_, err := s.SubmitAnswer(context.Background(), "answer")
		require.NoError(t, err)

		_, err = s.RequestExplanation(context.Background())
		assert.ErrorIs(t, err, quiz.ErrExplanationFailed)

		snap := s.Snapshot()
		assert.Equal(t, quiz.StateShowingResult, snap.State)
		assert.Equal(t, 1, snap.Score)
		assert.Equal(t, 1, snap.QuestionNumber)
	})
}

func TestNextQuestionAndFinish(t *testing.T) {
	t.Parallel()

	evaluator := &MockEvaluator{}
	evaluator.On("EvaluateAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&generation.Evaluation{IsCorrect: true, Feedback: "Yes."}, nil)

	s := newSession(t, makeCards(2), evaluator, &MockExplainer{})

	// NextQuestion is invalid while a question is still active
	err := s.NextQuestion()
	assert.ErrorIs(t, err, quiz.ErrInvalidState)

	// First question
	_, err = s.SubmitAnswer(context.Background(), "answer")
	require.NoError(t, err)
	require.NoError(t, s.NextQuestion())

	snap := s.Snapshot()
	assert.Equal(t, quiz.StateActive, snap.State)
	assert.Equal(t, 2, snap.QuestionNumber)
	assert.Nil(t, snap.Evaluation, "advancing clears the stored evaluation")
	assert.Empty(t, snap.Explanation, "advancing clears the stored explanation")

	// Last question: advancing transitions to Finished with score unchanged
	_, err = s.SubmitAnswer(context.Background(), "answer")
	require.NoError(t, err)
	require.NoError(t, s.NextQuestion())

	snap = s.Snapshot()
	assert.Equal(t, quiz.StateFinished, snap.State)
	assert.Equal(t, 2, snap.Score)
	assert.Empty(t, snap.Question)

	score, total := s.Score()
	assert.Equal(t, 2, score)
	assert.Equal(t, 2, total)
}

func TestRestart(t *testing.T) {
	t.Parallel()

	evaluator := &MockEvaluator{}
	evaluator.On("EvaluateAnswer", mock.Anything, "QA", "AA", mock.Anything).
		Return(&generation.Evaluation{IsCorrect: true, Feedback: "Yes."}, nil)

	s := newSession(t, makeCards(1), evaluator, &MockExplainer{})

	// Restart is only valid from Finished
	assert.ErrorIs(t, s.Restart(), quiz.ErrInvalidState)

	_, err := s.SubmitAnswer(context.Background(), "answer")
	require.NoError(t, err)
	require.NoError(t, s.NextQuestion())
	require.Equal(t, quiz.StateFinished, s.Snapshot().State)

	require.NoError(t, s.Restart())

	snap := s.Snapshot()
	assert.Equal(t, quiz.StateActive, snap.State)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 1, snap.QuestionNumber)
	// Same subset: the single question comes around again
	assert.Equal(t, "QA", snap.Question)
}
