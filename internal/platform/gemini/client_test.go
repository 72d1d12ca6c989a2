package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashmind/flashmind-api/internal/generation"
)

func TestParseGenerateResponse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed response", func(t *testing.T) {
		t.Parallel()

		result, err := parseGenerateResponse(`{
			"flashcards": [
				{"question": "What does photosynthesis convert?", "answer": "Light to energy", "emoji": "🌱"},
				{"question": "Where does it occur?", "answer": "Chloroplasts"}
			],
			"progress": "Generated 2 cards."
		}`)

		require.NoError(t, err)
		require.Len(t, result.Flashcards, 2)
		assert.Equal(t, "What does photosynthesis convert?", result.Flashcards[0].Question)
		assert.Equal(t, "Light to energy", result.Flashcards[0].Answer)
		assert.Equal(t, "🌱", result.Flashcards[0].Emoji)
		assert.Empty(t, result.Flashcards[1].Emoji)
		assert.Equal(t, "Generated 2 cards.", result.Progress)
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := parseGenerateResponse("Here are your flashcards!")
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("missing flashcards field", func(t *testing.T) {
		t.Parallel()

		_, err := parseGenerateResponse(`{"progress": "done"}`)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("empty flashcards array", func(t *testing.T) {
		t.Parallel()

		_, err := parseGenerateResponse(`{"flashcards": [], "progress": "done"}`)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("card missing answer", func(t *testing.T) {
		t.Parallel()

		_, err := parseGenerateResponse(`{"flashcards": [{"question": "Q"}], "progress": "done"}`)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}

func TestParseEvaluateResponse(t *testing.T) {
	t.Parallel()

	t.Run("correct answer", func(t *testing.T) {
		t.Parallel()

		eval, err := parseEvaluateResponse(`{"isCorrect": true, "feedback": "Close enough."}`)
		require.NoError(t, err)
		assert.True(t, eval.IsCorrect)
		assert.Equal(t, "Close enough.", eval.Feedback)
	})

	t.Run("explicit false is not a missing field", func(t *testing.T) {
		t.Parallel()

		eval, err := parseEvaluateResponse(`{"isCorrect": false, "feedback": "Not quite."}`)
		require.NoError(t, err)
		assert.False(t, eval.IsCorrect)
	})

	t.Run("missing isCorrect field", func(t *testing.T) {
		t.Parallel()

		_, err := parseEvaluateResponse(`{"feedback": "Hmm."}`)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := parseEvaluateResponse("yes, that is correct")
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}

func TestParseExplainResponse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed response", func(t *testing.T) {
		t.Parallel()

		expl, err := parseExplainResponse(`{"explanation": "Because chlorophyll absorbs light."}`)
		require.NoError(t, err)
		assert.Equal(t, "Because chlorophyll absorbs light.", expl.Explanation)
	})

	t.Run("missing explanation field", func(t *testing.T) {
		t.Parallel()

		_, err := parseExplainResponse(`{}`)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}

func TestRenderPrompt(t *testing.T) {
	t.Parallel()

	c := newTemplateOnlyClient(t)

	prompt, err := c.renderPrompt("generate.tmpl", generatePromptData{
		Text:          "Photosynthesis converts light to energy.",
		NumFlashcards: 5,
		DetailLevel:   "intermediate",
		Language:      "English",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Photosynthesis converts light to energy.")
	assert.Contains(t, prompt, "Create 5 flashcards")
	assert.Contains(t, prompt, "intermediate")
	assert.Contains(t, prompt, "English")

	prompt, err = c.renderPrompt("evaluate.tmpl", evaluatePromptData{
		Question:      "What does photosynthesis convert?",
		CorrectAnswer: "Light to energy",
		UserAnswer:    "light into energy",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Question: What does photosynthesis convert?")
	assert.Contains(t, prompt, "Correct Answer: Light to energy")
	assert.Contains(t, prompt, "User's Answer: light into energy")

	prompt, err = c.renderPrompt("explain.tmpl", explainPromptData{
		Question: "What does photosynthesis convert?",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Question: What does photosynthesis convert?")
}

// newTemplateOnlyClient builds a Client with parsed templates but no API
// client, sufficient for exercising prompt rendering.
func newTemplateOnlyClient(t *testing.T) *Client {
	t.Helper()

	templates, err := templateSet()
	require.NoError(t, err)

	return &Client{templates: templates}
}
