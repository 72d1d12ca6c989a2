package gemini

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"google.golang.org/genai"

	"github.com/flashmind/flashmind-api/internal/config"
	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/generation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Verify interface compliance at compile time
var (
	_ generation.Generator = (*Client)(nil)
	_ generation.Evaluator = (*Client)(nil)
	_ generation.Explainer = (*Client)(nil)
)

// Client implements the generation.Generator, generation.Evaluator and
// generation.Explainer interfaces using Google's Gemini API.
type Client struct {
	logger    *slog.Logger
	client    *genai.Client
	model     string
	templates *template.Template
}

// NewClient creates a new Gemini-backed Client with the provided dependencies.
//
// The LLM configuration must carry a non-empty API key and model name;
// missing values are reported as generation.ErrInvalidConfig.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	templates, err := templateSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger:    logger.With(slog.String("component", "gemini_client")),
		client:    client,
		model:     cfg.ModelName,
		templates: templates,
	}, nil
}

// templateSet parses the embedded prompt templates.
func templateSet() (*template.Template, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	return templates, nil
}

// renderPrompt executes the named template with the given data.
func (c *Client) renderPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %q: %w", name, err)
	}
	return buf.String(), nil
}

// callModel makes a single call to the Gemini API and returns the raw
// response text. There is no retry loop: a failed call is surfaced to the
// caller, who re-triggers the action manually.
func (c *Client) callModel(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr(float32(0.2)),
		})
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini API call failed", slog.String("error", err.Error()))
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	return text, nil
}

// GenerateFlashcards implements generation.Generator.
func (c *Client) GenerateFlashcards(
	ctx context.Context,
	req domain.GenerationRequest,
) (*generation.Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptySourceText
	}

	prompt, err := c.renderPrompt("generate.tmpl", generatePromptData{
		Text:          req.Text,
		NumFlashcards: req.NumFlashcards,
		DetailLevel:   string(req.DetailLevel),
		Language:      req.Language,
	})
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "generating flashcards",
		slog.Int("num_flashcards", req.NumFlashcards),
		slog.String("detail_level", string(req.DetailLevel)),
		slog.String("language", req.Language),
		slog.Int("text_length", len(req.Text)))

	text, err := c.callModel(ctx, prompt)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidResponse) || errors.Is(err, generation.ErrContentBlocked) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	result, err := parseGenerateResponse(text)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "flashcards generated",
		slog.Int("card_count", len(result.Flashcards)))
	return result, nil
}

// parseGenerateResponse validates the raw model output against the
// generation schema and converts it into domain flashcards. A response the
// service claims succeeded but that carries no parseable flashcards field is
// a failure, not a partial success.
func parseGenerateResponse(text string) (*generation.Result, error) {
	var parsed generateResponseSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	if len(parsed.Flashcards) == 0 {
		return nil, fmt.Errorf("%w: no flashcards in response", generation.ErrInvalidResponse)
	}

	cards := make([]domain.Flashcard, 0, len(parsed.Flashcards))
	for i, schema := range parsed.Flashcards {
		if schema.Question == "" {
			return nil, fmt.Errorf("%w: flashcard %d missing question", generation.ErrInvalidResponse, i)
		}
		if schema.Answer == "" {
			return nil, fmt.Errorf("%w: flashcard %d missing answer", generation.ErrInvalidResponse, i)
		}

		card, err := domain.NewFlashcard(schema.Question, schema.Answer, schema.Emoji)
		if err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v", generation.ErrInvalidResponse, i, err)
		}
		cards = append(cards, *card)
	}

	return &generation.Result{
		Flashcards: cards,
		Progress:   parsed.Progress,
	}, nil
}

// EvaluateAnswer implements generation.Evaluator.
//
// An empty canonical answer is still sent to the service verbatim; there is
// no client-side short-circuit.
func (c *Client) EvaluateAnswer(
	ctx context.Context,
	question, correctAnswer, userAnswer string,
) (*generation.Evaluation, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	prompt, err := c.renderPrompt("evaluate.tmpl", evaluatePromptData{
		Question:      question,
		CorrectAnswer: correctAnswer,
		UserAnswer:    userAnswer,
	})
	if err != nil {
		return nil, err
	}

	text, err := c.callModel(ctx, prompt)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidResponse) || errors.Is(err, generation.ErrContentBlocked) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrEvaluationFailed, err)
	}

	return parseEvaluateResponse(text)
}

// parseEvaluateResponse validates the raw model output against the
// evaluation schema.
func parseEvaluateResponse(text string) (*generation.Evaluation, error) {
	var parsed evaluateResponseSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	if parsed.IsCorrect == nil {
		return nil, fmt.Errorf("%w: missing isCorrect field", generation.ErrInvalidResponse)
	}

	return &generation.Evaluation{
		IsCorrect: *parsed.IsCorrect,
		Feedback:  parsed.Feedback,
	}, nil
}

// ExplainQuestion implements generation.Explainer.
func (c *Client) ExplainQuestion(
	ctx context.Context,
	question string,
) (*generation.Explanation, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	prompt, err := c.renderPrompt("explain.tmpl", explainPromptData{Question: question})
	if err != nil {
		return nil, err
	}

	text, err := c.callModel(ctx, prompt)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidResponse) || errors.Is(err, generation.ErrContentBlocked) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrExplanationFailed, err)
	}

	return parseExplainResponse(text)
}

// parseExplainResponse validates the raw model output against the
// explanation schema.
func parseExplainResponse(text string) (*generation.Explanation, error) {
	var parsed explainResponseSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	if strings.TrimSpace(parsed.Explanation) == "" {
		return nil, fmt.Errorf("%w: missing explanation field", generation.ErrInvalidResponse)
	}

	return &generation.Explanation{Explanation: parsed.Explanation}, nil
}
