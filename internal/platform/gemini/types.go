package gemini

// generatePromptData is the data passed to the generation prompt template.
type generatePromptData struct {
	Text          string
	NumFlashcards int
	DetailLevel   string
	Language      string
}

// evaluatePromptData is the data passed to the evaluation prompt template.
type evaluatePromptData struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
}

// explainPromptData is the data passed to the explanation prompt template.
type explainPromptData struct {
	Question string
}

// flashcardSchema is a single flashcard in the generation response.
type flashcardSchema struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Emoji    string `json:"emoji,omitempty"`
}

// generateResponseSchema is the expected shape of a generation response.
type generateResponseSchema struct {
	Flashcards []flashcardSchema `json:"flashcards"`
	Progress   string            `json:"progress"`
}

// evaluateResponseSchema is the expected shape of an evaluation response.
// IsCorrect is a pointer so that a response missing the field entirely can
// be distinguished from an explicit false.
type evaluateResponseSchema struct {
	IsCorrect *bool  `json:"isCorrect"`
	Feedback  string `json:"feedback"`
}

// explainResponseSchema is the expected shape of an explanation response.
type explainResponseSchema struct {
	Explanation string `json:"explanation"`
}
