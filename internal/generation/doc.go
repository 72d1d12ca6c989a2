// Package generation provides interfaces and typed results for interacting
// with external AI/LLM services. It abstracts the details of LLM API
// integration (Gemini), allowing the application to generate flashcards,
// evaluate quiz answers, and explain questions without coupling to a
// specific external service.
package generation
