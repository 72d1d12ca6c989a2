// Package gemini implements the generation interfaces using Google's
// Gemini API. It owns prompt construction, the API calls themselves, and
// strict validation of the JSON responses; anything that does not match the
// expected schema surfaces as generation.ErrInvalidResponse.
package gemini
