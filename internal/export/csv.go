package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/flashmind/flashmind-api/internal/domain"
)

// csvHeader is the fixed header row of the CSV export.
const csvHeader = `"Question","Answer"`

// WriteCSV writes the flashcards as a two-column quoted CSV table.
//
// The format is fixed by the download contract: a `"Question","Answer"`
// header row, then one `"<question>", "<answer>"` row per card with embedded
// quote characters doubled. encoding/csv is deliberately not used here: it
// quotes only when necessary and never emits the space after the comma that
// data rows carry, and consumers of this file depend on the exact bytes.
func WriteCSV(w io.Writer, cards []domain.Flashcard) error {
	rows := make([]string, 0, len(cards)+1)
	rows = append(rows, csvHeader)
	for _, card := range cards {
		rows = append(rows, fmt.Sprintf("%s, %s", csvField(card.Question), csvField(card.Answer)))
	}

	if _, err := io.WriteString(w, strings.Join(rows, "\n")); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}
	return nil
}

// csvField quotes a field, doubling embedded quote characters.
func csvField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
