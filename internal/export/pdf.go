package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/flashmind/flashmind-api/internal/domain"
)

// Table layout constants, in millimeters.
const (
	pdfColWidth   = 95.0
	pdfLineHeight = 6.0
	pdfHeaderH    = 8.0
)

// WritePDF writes the flashcards as a paginated PDF document titled
// "Flashcards" with a two-column Question/Answer table.
func WritePDF(w io.Writer, cards []domain.Flashcard) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Flashcards", true)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Flashcards", "", 1, "C", false, 0, "")
	doc.Ln(4)

	writePDFTableHeader(doc)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, card := range cards {
		x, y := doc.GetXY()
		doc.MultiCell(pdfColWidth, pdfLineHeight, card.Question, "1", "L", false)
		yAfterQuestion := doc.GetY()

		doc.SetXY(x+pdfColWidth, y)
		doc.MultiCell(pdfColWidth, pdfLineHeight, card.Answer, "1", "L", false)
		yAfterAnswer := doc.GetY()

		// Both columns advance independently; the next row starts after the
		// taller of the two.
		nextY := yAfterQuestion
		if yAfterAnswer > nextY {
			nextY = yAfterAnswer
		}
		doc.SetXY(x, nextY)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF export: %w", err)
	}
	return nil
}

// writePDFTableHeader draws the filled Question/Answer header row.
func writePDFTableHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(69, 143, 246)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(pdfColWidth, pdfHeaderH, "Question", "1", 0, "L", true, 0, "")
	doc.CellFormat(pdfColWidth, pdfHeaderH, "Answer", "1", 1, "L", true, 0, "")
}
