package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageTitleSize = 14
	cellFontSize  = 10
	rowHeight     = 8.0
	tableWidth    = 180.0
)

// RenderPDF renders a table as a single-page-flowing PDF document and
// returns the encoded bytes.
func RenderPDF(t Table) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pageTitleSize)
	pdf.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")

	colWidth := tableWidth
	if len(t.Head) > 0 {
		colWidth = tableWidth / float64(len(t.Head))
	}

	pdf.SetFont("Helvetica", "B", cellFontSize)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range t.Head {
		pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", cellFontSize)
	for _, row := range t.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(t.Foot) > 0 {
		pdf.SetFont("Helvetica", "B", cellFontSize)
		for _, cell := range t.Foot {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
