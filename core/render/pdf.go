// Package render — PDF renderer.
// Lays justified lines out in a monospace font so the alignment survives.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin  = 15.0 // mm
	pdfMaxFont = 11.0 // pt
	ptToMm     = 0.352777

	// courierAdvance is the glyph advance as a fraction of the font size.
	courierAdvance = 0.6
)

// PDFRenderer renders justified lines as an A4 PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the justified lines into PDF bytes.
func (r *PDFRenderer) Render(res *core.Result, meta core.Metadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	textWidth := pageWidth - 2*pdfMargin

	// Header.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	header := fmt.Sprintf("Source: %s", meta.Source)
	if meta.Location != "" {
		header += " " + meta.Location
	}
	pdf.MultiCell(0, 5, fmt.Sprintf("%s (width %d)", header, meta.Width), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	size := fontSizeFor(meta.Width, textWidth)
	pdf.SetFont("Courier", "", size)
	lineHeight := size * ptToMm * 1.4
	for _, line := range res.Lines {
		pdf.CellFormat(textWidth, lineHeight, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// fontSizeFor returns the largest Courier size (capped at pdfMaxFont) at
// which width characters fit into textWidth millimetres.
func fontSizeFor(width int, textWidth float64) float64 {
	if width <= 0 {
		return pdfMaxFont
	}
	size := textWidth / (float64(width) * courierAdvance * ptToMm)
	return min(size, pdfMaxFont)
}
