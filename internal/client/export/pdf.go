package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/msurana/gemvault/internal/client/analytics"
	"github.com/msurana/gemvault/internal/client/models"
)

// WritePDF writes a printable collection report to w: a summary block
// followed by the inventory table.
func WritePDF(w io.Writer, items []models.Gemstone, generatedAt time.Time) error {
	report := analytics.Compute(items, generatedAt)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Gemstone Collection Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Gemstone Collection Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+models.FormatDateTime(generatedAt))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total items: %d", report.TotalItems))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Total estimated value: "+models.FormatCurrency(report.TotalValue))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Average estimated value: "+models.FormatCurrency(report.AverageValue))
	pdf.Ln(10)

	widths := []float64{60, 35, 35, 28, 35, 50, 34}
	header := []string{"Name", "Category", "Type", "Weight (ct)", "Color", "Dimensions (mm)", "Acquired"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, g := range items {
		row := []string{
			g.Name,
			g.Category,
			g.Type,
			fmt.Sprintf("%.2f", g.Weight),
			g.Color,
			fmt.Sprintf("%.2f x %.2f x %.2f", g.Dimensions.Length, g.Dimensions.Width, g.Dimensions.Height),
			g.AcquisitionDate,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
