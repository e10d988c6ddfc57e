// Package export renders the gemstone collection as downloadable reports:
// a CSV inventory and a PDF summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/msurana/gemvault/internal/client/models"
)

var csvHeader = []string{
	"Name",
	"Category",
	"Type",
	"Weight (ct)",
	"Color",
	"Dimensions (mm)",
	"Acquisition Date",
}

// WriteCSV writes the inventory report for items to w.
func WriteCSV(w io.Writer, items []models.Gemstone) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, g := range items {
		record := []string{
			g.Name,
			g.Category,
			g.Type,
			fmt.Sprintf("%.2f", g.Weight),
			g.Color,
			fmt.Sprintf("%.2f x %.2f x %.2f", g.Dimensions.Length, g.Dimensions.Width, g.Dimensions.Height),
			g.AcquisitionDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
