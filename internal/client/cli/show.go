package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/msurana/gemvault/internal/client/models"
)

// Show prints one gemstone in full, including its audit trail.
func (a *App) Show(ctx context.Context, id string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	fmt.Fprintln(a.out, g.Name)
	fmt.Fprintln(a.out, strings.Repeat("-", len(g.Name)))

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(a.out, "%-18s %s\n", label+":", value)
		}
	}

	field("ID", g.ID)
	field("Category", g.Category)
	field("Type", g.Type)
	field("Weight", models.FormatWeight(g.Weight))
	field("Dimensions", models.FormatDimensions(g.Dimensions))
	field("Color", g.Color)
	field("Clarity", g.Clarity)
	field("Cut", g.Cut)
	field("Origin", g.Origin)
	field("Treatment", g.Treatment)
	field("Certification", g.Certification)
	field("Acquired", g.AcquisitionDate)
	field("Purchase price", models.FormatCurrency(g.AcquisitionPrice))
	field("Estimated value", models.FormatCurrency(g.EstimatedValue))
	field("Seller", g.Seller)
	field("Tags", strings.Join(g.Tags, ", "))
	field("Images", strings.Join(g.Images, "\n                   "))
	field("Video", g.Video)
	field("QR payload", g.QRCode)
	if g.Notes != "" {
		fmt.Fprintln(a.out, "Notes:")
		fmt.Fprintln(a.out, g.Notes)
	}

	if len(g.AuditTrail) > 0 {
		fmt.Fprintln(a.out, "History:")
		for _, event := range g.AuditTrail {
			fmt.Fprintf(a.out, "  %s  %-6s  %s\n",
				models.FormatDateTime(event.Timestamp), event.Action, event.User)
			for name, change := range event.Changes {
				fmt.Fprintf(a.out, "    %s: %v -> %v\n", name, change.Before, change.After)
			}
		}
	}

	return nil
}
