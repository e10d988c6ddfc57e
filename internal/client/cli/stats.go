package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/msurana/gemvault/internal/client/analytics"
	"github.com/msurana/gemvault/internal/client/models"
)

// Stats prints collection statistics computed over the loaded gemstones.
func (a *App) Stats(ctx context.Context) error {
	snap := a.gems.Flush(ctx)
	report := analytics.Compute(snap.Items, time.Now())

	fmt.Fprintf(a.out, "Loaded items:            %d (of %d total)\n", report.TotalItems, snap.TotalItems)
	fmt.Fprintf(a.out, "Total estimated value:   %s\n", models.FormatCurrency(report.TotalValue))
	fmt.Fprintf(a.out, "Average estimated value: %s\n", models.FormatCurrency(report.AverageValue))

	if len(report.ItemsByCategory) > 0 {
		fmt.Fprintln(a.out, "By category:")
		for category, n := range report.ItemsByCategory {
			fmt.Fprintf(a.out, "  %-16s %3d  (%s)\n", category, n,
				models.FormatCurrency(report.ValueByCategory[category]))
		}
	}

	if len(report.TopTypes) > 0 {
		fmt.Fprintln(a.out, "Most common types:")
		for _, tc := range report.TopTypes {
			fmt.Fprintf(a.out, "  %-16s %3d\n", tc.Type, tc.Count)
		}
	}

	if len(report.RecentAdditions) > 0 {
		fmt.Fprintln(a.out, "Added in the last 30 days:")
		for _, g := range report.RecentAdditions {
			fmt.Fprintf(a.out, "  %s  %s\n", models.FormatDate(g.CreatedAt), g.Name)
		}
	}

	return nil
}
