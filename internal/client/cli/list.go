package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/msurana/gemvault/internal/client/coordinator"
	"github.com/msurana/gemvault/internal/client/models"
)

// List prints the loaded gemstones, running any pending debounced fetch first.
func (a *App) List(ctx context.Context) error {
	snap := a.gems.Flush(ctx)
	a.printPage(snap)
	return nil
}

// More loads the next page and prints it.
func (a *App) More(ctx context.Context) error {
	a.gems.LoadMore()
	snap := a.gems.Flush(ctx)
	a.printPage(snap)
	return nil
}

// Refresh refetches the current query and prints the result.
func (a *App) Refresh(ctx context.Context) error {
	snap := a.gems.Refresh(ctx)
	a.printPage(snap)
	return nil
}

func (a *App) printPage(snap coordinator.Snapshot) {
	if snap.Err != nil {
		return // already notified
	}
	if snap.TotalItems == 0 {
		fmt.Fprintln(a.out, "No gemstones found")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTYPE\tWEIGHT\tVALUE")
	for _, g := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name, g.Category, g.Type,
			models.FormatWeight(g.Weight),
			models.FormatCurrency(g.EstimatedValue))
	}
	w.Flush()

	fmt.Fprintf(a.out, "Page %d/%d (%d items total)\n", snap.Page, snap.TotalPages, snap.TotalItems)
	if snap.HasMore {
		fmt.Fprintln(a.out, "Type 'more' to load the next page")
	}
}
