package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/msurana/gemvault/internal/client/models"
)

// Filter prompts for search/filter/sort criteria and applies them. Applying
// new criteria always jumps back to page 1; empty answers clear the
// corresponding criterion.
func (a *App) Filter(ctx context.Context) error {
	// Values seen in the loaded page, as a typing aid. Not server-side facets.
	if categories := a.gems.Categories(); len(categories) > 0 {
		fmt.Fprintln(a.out, "Loaded categories:", strings.Join(categories, ", "))
	}
	if tags := a.gems.Tags(); len(tags) > 0 {
		fmt.Fprintln(a.out, "Loaded tags:", strings.Join(tags, ", "))
	}

	var f models.Filter
	var err error

	if f.Search, err = GetSimpleText(a.reader, "Search (name, type, notes; empty for none)", a.out); err != nil {
		return err
	}
	if f.Category, err = GetSimpleText(a.reader, "Category (empty for all)", a.out); err != nil {
		return err
	}
	if f.Tags, err = GetTags(a.reader, "Tags, comma-separated (empty for all)", a.out); err != nil {
		return err
	}
	if f.DateFrom, err = GetSimpleText(a.reader, "Acquired from (YYYY-MM-DD, empty for any)", a.out); err != nil {
		return err
	}
	if f.DateTo, err = GetSimpleText(a.reader, "Acquired to (YYYY-MM-DD, empty for any)", a.out); err != nil {
		return err
	}

	sortBy, err := GetSimpleText(a.reader, "Sort by (name, createdAt, updatedAt, weight, value; empty for default)", a.out)
	if err != nil {
		return err
	}
	f.SortBy = models.SortField(sortBy)

	if f.SortBy != "" {
		order, err := GetSimpleText(a.reader, "Sort order (asc/desc)", a.out)
		if err != nil {
			return err
		}
		f.SortOrder = models.SortOrder(order)
	}

	a.gems.SetFilters(f)
	snap := a.gems.Flush(ctx)
	a.printPage(snap)
	return nil
}
