package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/msurana/gemvault/internal/client/models"
)

// Edit collects a partial update for one gemstone. Empty answers keep the
// current value; only changed fields travel in the update request.
func (a *App) Edit(ctx context.Context, id string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	var patch models.GemstonePatch
	var err error

	text := func(dst **string, label, current string) error {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s] (empty to keep)", label, current), a.out)
		if err != nil {
			return err
		}
		if v != "" && v != current {
			*dst = &v
		}
		return nil
	}

	number := func(dst **float64, label string, current float64) error {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%.2f] (empty to keep)", label, current), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		if parsed != current {
			*dst = &parsed
		}
		return nil
	}

	if err = text(&patch.Name, "Name", g.Name); err != nil {
		return err
	}
	if err = text(&patch.Category, "Category", g.Category); err != nil {
		return err
	}
	if err = text(&patch.Type, "Type", g.Type); err != nil {
		return err
	}
	if err = number(&patch.Weight, "Weight (carats)", g.Weight); err != nil {
		return err
	}
	if err = text(&patch.Color, "Color", g.Color); err != nil {
		return err
	}
	if err = text(&patch.Origin, "Origin", g.Origin); err != nil {
		return err
	}
	if err = number(&patch.EstimatedValue, "Estimated value (USD)", g.EstimatedValue); err != nil {
		return err
	}
	if err = text(&patch.Notes, "Notes", g.Notes); err != nil {
		return err
	}

	tags, err := GetTags(a.reader, "Tags, comma-separated (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if tags != nil {
		patch.Tags = &tags
	}

	if patch.IsZero() {
		fmt.Fprintln(a.out, "No changes")
		return nil
	}

	// Preview the field-level diff the way it will land in the audit trail.
	preview := g
	patch.Apply(&preview)
	fmt.Fprintln(a.out, "Changes:")
	for name, change := range models.FieldChanges(g, preview) {
		fmt.Fprintf(a.out, "  %s: %v -> %v\n", name, change.Before, change.After)
	}

	ok, err = GetConfirmation(a.reader, "Apply these changes?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if _, err := a.gems.UpdateGemstone(ctx, id, patch); err != nil {
		return err // already notified
	}
	return nil
}
