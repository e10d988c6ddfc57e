package cli

import (
	"context"
	"fmt"
)

// Delete removes a gemstone after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	confirmed, err := GetConfirmation(a.reader, fmt.Sprintf("Delete %q?", g.Name), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	a.gems.DeleteGemstone(ctx, id)
	return nil
}
