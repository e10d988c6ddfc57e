package cli

import (
	"context"
	"fmt"

	"github.com/msurana/gemvault/internal/client/models"
)

// Share prints a copy-pasteable caption for a gemstone, suitable for social
// posts or listings.
func (a *App) Share(ctx context.Context, id string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	fmt.Fprintln(a.out, models.ShareCaption(g))
	return nil
}
