package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		snap := a.gems.Snapshot()
		if snap.TotalItems > 0 {
			return fmt.Sprintf("(%s, page %d/%d)", a.config.AuthEmail, snap.Page, snap.TotalPages)
		}
		return fmt.Sprintf("(%s)", a.config.AuthEmail)
	}
	return "(not logged in)"
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to GemVault CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
