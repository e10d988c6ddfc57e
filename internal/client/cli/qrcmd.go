package cli

import (
	"context"
	"fmt"

	"github.com/msurana/gemvault/internal/client/qr"
)

// QR renders a gemstone's QR code label and saves it as a PNG in the working
// directory.
func (a *App) QR(ctx context.Context, id string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	payload := g.QRCode
	if payload == "" {
		payload = qr.Payload(a.config.PublicBaseURL, g.ID)
	}

	path := qr.FileName(g.Name)
	if err := qr.WriteFile(path, payload, qr.DefaultSize); err != nil {
		fmt.Fprintln(a.out, "QR code generation failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "Saved", path)
	return nil
}
