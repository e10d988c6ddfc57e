package cli

import (
	"context"
	"fmt"

	"github.com/msurana/gemvault/internal/client/models"
)

// Media uploads photo/video files for a gemstone and attaches their public
// URLs to the record.
func (a *App) Media(ctx context.Context, id string, paths []string) error {
	g, ok := a.gems.GetGemstone(ctx, id)
	if !ok {
		return nil // already notified
	}

	urls, err := a.uploader.UploadAll(ctx, paths)
	if err != nil {
		fmt.Fprintln(a.out, "Upload failed:", err)
		return err
	}

	images := append(append([]string(nil), g.Images...), urls...)
	if _, err := a.gems.UpdateGemstone(ctx, id, models.GemstonePatch{Images: &images}); err != nil {
		return err // already notified
	}

	for _, u := range urls {
		fmt.Fprintln(a.out, "Uploaded", u)
	}
	return nil
}
