package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/msurana/gemvault/internal/client/export"
)

// Report writes a CSV or PDF report of the loaded gemstones to path.
func (a *App) Report(ctx context.Context, format, path string) error {
	snap := a.gems.Flush(ctx)

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot create report file:", err)
		return err
	}
	defer f.Close()

	switch format {
	case "csv":
		err = export.WriteCSV(f, snap.Items)
	case "pdf":
		err = export.WritePDF(f, snap.Items, time.Now())
	default:
		fmt.Fprintln(a.out, "Unknown report format:", format)
		return nil
	}

	if err != nil {
		fmt.Fprintln(a.out, "Report failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Wrote %s report with %d items to %s\n", format, len(snap.Items), path)
	return nil
}
