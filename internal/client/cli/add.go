package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/msurana/gemvault/internal/client/models"
	"github.com/msurana/gemvault/internal/client/qr"
)

// newID is a test seam for id generation.
var newID = uuid.NewString

// Add interactively collects a new gemstone and creates it. The id is
// generated client-side so the QR payload can be embedded before the create
// request; the catalog keeps it.
func (a *App) Add(ctx context.Context) error {
	g := models.Gemstone{
		ID:        newID(),
		CreatedBy: a.config.AuthEmail,
	}
	g.QRCode = qr.Payload(a.config.PublicBaseURL, g.ID)

	var err error
	if g.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if g.Name == "" {
		fmt.Fprintln(a.out, "Name is required")
		return nil
	}
	if g.Category, err = GetSimpleText(a.reader, "Category (Precious/Semi-Precious/Organic)", a.out); err != nil {
		return err
	}
	if g.Type, err = GetSimpleText(a.reader, "Type (Ruby, Sapphire, ...)", a.out); err != nil {
		return err
	}
	if g.Weight, err = GetFloat(a.reader, "Weight (carats)", a.out); err != nil {
		return err
	}
	if g.Dimensions.Length, err = GetFloat(a.reader, "Length (mm)", a.out); err != nil {
		return err
	}
	if g.Dimensions.Width, err = GetFloat(a.reader, "Width (mm)", a.out); err != nil {
		return err
	}
	if g.Dimensions.Height, err = GetFloat(a.reader, "Height (mm)", a.out); err != nil {
		return err
	}
	if g.Color, err = GetSimpleText(a.reader, "Color", a.out); err != nil {
		return err
	}
	if g.Clarity, err = GetSimpleText(a.reader, "Clarity", a.out); err != nil {
		return err
	}
	if g.Cut, err = GetSimpleText(a.reader, "Cut", a.out); err != nil {
		return err
	}
	if g.Origin, err = GetSimpleText(a.reader, "Origin", a.out); err != nil {
		return err
	}
	if g.Treatment, err = GetSimpleText(a.reader, "Treatment", a.out); err != nil {
		return err
	}
	if g.Certification, err = GetSimpleText(a.reader, "Certification", a.out); err != nil {
		return err
	}
	if g.AcquisitionDate, err = GetSimpleText(a.reader, "Acquisition date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if g.AcquisitionPrice, err = GetFloat(a.reader, "Acquisition price (USD)", a.out); err != nil {
		return err
	}
	if g.EstimatedValue, err = GetFloat(a.reader, "Estimated value (USD)", a.out); err != nil {
		return err
	}
	if g.Seller, err = GetSimpleText(a.reader, "Seller", a.out); err != nil {
		return err
	}
	if g.Tags, err = GetTags(a.reader, "Tags, comma-separated", a.out); err != nil {
		return err
	}
	if g.Notes, err = GetMultiline(a.reader, "Notes", a.out); err != nil {
		return err
	}

	created, err := a.gems.AddGemstone(ctx, g)
	if err != nil {
		return err // already notified
	}

	fmt.Fprintln(a.out, "Created gemstone", created.ID)
	fmt.Fprintln(a.out, "QR payload:", created.QRCode)
	return nil
}
