package cli

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/msurana/gemvault/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{
		ID:       "g1",
		Name:     "Burmese Ruby",
		Category: "Precious",
		Weight:   2.35,
		Tags:     []string{"antique", "burma"},
		Notes:    "pigeon blood",
		AuditTrail: []models.AuditEvent{
			models.NewCreateEvent("alice", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)),
			models.NewUpdateEvent("bob", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
				map[string]models.Change{"notes": {Before: "old", After: "pigeon blood"}}),
		},
	}
	a, out := newTestApp(gems, "")

	require.NoError(t, a.Show(context.Background(), "g1"))

	s := out.String()
	assert.Contains(t, s, "Burmese Ruby")
	assert.Contains(t, s, "2.35 ct")
	assert.Contains(t, s, "antique, burma")
	assert.Contains(t, s, "pigeon blood")
	assert.Contains(t, s, "create")
	assert.Contains(t, s, "notes: old -> pigeon blood")
}

func TestAdd(t *testing.T) {
	gems := newFakeGems()
	// Name, category, type, weight, length, width, height, color, clarity,
	// cut, origin, treatment, certification, acquisition date, price, value,
	// seller, tags, notes (multiline, ended by empty line).
	input := strings.Join([]string{
		"Blue Sapphire",
		"Precious",
		"Sapphire",
		"3.1",
		"9.0", "7.0", "5.0",
		"Royal Blue",
		"VVS",
		"Oval",
		"Ceylon",
		"Heated",
		"GIA 123",
		"2026-08-01",
		"4000",
		"5500",
		"Gem Palace",
		"ceylon, blue",
		"bought at auction",
		"", // end of notes
	}, "\n") + "\n"
	a, out := newTestApp(gems, input)

	origID := newID
	newID = func() string { return "fixed-id" }
	defer func() { newID = origID }()

	require.NoError(t, a.Add(context.Background()))

	require.Len(t, gems.added, 1)
	g := gems.added[0]
	assert.Equal(t, "fixed-id", g.ID)
	assert.Equal(t, "Blue Sapphire", g.Name)
	assert.Equal(t, "https://gems.example.com/gemstone/fixed-id", g.QRCode)
	assert.Equal(t, "jeweler@example.com", g.CreatedBy)
	assert.InDelta(t, 3.1, g.Weight, 0.001)
	assert.Equal(t, models.Dimensions{Length: 9, Width: 7, Height: 5}, g.Dimensions)
	assert.InDelta(t, 5500, g.EstimatedValue, 0.001)
	assert.Equal(t, []string{"ceylon", "blue"}, g.Tags)
	assert.Equal(t, "bought at auction", g.Notes)

	assert.Contains(t, out.String(), "Created gemstone fixed-id")
}

func TestAdd_RequiresName(t *testing.T) {
	gems := newFakeGems()
	a, out := newTestApp(gems, "\n")

	require.NoError(t, a.Add(context.Background()))
	assert.Empty(t, gems.added)
	assert.Contains(t, out.String(), "Name is required")
}

func TestEdit_NoChanges(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Opal"}
	// All prompts answered empty: name, category, type, weight, color,
	// origin, value, notes, tags.
	a, out := newTestApp(gems, strings.Repeat("\n", 9))

	require.NoError(t, a.Edit(context.Background(), "g1"))
	assert.Empty(t, gems.updated)
	assert.Contains(t, out.String(), "No changes")
}

func TestEdit_UpdatesNotes(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Opal", Notes: "old"}
	// Keep everything except notes, then confirm.
	input := strings.Join([]string{
		"", "", "", "", "", "", "", // name..value kept
		"new notes",
		"", // tags kept
		"y",
	}, "\n") + "\n"
	a, out := newTestApp(gems, input)

	require.NoError(t, a.Edit(context.Background(), "g1"))

	patch, ok := gems.updated["g1"]
	require.True(t, ok)
	require.NotNil(t, patch.Notes)
	assert.Equal(t, "new notes", *patch.Notes)
	assert.Nil(t, patch.Name, "unchanged fields must not travel")

	assert.Contains(t, out.String(), "notes: old -> new notes")
}

func TestEdit_Cancelled(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Opal"}
	input := strings.Join([]string{
		"Fire Opal", "", "", "", "", "", "", "", "",
		"n",
	}, "\n") + "\n"
	a, out := newTestApp(gems, input)

	require.NoError(t, a.Edit(context.Background(), "g1"))
	assert.Empty(t, gems.updated)
	assert.Contains(t, out.String(), "Cancelled")
}

func TestDelete_Confirmed(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Opal"}
	a, _ := newTestApp(gems, "y\n")

	require.NoError(t, a.Delete(context.Background(), "g1"))
	assert.Equal(t, []string{"g1"}, gems.deleted)
}

func TestDelete_Declined(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Opal"}
	a, out := newTestApp(gems, "\n")

	require.NoError(t, a.Delete(context.Background(), "g1"))
	assert.Empty(t, gems.deleted)
	assert.Contains(t, out.String(), "Cancelled")
}

func TestMedia(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Images: []string{"https://media.example.com/old.png"}}
	a, out := newTestApp(gems, "")
	up := &fakeUploader{urls: []string{"https://media.example.com/new.png"}}
	a.uploader = up

	require.NoError(t, a.Media(context.Background(), "g1", []string{"photo.png"}))

	assert.Equal(t, []string{"photo.png"}, up.paths)
	patch, ok := gems.updated["g1"]
	require.True(t, ok)
	require.NotNil(t, patch.Images)
	assert.Equal(t, []string{
		"https://media.example.com/old.png",
		"https://media.example.com/new.png",
	}, *patch.Images)
	assert.Contains(t, out.String(), "Uploaded https://media.example.com/new.png")
}

func TestQR(t *testing.T) {
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{ID: "g1", Name: "Blue Sapphire", QRCode: "https://gems.example.com/gemstone/g1"}
	a, out := newTestApp(gems, "")

	require.NoError(t, a.QR(context.Background(), "g1"))

	assert.Contains(t, out.String(), "blue-sapphire-qr-code.png")
	_, err := os.Stat("blue-sapphire-qr-code.png")
	assert.NoError(t, err)
}

func TestShare(t *testing.T) {
	gems := newFakeGems()
	gems.gemstones["g1"] = models.Gemstone{
		ID: "g1", Name: "Burmese Ruby", Type: "Ruby", Weight: 2.35,
		EstimatedValue: 12000, Tags: []string{"burma"},
	}
	a, out := newTestApp(gems, "")

	require.NoError(t, a.Share(context.Background(), "g1"))

	s := out.String()
	assert.Contains(t, s, "Burmese Ruby")
	assert.Contains(t, s, "2.35 ct")
	assert.Contains(t, s, "$12000.00")
	assert.Contains(t, s, "#burma")
}

func TestStats(t *testing.T) {
	gems := newFakeGems()
	gems.snap.Items = []models.Gemstone{
		{Name: "A", Category: "Precious", Type: "Ruby", EstimatedValue: 1000, CreatedAt: time.Now()},
		{Name: "B", Category: "Precious", Type: "Ruby", EstimatedValue: 3000},
	}
	gems.snap.TotalItems = 2
	a, out := newTestApp(gems, "")

	require.NoError(t, a.Stats(context.Background()))

	s := out.String()
	assert.Contains(t, s, "$4000.00")
	assert.Contains(t, s, "$2000.00")
	assert.Contains(t, s, "Ruby")
	assert.Contains(t, s, "Added in the last 30 days")
}

func TestReport_CSV(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/report.csv"

	gems := newFakeGems()
	gems.snap.Items = []models.Gemstone{{Name: "Opal", Category: "Semi-Precious"}}
	a, out := newTestApp(gems, "")

	require.NoError(t, a.Report(context.Background(), "csv", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name,Category,Type")
	assert.Contains(t, string(data), "Opal")
	assert.Contains(t, out.String(), "Wrote csv report with 1 items")
}

func TestReport_UnknownFormat(t *testing.T) {
	a, out := newTestApp(newFakeGems(), "")

	require.NoError(t, a.Report(context.Background(), "xlsx", t.TempDir()+"/r.xlsx"))
	assert.Contains(t, out.String(), "Unknown report format")
}
