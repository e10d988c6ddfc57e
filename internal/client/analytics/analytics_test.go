package analytics

import (
	"testing"
	"time"

	"github.com/msurana/gemvault/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Empty(t *testing.T) {
	r := Compute(nil, time.Now())

	assert.Equal(t, 0, r.TotalItems)
	assert.Zero(t, r.TotalValue)
	assert.Zero(t, r.AverageValue)
	assert.Empty(t, r.TopTypes)
	assert.Empty(t, r.RecentAdditions)
}

func TestCompute_Totals(t *testing.T) {
	items := []models.Gemstone{
		{Name: "A", Category: "Precious", Type: "Ruby", EstimatedValue: 1000},
		{Name: "B", Category: "Precious", Type: "Sapphire", EstimatedValue: 3000},
		{Name: "C", Category: "Organic", Type: "Pearl"},
	}

	r := Compute(items, time.Now())

	assert.Equal(t, 3, r.TotalItems)
	assert.InDelta(t, 4000, r.TotalValue, 0.001)
	assert.InDelta(t, 4000.0/3, r.AverageValue, 0.001)
	assert.Equal(t, map[string]int{"Precious": 2, "Organic": 1}, r.ItemsByCategory)
	assert.Equal(t, map[string]int{"Ruby": 1, "Sapphire": 1, "Pearl": 1}, r.ItemsByType)
	assert.InDelta(t, 4000, r.ValueByCategory["Precious"], 0.001)
	assert.InDelta(t, 0, r.ValueByCategory["Organic"], 0.001)
}

func TestCompute_TopTypes(t *testing.T) {
	var items []models.Gemstone
	add := func(typ string, n int) {
		for i := 0; i < n; i++ {
			items = append(items, models.Gemstone{Type: typ})
		}
	}
	add("Ruby", 4)
	add("Sapphire", 4)
	add("Emerald", 3)
	add("Pearl", 2)
	add("Opal", 2)
	add("Topaz", 1)
	add("Garnet", 1)

	r := Compute(items, time.Now())

	require.Len(t, r.TopTypes, 5)
	// Count descending, name ascending on ties.
	assert.Equal(t, []TypeCount{
		{Type: "Ruby", Count: 4},
		{Type: "Sapphire", Count: 4},
		{Type: "Emerald", Count: 3},
		{Type: "Opal", Count: 2},
		{Type: "Pearl", Count: 2},
	}, r.TopTypes)
}

func TestCompute_RecentAdditions(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	items := []models.Gemstone{
		{Name: "Old", CreatedAt: now.AddDate(0, -2, 0)},
		{Name: "Week", CreatedAt: now.AddDate(0, 0, -7)},
		{Name: "Yesterday", CreatedAt: now.AddDate(0, 0, -1)},
		{Name: "Edge", CreatedAt: now.AddDate(0, 0, -30)},
	}

	r := Compute(items, now)

	names := make([]string, 0, len(r.RecentAdditions))
	for _, g := range r.RecentAdditions {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Yesterday", "Week", "Edge"}, names)
}
