// Package analytics derives collection statistics from a set of gemstones.
// Computation is purely client-side over whatever items are loaded.
package analytics

import (
	"sort"
	"time"

	"github.com/msurana/gemvault/internal/client/models"
)

const (
	topTypesLimit = 5
	recentWindow  = 30 * 24 * time.Hour
)

// TypeCount is one entry of the most-common-types ranking.
type TypeCount struct {
	Type  string
	Count int
}

// Report is the computed collection summary.
type Report struct {
	TotalItems      int
	TotalValue      float64
	AverageValue    float64
	ItemsByCategory map[string]int
	ItemsByType     map[string]int
	ValueByCategory map[string]float64
	TopTypes        []TypeCount
	RecentAdditions []models.Gemstone
}

// Compute builds a Report over items. Values are the estimated values; items
// without one contribute zero. Recent additions are those created within the
// last 30 days of now, newest first.
func Compute(items []models.Gemstone, now time.Time) Report {
	r := Report{
		TotalItems:      len(items),
		ItemsByCategory: make(map[string]int),
		ItemsByType:     make(map[string]int),
		ValueByCategory: make(map[string]float64),
	}

	cutoff := now.Add(-recentWindow)
	for _, g := range items {
		r.TotalValue += g.EstimatedValue
		if g.Category != "" {
			r.ItemsByCategory[g.Category]++
			r.ValueByCategory[g.Category] += g.EstimatedValue
		}
		if g.Type != "" {
			r.ItemsByType[g.Type]++
		}
		if !g.CreatedAt.Before(cutoff) && !g.CreatedAt.After(now) {
			r.RecentAdditions = append(r.RecentAdditions, g)
		}
	}

	if r.TotalItems > 0 {
		r.AverageValue = r.TotalValue / float64(r.TotalItems)
	}

	r.TopTypes = topTypes(r.ItemsByType, topTypesLimit)

	sort.SliceStable(r.RecentAdditions, func(i, j int) bool {
		return r.RecentAdditions[i].CreatedAt.After(r.RecentAdditions[j].CreatedAt)
	})

	return r
}

// topTypes ranks types by count descending, name ascending on ties.
func topTypes(counts map[string]int, limit int) []TypeCount {
	ranked := make([]TypeCount, 0, len(counts))
	for typ, n := range counts {
		ranked = append(ranked, TypeCount{Type: typ, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Type < ranked[j].Type
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
