// Package models defines the gemstone catalog types shared by the catalog
// client, the coordinator and the CLI.
package models

import (
	"sort"
	"time"
)

// Dimensions is a gemstone's physical size in millimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Gemstone is the core inventory entity. The id is user-assignable (it is
// used for QR lookup), not server-generated.
type Gemstone struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Weight        float64    `json:"weight"` // carats
	Dimensions    Dimensions `json:"dimensions"`
	Color         string     `json:"color"`
	Clarity       string     `json:"clarity"`
	Cut           string     `json:"cut"`
	Origin        string     `json:"origin"`
	Treatment     string     `json:"treatment"`
	Certification string     `json:"certification"`

	AcquisitionDate  string  `json:"acquisitionDate"`
	AcquisitionPrice float64 `json:"acquisitionPrice,omitempty"`
	EstimatedValue   float64 `json:"estimatedValue,omitempty"`
	Seller           string  `json:"seller,omitempty"`

	Notes  string   `json:"notes"`
	Tags   []string `json:"tags"`
	Images []string `json:"images"`
	Video  string   `json:"video,omitempty"`
	QRCode string   `json:"qrCode"`

	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CreatedBy    string    `json:"createdBy"`
	LastEditedBy string    `json:"lastEditedBy"`

	AuditTrail []AuditEvent `json:"auditTrail"`
}

// NormalizeTags returns the tag set in canonical form: trimmed of duplicates
// and sorted. Tag order is insignificant, so canonical form keeps cache
// fingerprints and diffs stable.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
