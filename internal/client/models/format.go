package models

import (
	"fmt"
	"strings"
	"time"
)

// FormatWeight renders a carat weight, e.g. "2.35 ct".
func FormatWeight(weight float64) string {
	return fmt.Sprintf("%.2f ct", weight)
}

// FormatDimensions renders a size as "L × W × H mm".
func FormatDimensions(d Dimensions) string {
	return fmt.Sprintf("%.2f × %.2f × %.2f mm", d.Length, d.Width, d.Height)
}

// FormatCurrency renders a USD amount; zero means "N/A" because optional
// money fields default to zero.
func FormatCurrency(value float64) string {
	if value == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", value)
}

// FormatDate renders a timestamp as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a timestamp with time of day.
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// ShareCaption builds a short shareable description of a gemstone.
func ShareCaption(g Gemstone) string {
	lines := []string{
		fmt.Sprintf("✨ %s ✨", g.Name),
		"Type: " + g.Type,
		"Weight: " + FormatWeight(g.Weight),
		"Cut: " + g.Cut,
		"Color: " + g.Color,
		"Origin: " + g.Origin,
	}

	if g.EstimatedValue > 0 {
		lines = append(lines, "Value: "+FormatCurrency(g.EstimatedValue))
	}

	if len(g.Tags) > 0 {
		lines = append(lines, "\n#"+strings.Join(g.Tags, " #"))
	}

	return strings.Join(lines, "\n")
}
