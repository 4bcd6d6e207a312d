// ABOUTME: Shared terminal rendering helpers for report views.
// ABOUTME: Maps severity tiers and trend labels to colors and glyphs.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/report"
)

// tierColor maps a severity tier to its terminal color. The core
// only ever hands out tiers; colors live here.
func tierColor(t models.Tier) *color.Color {
	switch t {
	case models.TierGood:
		return color.New(color.FgGreen)
	case models.TierCaution:
		return color.New(color.FgYellow)
	case models.TierPoor:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}

// formatValue renders a nullable metric value with its unit, or a
// plain "no data" marker. Missing is never rendered as zero. Kept
// free of color codes so table padding stays aligned.
func formatValue(v *float64, unit string) string {
	if v == nil {
		return "no data"
	}
	if unit == "" {
		return fmt.Sprintf("%.1f", *v)
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}

// trendGlyphs renders the five weekly trend labels oldest-first as
// colored arrows.
func trendGlyphs(labels [report.TrendWeeks]models.TrendLabel) string {
	var parts []string
	for _, l := range labels {
		switch l {
		case models.TrendRising:
			parts = append(parts, color.GreenString("↑"))
		case models.TrendDeclining:
			parts = append(parts, color.RedString("↓"))
		case models.TrendFlat:
			parts = append(parts, color.YellowString("→"))
		default:
			parts = append(parts, color.New(color.Faint).Sprint("·"))
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// rangeText describes the active date range for report headers.
func rangeText(days int) string {
	if days <= 0 {
		return "all time"
	}
	return fmt.Sprintf("last %d days", days)
}
