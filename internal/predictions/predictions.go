// Package predictions holds the immutable prediction catalog and the
// month-level timeline aggregation derived from it.
//
// The catalog is deduplicated once at load: records colliding on id or on the
// (title, year, month, domain) content key are copy-paste duplicates and only
// the first occurrence is kept. Aggregation produces a dense month-by-month
// sequence where every domain carries a 0.5 neutral prior unless a prediction
// for that exact month overwrites it.
package predictions

import (
	"rehoboam/internal/models"
)

var catalog = Dedupe(rawCatalog)

// Dedupe returns the input with duplicate predictions removed, preserving
// original order. A record is a duplicate when its id or its content key
// (trimmed title|year|month|domain) was already seen; the first occurrence
// wins.
func Dedupe(raw []models.Prediction) []models.Prediction {
	seenIDs := make(map[string]bool, len(raw))
	seenContent := make(map[string]bool, len(raw))

	out := make([]models.Prediction, 0, len(raw))
	for _, p := range raw {
		contentKey := p.ContentKey()
		if seenIDs[p.ID] || seenContent[contentKey] {
			continue
		}
		seenIDs[p.ID] = true
		seenContent[contentKey] = true
		out = append(out, p)
	}
	return out
}

// Catalog returns the full deduplicated prediction list in catalog order.
// Callers must not mutate the returned slice.
func Catalog() []models.Prediction {
	return catalog
}

// YearRange returns the inclusive [minYear, maxYear] span across the catalog.
func YearRange() (minYear, maxYear int) {
	return yearRange(catalog)
}

func yearRange(list []models.Prediction) (minYear, maxYear int) {
	if len(list) == 0 {
		return 0, 0
	}
	minYear, maxYear = list[0].Year, list[0].Year
	for _, p := range list[1:] {
		if p.Year < minYear {
			minYear = p.Year
		}
		if p.Year > maxYear {
			maxYear = p.Year
		}
	}
	return minYear, maxYear
}

// MonthName returns the short English name for a zero-based month, or an
// empty string when the month is out of range.
func MonthName(month int) string {
	names := []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	if month < 0 || month > 11 {
		return ""
	}
	return names[month]
}
