package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"expo-ticketing/internal/models"
)

// Criteria holds the optional listing filters. Zero-valued fields impose no
// restriction; all active fields combine with AND.
type Criteria struct {
	SearchText string
	City       string
	Category   string
	PriceMin   float64
	PriceMax   float64
	DateFrom   time.Time
	DateTo     time.Time
}

// CacheKey is a canonical string form of the criteria, used to key the
// redis search cache.
func (c Criteria) CacheKey(key SortKey) string {
	return fmt.Sprintf("search:%s|%s|%s|%g|%g|%d|%d|%s",
		strings.ToLower(c.SearchText), strings.ToLower(c.City), strings.ToLower(c.Category),
		c.PriceMin, c.PriceMax, c.DateFrom.Unix(), c.DateTo.Unix(), key)
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDate      SortKey = "date"
)

// ParseSortKey maps a query value to a sort key, defaulting to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortRating, SortPriceLow, SortPriceHigh, SortDate:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// FilterAndSort returns a new, ordered slice of the exhibitions matching the
// criteria. The input is never mutated. Inverted price or date bounds match
// nothing rather than erroring.
func FilterAndSort(exhibitions []models.Exhibition, c Criteria, key SortKey) []models.Exhibition {
	if c.PriceMax > 0 && c.PriceMin > c.PriceMax {
		return []models.Exhibition{}
	}
	if !c.DateFrom.IsZero() && !c.DateTo.IsZero() && c.DateFrom.After(c.DateTo) {
		return []models.Exhibition{}
	}

	result := make([]models.Exhibition, 0, len(exhibitions))
	for _, e := range exhibitions {
		if matches(e, c) {
			result = append(result, e)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceRange.Min < result[j].PriceRange.Min
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceRange.Min > result[j].PriceRange.Min
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortDate:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].StartDate.Before(result[j].StartDate)
		})
	default:
		// Featured entries first, input order preserved within each group.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Featured && !result[j].Featured
		})
	}

	return result
}

func matches(e models.Exhibition, c Criteria) bool {
	if c.SearchText != "" && !matchesSearch(e, c.SearchText) {
		return false
	}
	if c.City != "" && !strings.EqualFold(e.City, c.City) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(e.Category, c.Category) {
		return false
	}
	if c.PriceMin > 0 && e.PriceRange.Min < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && e.PriceRange.Min > c.PriceMax {
		return false
	}
	// The exhibition's run must overlap the queried window.
	if !c.DateTo.IsZero() && e.StartDate.After(c.DateTo) {
		return false
	}
	if !c.DateFrom.IsZero() && e.EndDate.Before(c.DateFrom) {
		return false
	}
	return true
}

func matchesSearch(e models.Exhibition, text string) bool {
	query := strings.ToLower(text)
	for _, field := range []string{e.Title, e.Description, e.Venue, e.City, e.Category} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
