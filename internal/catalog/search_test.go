package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"expo-ticketing/internal/catalog"
	"expo-ticketing/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureExhibitions() []models.Exhibition {
	return []models.Exhibition{
		{
			ID: "1", Title: "Modern Canvas", Description: "Contemporary painting showcase",
			Venue: "City Gallery", City: "Mumbai", Category: "Art & Culture",
			StartDate: date("2025-03-01"), EndDate: date("2025-05-01"),
			PriceRange: models.PriceRange{Min: 299}, Featured: false, Rating: 4.1,
		},
		{
			ID: "2", Title: "Robotics Live", Description: "Hands-on automation demos",
			Venue: "Science Hall", City: "Delhi", Category: "Science & Tech",
			StartDate: date("2025-04-10"), EndDate: date("2025-04-20"),
			PriceRange: models.PriceRange{Min: 499}, Featured: true, Rating: 4.8,
		},
		{
			ID: "3", Title: "Heritage Walks", Description: "Old city photography exhibits",
			Venue: "Fort Museum", City: "Mumbai", Category: "Photography",
			StartDate: date("2025-02-01"), EndDate: date("2025-02-28"),
			PriceRange: models.PriceRange{Min: 149}, Featured: true, Rating: 4.5,
		},
		{
			ID: "4", Title: "Street Food Stories", Description: "Culinary heritage of the coast",
			Venue: "Trade Centre", City: "Chennai", Category: "Food & Lifestyle",
			StartDate: date("2025-06-01"), EndDate: date("2025-06-15"),
			PriceRange: models.PriceRange{Min: 899}, Featured: false, Rating: 3.9,
		},
	}
}

func ids(exhibitions []models.Exhibition) []string {
	out := make([]string, len(exhibitions))
	for i, e := range exhibitions {
		out[i] = e.ID
	}
	return out
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	input := fixtureExhibitions()
	original := ids(input)

	catalog.FilterAndSort(input, catalog.Criteria{City: "Mumbai"}, catalog.SortPriceHigh)
	catalog.FilterAndSort(input, catalog.Criteria{}, catalog.SortFeatured)

	assert.Equal(t, original, ids(input), "input slice order must be preserved")
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	c := catalog.Criteria{SearchText: "heritage"}
	first := catalog.FilterAndSort(fixtureExhibitions(), c, catalog.SortFeatured)
	second := catalog.FilterAndSort(fixtureExhibitions(), c, catalog.SortFeatured)
	assert.Equal(t, ids(first), ids(second))
}

func TestFilterByCity_CaseInsensitive(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{City: "mumbai"}, catalog.SortFeatured)

	assert.Len(t, result, 2, "every Mumbai exhibition must be returned")
	for _, e := range result {
		assert.Equal(t, "Mumbai", e.City, "only Mumbai exhibitions may be returned")
	}
}

func TestFilterByCategory_CaseInsensitive(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{Category: "science & tech"}, catalog.SortFeatured)
	assert.Equal(t, []string{"2"}, ids(result))
}

func TestFilterByPriceWindow(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{PriceMin: 200, PriceMax: 500}, catalog.SortFeatured)
	for _, e := range result {
		assert.GreaterOrEqual(t, e.PriceRange.Min, 200.0)
		assert.LessOrEqual(t, e.PriceRange.Min, 500.0)
	}
	assert.ElementsMatch(t, []string{"1", "2"}, ids(result))
}

func TestInvertedPriceBounds_MatchNothing(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{PriceMin: 500, PriceMax: 200}, catalog.SortFeatured)
	assert.Empty(t, result)
}

func TestInvertedDateBounds_MatchNothing(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{
		DateFrom: date("2025-06-01"),
		DateTo:   date("2025-03-01"),
	}, catalog.SortFeatured)
	assert.Empty(t, result)
}

func TestDateWindow_MatchesOverlappingRuns(t *testing.T) {
	// A run that starts before the window but overlaps it still matches.
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{
		DateFrom: date("2025-04-15"),
		DateTo:   date("2025-04-25"),
	}, catalog.SortFeatured)
	assert.ElementsMatch(t, []string{"1", "2"}, ids(result))
}

func TestSearchText_MatchesAnyField(t *testing.T) {
	// Title match.
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{SearchText: "robotics"}, catalog.SortFeatured)
	assert.Equal(t, []string{"2"}, ids(result))

	// Venue match, different case.
	result = catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{SearchText: "FORT"}, catalog.SortFeatured)
	assert.Equal(t, []string{"3"}, ids(result))

	// Description match across multiple entries.
	result = catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{SearchText: "heritage"}, catalog.SortFeatured)
	assert.ElementsMatch(t, []string{"3", "4"}, ids(result))
}

func TestCriteriaCombineWithAND(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{
		SearchText: "heritage",
		City:       "Mumbai",
	}, catalog.SortFeatured)
	assert.Equal(t, []string{"3"}, ids(result))
}

func TestSortFeaturedFirst_PreservesInputOrderWithinGroups(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{}, catalog.SortFeatured)
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(result))
}

func TestSortPriceLowToHigh(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{}, catalog.SortPriceLow)
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(result))
}

func TestSortPriceHighToLow(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{}, catalog.SortPriceHigh)
	assert.Equal(t, []string{"4", "2", "1", "3"}, ids(result))
}

func TestSortByRating(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{}, catalog.SortRating)
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(result))
}

func TestSortByStartDate(t *testing.T) {
	result := catalog.FilterAndSort(fixtureExhibitions(), catalog.Criteria{}, catalog.SortDate)
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(result))
}

func TestParseSortKey_DefaultsToFeatured(t *testing.T) {
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortKey(""))
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortKey("garbage"))
	assert.Equal(t, catalog.SortPriceLow, catalog.ParseSortKey("price-low"))
	assert.Equal(t, catalog.SortRating, catalog.ParseSortKey("rating"))
}
