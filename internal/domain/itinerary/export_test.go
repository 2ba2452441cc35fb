package itinerary

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

func sampleItinerary() *types.Itinerary {
	return &types.Itinerary{
		ID: uuid.New(),
		Summary: types.TripSummary{
			DestinationCountry: "Sri Lanka",
			Destinations:       []string{"Kandy", "Galle"},
			DurationDays:       2,
			Travelers:          2,
			Budget:             "$1500",
			TripTheme:          "Culture and Coast",
			Currency:           "LKR",
		},
		Days: []types.DayPlan{
			{
				Day: 1, Title: "Temples of Kandy",
				Morning:             types.Segment{Time: "9:00 AM - 12:00 PM", Activity: "Temple visit", Cost: "$10"},
				Afternoon:           types.Segment{Time: "2:00 PM - 5:00 PM", Activity: "Lake walk", Cost: "Free"},
				Evening:             types.Segment{Time: "6:00 PM - 9:00 PM", Activity: "Cultural show", Cost: "$15"},
				FoodRecommendations: []string{"Rice and curry", "Kottu"},
			},
			{Day: 2, Title: "Beaches of Galle"},
		},
		KeyAttractions: []types.Attraction{
			{Name: "Temple of the Sacred Tooth Relic", City: "Kandy", Type: "Buddhist Temple", Verified: true},
		},
		PlacesByCity: map[string][]types.Place{},
	}
}

func TestExportJSONRoundTrips(t *testing.T) {
	original := sampleItinerary()
	data, err := ExportJSON(original)
	require.NoError(t, err)

	var decoded types.Itinerary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Summary.Destinations, decoded.Summary.Destinations)
	assert.Len(t, decoded.Days, 2)
}

func TestExportTextLayout(t *testing.T) {
	text := ExportText(sampleItinerary())

	assert.Contains(t, text, "COMPREHENSIVE TRAVEL ITINERARY")
	assert.Contains(t, text, "Destination: Kandy, Galle")
	assert.Contains(t, text, "Duration: 2 days")
	assert.Contains(t, text, "Theme: Culture and Coast")
	assert.Contains(t, text, "Day 1: Temples of Kandy")
	assert.Contains(t, text, "Activity: Temple visit")
	assert.Contains(t, text, "Food Recommendations: Rice and curry, Kottu")
	assert.Contains(t, text, "KEY ATTRACTIONS")
	assert.Contains(t, text, "Temple of the Sacred Tooth Relic (Buddhist Temple) in Kandy")
}

func TestExportCSVRowsPerDay(t *testing.T) {
	byCity := map[string][]types.Place{
		"Kandy": {
			{Name: "Temple of the Sacred Tooth Relic", Type: "Buddhist Temple", Rating: 4.8, Description: "Sacred site."},
			{Name: "Kandy Lake", Type: "Lake", Rating: 4.2, Description: "Scenic lake."},
			{Name: "Peradeniya Gardens", Type: "Botanical Garden", Rating: 4.6, Description: "Gardens."},
		},
		"Galle": {
			{Name: "Galle Fort", Type: "Fort", Rating: 4.8, Description: "Dutch fort."},
			{Name: "Unawatuna Beach", Type: "Beach", Rating: 4.6, Description: strings.Repeat("Long beach description. ", 20)},
			{Name: "Jungle Beach", Type: "Beach", Rating: 4.5, Description: "Secluded."},
		},
	}
	s := dayViewService(byCity)

	data, err := s.ExportCSV(context.Background(), sampleItinerary())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header plus three places for each of the two days.
	require.Len(t, records, 7)
	assert.Equal(t, []string{"Day", "Place", "Type", "Rating", "Best Time", "Duration", "Description"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Temple of the Sacred Tooth Relic", records[1][1])

	// Day 2's title routes to Galle even though day windows are per city.
	assert.Equal(t, "2", records[4][0])
	assert.Equal(t, "Galle Fort", records[4][1])

	// Descriptions are clipped to 150 characters.
	for _, record := range records[1:] {
		assert.LessOrEqual(t, len([]rune(record[6])), 150)
	}
}
