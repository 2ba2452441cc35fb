package itinerary

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

const separator = "======================================================================"
const dayRule = "--------------------------------------------------"

// ExportJSON renders the full itinerary snapshot as indented JSON.
func ExportJSON(itinerary *types.Itinerary) ([]byte, error) {
	data, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal itinerary: %w", err)
	}
	return data, nil
}

// ExportText renders a printable travel guide: header, trip summary, the
// day-by-day plan, and the top five key attractions.
func ExportText(itinerary *types.Itinerary) string {
	summary := itinerary.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nCOMPREHENSIVE TRAVEL ITINERARY\n%s\n", separator, separator)
	fmt.Fprintf(&b, "Destination: %s\n", strings.Join(summary.Destinations, ", "))
	fmt.Fprintf(&b, "Duration: %d days\n", summary.DurationDays)
	fmt.Fprintf(&b, "Travelers: %d\n", summary.Travelers)
	fmt.Fprintf(&b, "Budget: %s\n", summary.Budget)
	fmt.Fprintf(&b, "Theme: %s\n", orDefault(summary.TripTheme, "N/A"))

	fmt.Fprintf(&b, "%s\nTRIP SUMMARY\n%s\n", separator, separator)
	fmt.Fprintf(&b, "- Best Time to Visit: %s\n", orDefault(summary.BestTimeToVisit, "N/A"))
	fmt.Fprintf(&b, "- Currency: %s\n", orDefault(summary.Currency, "N/A"))
	fmt.Fprintf(&b, "- Language: %s\n", orDefault(summary.Language, "N/A"))
	fmt.Fprintf(&b, "- Time Zone: %s\n", orDefault(summary.TimeZone, "N/A"))
	fmt.Fprintf(&b, "- Visa Requirements: %s\n", orDefault(summary.VisaRequirements, "N/A"))
	fmt.Fprintf(&b, "- Vaccinations: %s\n", orDefault(summary.Vaccinations, "N/A"))
	fmt.Fprintf(&b, "- Packing Tips: %s\n", orDefault(summary.PackingTips, "N/A"))

	fmt.Fprintf(&b, "%s\nDAILY ITINERARY\n%s\n", separator, separator)
	for _, day := range itinerary.Days {
		fmt.Fprintf(&b, "\nDay %d: %s\n%s\n", day.Day, day.Title, dayRule)
		writeSegment(&b, "Morning", day.Morning)
		writeSegment(&b, "Afternoon", day.Afternoon)
		writeSegment(&b, "Evening", day.Evening)
		fmt.Fprintf(&b, "Accommodation: %s\n", orDefault(day.AccommodationSuggestion, "N/A"))
		fmt.Fprintf(&b, "Food Recommendations: %s\n", strings.Join(day.FoodRecommendations, ", "))
	}

	fmt.Fprintf(&b, "\n%s\nKEY ATTRACTIONS\n%s\n", separator, separator)
	attractions := itinerary.KeyAttractions
	if len(attractions) > 5 {
		attractions = attractions[:5]
	}
	for _, attraction := range attractions {
		fmt.Fprintf(&b, "\n- %s (%s) in %s\n", attraction.Name,
			orDefault(attraction.Type, "Attraction"), orDefault(attraction.City, "N/A"))
		fmt.Fprintf(&b, "  Description: %s\n", orDefault(attraction.Description, "N/A"))
		fmt.Fprintf(&b, "  Best Time: %s\n", orDefault(attraction.BestTimeToVisit, "N/A"))
		fmt.Fprintf(&b, "  Ticket: %s\n", orDefault(attraction.TicketPrice, "N/A"))
		fmt.Fprintf(&b, "  Hours: %s\n", orDefault(attraction.OpeningHours, "N/A"))
		fmt.Fprintf(&b, "  Tips: %s\n", orDefault(attraction.Tips, "N/A"))
	}

	return b.String()
}

func writeSegment(b *strings.Builder, label string, segment types.Segment) {
	fmt.Fprintf(b, "%s (%s):\n", label, orDefault(segment.Time, "N/A"))
	fmt.Fprintf(b, "Activity: %s\n", orDefault(segment.Activity, "N/A"))
	fmt.Fprintf(b, "Description: %s\n", orDefault(segment.Description, "N/A"))
	fmt.Fprintf(b, "Cost: %s\n", orDefault(segment.Cost, "N/A"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ExportCSV renders one row per place per day. Each day's places come from
// the day-view window over the city named in the day title, falling back to
// the first destination when the title names no known city.
func (s *ServiceImpl) ExportCSV(ctx context.Context, itinerary *types.Itinerary) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Day", "Place", "Type", "Rating", "Best Time", "Duration", "Description"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	defaultCity := ""
	if len(itinerary.Summary.Destinations) > 0 {
		defaultCity = itinerary.Summary.Destinations[0]
	}
	country := itinerary.Summary.DestinationCountry

	for _, day := range itinerary.Days {
		city := types.CityFromTitle(day.Title)
		if city == "" {
			city = defaultCity
		}
		for _, place := range s.PlacesForDay(ctx, day.Day, city, country, 3) {
			description := place.Description
			if runes := []rune(description); len(runes) > 150 {
				description = string(runes[:150])
			}
			record := []string{
				strconv.Itoa(day.Day),
				place.Name,
				place.Type,
				strconv.FormatFloat(place.Rating, 'f', -1, 64),
				place.BestTime,
				place.Duration,
				description,
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write csv record: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return []byte(b.String()), nil
}
