package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

func getGenerationPrompt(inquiry string, summary types.TripSummary, placesByCity map[string][]types.Place) string {
	placesJSON, _ := json.MarshalIndent(placesByCity, "", "  ")
	destinationsJSON, _ := json.Marshal(summary.Destinations)
	interests := strings.Join(summary.Interests, ", ")
	if interests == "" {
		interests = "General"
	}
	dates := summary.TravelDates
	if dates == "" {
		dates = "Not specified"
	}

	return fmt.Sprintf(`You are an expert travel planner with deep knowledge of global destinations.

Create a detailed, realistic multi-city travel itinerary for the route %s in %s.

Available real places by city:
%s

Travel details:
- Duration: %d days
- Travelers: %d
- Budget: %s
- Interests: %s
- Dates: %s

IMPORTANT: Use the real places listed above, selecting from the appropriate city's list for each day. Include specific details like:
- Opening hours
- Ticket prices
- Best times to visit
- Transportation tips
- Local food recommendations
- Cultural insights

Return ONLY valid JSON with this structure:
{
    "trip_summary": {
        "destination_country": "%s",
        "destinations": %s,
        "duration_days": %d,
        "travelers": %d,
        "budget": "%s",
        "trip_title": "string",
        "trip_theme": "string",
        "best_time_to_visit": "string",
        "currency": "string",
        "language": "string",
        "time_zone": "string",
        "visa_requirements": "string",
        "vaccinations": "string",
        "safety_tips": "string",
        "packing_tips": "string"
    },
    "daily_itinerary": [
        {
            "day": 1,
            "title": "string (include city name)",
            "overview": "string",
            "morning": {
                "time": "9:00 AM - 12:00 PM",
                "activity": "string (use real place names)",
                "description": "detailed description",
                "duration": "3 hours",
                "cost": "string",
                "transportation": "string",
                "tips": "string"
            },
            "afternoon": {...},
            "evening": {...},
            "accommodation_suggestion": "string",
            "food_recommendations": ["string"]
        }
    ],
    "key_attractions": [
        {
            "name": "string (must be from real places list)",
            "city": "string (the city where this attraction is)",
            "type": "string",
            "description": "string",
            "best_time_to_visit": "string",
            "ticket_price": "string",
            "opening_hours": "string",
            "duration_needed": "string",
            "transportation": "string",
            "tips": "string"
        }
    ],
    "local_cuisine": [
        {
            "dish": "string",
            "description": "string",
            "where_to_try": "string",
            "approximate_cost": "string",
            "vegetarian_option": boolean
        }
    ],
    "transportation_guide": {
        "airport_transfer": "string",
        "public_transportation": "string",
        "taxi_services": "string",
        "car_rental": "string",
        "walking_tours": "string",
        "transportation_tips": ["string"]
    },
    "accommodation_recommendations": [
        {
            "type": "string (Budget/Mid-range/Luxury)",
            "suggestions": ["string"],
            "average_price": "string",
            "best_locations": ["string"]
        }
    ],
    "cultural_tips": ["string"],
    "budget_breakdown": {
        "accommodation": "string",
        "food": "string",
        "transportation": "string",
        "activities": "string",
        "souvenirs": "string",
        "miscellaneous": "string",
        "total_estimate": "string"
    },
    "emergency_information": {
        "emergency_number": "string",
        "police": "string",
        "ambulance": "string",
        "tourist_police": "string",
        "nearest_hospital": "string",
        "embassy_contact": "string"
    },
    "seasonal_considerations": ["string"]
}

Make it practical, detailed, and based on actual tourism information.

Create a comprehensive itinerary for this trip: %s`,
		strings.Join(summary.Destinations, ", "), summary.DestinationCountry,
		string(placesJSON),
		summary.DurationDays, summary.Travelers, summary.Budget, interests, dates,
		summary.DestinationCountry, string(destinationsJSON),
		summary.DurationDays, summary.Travelers, summary.Budget,
		inquiry)
}
