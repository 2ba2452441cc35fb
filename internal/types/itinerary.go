package types

import (
	"time"

	"github.com/google/uuid"
)

// TripSummary holds the structured trip parameters. The first five fields
// come from the extraction pass over the user's inquiry; the descriptive
// tail is filled in by the generation pass and is not validated beyond
// presence.
type TripSummary struct {
	DestinationCountry string   `json:"destination_country"`
	Destinations       []string `json:"destinations"`
	DurationDays       int      `json:"duration_days"`
	Travelers          int      `json:"travelers"`
	Budget             string   `json:"budget"`
	Interests          []string `json:"interests,omitempty"`
	TravelDates        string   `json:"travel_dates,omitempty"`

	TripTitle        string `json:"trip_title,omitempty"`
	TripTheme        string `json:"trip_theme,omitempty"`
	BestTimeToVisit  string `json:"best_time_to_visit,omitempty"`
	Currency         string `json:"currency,omitempty"`
	Language         string `json:"language,omitempty"`
	TimeZone         string `json:"time_zone,omitempty"`
	VisaRequirements string `json:"visa_requirements,omitempty"`
	Vaccinations     string `json:"vaccinations,omitempty"`
	SafetyTips       string `json:"safety_tips,omitempty"`
	PackingTips      string `json:"packing_tips,omitempty"`
}

// Segment is one activity block of a day (morning, afternoon or evening).
type Segment struct {
	Time           string `json:"time"`
	Activity       string `json:"activity"`
	Description    string `json:"description"`
	Duration       string `json:"duration,omitempty"`
	Cost           string `json:"cost"`
	Transportation string `json:"transportation"`
	Tips           string `json:"tips"`
}

// DayPlan is a single itinerary day. Day numbers are unique and contiguous
// across an Itinerary after normalization.
type DayPlan struct {
	Day                     int      `json:"day"`
	Title                   string   `json:"title"`
	Overview                string   `json:"overview"`
	Morning                 Segment  `json:"morning"`
	Afternoon               Segment  `json:"afternoon"`
	Evening                 Segment  `json:"evening"`
	AccommodationSuggestion string   `json:"accommodation_suggestion"`
	FoodRecommendations     []string `json:"food_recommendations"`
}

// Attraction is a highlighted place tagged with its owning city.
// Verified reports whether the name matched the city's place list captured
// at generation time; a false value is advisory, never fatal.
type Attraction struct {
	Name            string `json:"name"`
	City            string `json:"city"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	BestTimeToVisit string `json:"best_time_to_visit"`
	TicketPrice     string `json:"ticket_price"`
	OpeningHours    string `json:"opening_hours"`
	DurationNeeded  string `json:"duration_needed"`
	Transportation  string `json:"transportation"`
	Tips            string `json:"tips"`
	Verified        bool   `json:"verified"`
}

// CuisineItem is a local dish recommendation.
type CuisineItem struct {
	Dish             string `json:"dish"`
	Description      string `json:"description"`
	WhereToTry       string `json:"where_to_try"`
	ApproximateCost  string `json:"approximate_cost"`
	VegetarianOption bool   `json:"vegetarian_option"`
}

// TransportationGuide describes how to get around the destination.
type TransportationGuide struct {
	AirportTransfer      string   `json:"airport_transfer"`
	PublicTransportation string   `json:"public_transportation"`
	TaxiServices         string   `json:"taxi_services"`
	CarRental            string   `json:"car_rental"`
	WalkingTours         string   `json:"walking_tours"`
	Tips                 []string `json:"transportation_tips"`
}

// AccommodationTier groups lodging suggestions by price band.
type AccommodationTier struct {
	Type          string   `json:"type"`
	Suggestions   []string `json:"suggestions"`
	AveragePrice  string   `json:"average_price"`
	BestLocations []string `json:"best_locations"`
}

// BudgetBreakdown is the per-category cost estimate. Values are free-form
// strings as returned by the model ("$40-60/day"), not parsed amounts.
type BudgetBreakdown struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Transport     string `json:"transportation"`
	Activities    string `json:"activities"`
	Souvenirs     string `json:"souvenirs"`
	Miscellaneous string `json:"miscellaneous"`
	TotalEstimate string `json:"total_estimate"`
}

// EmergencyInfo carries local emergency contacts.
type EmergencyInfo struct {
	EmergencyNumber string `json:"emergency_number"`
	Police          string `json:"police"`
	Ambulance       string `json:"ambulance"`
	TouristPolice   string `json:"tourist_police"`
	NearestHospital string `json:"nearest_hospital"`
	EmbassyContact  string `json:"embassy_contact"`
}

// Itinerary is the full generated trip plan, held as a single immutable
// snapshot per session until regenerated.
type Itinerary struct {
	ID                     uuid.UUID           `json:"id"`
	Summary                TripSummary         `json:"trip_summary"`
	Days                   []DayPlan           `json:"daily_itinerary"`
	KeyAttractions         []Attraction        `json:"key_attractions"`
	LocalCuisine           []CuisineItem       `json:"local_cuisine,omitempty"`
	Transportation         TransportationGuide `json:"transportation_guide,omitempty"`
	Accommodation          []AccommodationTier `json:"accommodation_recommendations,omitempty"`
	CulturalTips           []string            `json:"cultural_tips,omitempty"`
	Budget                 BudgetBreakdown     `json:"budget_breakdown,omitempty"`
	Emergency              EmergencyInfo       `json:"emergency_information,omitempty"`
	SeasonalConsiderations []string            `json:"seasonal_considerations,omitempty"`
	PlacesByCity           map[string][]Place  `json:"places_by_city"`
	GeneratedAt            time.Time           `json:"generated_at"`
	ModelUsed              string              `json:"model_used,omitempty"`
}
