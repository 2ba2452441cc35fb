package itinerary

import (
	"context"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

var bestTimes = []string{
	"Morning 9AM-12PM (Best for photos)",
	"Afternoon 2PM-5PM (Avoid crowds)",
	"Evening 6PM-9PM (Beautiful sunset views)",
}

var visitDurations = []string{"2-3 hours", "3-4 hours", "1-2 hours"}

var typeIcons = map[string]string{
	"Buddhist Temple": "🛕", "Hindu Temple": "🛕", "Mosque": "🕌", "Church": "⛪",
	"Temple": "🛕", "Park": "🏞️", "Museum": "🏛️", "Historic": "🏛️",
	"Market": "🛍️", "Beach": "🏖️", "Palace": "🏰", "Castle": "🏰",
	"Viewpoint": "🌄", "Garden": "🌿", "Lake": "🌊", "Statue": "🗽",
	"Fort": "🏯", "Cathedral": "⛪", "Shrine": "⛩️",
	"Religious": "🕌", "Natural": "🌲", "Architecture": "🏢", "Attraction": "📍",
	"Bridge": "🌉", "Hiking Trail": "🥾", "Waterfall": "🌊", "Plantation": "🍵",
	"Lagoon": "🏝️", "Island": "🏝️", "Lighthouse": "🗼", "Forest Reserve": "🌳",
	"National Park": "🐘", "Wildlife Safari": "🐅", "Conservation Center": "🐘",
	"Archaeological Site": "🏺", "Ancient Structure": "🏛️", "Monument": "🗽",
	"Mountain": "⛰️", "River": "🌊", "Cave": "🕳️", "Hot Springs": "♨️",
	"Reservoir": "💧", "Wetland": "🌿", "Bird Sanctuary": "🦅", "Marine Sanctuary": "🐠",
	"Adventure Sports": "🏄", "Surf Spot": "🏄", "Boat Tour": "🚤", "Cultural Show": "🎭",
	"Workshop": "🔨", "Farm": "🚜", "Tea Factory": "🍵", "Mine": "⛏️",
	"Golf Course": "⛳", "Sports Venue": "🏟️", "Airport": "✈️", "Port": "🚢",
	"Town": "🏙️", "Village": "🏡", "Historical House": "🏚️", "Film Location": "🎬",
	"Camping": "🏕️", "Scenic Route": "🛣️", "Modern Infrastructure": "🏗️",
	"Accommodation": "🏨", "Dining": "🍽️", "Nightlife": "🍸", "Shopping": "🛍️",
	"Cultural Experience": "🎎", "Educational": "📚", "Photography": "📷",
	"Pilgrimage Site": "🙏", "Religious Tour": "🛐", "Rural Tourism": "🌾",
}

const defaultIcon = "📍"

// PlacesForDay picks numPlaces places for the given day, sliding a window
// over the city's place list and wrapping modulo its length. Day 1 starts at
// the head; successive days shift by numPlaces, so short lists repeat.
func (s *ServiceImpl) PlacesForDay(ctx context.Context, day int, city, country string, numPlaces int) []types.DailyPlace {
	if day < 1 || numPlaces < 1 {
		return []types.DailyPlace{}
	}

	all := s.places.GetPlaces(ctx, city, country, 20)
	if len(all) == 0 {
		return []types.DailyPlace{}
	}

	startIdx := (day - 1) * numPlaces
	selected := make([]types.DailyPlace, 0, numPlaces)
	for i := 0; i < numPlaces; i++ {
		place := all[(startIdx+i)%len(all)]
		selected = append(selected, decoratePlace(place, i))
	}
	return selected
}

func decoratePlace(place types.Place, slot int) types.DailyPlace {
	icon, ok := typeIcons[place.Type]
	if !ok {
		icon = defaultIcon
	}
	return types.DailyPlace{
		Place:    place,
		BestTime: bestTimes[slot%len(bestTimes)],
		Duration: visitDurations[slot%len(visitDurations)],
		Icon:     icon,
		Tags:     []string{place.Type, "Popular", "Must Visit"},
	}
}
