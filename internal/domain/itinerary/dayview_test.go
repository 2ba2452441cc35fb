package itinerary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

func dayViewService(byCity map[string][]types.Place) *ServiceImpl {
	return NewServiceImpl(testLogger(), new(MockChatClient), &stubInquiry{}, &stubPlaces{byCity: byCity})
}

func TestPlacesForDaySlidesWindow(t *testing.T) {
	places := []types.Place{
		{Name: "A", Type: "Museum"}, {Name: "B", Type: "Beach"}, {Name: "C", Type: "Fort"},
		{Name: "D", Type: "Park"}, {Name: "E", Type: "Lake"}, {Name: "F", Type: "Temple"},
	}
	s := dayViewService(map[string][]types.Place{"Galle": places})

	day1 := s.PlacesForDay(context.Background(), 1, "Galle", "Sri Lanka", 3)
	day2 := s.PlacesForDay(context.Background(), 2, "Galle", "Sri Lanka", 3)

	require.Len(t, day1, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{day1[0].Name, day1[1].Name, day1[2].Name})
	assert.Equal(t, []string{"D", "E", "F"}, []string{day2[0].Name, day2[1].Name, day2[2].Name})
}

func TestPlacesForDayWrapsModulo(t *testing.T) {
	places := []types.Place{
		{Name: "A", Type: "Museum"}, {Name: "B", Type: "Beach"}, {Name: "C", Type: "Fort"},
	}
	s := dayViewService(map[string][]types.Place{"Ella": places})

	day1 := s.PlacesForDay(context.Background(), 1, "Ella", "Sri Lanka", 3)
	day4 := s.PlacesForDay(context.Background(), 4, "Ella", "Sri Lanka", 3)

	require.Len(t, day4, 3)
	for i := range day1 {
		assert.Equal(t, day1[i].Name, day4[i].Name)
	}
}

func TestPlacesForDayIsDeterministic(t *testing.T) {
	places := []types.Place{
		{Name: "A", Type: "Museum"}, {Name: "B", Type: "Beach"}, {Name: "C", Type: "Fort"},
	}
	s := dayViewService(map[string][]types.Place{"Mirissa": places})

	first := s.PlacesForDay(context.Background(), 2, "Mirissa", "Sri Lanka", 3)
	second := s.PlacesForDay(context.Background(), 2, "Mirissa", "Sri Lanka", 3)

	assert.Equal(t, first, second)
}

func TestPlacesForDayDecorations(t *testing.T) {
	places := []types.Place{
		{Name: "Galle Fort", Type: "Fort"},
		{Name: "Jungle Beach", Type: "Beach"},
		{Name: "Mystery Spot", Type: "Unmapped Type"},
	}
	s := dayViewService(map[string][]types.Place{"Galle": places})

	got := s.PlacesForDay(context.Background(), 1, "Galle", "Sri Lanka", 3)
	require.Len(t, got, 3)

	assert.Equal(t, "Morning 9AM-12PM (Best for photos)", got[0].BestTime)
	assert.Equal(t, "Afternoon 2PM-5PM (Avoid crowds)", got[1].BestTime)
	assert.Equal(t, "Evening 6PM-9PM (Beautiful sunset views)", got[2].BestTime)
	assert.Equal(t, "2-3 hours", got[0].Duration)
	assert.Equal(t, "🏯", got[0].Icon)
	assert.Equal(t, "🏖️", got[1].Icon)
	assert.Equal(t, "📍", got[2].Icon)
	assert.Equal(t, []string{"Fort", "Popular", "Must Visit"}, got[0].Tags)
}

func TestPlacesForDayEmptyCity(t *testing.T) {
	s := dayViewService(map[string][]types.Place{})
	assert.Empty(t, s.PlacesForDay(context.Background(), 1, "Atlantis", "Nowhere", 3))
}

func TestPlacesForDayRejectsInvalidArgs(t *testing.T) {
	s := dayViewService(map[string][]types.Place{"Galle": {{Name: "A"}}})
	assert.Empty(t, s.PlacesForDay(context.Background(), 0, "Galle", "Sri Lanka", 3))
	assert.Empty(t, s.PlacesForDay(context.Background(), 1, "Galle", "Sri Lanka", 0))
}
