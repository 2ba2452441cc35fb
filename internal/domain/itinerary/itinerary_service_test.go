package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, prompt, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func (m *MockChatClient) Model() string { return "test-model" }

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

type stubInquiry struct {
	summary types.TripSummary
	err     error
}

func (s *stubInquiry) Extract(_ context.Context, _ string) (types.TripSummary, error) {
	return s.summary, s.err
}

type stubPlaces struct {
	byCity map[string][]types.Place
}

func (s *stubPlaces) GetPlaces(_ context.Context, city, _ string, limit int) []types.Place {
	places := s.byCity[city]
	if len(places) > limit {
		return places[:limit]
	}
	return places
}

func (s *stubPlaces) ClearCache() {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, nil))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func kandySummary() types.TripSummary {
	return types.TripSummary{
		DestinationCountry: "Sri Lanka",
		Destinations:       []string{"Kandy"},
		DurationDays:       2,
		Travelers:          2,
		Budget:             "$1500",
	}
}

func kandyPlaces() map[string][]types.Place {
	return map[string][]types.Place{
		"Kandy": {
			{Name: "Temple of the Sacred Tooth Relic", Type: "Buddhist Temple", Rating: 4.8, Description: "Sacred Buddhist site."},
			{Name: "Kandy Lake", Type: "Lake", Rating: 4.2, Description: "Scenic lake."},
			{Name: "Royal Botanical Gardens Peradeniya", Type: "Botanical Garden", Rating: 4.6, Description: "Famous gardens."},
		},
	}
}

const generationReply = "Here is the plan:\n```json\n" + `{
	"trip_summary": {
		"destination_country": "Wrong Country",
		"destinations": ["Wrong City"],
		"duration_days": 99,
		"travelers": 99,
		"budget": "Wrong",
		"trip_title": "Hills and Heritage",
		"trip_theme": "Culture",
		"currency": "LKR"
	},
	"daily_itinerary": [
		{"day": 4, "title": "Day in Kandy", "overview": "Temples and the lake",
		 "morning": {"activity": "Temple of the Sacred Tooth Relic"},
		 "afternoon": {"time": "2:00 PM - 5:00 PM", "activity": "Kandy Lake", "cost": "$5"},
		 "evening": {}},
		{"day": 4, "title": "Gardens of Kandy",
		 "morning": {"activity": "Royal Botanical Gardens Peradeniya"},
		 "afternoon": {}, "evening": {}}
	],
	"key_attractions": [
		{"name": "Temple of the Sacred Tooth Relic", "city": "Kandy", "type": "Buddhist Temple"},
		{"name": "The Sacred Tooth shrine", "city": "Kandy", "type": "Temple"}
	],
	"cultural_tips": ["Dress modestly at temples"],
	"seasonal_considerations": ["Monsoon from May"]
}` + "\n```\nEnjoy!"

func TestGenerateBuildsItinerary(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(generationReply), nil).Once()

	s := NewServiceImpl(testLogger(), client, &stubInquiry{summary: kandySummary()}, &stubPlaces{byCity: kandyPlaces()})
	itinerary, err := s.Generate(context.Background(), "2 days in Kandy for 2 people, budget $1500")
	require.NoError(t, err)

	// Extraction owns the core summary fields.
	assert.Equal(t, "Sri Lanka", itinerary.Summary.DestinationCountry)
	assert.Equal(t, []string{"Kandy"}, itinerary.Summary.Destinations)
	assert.Equal(t, 2, itinerary.Summary.DurationDays)
	assert.Equal(t, "$1500", itinerary.Summary.Budget)
	assert.Equal(t, "Hills and Heritage", itinerary.Summary.TripTitle)

	// Duplicate day numbers are renumbered contiguously.
	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, 1, itinerary.Days[0].Day)
	assert.Equal(t, 2, itinerary.Days[1].Day)

	// Missing segment fields get placeholders.
	assert.Equal(t, "9:00 AM - 12:00 PM", itinerary.Days[0].Morning.Time)
	assert.Equal(t, "Varies", itinerary.Days[0].Morning.Cost)
	assert.Equal(t, "N/A", itinerary.Days[0].Evening.Activity)
	assert.Equal(t, "$5", itinerary.Days[0].Afternoon.Cost)

	// Exact place names verify; paraphrases stay unverified.
	require.Len(t, itinerary.KeyAttractions, 2)
	assert.True(t, itinerary.KeyAttractions[0].Verified)
	assert.False(t, itinerary.KeyAttractions[1].Verified)

	assert.Equal(t, kandyPlaces()["Kandy"], itinerary.PlacesByCity["Kandy"])
	assert.NotEqual(t, "", itinerary.ID.String())
	assert.Equal(t, "test-model", itinerary.ModelUsed)
	assert.False(t, itinerary.GeneratedAt.IsZero())
	client.AssertExpectations(t)
}

func TestGenerateStoresLastItinerary(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(generationReply), nil).Once()

	s := NewServiceImpl(testLogger(), client, &stubInquiry{summary: kandySummary()}, &stubPlaces{byCity: kandyPlaces()})
	generated, err := s.Generate(context.Background(), "2 days in Kandy")
	require.NoError(t, err)

	last, err := s.Last(context.Background())
	require.NoError(t, err)
	assert.Equal(t, generated.ID, last.ID)
}

func TestLastWithoutGenerate(t *testing.T) {
	s := NewServiceImpl(testLogger(), new(MockChatClient), &stubInquiry{}, &stubPlaces{})
	_, err := s.Last(context.Background())
	assert.ErrorIs(t, err, types.ErrNoItinerary)
}

func TestGenerateExtractionFailurePropagates(t *testing.T) {
	s := NewServiceImpl(testLogger(), new(MockChatClient),
		&stubInquiry{err: types.ErrNoDestinations}, &stubPlaces{})
	_, err := s.Generate(context.Background(), "somewhere nice")
	assert.ErrorIs(t, err, types.ErrNoDestinations)
}

func TestGenerateModelFailure(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()

	s := NewServiceImpl(testLogger(), client, &stubInquiry{summary: kandySummary()}, &stubPlaces{byCity: kandyPlaces()})
	_, err := s.Generate(context.Background(), "2 days in Kandy")
	assert.ErrorIs(t, err, types.ErrGenerationFailed)
}

func TestGenerateUnparseableResponse(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse("I could not produce the itinerary."), nil).Once()

	s := NewServiceImpl(testLogger(), client, &stubInquiry{summary: kandySummary()}, &stubPlaces{byCity: kandyPlaces()})
	_, err := s.Generate(context.Background(), "2 days in Kandy")
	assert.ErrorIs(t, err, types.ErrGenerationFailed)
}

func TestGenerationPromptCarriesPlacesAndDetails(t *testing.T) {
	prompt := getGenerationPrompt("2 days in Kandy", kandySummary(), kandyPlaces())

	assert.Contains(t, prompt, "Temple of the Sacred Tooth Relic")
	assert.Contains(t, prompt, "Duration: 2 days")
	assert.Contains(t, prompt, "Budget: $1500")
	assert.Contains(t, prompt, "2 days in Kandy")
}
