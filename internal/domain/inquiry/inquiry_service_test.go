package inquiry

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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, nil))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestExtractParsesInquiry(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(`{
			"destination_country": "Sri Lanka",
			"destinations": ["Kandy", "Galle"],
			"duration_days": 5,
			"travelers": 2,
			"budget": "$1500",
			"interests": ["culture", "beaches"],
			"travel_dates": "July 2026"
		}`), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	summary, err := s.Extract(context.Background(),
		"Planning a 5 day trip to Kandy and Galle for 2 people, budget $1500")

	require.NoError(t, err)
	assert.Equal(t, "Sri Lanka", summary.DestinationCountry)
	assert.Equal(t, []string{"Kandy", "Galle"}, summary.Destinations)
	assert.Equal(t, 5, summary.DurationDays)
	assert.Equal(t, 2, summary.Travelers)
	assert.Equal(t, "$1500", summary.Budget)
	client.AssertExpectations(t)
}

func TestExtractPromotesSingleCity(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(`{"destination_country": "Sri Lanka", "destination_city": "Colombo", "duration_days": 3}`), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	summary, err := s.Extract(context.Background(), "Weekend in Colombo")

	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo"}, summary.Destinations)
}

func TestExtractAppliesDefaults(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(`{"destination_country": "Sri Lanka", "destinations": ["Ella"]}`), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	summary, err := s.Extract(context.Background(), "Take me to Ella")

	require.NoError(t, err)
	assert.Equal(t, 5, summary.DurationDays)
	assert.Equal(t, 2, summary.Travelers)
	assert.Equal(t, "Medium", summary.Budget)
}

func TestExtractStripsFences(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse("```json\n{\"destinations\": [\"Jaffna\"], \"duration_days\": 2,}\n```"), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	summary, err := s.Extract(context.Background(), "Two days in Jaffna")

	require.NoError(t, err)
	assert.Equal(t, []string{"Jaffna"}, summary.Destinations)
	assert.Equal(t, 2, summary.DurationDays)
}

func TestExtractNoDestinations(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse(`{"destination_country": "", "destinations": []}`), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	_, err := s.Extract(context.Background(), "I want to go somewhere nice")

	assert.ErrorIs(t, err, types.ErrNoDestinations)
}

func TestExtractModelFailure(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deadline exceeded")).Once()

	s := NewServiceImpl(testLogger(), client)
	_, err := s.Extract(context.Background(), "5 days in Kandy")

	assert.ErrorIs(t, err, types.ErrExtractionFailed)
}

func TestExtractMalformedJSON(t *testing.T) {
	client := new(MockChatClient)
	client.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse("not json at all"), nil).Once()

	s := NewServiceImpl(testLogger(), client)
	_, err := s.Extract(context.Background(), "5 days in Kandy")

	assert.ErrorIs(t, err, types.ErrExtractionFailed)
}
