package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

type stubItinerary struct {
	generated *types.Itinerary
	genErr    error
	last      *types.Itinerary
	lastErr   error
	daily     []types.DailyPlace
	csv       []byte
}

func (s *stubItinerary) Generate(_ context.Context, _ string) (*types.Itinerary, error) {
	return s.generated, s.genErr
}

func (s *stubItinerary) Last(_ context.Context) (*types.Itinerary, error) {
	return s.last, s.lastErr
}

func (s *stubItinerary) PlacesForDay(_ context.Context, _ int, _, _ string, _ int) []types.DailyPlace {
	return s.daily
}

func (s *stubItinerary) ExportCSV(_ context.Context, _ *types.Itinerary) ([]byte, error) {
	return s.csv, nil
}

type stubPlaces struct {
	places  []types.Place
	cleared bool
}

func (s *stubPlaces) GetPlaces(_ context.Context, _, _ string, limit int) []types.Place {
	if len(s.places) > limit {
		return s.places[:limit]
	}
	return s.places
}

func (s *stubPlaces) ClearCache() { s.cleared = true }

type stubImages struct {
	ref types.ImageRef
}

func (s *stubImages) ResolveImage(_ context.Context, _, _, _, _ string) types.ImageRef {
	return s.ref
}

type stubCountries struct {
	countries []types.CountryInfo
}

func (s *stubCountries) ListCountries(_ context.Context) []types.CountryInfo {
	return s.countries
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, nil))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestServer(it *stubItinerary, places *stubPlaces) (*httptest.Server, *stubPlaces) {
	if it == nil {
		it = &stubItinerary{}
	}
	if places == nil {
		places = &stubPlaces{}
	}
	handler := NewHandler(testLogger(), it, places,
		&stubImages{ref: types.ImageRef{URL: "https://img", Source: "Unsplash"}},
		&stubCountries{countries: []types.CountryInfo{{Name: "Sri Lanka", Code: "LK"}}})
	mux := http.NewServeMux()
	handler.Register(mux)
	return httptest.NewServer(mux), places
}

func TestGenerateItinerary(t *testing.T) {
	generated := &types.Itinerary{ID: uuid.New(), Summary: types.TripSummary{Destinations: []string{"Kandy"}}}
	server, _ := newTestServer(&stubItinerary{generated: generated}, nil)
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/itineraries", "application/json",
		strings.NewReader(`{"inquiry": "5 days in Kandy"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var got types.Itinerary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, generated.ID, got.ID)
}

func TestGenerateItineraryRequiresInquiry(t *testing.T) {
	server, _ := newTestServer(nil, nil)
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/itineraries", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateItineraryUpstreamFailureIsGeneric(t *testing.T) {
	server, _ := newTestServer(&stubItinerary{genErr: types.ErrGenerationFailed}, nil)
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/itineraries", "application/json",
		strings.NewReader(`{"inquiry": "5 days in Kandy"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotContains(t, strings.ToLower(body["error"]), "model")
}

func TestGenerateItineraryNoDestinations(t *testing.T) {
	server, _ := newTestServer(&stubItinerary{genErr: types.ErrNoDestinations}, nil)
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/itineraries", "application/json",
		strings.NewReader(`{"inquiry": "somewhere"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLastItineraryNotFound(t *testing.T) {
	server, _ := newTestServer(&stubItinerary{lastErr: types.ErrNoItinerary}, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/itineraries")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportFormats(t *testing.T) {
	last := &types.Itinerary{ID: uuid.New(), Summary: types.TripSummary{Destinations: []string{"Galle"}}}
	stub := &stubItinerary{last: last, csv: []byte("Day,Place\n1,Galle Fort\n")}
	server, _ := newTestServer(stub, nil)
	defer server.Close()

	t.Run("json", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/itineraries/export?format=json")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})

	t.Run("csv", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/itineraries/export?format=csv")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	})

	t.Run("text", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/itineraries/export?format=text")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	})

	t.Run("unknown format", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/itineraries/export?format=pdf")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListPlaces(t *testing.T) {
	server, _ := newTestServer(nil, &stubPlaces{places: []types.Place{{Name: "Galle Fort", Type: "Fort"}}})
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/places?city=Galle&country=Sri+Lanka")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		City   string        `json:"city"`
		Places []types.Place `json:"places"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Galle", body.City)
	require.Len(t, body.Places, 1)
	assert.Equal(t, "Galle Fort", body.Places[0].Name)
}

func TestListPlacesRequiresCity(t *testing.T) {
	server, _ := newTestServer(nil, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/places?country=Sri+Lanka")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlacesForDay(t *testing.T) {
	stub := &stubItinerary{daily: []types.DailyPlace{
		{Place: types.Place{Name: "Galle Fort"}, BestTime: "Morning 9AM-12PM (Best for photos)", Icon: "🏯"},
	}}
	server, _ := newTestServer(stub, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/places/day?day=2&city=Galle&country=Sri+Lanka")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Day    int                `json:"day"`
		Places []types.DailyPlace `json:"places"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Day)
	require.Len(t, body.Places, 1)
	assert.Equal(t, "🏯", body.Places[0].Icon)
}

func TestResolveImage(t *testing.T) {
	server, _ := newTestServer(nil, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/images?place=Galle+Fort&city=Galle&country=Sri+Lanka")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ref types.ImageRef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ref))
	assert.Equal(t, "Unsplash", ref.Source)
}

func TestListCountries(t *testing.T) {
	server, _ := newTestServer(nil, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/countries")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Countries []types.CountryInfo `json:"countries"`
		Count     int                 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "Sri Lanka", body.Countries[0].Name)
}

func TestClearCache(t *testing.T) {
	server, places := newTestServer(nil, &stubPlaces{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/cache/clear", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, places.cleared)
}
