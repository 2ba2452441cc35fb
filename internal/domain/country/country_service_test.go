package country

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, nil))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

const directoryPayload = `[
	{"name": {"common": "Sri Lanka", "official": "Democratic Socialist Republic of Sri Lanka"},
	 "capital": ["Sri Jayawardenepura Kotte"], "region": "Asia", "subregion": "Southern Asia",
	 "population": 21919000, "area": 65610,
	 "languages": {"sin": "Sinhala", "tam": "Tamil"},
	 "currencies": {"LKR": {"name": "Sri Lankan rupee", "symbol": "Rs"}},
	 "flag": "🇱🇰", "timezones": ["UTC+05:30"], "borders": ["IND"], "cca2": "LK",
	 "latlng": [7.0, 81.0]},
	{"name": {"common": "Australia", "official": "Commonwealth of Australia"},
	 "capital": ["Canberra"], "region": "Oceania", "population": 25687041,
	 "currencies": {"AUD": {"name": "Australian dollar"}}, "cca2": "AU", "latlng": [-27.0, 133.0]}
]`

func TestListCountriesSortsAndNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(directoryPayload))
	}))
	defer server.Close()

	s := NewServiceWithBaseURL(testLogger(), server.URL)
	countries := s.ListCountries(context.Background())

	require.Len(t, countries, 2)
	assert.Equal(t, "Australia", countries[0].Name)

	lk := countries[1]
	assert.Equal(t, "Sri Lanka", lk.Name)
	assert.Equal(t, "Sri Jayawardenepura Kotte", lk.Capital)
	assert.Equal(t, []string{"Sinhala", "Tamil"}, lk.Languages)
	assert.Equal(t, []string{"LKR"}, lk.Currencies)
	assert.Equal(t, "LK", lk.Code)
	assert.InDelta(t, 7.0, lk.LatLng.Latitude, 1e-9)
	assert.Equal(t, "N/A", countries[0].Subregion)
}

func TestListCountriesSoftFailsToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	s := NewServiceWithBaseURL(testLogger(), server.URL)
	countries := s.ListCountries(context.Background())

	assert.Empty(t, countries)
}

func TestListCountriesCachesDirectory(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(directoryPayload))
	}))
	defer server.Close()

	s := NewServiceWithBaseURL(testLogger(), server.URL)
	s.ListCountries(context.Background())
	s.ListCountries(context.Background())

	assert.Equal(t, 1, calls)
}
