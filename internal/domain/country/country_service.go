package country

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
	"github.com/FACorreiaa/tripcraft-api/pkg/observability"
)

const restCountriesURL = "https://restcountries.com/v3.1/all?fields=name,capital,region,subregion,population,area,languages,currencies,flag,timezones,borders,cca2,latlng"

const cacheKey = "countries_all"

// Service lists country metadata for destination selection.
type Service interface {
	ListCountries(ctx context.Context) []types.CountryInfo
}

// ServiceImpl fetches the REST Countries directory, sorted by common name,
// cached for 24 hours. Upstream failure yields an empty list, never an error.
type ServiceImpl struct {
	logger  *slog.Logger
	cache   *cache.Cache
	client  *http.Client
	baseURL string
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		cache:   cache.New(24*time.Hour, 1*time.Hour),
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: restCountriesURL,
	}
}

// NewServiceWithBaseURL is a test hook pointing the directory at a local server.
func NewServiceWithBaseURL(logger *slog.Logger, baseURL string) *ServiceImpl {
	s := NewServiceImpl(logger)
	s.baseURL = baseURL
	return s
}

func (s *ServiceImpl) ListCountries(ctx context.Context) []types.CountryInfo {
	ctx, span := otel.Tracer("CountryService").Start(ctx, "ListCountries")
	defer span.End()

	l := s.logger.With(slog.String("method", "ListCountries"))

	if cached, found := s.cache.Get(cacheKey); found {
		observability.CacheLookups.WithLabelValues("countries", "hit").Inc()
		span.SetStatus(codes.Ok, "cache hit")
		return cached.([]types.CountryInfo)
	}
	observability.CacheLookups.WithLabelValues("countries", "miss").Inc()

	countries, err := s.fetch(ctx)
	if err != nil {
		observability.ProviderRequests.WithLabelValues("restcountries", "error").Inc()
		l.WarnContext(ctx, "Country directory fetch failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return []types.CountryInfo{}
	}
	observability.ProviderRequests.WithLabelValues("restcountries", "success").Inc()

	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	s.cache.Set(cacheKey, countries, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "fetched")
	return countries
}

func (s *ServiceImpl) fetch(ctx context.Context) ([]types.CountryInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var raw []struct {
		Name struct {
			Common   string `json:"common"`
			Official string `json:"official"`
		} `json:"name"`
		Capital    []string                   `json:"capital"`
		Region     string                     `json:"region"`
		Subregion  string                     `json:"subregion"`
		Population int64                      `json:"population"`
		Area       float64                    `json:"area"`
		Languages  map[string]string          `json:"languages"`
		Currencies map[string]json.RawMessage `json:"currencies"`
		Flag       string                     `json:"flag"`
		Timezones  []string                   `json:"timezones"`
		Borders    []string                   `json:"borders"`
		CCA2       string                     `json:"cca2"`
		LatLng     []float64                  `json:"latlng"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	countries := make([]types.CountryInfo, 0, len(raw))
	for _, c := range raw {
		info := types.CountryInfo{
			Name:       c.Name.Common,
			Official:   c.Name.Official,
			Capital:    "N/A",
			Region:     c.Region,
			Subregion:  c.Subregion,
			Population: c.Population,
			Area:       c.Area,
			Flag:       c.Flag,
			Timezones:  c.Timezones,
			Borders:    c.Borders,
			Code:       c.CCA2,
		}
		if info.Name == "" {
			info.Name = "Unknown"
		}
		if len(c.Capital) > 0 {
			info.Capital = c.Capital[0]
		}
		if info.Region == "" {
			info.Region = "N/A"
		}
		if info.Subregion == "" {
			info.Subregion = "N/A"
		}
		for _, lang := range c.Languages {
			info.Languages = append(info.Languages, lang)
		}
		sort.Strings(info.Languages)
		for code := range c.Currencies {
			info.Currencies = append(info.Currencies, code)
		}
		sort.Strings(info.Currencies)
		if len(c.LatLng) == 2 {
			info.LatLng = types.GeoPoint{Latitude: c.LatLng[0], Longitude: c.LatLng[1]}
		}
		countries = append(countries, info)
	}
	return countries, nil
}
