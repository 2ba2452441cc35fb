package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// defaultCentroid is the island centroid used when a city is unknown to both
// the live geocoder and the static table.
var defaultCentroid = types.GeoPoint{Latitude: 7.8731, Longitude: 80.7718}

// Service resolves city names to coordinates.
type Service interface {
	Resolve(ctx context.Context, city, country string) types.GeoPoint
}

// ServiceImpl geocodes through Nominatim with a static table and a country
// centroid behind it. Resolve never fails; it degrades.
type ServiceImpl struct {
	logger    *slog.Logger
	cache     *cache.Cache
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
}

// NewServiceImpl creates the geocoder. Resolved coordinates are cached for
// 24 hours; Nominatim is queried at most once per second per its usage policy.
func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		cache:     cache.New(24*time.Hour, 1*time.Hour),
		client:    &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		baseURL:   nominatimBaseURL,
		userAgent: "tripcraft-api/1.0",
	}
}

// NewServiceWithBaseURL is a test hook pointing the geocoder at a local server.
func NewServiceWithBaseURL(logger *slog.Logger, baseURL string) *ServiceImpl {
	s := NewServiceImpl(logger)
	s.baseURL = baseURL
	s.limiter = rate.NewLimiter(rate.Inf, 1)
	return s
}

// Resolve returns coordinates for a city. Lookup order: cache, Nominatim,
// static table, country centroid. The result is always usable.
func (s *ServiceImpl) Resolve(ctx context.Context, city, country string) types.GeoPoint {
	ctx, span := otel.Tracer("GeoService").Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("geo.city", city), attribute.String("geo.country", country))

	l := s.logger.With(slog.String("method", "Resolve"), slog.String("city", city))

	cacheKey := fmt.Sprintf("geo_%s_%s", city, country)
	if cached, found := s.cache.Get(cacheKey); found {
		if point, ok := cached.(types.GeoPoint); ok {
			span.SetStatus(codes.Ok, "cache hit")
			return point
		}
	}

	point, err := s.lookup(ctx, city, country)
	if err != nil {
		l.WarnContext(ctx, "Geocoder lookup failed, using static table", slog.Any("error", err))
		span.RecordError(err)
		point = s.fallback(city)
	} else if point.IsZero() {
		point = s.fallback(city)
	}

	s.cache.Set(cacheKey, point, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "resolved")
	return point
}

func (s *ServiceImpl) lookup(ctx context.Context, city, country string) (types.GeoPoint, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return types.GeoPoint{}, fmt.Errorf("geocoder rate limit wait: %w", err)
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s, %s", city, country))
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.GeoPoint{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return types.GeoPoint{}, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return types.GeoPoint{}, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.GeoPoint{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}
	return types.GeoPoint{Latitude: lat, Longitude: lon}, nil
}

func (s *ServiceImpl) fallback(city string) types.GeoPoint {
	if point, ok := fallbackCoordinates[city]; ok {
		return point
	}
	if canonical := types.CityFromTitle(city); canonical != "" {
		if point, ok := fallbackCoordinates[canonical]; ok {
			return point
		}
	}
	return defaultCentroid
}
