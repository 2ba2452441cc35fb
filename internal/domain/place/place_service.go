package place

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/tripcraft-api/internal/domain/geo"
	"github.com/FACorreiaa/tripcraft-api/internal/types"
	"github.com/FACorreiaa/tripcraft-api/pkg/observability"
)

// Service is the place repository: points of interest per (city, country).
type Service interface {
	GetPlaces(ctx context.Context, city, country string, limit int) []types.Place
	ClearCache()
}

// ServiceImpl aggregates providers in a fixed order and falls back to the
// curated table when every provider comes back empty. Results, including
// empty ones, are cached for the session so a city is swept at most once.
type ServiceImpl struct {
	logger    *slog.Logger
	geocoder  geo.Service
	providers []Provider
	cache     *cache.Cache
	group     singleflight.Group
}

// NewServiceImpl wires the provider chain. Providers with missing keys are
// still registered; they no-op.
func NewServiceImpl(logger *slog.Logger, geocoder geo.Service, openTripMapKey, foursquareKey string) *ServiceImpl {
	client := &http.Client{Timeout: 10 * time.Second}
	return &ServiceImpl{
		logger:   logger,
		geocoder: geocoder,
		providers: []Provider{
			NewOpenTripMapProvider(openTripMapKey, client),
			NewFoursquareProvider(foursquareKey, client),
		},
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// NewServiceWithProviders is a test hook injecting a custom provider chain.
func NewServiceWithProviders(logger *slog.Logger, geocoder geo.Service, providers ...Provider) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		geocoder:  geocoder,
		providers: providers,
		cache:     cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// GetPlaces returns up to limit places for a city. Never errors; a city with
// no providers and no curated entry yields an empty slice, and that empty
// result is cached too.
func (s *ServiceImpl) GetPlaces(ctx context.Context, city, country string, limit int) []types.Place {
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "GetPlaces")
	defer span.End()
	span.SetAttributes(attribute.String("place.city", city), attribute.Int("place.limit", limit))

	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("%s_%s", city, country)
	if cached, found := s.cache.Get(cacheKey); found {
		observability.CacheLookups.WithLabelValues("places", "hit").Inc()
		span.SetStatus(codes.Ok, "cache hit")
		return clamp(cached.([]types.Place), limit)
	}
	observability.CacheLookups.WithLabelValues("places", "miss").Inc()

	// Concurrent requests for the same city share one provider sweep.
	result, _, _ := s.group.Do(cacheKey, func() (any, error) {
		places := s.sweep(ctx, city, country)
		s.cache.Set(cacheKey, places, cache.NoExpiration)
		return places, nil
	})

	span.SetStatus(codes.Ok, "fetched")
	return clamp(result.([]types.Place), limit)
}

func (s *ServiceImpl) sweep(ctx context.Context, city, country string) []types.Place {
	l := s.logger.With(slog.String("method", "GetPlaces"), slog.String("city", city))

	point := s.geocoder.Resolve(ctx, city, country)

	var places []types.Place
	for _, provider := range s.providers {
		found, err := provider.Search(ctx, city, country, point, 20)
		switch {
		case err != nil:
			observability.ProviderRequests.WithLabelValues(provider.Name(), "error").Inc()
			l.WarnContext(ctx, "Place provider failed",
				slog.String("provider", provider.Name()), slog.Any("error", err))
		case len(found) == 0:
			observability.ProviderRequests.WithLabelValues(provider.Name(), "empty").Inc()
		default:
			observability.ProviderRequests.WithLabelValues(provider.Name(), "success").Inc()
			places = append(places, found...)
		}
	}

	if len(places) == 0 {
		if curated, ok := fallbackPlaces[city]; ok {
			l.InfoContext(ctx, "Using curated place table", slog.Int("count", len(curated)))
			places = append(places, curated...)
		} else {
			l.InfoContext(ctx, "No places found for city")
		}
	}
	return places
}

func clamp(places []types.Place, limit int) []types.Place {
	if len(places) > limit {
		return places[:limit]
	}
	return places
}

// ClearCache drops every cached city sweep.
func (s *ServiceImpl) ClearCache() {
	s.cache.Flush()
}
