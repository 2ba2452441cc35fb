package image

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
	"github.com/FACorreiaa/tripcraft-api/pkg/observability"
)

const (
	unsplashSearchURL = "https://api.unsplash.com/search/photos"
	pexelsSearchURL   = "https://api.pexels.com/v1/search"
	wikipediaAPIURL   = "https://en.wikipedia.org/w/api.php"

	// defaultImageURL backs every place whose image cannot be resolved.
	defaultImageURL = "https://images.unsplash.com/photo-1518791841217-8f162f1e1131"
)

// Service resolves a representative photo for a place.
type Service interface {
	ResolveImage(ctx context.Context, placeName, city, country, size string) types.ImageRef
}

// ServiceImpl tries Unsplash, then Pexels, then Wikipedia page images, each
// with its own ordered query variants. Resolution never fails; exhaustion
// yields a fixed default reference.
type ServiceImpl struct {
	logger      *slog.Logger
	cache       *cache.Cache
	client      *http.Client
	unsplashKey string
	pexelsKey   string

	unsplashURL  string
	pexelsURL    string
	wikipediaURL string
}

func NewServiceImpl(logger *slog.Logger, unsplashKey, pexelsKey string) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		cache:        cache.New(cache.NoExpiration, 10*time.Minute),
		client:       &http.Client{Timeout: 10 * time.Second},
		unsplashKey:  unsplashKey,
		pexelsKey:    pexelsKey,
		unsplashURL:  unsplashSearchURL,
		pexelsURL:    pexelsSearchURL,
		wikipediaURL: wikipediaAPIURL,
	}
}

// NewServiceWithBaseURLs is a test hook pointing every source at local servers.
func NewServiceWithBaseURLs(logger *slog.Logger, unsplashKey, pexelsKey, unsplashURL, pexelsURL, wikipediaURL string) *ServiceImpl {
	s := NewServiceImpl(logger, unsplashKey, pexelsKey)
	s.unsplashURL = unsplashURL
	s.pexelsURL = pexelsURL
	s.wikipediaURL = wikipediaURL
	return s
}

// DefaultImage is the reference returned when every source is exhausted.
func DefaultImage(placeName string) types.ImageRef {
	return types.ImageRef{
		URL:          defaultImageURL,
		Photographer: "Default Image",
		Alt:          placeName,
		Source:       "Default",
	}
}

// ResolveImage returns a photo for a place. Size is "medium" or "large";
// anything else behaves as "medium".
func (s *ServiceImpl) ResolveImage(ctx context.Context, placeName, city, country, size string) types.ImageRef {
	ctx, span := otel.Tracer("ImageService").Start(ctx, "ResolveImage")
	defer span.End()
	span.SetAttributes(attribute.String("image.place", placeName), attribute.String("image.size", size))

	l := s.logger.With(slog.String("method", "ResolveImage"), slog.String("place", placeName))

	cacheKey := fmt.Sprintf("%s_%s_%s_%s", placeName, city, country, size)
	if cached, found := s.cache.Get(cacheKey); found {
		observability.CacheLookups.WithLabelValues("images", "hit").Inc()
		span.SetStatus(codes.Ok, "cache hit")
		return cached.(types.ImageRef)
	}
	observability.CacheLookups.WithLabelValues("images", "miss").Inc()

	if ref, ok := s.fromUnsplash(ctx, placeName, city, country, size); ok {
		s.cache.Set(cacheKey, ref, cache.NoExpiration)
		span.SetStatus(codes.Ok, "unsplash")
		return ref
	}
	if ref, ok := s.fromPexels(ctx, placeName, city, country, size); ok {
		s.cache.Set(cacheKey, ref, cache.NoExpiration)
		span.SetStatus(codes.Ok, "pexels")
		return ref
	}
	if ref, ok := s.fromWikipedia(ctx, placeName, city); ok {
		s.cache.Set(cacheKey, ref, cache.NoExpiration)
		span.SetStatus(codes.Ok, "wikipedia")
		return ref
	}

	l.InfoContext(ctx, "All image sources exhausted, using default")
	span.SetStatus(codes.Ok, "default")
	ref := DefaultImage(placeName)
	s.cache.Set(cacheKey, ref, cache.NoExpiration)
	return ref
}

func (s *ServiceImpl) fromUnsplash(ctx context.Context, placeName, city, country, size string) (types.ImageRef, bool) {
	if s.unsplashKey == "" {
		return types.ImageRef{}, false
	}

	queries := []string{
		fmt.Sprintf("%s %s %s tourism", placeName, city, country),
		fmt.Sprintf("%s landmark", placeName),
		fmt.Sprintf("%s %s tourist attraction", city, placeName),
		fmt.Sprintf("%s travel", placeName),
		placeName,
	}

	for _, q := range queries {
		params := url.Values{}
		params.Set("query", q)
		params.Set("per_page", "1")
		params.Set("orientation", "landscape")
		params.Set("content_filter", "high")

		var data struct {
			Results []struct {
				AltDescription string `json:"alt_description"`
				URLs           struct {
					Regular string `json:"regular"`
					Full    string `json:"full"`
				} `json:"urls"`
				User struct {
					Name  string `json:"name"`
					Links struct {
						HTML string `json:"html"`
					} `json:"links"`
				} `json:"user"`
			} `json:"results"`
		}
		if err := s.getJSON(ctx, s.unsplashURL, params, map[string]string{
			"Authorization": "Client-ID " + s.unsplashKey,
		}, &data); err != nil {
			observability.ProviderRequests.WithLabelValues("unsplash", "error").Inc()
			return types.ImageRef{}, false
		}
		if len(data.Results) == 0 {
			continue
		}

		observability.ProviderRequests.WithLabelValues("unsplash", "success").Inc()
		photo := data.Results[0]
		imageURL := photo.URLs.Regular
		if size == "large" {
			imageURL = photo.URLs.Full
		}
		alt := photo.AltDescription
		if alt == "" {
			alt = fmt.Sprintf("%s in %s", placeName, city)
		}
		return types.ImageRef{
			URL:             imageURL,
			Photographer:    photo.User.Name,
			PhotographerURL: photo.User.Links.HTML,
			Alt:             alt,
			Source:          "Unsplash",
		}, true
	}

	observability.ProviderRequests.WithLabelValues("unsplash", "empty").Inc()
	return types.ImageRef{}, false
}

func (s *ServiceImpl) fromPexels(ctx context.Context, placeName, city, country, size string) (types.ImageRef, bool) {
	if s.pexelsKey == "" {
		return types.ImageRef{}, false
	}

	queries := []string{
		fmt.Sprintf("%s %s tourism", placeName, city),
		fmt.Sprintf("%s landmark %s", placeName, country),
		fmt.Sprintf("%s attractions", city),
		placeName,
	}

	for _, q := range queries {
		params := url.Values{}
		params.Set("query", q)
		params.Set("per_page", "1")
		params.Set("orientation", "landscape")

		var data struct {
			Photos []struct {
				Photographer    string `json:"photographer"`
				PhotographerURL string `json:"photographer_url"`
				Alt             string `json:"alt"`
				Src             struct {
					Large  string `json:"large"`
					Medium string `json:"medium"`
				} `json:"src"`
			} `json:"photos"`
		}
		if err := s.getJSON(ctx, s.pexelsURL, params, map[string]string{
			"Authorization": s.pexelsKey,
		}, &data); err != nil {
			observability.ProviderRequests.WithLabelValues("pexels", "error").Inc()
			return types.ImageRef{}, false
		}
		if len(data.Photos) == 0 {
			continue
		}

		observability.ProviderRequests.WithLabelValues("pexels", "success").Inc()
		photo := data.Photos[0]
		imageURL := photo.Src.Medium
		if size == "large" {
			imageURL = photo.Src.Large
		}
		alt := photo.Alt
		if alt == "" {
			alt = fmt.Sprintf("%s in %s", placeName, city)
		}
		return types.ImageRef{
			URL:             imageURL,
			Photographer:    photo.Photographer,
			PhotographerURL: photo.PhotographerURL,
			Alt:             alt,
			Source:          "Pexels",
		}, true
	}

	observability.ProviderRequests.WithLabelValues("pexels", "empty").Inc()
	return types.ImageRef{}, false
}

func (s *ServiceImpl) fromWikipedia(ctx context.Context, placeName, city string) (types.ImageRef, bool) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "pageimages")
	params.Set("piprop", "original")
	params.Set("titles", fmt.Sprintf("%s %s", placeName, city))

	var data struct {
		Query struct {
			Pages map[string]struct {
				Original struct {
					Source string `json:"source"`
				} `json:"original"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := s.getJSON(ctx, s.wikipediaURL, params, nil, &data); err != nil {
		observability.ProviderRequests.WithLabelValues("wikipedia", "error").Inc()
		return types.ImageRef{}, false
	}

	for _, page := range data.Query.Pages {
		if page.Original.Source == "" {
			continue
		}
		observability.ProviderRequests.WithLabelValues("wikipedia", "success").Inc()
		return types.ImageRef{
			URL:             page.Original.Source,
			Photographer:    "Wikimedia Commons",
			PhotographerURL: "https://commons.wikimedia.org",
			Alt:             placeName,
			Source:          "Wikimedia",
		}, true
	}

	observability.ProviderRequests.WithLabelValues("wikipedia", "empty").Inc()
	return types.ImageRef{}, false
}

func (s *ServiceImpl) getJSON(ctx context.Context, baseURL string, params url.Values, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
