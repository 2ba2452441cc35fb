package place

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

const (
	openTripMapRadiusURL = "https://api.opentripmap.com/0.1/en/places/radius"
	openTripMapDetailURL = "https://api.opentripmap.com/0.1/en/places/xid/"
	foursquareSearchURL  = "https://api.foursquare.com/v3/places/search"

	openTripMapKinds = "historic,architecture,cultural,museums,religion,beaches,natural"

	// attractionCategory is the Foursquare "Landmarks and Outdoors" taxonomy root.
	attractionCategory = "16000"
)

// Provider fetches points of interest for a city from one upstream API.
// An unconfigured provider returns (nil, nil).
type Provider interface {
	Name() string
	Search(ctx context.Context, city, country string, point types.GeoPoint, limit int) ([]types.Place, error)
}

// approximateRating fills in a plausible rating when the upstream carries none.
func approximateRating() float64 {
	return float64(int((3.5+rand.Float64()*1.5)*10)) / 10
}

// OpenTripMapProvider searches attractions around a coordinate, then fetches
// per-place detail for the top hits.
type OpenTripMapProvider struct {
	apiKey    string
	client    *http.Client
	radiusURL string
	detailURL string
}

func NewOpenTripMapProvider(apiKey string, client *http.Client) *OpenTripMapProvider {
	return &OpenTripMapProvider{
		apiKey:    apiKey,
		client:    client,
		radiusURL: openTripMapRadiusURL,
		detailURL: openTripMapDetailURL,
	}
}

func (p *OpenTripMapProvider) Name() string { return "opentripmap" }

func (p *OpenTripMapProvider) Search(ctx context.Context, _, _ string, point types.GeoPoint, limit int) ([]types.Place, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("radius", "10000")
	query.Set("lon", strconv.FormatFloat(point.Longitude, 'f', -1, 64))
	query.Set("lat", strconv.FormatFloat(point.Latitude, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(limit))
	query.Set("apikey", p.apiKey)
	query.Set("kinds", openTripMapKinds)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.radiusURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build radius request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("radius request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("radius search returned status %d", resp.StatusCode)
	}

	var hits []struct {
		XID string `json:"xid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("failed to decode radius response: %w", err)
	}

	// Detail calls are the expensive part; cap at the top ten hits.
	if len(hits) > 10 {
		hits = hits[:10]
	}

	var places []types.Place
	for _, hit := range hits {
		if hit.XID == "" {
			continue
		}
		detail, err := p.detail(ctx, hit.XID)
		if err != nil {
			continue
		}
		places = append(places, detail)
	}
	return places, nil
}

func (p *OpenTripMapProvider) detail(ctx context.Context, xid string) (types.Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.detailURL+url.PathEscape(xid)+"?apikey="+url.QueryEscape(p.apiKey), nil)
	if err != nil {
		return types.Place{}, fmt.Errorf("failed to build detail request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return types.Place{}, fmt.Errorf("detail request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.Place{}, fmt.Errorf("detail returned status %d", resp.StatusCode)
	}

	var detail struct {
		Name  string `json:"name"`
		Kinds string `json:"kinds"`
		Point struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"point"`
		Wikipedia         string `json:"wikipedia"`
		WikipediaExtracts struct {
			Text string `json:"text"`
		} `json:"wikipedia_extracts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return types.Place{}, fmt.Errorf("failed to decode detail response: %w", err)
	}

	name := detail.Name
	if name == "" {
		name = "Unknown Place"
	}
	description := detail.WikipediaExtracts.Text
	if description == "" {
		description = "A popular tourist attraction."
	}
	if runes := []rune(description); len(runes) > 200 {
		description = string(runes[:200]) + "..."
	}

	return types.Place{
		Name:        name,
		Type:        placeTypeFromKinds(detail.Kinds),
		Rating:      approximateRating(),
		Description: description,
		Coordinates: types.GeoPoint{Latitude: detail.Point.Lat, Longitude: detail.Point.Lon},
		Wikipedia:   detail.Wikipedia,
		Source:      p.Name(),
	}, nil
}

// placeTypeFromKinds maps the comma-separated kind taxonomy to a display type.
// First match wins, in the order the taxonomy is most specific.
func placeTypeFromKinds(kinds string) string {
	mapping := []struct {
		substr    string
		placeType string
	}{
		{"historic", "Historic Site"},
		{"museum", "Museum"},
		{"religio", "Religious Site"},
		{"beach", "Beach"},
		{"natural", "Natural"},
		{"architecture", "Architecture"},
	}
	for _, m := range mapping {
		if strings.Contains(kinds, m.substr) {
			return m.placeType
		}
	}
	return "Attraction"
}

// FoursquareProvider searches tourist attractions near "city, country".
type FoursquareProvider struct {
	apiKey    string
	client    *http.Client
	searchURL string
}

func NewFoursquareProvider(apiKey string, client *http.Client) *FoursquareProvider {
	return &FoursquareProvider{
		apiKey:    apiKey,
		client:    client,
		searchURL: foursquareSearchURL,
	}
}

func (p *FoursquareProvider) Name() string { return "foursquare" }

func (p *FoursquareProvider) Search(ctx context.Context, city, country string, _ types.GeoPoint, _ int) ([]types.Place, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("query", "tourist attraction")
	query.Set("near", fmt.Sprintf("%s, %s", city, country))
	query.Set("limit", "15")
	query.Set("categories", attractionCategory)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var data struct {
		Results []struct {
			Name       string `json:"name"`
			Categories []struct {
				Name string `json:"name"`
			} `json:"categories"`
			Rating   float64 `json:"rating"`
			Geocodes struct {
				Main struct {
					Latitude  float64 `json:"latitude"`
					Longitude float64 `json:"longitude"`
				} `json:"main"`
			} `json:"geocodes"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	places := make([]types.Place, 0, len(data.Results))
	for _, venue := range data.Results {
		name := venue.Name
		if name == "" {
			name = "Unknown"
		}
		placeType := "Attraction"
		if len(venue.Categories) > 0 && venue.Categories[0].Name != "" {
			placeType = venue.Categories[0].Name
		}
		rating := venue.Rating
		if rating == 0 {
			rating = approximateRating()
		}
		places = append(places, types.Place{
			Name:        name,
			Type:        placeType,
			Rating:      rating,
			Description: fmt.Sprintf("A popular attraction in %s.", city),
			Coordinates: types.GeoPoint{
				Latitude:  venue.Geocodes.Main.Latitude,
				Longitude: venue.Geocodes.Main.Longitude,
			},
			Source: p.Name(),
		})
	}
	return places, nil
}
