package itinerary

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	a "github.com/petar-dambovaliev/aho-corasick"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/FACorreiaa/tripcraft-api/internal/domain/inquiry"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/place"
	"github.com/FACorreiaa/tripcraft-api/internal/llm"
	"github.com/FACorreiaa/tripcraft-api/internal/types"
	"github.com/FACorreiaa/tripcraft-api/pkg/observability"
)

const lastItineraryKey = "itinerary_last"

// Service builds full trip plans and keeps the most recent one per session.
type Service interface {
	Generate(ctx context.Context, inquiryText string) (*types.Itinerary, error)
	Last(ctx context.Context) (*types.Itinerary, error)
	PlacesForDay(ctx context.Context, day int, city, country string, numPlaces int) []types.DailyPlace
	ExportCSV(ctx context.Context, itinerary *types.Itinerary) ([]byte, error)
}

// ServiceImpl chains extraction, per-city place sweeps and one generation
// completion, then normalizes the result into an Itinerary snapshot.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient llm.ChatClient
	inquiry  inquiry.Service
	places   place.Service
	store    *cache.Cache
}

func NewServiceImpl(logger *slog.Logger, aiClient llm.ChatClient, inquirySvc inquiry.Service, placeSvc place.Service) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
		inquiry:  inquirySvc,
		places:   placeSvc,
		store:    cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// Generate builds a complete itinerary from a free-form inquiry. Extraction
// failures surface as ErrExtractionFailed or ErrNoDestinations; model or
// parse failures on the generation pass as ErrGenerationFailed. The returned
// snapshot replaces the previous one.
func (s *ServiceImpl) Generate(ctx context.Context, inquiryText string) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Generate")
	defer span.End()

	l := s.logger.With(slog.String("method", "Generate"))

	summary, err := s.inquiry.Extract(ctx, inquiryText)
	if err != nil {
		observability.ItinerariesGenerated.WithLabelValues("extraction_failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("trip.country", summary.DestinationCountry),
		attribute.Int("trip.days", summary.DurationDays))

	placesByCity := make(map[string][]types.Place, len(summary.Destinations))
	for _, city := range summary.Destinations {
		placesByCity[city] = s.places.GetPlaces(ctx, city, summary.DestinationCountry, 10)
	}

	prompt := getGenerationPrompt(inquiryText, summary, placesByCity)

	startTime := time.Now()
	response, err := s.aiClient.GenerateResponse(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.3),
		MaxOutputTokens:  8000,
		ResponseMIMEType: "application/json",
	})
	observability.LLMRequestDuration.WithLabelValues("generate").Observe(time.Since(startTime).Seconds())

	if err != nil {
		observability.ItinerariesGenerated.WithLabelValues("generation_failed").Inc()
		l.ErrorContext(ctx, "Generation request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation request failed")
		return nil, types.ErrGenerationFailed
	}

	txt := llm.ResponseText(response)
	if txt == "" {
		observability.ItinerariesGenerated.WithLabelValues("generation_failed").Inc()
		l.ErrorContext(ctx, "Empty generation response")
		span.SetStatus(codes.Error, "empty generation response")
		return nil, types.ErrGenerationFailed
	}

	var itinerary types.Itinerary
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(txt)), &itinerary); err != nil {
		observability.ItinerariesGenerated.WithLabelValues("generation_failed").Inc()
		l.ErrorContext(ctx, "Failed to parse generation response", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation parse failed")
		return nil, types.ErrGenerationFailed
	}

	// The extraction pass owns the first five summary fields; the model's
	// echo of them is not trusted.
	itinerary.Summary.DestinationCountry = summary.DestinationCountry
	itinerary.Summary.Destinations = summary.Destinations
	itinerary.Summary.DurationDays = summary.DurationDays
	itinerary.Summary.Travelers = summary.Travelers
	itinerary.Summary.Budget = summary.Budget
	if itinerary.Summary.Interests == nil {
		itinerary.Summary.Interests = summary.Interests
	}
	if itinerary.Summary.TravelDates == "" {
		itinerary.Summary.TravelDates = summary.TravelDates
	}

	normalizeDays(&itinerary)
	s.verifyAttractions(ctx, &itinerary, placesByCity)

	itinerary.ID = uuid.New()
	itinerary.PlacesByCity = placesByCity
	itinerary.GeneratedAt = time.Now().UTC()
	itinerary.ModelUsed = s.aiClient.Model()

	s.store.Set(lastItineraryKey, &itinerary, cache.NoExpiration)

	observability.ItinerariesGenerated.WithLabelValues("success").Inc()
	l.InfoContext(ctx, "Generated itinerary",
		slog.String("id", itinerary.ID.String()),
		slog.Int("days", len(itinerary.Days)),
		slog.Int("attractions", len(itinerary.KeyAttractions)))
	span.SetStatus(codes.Ok, "generated")
	return &itinerary, nil
}

// Last returns the itinerary from the most recent successful Generate.
func (s *ServiceImpl) Last(ctx context.Context) (*types.Itinerary, error) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "Last")
	defer span.End()

	cached, found := s.store.Get(lastItineraryKey)
	if !found {
		span.SetStatus(codes.Error, "no itinerary")
		return nil, types.ErrNoItinerary
	}
	span.SetStatus(codes.Ok, "found")
	return cached.(*types.Itinerary), nil
}

// normalizeDays renumbers days to be unique and contiguous from 1, keeps
// first occurrence order, and fills segment placeholders.
func normalizeDays(itinerary *types.Itinerary) {
	days := itinerary.Days
	normalized := make([]types.DayPlan, 0, len(days))
	for _, day := range days {
		day.Day = len(normalized) + 1
		normalizeSegment(&day.Morning, "9:00 AM - 12:00 PM")
		normalizeSegment(&day.Afternoon, "2:00 PM - 5:00 PM")
		normalizeSegment(&day.Evening, "6:00 PM - 9:00 PM")
		if day.AccommodationSuggestion == "" {
			day.AccommodationSuggestion = "N/A"
		}
		normalized = append(normalized, day)
	}
	itinerary.Days = normalized
}

func normalizeSegment(segment *types.Segment, defaultTime string) {
	if segment.Time == "" {
		segment.Time = defaultTime
	}
	if segment.Activity == "" {
		segment.Activity = "N/A"
	}
	if segment.Cost == "" {
		segment.Cost = "Varies"
	}
	if segment.Transportation == "" {
		segment.Transportation = "N/A"
	}
}

// verifyAttractions marks each key attraction as Verified when its name
// appears in the captured place list for its city. Misses are logged and
// kept; paraphrased names are routine.
func (s *ServiceImpl) verifyAttractions(ctx context.Context, itinerary *types.Itinerary, placesByCity map[string][]types.Place) {
	matchers := make(map[string]a.AhoCorasick, len(placesByCity))
	for city, places := range placesByCity {
		if len(places) == 0 {
			continue
		}
		names := make([]string, 0, len(places))
		for _, p := range places {
			names = append(names, p.Name)
		}
		builder := a.NewAhoCorasickBuilder(a.Opts{
			AsciiCaseInsensitive: true,
			MatchKind:            a.LeftMostLongestMatch,
		})
		matchers[strings.ToLower(city)] = builder.Build(names)
	}

	for i := range itinerary.KeyAttractions {
		attraction := &itinerary.KeyAttractions[i]
		matcher, ok := matchers[strings.ToLower(attraction.City)]
		if !ok {
			continue
		}
		if len(matcher.FindAll(attraction.Name)) > 0 {
			attraction.Verified = true
			continue
		}
		s.logger.WarnContext(ctx, "Attraction not found in place list",
			slog.String("attraction", attraction.Name),
			slog.String("city", attraction.City))
	}
}
