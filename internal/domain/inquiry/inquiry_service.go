package inquiry

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/tripcraft-api/internal/llm"
	"github.com/FACorreiaa/tripcraft-api/internal/types"
	"github.com/FACorreiaa/tripcraft-api/pkg/observability"
)

// Service turns a free-form travel inquiry into structured trip parameters.
type Service interface {
	Extract(ctx context.Context, inquiry string) (types.TripSummary, error)
}

// ServiceImpl runs a low-temperature extraction completion and parses its
// strict-JSON reply.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient llm.ChatClient
}

func NewServiceImpl(logger *slog.Logger, aiClient llm.ChatClient) *ServiceImpl {
	return &ServiceImpl{logger: logger, aiClient: aiClient}
}

// Extract parses the inquiry. Any model or parse failure maps to
// ErrExtractionFailed; an inquiry with no recognizable destination maps to
// ErrNoDestinations. Missing duration, travelers and budget get defaults.
func (s *ServiceImpl) Extract(ctx context.Context, inquiry string) (types.TripSummary, error) {
	ctx, span := otel.Tracer("InquiryService").Start(ctx, "Extract",
		trace.WithAttributes(attribute.Int("inquiry.length", len(inquiry))))
	defer span.End()

	l := s.logger.With(slog.String("method", "Extract"))

	startTime := time.Now()
	response, err := s.aiClient.GenerateResponse(ctx, getExtractionPrompt(inquiry), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		MaxOutputTokens:  500,
		ResponseMIMEType: "application/json",
	})
	observability.LLMRequestDuration.WithLabelValues("extract").Observe(time.Since(startTime).Seconds())

	if err != nil {
		l.ErrorContext(ctx, "Extraction request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction request failed")
		return types.TripSummary{}, types.ErrExtractionFailed
	}

	txt := llm.ResponseText(response)
	if txt == "" {
		l.ErrorContext(ctx, "Empty extraction response")
		span.SetStatus(codes.Error, "empty extraction response")
		return types.TripSummary{}, types.ErrExtractionFailed
	}

	var extracted struct {
		types.TripSummary
		DestinationCity string `json:"destination_city"`
	}
	if err := json.Unmarshal([]byte(llm.CleanLLMResponse(txt)), &extracted); err != nil {
		l.ErrorContext(ctx, "Failed to parse extraction response", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction parse failed")
		return types.TripSummary{}, types.ErrExtractionFailed
	}

	summary := extracted.TripSummary
	if len(summary.Destinations) == 0 && extracted.DestinationCity != "" {
		summary.Destinations = []string{extracted.DestinationCity}
	}
	if len(summary.Destinations) == 0 {
		l.WarnContext(ctx, "No destinations in inquiry")
		span.SetStatus(codes.Error, "no destinations")
		return types.TripSummary{}, types.ErrNoDestinations
	}

	if summary.DurationDays <= 0 {
		summary.DurationDays = 5
	}
	if summary.Travelers <= 0 {
		summary.Travelers = 2
	}
	if summary.Budget == "" {
		summary.Budget = "Medium"
	}

	l.InfoContext(ctx, "Extracted trip parameters",
		slog.String("country", summary.DestinationCountry),
		slog.Int("destinations", len(summary.Destinations)),
		slog.Int("days", summary.DurationDays))
	span.SetStatus(codes.Ok, "extracted")
	return summary, nil
}
