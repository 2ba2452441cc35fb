package main

import (
	"context"
	"fmt"
	"log/slog"

	apihandler "github.com/FACorreiaa/tripcraft-api/internal/api"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/country"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/geo"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/image"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/inquiry"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/itinerary"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/place"
	"github.com/FACorreiaa/tripcraft-api/internal/llm"
	"github.com/FACorreiaa/tripcraft-api/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Clients
	AIClient llm.ChatClient

	// Services
	GeoService       geo.Service
	PlaceService     place.Service
	ImageService     image.Service
	CountryService   country.Service
	InquiryService   inquiry.Service
	ItineraryService itinerary.Service

	// Handlers
	APIHandler *apihandler.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initClients(ctx); err != nil {
		return nil, fmt.Errorf("failed to init clients: %w", err)
	}
	if err := deps.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	if err := deps.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func (d *Dependencies) initClients(ctx context.Context) error {
	aiClient, err := llm.NewGeminiChatClient(ctx, d.Config.LLM.GeminiAPIKey, d.Config.LLM.Model)
	if err != nil {
		return fmt.Errorf("failed to create chat client: %w", err)
	}
	d.AIClient = aiClient
	d.Logger.Info("clients initialized", "model", aiClient.Model())
	return nil
}

func (d *Dependencies) initServices() error {
	d.GeoService = geo.NewServiceImpl(d.Logger)
	d.PlaceService = place.NewServiceImpl(d.Logger, d.GeoService,
		d.Config.Providers.OpenTripMapAPIKey, d.Config.Providers.FoursquareAPIKey)
	d.ImageService = image.NewServiceImpl(d.Logger,
		d.Config.Providers.UnsplashAccessKey, d.Config.Providers.PexelsAPIKey)
	d.CountryService = country.NewServiceImpl(d.Logger)
	d.InquiryService = inquiry.NewServiceImpl(d.Logger, d.AIClient)
	d.ItineraryService = itinerary.NewServiceImpl(d.Logger, d.AIClient, d.InquiryService, d.PlaceService)

	d.Logger.Info("services initialized")
	return nil
}

func (d *Dependencies) initHandlers() error {
	d.APIHandler = apihandler.NewHandler(d.Logger,
		d.ItineraryService, d.PlaceService, d.ImageService, d.CountryService)
	d.Logger.Info("handlers initialized")
	return nil
}

// Cleanup releases held resources.
func (d *Dependencies) Cleanup() {
	if d.PlaceService != nil {
		d.PlaceService.ClearCache()
	}
	d.Logger.Info("cleanup completed")
}
