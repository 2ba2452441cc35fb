package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/FACorreiaa/tripcraft-api/internal/domain/country"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/image"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/itinerary"
	"github.com/FACorreiaa/tripcraft-api/internal/domain/place"
	"github.com/FACorreiaa/tripcraft-api/internal/types"
)

// Handler exposes the planner over JSON HTTP.
type Handler struct {
	logger    *slog.Logger
	itinerary itinerary.Service
	places    place.Service
	images    image.Service
	countries country.Service
}

func NewHandler(logger *slog.Logger, itinerarySvc itinerary.Service, placeSvc place.Service, imageSvc image.Service, countrySvc country.Service) *Handler {
	return &Handler{
		logger:    logger,
		itinerary: itinerarySvc,
		places:    placeSvc,
		images:    imageSvc,
		countries: countrySvc,
	}
}

// Register mounts all planner routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/itineraries", h.generateItinerary)
	mux.HandleFunc("GET /v1/itineraries", h.lastItinerary)
	mux.HandleFunc("GET /v1/itineraries/export", h.exportItinerary)
	mux.HandleFunc("GET /v1/places", h.listPlaces)
	mux.HandleFunc("GET /v1/places/day", h.placesForDay)
	mux.HandleFunc("GET /v1/images", h.resolveImage)
	mux.HandleFunc("GET /v1/countries", h.listCountries)
	mux.HandleFunc("POST /v1/cache/clear", h.clearCache)
}

type generateRequest struct {
	Inquiry string `json:"inquiry"`
}

func (h *Handler) generateItinerary(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Inquiry == "" {
		writeError(w, http.StatusBadRequest, "inquiry is required")
		return
	}

	result, err := h.itinerary.Generate(r.Context(), req.Inquiry)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrNoDestinations):
		writeError(w, http.StatusUnprocessableEntity, "no destinations found in inquiry")
	case errors.Is(err, types.ErrExtractionFailed), errors.Is(err, types.ErrGenerationFailed):
		// Upstream model details stay in the logs.
		h.logger.ErrorContext(r.Context(), "Itinerary generation failed", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, "itinerary generation failed, please try again")
	default:
		h.logger.ErrorContext(r.Context(), "Unexpected generation error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) lastItinerary(w http.ResponseWriter, r *http.Request) {
	result, err := h.itinerary.Last(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "no itinerary generated yet")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) exportItinerary(w http.ResponseWriter, r *http.Request) {
	result, err := h.itinerary.Last(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "no itinerary generated yet")
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		data, err := itinerary.ExportJSON(result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.json"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="travel_guide.txt"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(itinerary.ExportText(result)))
	case "csv":
		data, err := h.itinerary.ExportCSV(r.Context(), result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="places.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "format must be json, csv or text")
	}
}

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")
	if city == "" || country == "" {
		writeError(w, http.StatusBadRequest, "city and country are required")
		return
	}
	limit := queryInt(r, "limit", 10)

	places := h.places.GetPlaces(r.Context(), city, country, limit)
	writeJSON(w, http.StatusOK, map[string]any{"city": city, "places": places})
}

func (h *Handler) placesForDay(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")
	if city == "" || country == "" {
		writeError(w, http.StatusBadRequest, "city and country are required")
		return
	}
	day := queryInt(r, "day", 1)
	if day < 1 {
		writeError(w, http.StatusBadRequest, "day must be positive")
		return
	}
	count := queryInt(r, "count", 3)

	places := h.itinerary.PlacesForDay(r.Context(), day, city, country, count)
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "city": city, "places": places})
}

func (h *Handler) resolveImage(w http.ResponseWriter, r *http.Request) {
	placeName := r.URL.Query().Get("place")
	if placeName == "" {
		writeError(w, http.StatusBadRequest, "place is required")
		return
	}
	ref := h.images.ResolveImage(r.Context(), placeName,
		r.URL.Query().Get("city"), r.URL.Query().Get("country"),
		r.URL.Query().Get("size"))
	writeJSON(w, http.StatusOK, ref)
}

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	countries := h.countries.ListCountries(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"countries": countries, "count": len(countries)})
}

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	h.places.ClearCache()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
