package types

import "errors"

var (
	// ErrExtractionFailed is returned when the extraction completion call
	// errors, times out, or returns content that is not valid JSON. The
	// caller does not fall back to local heuristics.
	ErrExtractionFailed = errors.New("failed to extract trip parameters from inquiry")

	// ErrGenerationFailed is returned when the itinerary completion call
	// errors or the response cannot be parsed after fence stripping.
	ErrGenerationFailed = errors.New("failed to generate itinerary")

	// ErrNoDestinations is returned when extraction succeeds but yields no
	// destination cities to plan for.
	ErrNoDestinations = errors.New("no destinations found in inquiry")

	// ErrNoItinerary is returned by the session store when export or day
	// views are requested before any itinerary has been generated.
	ErrNoItinerary = errors.New("no itinerary generated yet")
)
