package types

// GeoPoint is a latitude/longitude pair. The zero value means "unknown
// location" and is rendered without a map marker downstream.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// IsZero reports whether the point carries no usable coordinates.
func (g GeoPoint) IsZero() bool {
	return g.Latitude == 0 && g.Longitude == 0
}

// Place is a point of interest as normalized from any provider or the
// static fallback table. Immutable once produced; cached per (city, country).
type Place struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Coordinates GeoPoint `json:"coordinates,omitempty"`
	Wikipedia   string   `json:"wikipedia,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// DailyPlace is a Place decorated with display metadata for a specific
// day of the itinerary.
type DailyPlace struct {
	Place
	BestTime string   `json:"best_time"`
	Duration string   `json:"duration"`
	Icon     string   `json:"icon"`
	Tags     []string `json:"tags"`
}

// ImageRef points at a representative photo for a place, with the
// attribution the source requires.
type ImageRef struct {
	URL             string `json:"url"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url,omitempty"`
	Alt             string `json:"alt,omitempty"`
	Source          string `json:"source"`
}

// CountryInfo is the subset of REST Countries metadata the planner surfaces.
type CountryInfo struct {
	Name       string   `json:"name"`
	Official   string   `json:"official_name"`
	Capital    string   `json:"capital"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Languages  []string `json:"languages"`
	Currencies []string `json:"currencies"`
	Flag       string   `json:"flag"`
	Timezones  []string `json:"timezones"`
	Borders    []string `json:"borders"`
	Code       string   `json:"cca2"`
	LatLng     GeoPoint `json:"latlng"`
}
