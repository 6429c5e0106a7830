package source

import (
	"fmt"
	"net/http"
	"time"
)

// WhereTheISSBaseURL is the default Where The ISS At API base URL.
const WhereTheISSBaseURL = "https://api.wheretheiss.at"

// issNoradID is the NORAD catalog number of the International Space Station.
const issNoradID = 25544

// WhereTheISS serves ISS position data from the Where The ISS At API.
// The payload is a flat object with numeric latitude/longitude fields.
type WhereTheISS struct {
	baseURL    string
	httpClient *http.Client
}

// NewWhereTheISS creates a Where The ISS At source.
func NewWhereTheISS(baseURL string, timeout time.Duration) *WhereTheISS {
	return &WhereTheISS{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w *WhereTheISS) Name() string { return "wheretheiss" }

// Position returns the current ISS position.
func (w *WhereTheISS) Position() (Coordinate, error) {
	url := fmt.Sprintf("%s/v1/satellites/%d", w.baseURL, issNoradID)

	var raw wtiPositionResponse
	if err := getJSON(w.httpClient, url, &raw); err != nil {
		return Coordinate{}, fmt.Errorf("wheretheiss: %w", err)
	}

	// Pointers distinguish a missing field from a legitimate 0.0.
	if raw.Latitude == nil || raw.Longitude == nil {
		return Coordinate{}, fmt.Errorf("wheretheiss: payload missing latitude/longitude")
	}

	return Coordinate{Latitude: *raw.Latitude, Longitude: *raw.Longitude}, nil
}

// ── Where The ISS At JSON types ──

type wtiPositionResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
