package source

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// OpenNotifyBaseURL is the default Open Notify API base URL.
const OpenNotifyBaseURL = "http://api.open-notify.org"

// OpenNotify serves ISS position and crew data from the Open Notify API.
// Works without credentials. Latitude/longitude arrive as JSON strings.
type OpenNotify struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenNotify creates an Open Notify source. baseURL is usually
// OpenNotifyBaseURL; tests point it at a local server.
func NewOpenNotify(baseURL string, timeout time.Duration) *OpenNotify {
	return &OpenNotify{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (o *OpenNotify) Name() string { return "open-notify" }

// Position returns the current ISS position from iss-now.json.
func (o *OpenNotify) Position() (Coordinate, error) {
	var raw onPositionResponse
	if err := getJSON(o.httpClient, o.baseURL+"/iss-now.json", &raw); err != nil {
		return Coordinate{}, fmt.Errorf("open-notify: %w", err)
	}

	if raw.Message != "success" {
		return Coordinate{}, fmt.Errorf("open-notify: message %q", raw.Message)
	}

	lat, err := strconv.ParseFloat(raw.ISSPosition.Latitude, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("open-notify: bad latitude %q", raw.ISSPosition.Latitude)
	}
	lon, err := strconv.ParseFloat(raw.ISSPosition.Longitude, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("open-notify: bad longitude %q", raw.ISSPosition.Longitude)
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// Crew returns the people currently in space from astros.json.
// The reported number and the people list are independent payload fields
// and are passed through as-is.
func (o *OpenNotify) Crew() (CrewRoster, error) {
	var raw onCrewResponse
	if err := getJSON(o.httpClient, o.baseURL+"/astros.json", &raw); err != nil {
		return CrewRoster{}, fmt.Errorf("open-notify: %w", err)
	}

	if raw.Message != "success" {
		return CrewRoster{}, fmt.Errorf("open-notify: message %q", raw.Message)
	}

	roster := CrewRoster{Number: raw.Number}
	for _, p := range raw.People {
		roster.People = append(roster.People, CrewMember{Name: p.Name, Craft: p.Craft})
	}
	return roster, nil
}

// ── Open Notify JSON types ──

type onPositionResponse struct {
	Message     string `json:"message"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

type onCrewResponse struct {
	Message string `json:"message"`
	Number  int    `json:"number"`
	People  []struct {
		Name  string `json:"name"`
		Craft string `json:"craft"`
	} `json:"people"`
}
