package source

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// PositionSource is the interface for all ISS position data origins.
// Each source owns its endpoint, timeout, and payload shape — there is no
// shared shape detection.
type PositionSource interface {
	// Name returns a human-readable source name for logging.
	Name() string

	// Position returns the current ISS ground position.
	Position() (Coordinate, error)
}

// CrewSource is the interface for crew roster data origins.
type CrewSource interface {
	// Name returns a human-readable source name for logging.
	Name() string

	// Crew returns the current onboard crew roster.
	Crew() (CrewRoster, error)
}

// getJSON performs a GET request and decodes the JSON response into dest.
// Callers wrap the returned error with their source name.
func getJSON(client *http.Client, url string, dest any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "ISSTracker/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}
