package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/soumitra/isstracker/internal/dashboard"
	"github.com/soumitra/isstracker/internal/fetch"
	"github.com/soumitra/isstracker/internal/source"
	"github.com/soumitra/isstracker/internal/ui"
)

const sourceTimeout = 5 * time.Second

// main is the application composition root: sources → fetchers →
// dashboard → ebiten display.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	refreshInterval := getEnvDuration("REFRESH_SECONDS", 10*time.Second)
	autoRefresh := getEnvBool("AUTO_REFRESH", false)
	positionTTL := getEnvDuration("POSITION_TTL_SECONDS", fetch.DefaultPositionTTL)
	crewTTL := getEnvDuration("CREW_TTL_SECONDS", fetch.DefaultCrewTTL)
	openNotifyURL := getEnv("OPEN_NOTIFY_URL", source.OpenNotifyBaseURL)
	whereTheISSURL := getEnv("WHERETHEISS_URL", source.WhereTheISSBaseURL)

	log.Println("ISS Tracker starting...")

	openNotify := source.NewOpenNotify(openNotifyURL, sourceTimeout)
	whereTheISS := source.NewWhereTheISS(whereTheISSURL, sourceTimeout)

	positions := fetch.NewPositionFetcher(positionTTL, openNotify, whereTheISS)
	// Both public APIs ask for at most ~1 request per second.
	positions.SetRateLimit(openNotify.Name(), 60, time.Minute)
	positions.SetRateLimit(whereTheISS.Name(), 60, time.Minute)

	crew := fetch.NewCrewFetcher(crewTTL, openNotify)

	dash := dashboard.New(positions, crew, refreshInterval, autoRefresh)

	// Start the refresh driver in background
	go dash.Run()

	// Create and run the Ebitengine dashboard
	game := ui.NewGame(dash)

	ebiten.SetWindowTitle("ISS Real-Time Tracker")
	ebiten.SetWindowSize(800, 480)
	ebiten.SetTPS(30)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		log.Printf("ignoring %s=%q: want a positive number of seconds", key, v)
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("ignoring %s=%q: want true or false", key, v)
		return fallback
	}
	return b
}
