package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapRenderer draws a fixed whole-world map with the ISS ground position.
type MapRenderer struct {
	// Screen region for the map
	x, y, w, h float32

	// Equirectangular projection, letterboxed inside the region
	scale   float32 // pixels per degree
	originX float32 // screen x of longitude -180
	originY float32 // screen y of latitude +90

	// Simplified continent outlines
	coastlines [][][2]float64
}

// NewMapRenderer creates a map renderer for the given screen region.
func NewMapRenderer(x, y, w, h float32) *MapRenderer {
	m := &MapRenderer{x: x, y: y, w: w, h: h}

	// World is 360°×180°; fit it into the region keeping the 2:1 aspect.
	scale := w / 360
	if s := h / 180; s < scale {
		scale = s
	}
	m.scale = scale
	m.originX = x + (w-scale*360)/2
	m.originY = y + (h-scale*180)/2

	m.coastlines = worldCoastlines
	return m
}

// latLonToScreen converts geographic coordinates to screen pixel coordinates.
func (m *MapRenderer) latLonToScreen(lat, lon float64) (float32, float32) {
	sx := m.originX + float32(lon+180)*m.scale
	sy := m.originY + float32(90-lat)*m.scale
	return sx, sy
}

// Draw renders the world map and the ISS marker. fallback switches the
// marker to the demo-data color; tick drives the marker pulse.
func (m *MapRenderer) Draw(screen *ebiten.Image, lat, lon float64, fallback bool, tick int) {
	// Ocean
	left, top := m.latLonToScreen(90, -180)
	vector.DrawFilledRect(screen, left, top, m.scale*360, m.scale*180, color.RGBA{0x0a, 0x0f, 0x1a, 0xff}, false)

	m.drawGraticule(screen)
	m.drawCoastlines(screen)
	m.drawISS(screen, lat, lon, fallback, tick)
}

// drawGraticule draws faint meridians and parallels every 30°.
func (m *MapRenderer) drawGraticule(screen *ebiten.Image) {
	gridColor := color.RGBA{0x14, 0x1c, 0x28, 0xff}
	equatorColor := color.RGBA{0x1e, 0x2a, 0x3a, 0xff}

	for lon := -180.0; lon <= 180; lon += 30 {
		x1, y1 := m.latLonToScreen(90, lon)
		x2, y2 := m.latLonToScreen(-90, lon)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, gridColor, false)
	}
	for lat := -60.0; lat <= 60; lat += 30 {
		x1, y1 := m.latLonToScreen(lat, -180)
		x2, y2 := m.latLonToScreen(lat, 180)
		clr := gridColor
		if lat == 0 {
			clr = equatorColor
		}
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, false)
	}
}

// drawCoastlines renders the simplified continent outlines.
func (m *MapRenderer) drawCoastlines(screen *ebiten.Image) {
	coastColor := color.RGBA{0x2a, 0x3f, 0x55, 0xff}

	for _, line := range m.coastlines {
		for i := 0; i < len(line)-1; i++ {
			x1, y1 := m.latLonToScreen(line[i][0], line[i][1])
			x2, y2 := m.latLonToScreen(line[i+1][0], line[i+1][1])
			vector.StrokeLine(screen, x1, y1, x2, y2, 1.5, coastColor, false)
		}
	}
}

// drawISS draws the pulsing station marker.
func (m *MapRenderer) drawISS(screen *ebiten.Image, lat, lon float64, fallback bool, tick int) {
	x, y := m.latLonToScreen(lat, lon)

	dotColor := color.RGBA{0x00, 0xc8, 0xff, 0xff}
	glowColor := color.RGBA{0x00, 0x96, 0xff, 0x40}
	if fallback {
		dotColor = color.RGBA{0xff, 0xb0, 0x30, 0xff}
		glowColor = color.RGBA{0xff, 0x96, 0x00, 0x40}
	}

	// Expanding pulse ring, one cycle per second at 30 TPS.
	phase := float32(tick%30) / 30
	vector.StrokeCircle(screen, x, y, 6+phase*10, 1.5,
		color.RGBA{glowColor.R, glowColor.G, glowColor.B, uint8(float32(0x70) * (1 - phase))}, true)

	vector.DrawFilledCircle(screen, x, y, 8, glowColor, false)
	vector.DrawFilledCircle(screen, x, y, 4, dotColor, false)
	vector.DrawFilledCircle(screen, x, y, 2, color.RGBA{0xff, 0xff, 0xff, 0xff}, false)
}

// ISSScreenPos returns the marker's screen position (for label rendering).
func (m *MapRenderer) ISSScreenPos(lat, lon float64) (float32, float32) {
	return m.latLonToScreen(lat, lon)
}

// FormatLatitude returns a formatted latitude string with hemisphere.
func FormatLatitude(lat float64) string {
	hemi := "N"
	if lat < 0 {
		hemi = "S"
	}
	return fmt.Sprintf("%.4f° %s", math.Abs(lat), hemi)
}

// FormatLongitude returns a formatted longitude string with hemisphere.
func FormatLongitude(lon float64) string {
	hemi := "E"
	if lon < 0 {
		hemi = "W"
	}
	return fmt.Sprintf("%.4f° %s", math.Abs(lon), hemi)
}

// FormatAge returns a short "time since" string for the updated line.
func FormatAge(d time.Duration) string {
	switch {
	case d < 2*time.Second:
		return "JUST NOW"
	case d < time.Minute:
		return fmt.Sprintf("%dS AGO", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dM AGO", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dH AGO", int(d.Hours()))
	}
}
