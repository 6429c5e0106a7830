package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/soumitra/isstracker/internal/dashboard"
)

const (
	screenWidth  = 800
	screenHeight = 480

	// Layout: 30% left panel, 70% right map
	leftPanelWidth = 240
	mapX           = 240
	mapWidth       = 560

	maxCrewRows = 5
)

// buttonRect is a clickable screen region.
type buttonRect struct {
	x, y, w, h float32
}

func (b buttonRect) contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.x && fx <= b.x+b.w && fy >= b.y && fy <= b.y+b.h
}

// Game implements ebiten.Game for the ISS dashboard display.
type Game struct {
	dash      *dashboard.Dashboard
	mapRender *MapRenderer
	tick      int

	refreshBtn buttonRect
	autoBtn    buttonRect

	fontFaceSm *text.GoTextFace
	fontFace   *text.GoTextFace
	fontFaceLg *text.GoTextFace
	fontFaceXl *text.GoTextFace
}

// NewGame creates a new Game instance.
func NewGame(d *dashboard.Dashboard) *Game {
	g := &Game{
		dash:       d,
		mapRender:  NewMapRenderer(mapX, 0, mapWidth, screenHeight),
		refreshBtn: buttonRect{x: 16, y: 428, w: 120, h: 32},
		autoBtn:    buttonRect{x: 144, y: 428, w: 80, h: 32},
	}
	g.initFonts()
	return g
}

// Update is called every tick (30 TPS).
func (g *Game) Update() error {
	g.tick++

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.refreshBtn.contains(mx, my) {
			g.dash.RequestRefresh()
		}
		if g.autoBtn.contains(mx, my) {
			g.dash.ToggleAutoRefresh()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dash.RequestRefresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.dash.ToggleAutoRefresh()
	}
	return nil
}

// Draw renders the entire screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	state := g.dash.GetState()

	if state.UpdatedAt.IsZero() {
		g.drawWaiting(screen)
		return
	}

	// Right side: Map (70%)
	g.drawMap(screen, state)

	// Left side: Data panel (30%)
	g.drawLeftPanel(screen, state)

	// Divider line between panels
	vector.DrawFilledRect(screen, leftPanelWidth-1, 0, 2, screenHeight, color.RGBA{0x25, 0x25, 0x25, 0xff}, false)
}

// Layout returns the logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// drawWaiting shows the startup screen before the first snapshot lands.
func (g *Game) drawWaiting(screen *ebiten.Image) {
	if g.fontFace == nil {
		return
	}

	vector.DrawFilledCircle(screen, screenWidth/2, screenHeight/2-20, 8, color.RGBA{0x00, 0xbb, 0xff, 0xff}, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(screenWidth/2, screenHeight/2+20)
	op.ColorScale.ScaleWithColor(color.RGBA{0x88, 0x88, 0x88, 0xff})
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Contacting ISS feeds...", g.fontFace, op)

	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(screenWidth/2, screenHeight/2+45)
	op2.ColorScale.ScaleWithColor(color.RGBA{0x44, 0x44, 0x44, 0xff})
	op2.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "ISS Real-Time Tracker", g.fontFaceSm, op2)
}

// drawLeftPanel renders the 30% left data panel.
func (g *Game) drawLeftPanel(screen *ebiten.Image, state dashboard.State) {
	// Panel background — very subtle dark gray
	vector.DrawFilledRect(screen, 0, 0, leftPanelWidth, screenHeight, color.RGBA{0x0a, 0x0a, 0x0a, 0xff}, false)

	if g.fontFace == nil {
		return
	}

	y := 16.0

	// ── Title ──
	drawText(screen, "ISS TRACKER", 16, y, g.fontFaceXl, color.White)
	y += 34
	drawText(screen, "INTERNATIONAL SPACE STATION", 16, y, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
	y += 22

	// ── Data source status ──
	dotClr := color.RGBA{0x00, 0xcc, 0x66, 0xff}
	if state.PosStatus.Fallback {
		dotClr = color.RGBA{0xff, 0xb0, 0x30, 0xff}
	} else if state.PosStatus.Cached {
		dotClr = color.RGBA{0x88, 0x88, 0x88, 0xff}
	}
	vector.DrawFilledCircle(screen, 20, float32(y)+5, 4, dotClr, true)
	drawText(screen, state.PosStatus.Label(), 30, y, g.fontFaceSm, color.RGBA{0xaa, 0xaa, 0xaa, 0xff})
	y += 24

	// ── Metrics ──
	metrics := []struct {
		label string
		value string
	}{
		{"LATITUDE", FormatLatitude(state.Position.Latitude)},
		{"LONGITUDE", FormatLongitude(state.Position.Longitude)},
		{"CREW ONBOARD", fmt.Sprintf("%d", state.Crew.Number)},
	}

	for _, m := range metrics {
		drawText(screen, m.label, 16, y, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
		y += 16
		drawText(screen, m.value, 16, y, g.fontFaceLg, color.White)
		y += 38
	}

	// ── Separator ──
	vector.DrawFilledRect(screen, 16, float32(y), leftPanelWidth-32, 1, color.RGBA{0x22, 0x22, 0x22, 0xff}, false)
	y += 18

	// ── Crew table ──
	g.drawCrewTable(screen, state, y)

	// ── Buttons ──
	g.drawButton(screen, g.refreshBtn, "REFRESH", color.RGBA{0x00, 0x96, 0xff, 0xff}, false)
	autoLabel := "AUTO OFF"
	autoOn := g.dash.AutoRefresh()
	if autoOn {
		autoLabel = "AUTO ON"
	}
	g.drawButton(screen, g.autoBtn, autoLabel, color.RGBA{0x00, 0xcc, 0x66, 0xff}, !autoOn)
}

// drawCrewTable renders the crew list with craft assignments.
func (g *Game) drawCrewTable(screen *ebiten.Image, state dashboard.State, y float64) {
	header := "CURRENT CREW"
	if state.CrewStatus.Fallback {
		header = "CURRENT CREW (DEMO)"
	}
	drawText(screen, header, 16, y, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
	y += 20

	people := state.Crew.People
	rows := len(people)
	if rows > maxCrewRows {
		rows = maxCrewRows
	}

	for i := 0; i < rows; i++ {
		m := people[i]
		name := m.Name
		// Keep long names inside the panel.
		for textWidth(name, g.fontFace) > leftPanelWidth-90 && len(name) > 4 {
			r := []rune(name)
			name = string(r[:len(r)-2]) + "…"
		}
		drawText(screen, name, 16, y, g.fontFace, color.RGBA{0xdd, 0xdd, 0xdd, 0xff})

		craft := m.Craft
		cw := textWidth(craft, g.fontFaceSm)
		drawText(screen, craft, leftPanelWidth-16-cw, y+3, g.fontFaceSm, color.RGBA{0x66, 0x66, 0x66, 0xff})
		y += 22
	}

	if len(people) > maxCrewRows {
		drawText(screen, fmt.Sprintf("+ %d MORE", len(people)-maxCrewRows), 16, y, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
	}
	if len(people) == 0 {
		drawText(screen, "No crew data", 16, y, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
	}
}

// drawButton renders a rounded button with centered label.
func (g *Game) drawButton(screen *ebiten.Image, b buttonRect, label string, accent color.RGBA, dim bool) {
	bg := color.RGBA{0x16, 0x16, 0x16, 0xff}
	drawRoundedRect(screen, b.x, b.y, b.w, b.h, 6, bg)

	clr := accent
	if dim {
		clr = color.RGBA{0x66, 0x66, 0x66, 0xff}
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.x+b.w/2), float64(b.y+b.h/2)-8)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, label, g.fontFace, op)
}

// drawMap renders the right-side world map with labels.
func (g *Game) drawMap(screen *ebiten.Image, state dashboard.State) {
	lat := state.Position.Latitude
	lon := state.Position.Longitude

	g.mapRender.Draw(screen, lat, lon, state.PosStatus.Fallback, g.tick)

	if g.fontFaceSm == nil {
		return
	}

	// Marker label
	px, py := g.mapRender.ISSScreenPos(lat, lon)
	labelX := float64(px) + 12
	if px > screenWidth-60 {
		labelX = float64(px) - 40
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(labelX, float64(py)-6)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, "ISS", g.fontFaceSm, op)

	// Footer: update age and raw coordinates
	age := FormatAge(time.Since(state.UpdatedAt))
	drawText(screen, "UPDATED "+age, mapX+12, screenHeight-24, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})

	coords := fmt.Sprintf("(%.4f, %.4f)", lat, lon)
	cw := textWidth(coords, g.fontFaceSm)
	drawText(screen, coords, screenWidth-12-cw, screenHeight-24, g.fontFaceSm, color.RGBA{0x55, 0x55, 0x55, 0xff})
}

// drawRoundedRect draws a filled rounded rectangle.
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	vector.DrawFilledRect(screen, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(screen, x, y+r, r, h-2*r, clr, true)
	vector.DrawFilledRect(screen, x+w-r, y+r, r, h-2*r, clr, true)
	vector.DrawFilledCircle(screen, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(screen, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(screen, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(screen, x+w-r, y+h-r, r, clr, true)
}

// drawText is a helper to draw text at a given position.
func drawText(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// textWidth measures the pixel width of a string with the given font face.
func textWidth(s string, face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}
