// Package ui is the ebiten front-end: it draws the agents as directional
// triangles and owns the slider controls that reconfigure the simulation.
package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prowl/config"
	"prowl/geom"
	"prowl/sim"
)

const (
	ScreenW = 640
	ScreenH = 540

	// The world view occupies the top of the window; sliders live below.
	viewH = 440
)

var (
	backgroundColor = color.RGBA{0x0a, 0x0f, 0x1a, 0xff}
	areaColor       = color.RGBA{0x2a, 0x30, 0x3c, 0xff}
	hunterColor     = color.RGBA{0x4a, 0x7c, 0xff, 0xff}
	preyColor       = color.RGBA{0xff, 0x5a, 0x4a, 0xff}
)

// Game drives the simulation from ebiten's tick callback and renders it.
// All simulation mutation happens inside Update; the config watcher only
// posts a pending snapshot.
type Game struct {
	world *sim.World

	hunterSlider *Slider
	safeSlider   *Slider

	paused bool
	log    *slog.Logger

	mu      sync.Mutex
	pending *config.File
}

// New builds the game from a loaded config.
func New(cfg config.File, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{log: log}
	g.configure(cfg)
	return g
}

func (g *Game) configure(cfg config.File) {
	g.world = sim.New(cfg.Params())
	p := g.world.Params()
	g.hunterSlider = NewSlider("Hunters", 120, viewH+30, 400,
		sim.MinHunters, sim.MaxHunters, 1, float64(p.Hunters))
	g.safeSlider = NewSlider("Safe distance", 120, viewH+80, 400,
		cfg.SafeDistanceMin, cfg.SafeDistanceMax, 0, p.SafeDistance)
}

// Apply schedules a new config to take effect on the next tick. Safe to
// call from any goroutine.
func (g *Game) Apply(cfg config.File) {
	g.mu.Lock()
	g.pending = &cfg
	g.mu.Unlock()
}

func (g *Game) takePending() *config.File {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.pending
	g.pending = nil
	return p
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if cfg := g.takePending(); cfg != nil {
		g.log.Info("applying reloaded tuning")
		g.configure(*cfg)
	}

	if g.hunterSlider.Update() {
		g.world.SetHunters(int(g.hunterSlider.Value()))
	}
	if g.safeSlider.Update() {
		g.world.SetSafeDistance(g.safeSlider.Value())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.paused && !g.world.Done() {
		if g.world.Step() {
			g.log.Info("prey captured",
				"tick", g.world.Tick(),
				"distance", g.world.NearestHunterDistance())
		}
	}
	return nil
}

// toScreen maps world coordinates into the view, world Y up.
func (g *Game) toScreen(p geom.Vec) (float32, float32) {
	area := g.world.Params().AreaSize
	scale := float64(viewH) / area
	offX := (float64(ScreenW) - area*scale) / 2
	return float32(offX + p.X*scale), float32(float64(viewH) - p.Y*scale)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Spawn-area outline; agents are free to leave it.
	x0, y0 := g.toScreen(geom.Vec{Y: g.world.Params().AreaSize})
	vector.StrokeRect(screen, x0, y0, viewH, viewH, 1, areaColor, true)

	for _, h := range g.world.Hunters() {
		drawTriangle(screen, h.Pos, h.Heading, g.toScreen, hunterColor)
	}
	prey := g.world.Prey()
	drawTriangle(screen, prey.Pos, prey.Heading, g.toScreen, preyColor)

	g.hunterSlider.Draw(screen)
	g.safeSlider.Draw(screen)

	status := fmt.Sprintf("tick %d  nearest %.2f", g.world.Tick(), g.world.NearestHunterDistance())
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	if g.world.Done() {
		ebitenutil.DebugPrintAt(screen, "CAPTURED - press R to restart", ScreenW/2-90, viewH/2)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}
