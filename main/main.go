// Demo front end for the solver: an ebiten window drawing the velocity field
// as colored line segments, or a headless websocket telemetry server. All
// physics lives in pkg/fluid; this binary only seeds, steps and draws.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"

	"github.com/nihcosnosaj/macflow/pkg/fluid"
	"github.com/nihcosnosaj/macflow/server"
)

var (
	// configFlag points at an optional ini file overriding the defaults.
	configFlag = flag.String("config", "macflow.ini", "path to the simulation config file")

	// serveFlag switches to headless mode, streaming frames over websockets
	// on the given address instead of opening a window.
	serveFlag = flag.String("serve", "", "run headless and serve frames on this address (e.g. :9000)")

	// debugFlag enables the TPS and divergence overlay.
	debugFlag = flag.Bool("debug", false, "show TPS and divergence overlay")
)

type Game struct {
	grid *fluid.Grid
	cfg  Config

	prevMouseX, prevMouseY int
	dragging               bool
}

func NewGame(cfg Config) *Game {
	grid := fluid.NewGrid(cfg.Nx, cfg.Ny, cfg.Dx)
	grid.PressureIters = cfg.PressureIters
	grid.SetV(cfg.Nx/2, cfg.Ny/2, cfg.SeedVelocity)
	return &Game{grid: grid, cfg: cfg}
}

func (g *Game) Update() error {
	g.applyMouseImpulse()
	g.grid.Step(g.cfg.Dt)
	return nil
}

// applyMouseImpulse turns a mouse drag into a velocity impulse along the drag
// direction at the cursor's cell.
func (g *Game) applyMouseImpulse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.dragging {
		dx := float64(mx-g.prevMouseX) / float64(g.cfg.CellPixels)
		dy := float64(my-g.prevMouseY) / float64(g.cfg.CellPixels)
		if dx != 0 || dy != 0 {
			ci := mx / g.cfg.CellPixels
			cj := my / g.cfg.CellPixels
			g.grid.AddImpulse(ci, cj,
				dx*g.cfg.ImpulseStrength, dy*g.cfg.ImpulseStrength,
				g.cfg.ImpulseRadius)
		}
	}
	g.prevMouseX, g.prevMouseY = mx, my
	g.dragging = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ShowVectors {
		g.drawVelocities(screen)
	}
	if *debugFlag {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nmax div: %0.5f",
			ebiten.ActualTPS(), g.grid.MaxDivergence()))
	}
}

// drawVelocities draws one line segment per interior cell, anchored at the
// cell center, scaled from the sampled velocity and colored by magnitude.
func (g *Game) drawVelocities(screen *ebiten.Image) {
	field := g.grid.Velocity()
	pixPerUnit := float64(g.cfg.CellPixels) / g.grid.Dx()

	for j := 1; j < g.grid.Ny()-1; j++ {
		for i := 1; i < g.grid.Nx()-1; i++ {
			x := (float64(i) + 0.5) * g.grid.Dx()
			y := (float64(j) + 0.5) * g.grid.Dx()
			u, v := g.grid.SampleVelocity(x, y)

			x0 := float32(x * pixPerUnit)
			y0 := float32(y * pixPerUnit)
			x1 := float32((x + u*g.cfg.ArrowScale) * pixPerUnit)
			y1 := float32((y + v*g.cfg.ArrowScale) * pixPerUnit)

			clr := getSciValue(math.Hypot(u, v), 0, field.MaxMagnitude+1e-9)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, clr, true)
		}
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Nx * g.cfg.CellPixels, g.cfg.Ny * g.cfg.CellPixels
}

func runHeadless(cfg Config, addr string) error {
	grid := fluid.NewGrid(cfg.Nx, cfg.Ny, cfg.Dx)
	grid.PressureIters = cfg.PressureIters
	grid.SetV(cfg.Nx/2, cfg.Ny/2, cfg.SeedVelocity)

	hub := server.NewHub(grid, cfg.Dt)
	go hub.Run(time.Duration(float64(time.Second) * cfg.Dt))
	defer hub.Stop()

	return server.NewServer(addr, hub).Serve()
}

func main() {
	flag.Parse()
	cfg := loadConfig(*configFlag)
	log.WithFields(log.Fields{
		"nx": cfg.Nx, "ny": cfg.Ny, "dx": cfg.Dx, "dt": cfg.Dt,
	}).Info("starting simulation")

	if *serveFlag != "" {
		if err := runHeadless(cfg, *serveFlag); err != nil {
			log.WithError(err).Fatal("telemetry server stopped")
		}
		return
	}

	ebiten.SetWindowSize(cfg.Nx*cfg.CellPixels, cfg.Ny*cfg.CellPixels)
	ebiten.SetWindowTitle("Fluid Sim")
	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
