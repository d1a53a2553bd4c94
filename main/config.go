package main

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config collects the tunables of the demo application. Every value has a
// default so the binary runs without a config file.
type Config struct {
	// Grid geometry.
	Nx, Ny int
	Dx     float64

	// Solver settings.
	Dt            float64
	PressureIters int

	// Render settings.
	CellPixels  int
	ArrowScale  float64
	ShowVectors bool

	// Interaction settings.
	ImpulseStrength float64
	ImpulseRadius   int

	// Initial condition: vertical velocity injected at the domain center
	// before the first step.
	SeedVelocity float64
}

func defaultConfig() Config {
	return Config{
		Nx:              40,
		Ny:              40,
		Dx:              15.0,
		Dt:              0.016,
		PressureIters:   50,
		CellPixels:      15,
		ArrowScale:      2.0,
		ShowVectors:     true,
		ImpulseStrength: 40.0,
		ImpulseRadius:   2,
		SeedVelocity:    100.0,
	}
}

// loadConfig reads path and overlays it on the defaults. A missing or broken
// file is not fatal; the defaults carry the demo.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("config not loaded, using defaults")
		return cfg
	}

	grid := file.Section("grid")
	cfg.Nx = grid.Key("nx").MustInt(cfg.Nx)
	cfg.Ny = grid.Key("ny").MustInt(cfg.Ny)
	cfg.Dx = grid.Key("dx").MustFloat64(cfg.Dx)

	solver := file.Section("solver")
	cfg.Dt = solver.Key("dt").MustFloat64(cfg.Dt)
	cfg.PressureIters = solver.Key("pressure_iters").MustInt(cfg.PressureIters)

	render := file.Section("render")
	cfg.CellPixels = render.Key("cell_pixels").MustInt(cfg.CellPixels)
	cfg.ArrowScale = render.Key("arrow_scale").MustFloat64(cfg.ArrowScale)
	cfg.ShowVectors = render.Key("show_vectors").MustBool(cfg.ShowVectors)

	input := file.Section("input")
	cfg.ImpulseStrength = input.Key("impulse_strength").MustFloat64(cfg.ImpulseStrength)
	cfg.ImpulseRadius = input.Key("impulse_radius").MustInt(cfg.ImpulseRadius)
	cfg.SeedVelocity = input.Key("seed_velocity").MustFloat64(cfg.SeedVelocity)

	return cfg
}
