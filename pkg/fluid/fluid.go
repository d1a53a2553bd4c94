// Package fluid implements an Eulerian incompressible-flow solver on a fixed
// 2D staggered (MAC) grid: pressure at cell centers, the horizontal velocity
// component on vertical cell faces and the vertical component on horizontal
// cell faces. One Step advects the velocity field semi-Lagrangially, relaxes
// a discrete Poisson equation for pressure, subtracts the pressure gradient
// and re-applies the no-flow wall condition.
package fluid

import (
	"fmt"
	"math"
)

// DefaultPressureIters is the number of Jacobi sweeps run per step. A fixed
// count, rather than a convergence tolerance, keeps per-step cost bounded and
// deterministic.
const DefaultPressureIters = 50

type Grid struct {
	nx, ny int
	dx     float64

	p []float64 // pressure, nx*ny, cell centers
	u []float64 // x-velocity, (nx+1)*ny, vertical faces
	v []float64 // y-velocity, nx*(ny+1), horizontal faces

	// Scratch buffers reused across steps so each pass can write its results
	// without disturbing the field it reads from.
	uNew, vNew []float64
	div        []float64
	pNew       []float64

	// PressureIters is the number of Jacobi sweeps the pressure solve runs.
	// Tune between steps; must stay positive.
	PressureIters int
}

// NewGrid returns a zero-initialized grid of nx by ny cells with uniform
// spacing dx. It panics if any argument is non-positive.
func NewGrid(nx, ny int, dx float64) *Grid {
	if nx <= 0 {
		panic(fmt.Sprintf("fluid: invalid column count: %d", nx))
	}
	if ny <= 0 {
		panic(fmt.Sprintf("fluid: invalid row count: %d", ny))
	}
	if dx <= 0 || math.IsNaN(dx) {
		panic(fmt.Sprintf("fluid: invalid cell spacing: %v", dx))
	}
	return &Grid{
		nx:            nx,
		ny:            ny,
		dx:            dx,
		p:             make([]float64, nx*ny),
		u:             make([]float64, (nx+1)*ny),
		v:             make([]float64, nx*(ny+1)),
		uNew:          make([]float64, (nx+1)*ny),
		vNew:          make([]float64, nx*(ny+1)),
		div:           make([]float64, nx*ny),
		pNew:          make([]float64, nx*ny),
		PressureIters: DefaultPressureIters,
	}
}

// Nx returns the number of cell columns.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the number of cell rows.
func (g *Grid) Ny() int { return g.ny }

// Dx returns the cell spacing.
func (g *Grid) Dx() float64 { return g.dx }

// Width returns the domain extent along x.
func (g *Grid) Width() float64 { return float64(g.nx) * g.dx }

// Height returns the domain extent along y.
func (g *Grid) Height() float64 { return float64(g.ny) * g.dx }

// Step advances the simulation by dt: advection, pressure solve, projection,
// then wall enforcement, always in that order and always to completion. It
// panics if dt is not positive.
func (g *Grid) Step(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		panic(fmt.Sprintf("fluid: invalid time increment: %v", dt))
	}
	g.advect(dt)
	g.solvePressure()
	g.project(dt)
	g.setBoundaries()
}

// U returns the horizontal velocity stored on vertical face (i, j).
func (g *Grid) U(i, j int) float64 {
	g.checkIndex(i, j, g.nx+1, g.ny)
	return g.u[g.UIndex(i, j)]
}

// V returns the vertical velocity stored on horizontal face (i, j).
func (g *Grid) V(i, j int) float64 {
	g.checkIndex(i, j, g.nx, g.ny+1)
	return g.v[g.VIndex(i, j)]
}

// P returns the pressure stored at cell center (i, j).
func (g *Grid) P(i, j int) float64 {
	g.checkIndex(i, j, g.nx, g.ny)
	return g.p[g.CellIndex(i, j)]
}

// SetU stores a horizontal velocity on vertical face (i, j).
func (g *Grid) SetU(i, j int, val float64) {
	g.checkIndex(i, j, g.nx+1, g.ny)
	g.u[g.UIndex(i, j)] = val
}

// SetV stores a vertical velocity on horizontal face (i, j).
func (g *Grid) SetV(i, j int, val float64) {
	g.checkIndex(i, j, g.nx, g.ny+1)
	g.v[g.VIndex(i, j)] = val
}

func (g *Grid) checkIndex(i, j, cols, rows int) {
	if i < 0 || i >= cols {
		panic(fmt.Sprintf("fluid: invalid x-index: %d", i))
	}
	if j < 0 || j >= rows {
		panic(fmt.Sprintf("fluid: invalid y-index: %d", j))
	}
}

// AddImpulse adds a velocity impulse centered on cell (cx, cy) with Gaussian
// falloff over the given cell radius. Faces on the outer walls are skipped so
// an impulse can never violate the no-flow condition. A radius of zero
// touches only the faces of the center cell.
func (g *Grid) AddImpulse(cx, cy int, du, dv float64, radius int) {
	if radius < 0 {
		radius = 0
	}
	r2 := float64(radius*radius) + 1e-12
	for j := cy - radius; j <= cy+radius; j++ {
		for i := cx - radius; i <= cx+radius; i++ {
			ddx := float64(i - cx)
			ddy := float64(j - cy)
			dist2 := ddx*ddx + ddy*ddy
			if dist2 > r2 {
				continue
			}
			// Edge of the radius lands at ~5% strength.
			weight := math.Exp(-3.0 * dist2 / r2)
			if i >= 1 && i <= g.nx-1 && j >= 0 && j <= g.ny-1 {
				g.u[g.UIndex(i, j)] += du * weight
			}
			if i >= 0 && i <= g.nx-1 && j >= 1 && j <= g.ny-1 {
				g.v[g.VIndex(i, j)] += dv * weight
			}
		}
	}
}

// Reset zeroes every field and scratch buffer, returning the grid to its
// construction state.
func (g *Grid) Reset() {
	fill(g.p, 0)
	fill(g.u, 0)
	fill(g.v, 0)
	fill(g.uNew, 0)
	fill(g.vNew, 0)
	fill(g.div, 0)
	fill(g.pNew, 0)
}

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}
