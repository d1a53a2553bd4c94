package fluid

import "math"

// solvePressure computes the divergence of the current velocity field and
// relaxes the discrete Poisson equation with a fixed number of synchronous
// Jacobi sweeps. Density is fixed at 1 and absorbed into the scale constants.
func (g *Grid) solvePressure() {
	g.computeDivergence()

	// Each sweep reads the previous sweep's pressure and writes a separate
	// buffer; the swap happens only once the sweep is complete. The outermost
	// pressure ring is never an update target and keeps whatever values it
	// held before the solve, which acts as an implicit zero-gradient
	// boundary when interior cells read it as a neighbor.
	copy(g.pNew, g.p)
	dx2 := g.dx * g.dx
	for iter := 0; iter < g.PressureIters; iter++ {
		parallelRange(1, g.ny-1, func(j int) {
			for i := 1; i < g.nx-1; i++ {
				pRight := g.p[g.CellIndex(i+1, j)]
				pLeft := g.p[g.CellIndex(i-1, j)]
				pTop := g.p[g.CellIndex(i, j+1)]
				pBot := g.p[g.CellIndex(i, j-1)]
				d := g.div[g.CellIndex(i, j)]
				g.pNew[g.CellIndex(i, j)] = (pRight + pLeft + pTop + pBot - d*dx2) / 4
			}
		})
		copy(g.p, g.pNew)
	}
}

// computeDivergence fills the divergence scratch buffer from the four face
// velocities surrounding each cell.
func (g *Grid) computeDivergence() {
	parallelRange(0, g.ny, func(j int) {
		for i := 0; i < g.nx; i++ {
			uRight := g.u[g.UIndex(i+1, j)]
			uLeft := g.u[g.UIndex(i, j)]
			vTop := g.v[g.VIndex(i, j+1)]
			vBot := g.v[g.VIndex(i, j)]
			g.div[g.CellIndex(i, j)] = (uRight - uLeft + vTop - vBot) / g.dx
		}
	})
}

// DivergenceField recomputes the per-cell divergence of the current velocity
// field and returns it as a snapshot. Diagnostic only; Step does not read it.
func (g *Grid) DivergenceField() ScalarField {
	vals := make([]float64, g.nx*g.ny)
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			d := (g.u[g.UIndex(i+1, j)] - g.u[g.UIndex(i, j)] +
				g.v[g.VIndex(i, j+1)] - g.v[g.VIndex(i, j)]) / g.dx
			vals[g.CellIndex(i, j)] = d
			minVal = min(minVal, d)
			maxVal = max(maxVal, d)
		}
	}
	return ScalarField{
		NumX:     g.nx,
		NumY:     g.ny,
		values:   vals,
		MinValue: minVal,
		MaxValue: maxVal,
	}
}

// MaxDivergence returns the maximum absolute divergence across all cells.
func (g *Grid) MaxDivergence() float64 {
	maxDiv := 0.0
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			d := (g.u[g.UIndex(i+1, j)] - g.u[g.UIndex(i, j)] +
				g.v[g.VIndex(i, j+1)] - g.v[g.VIndex(i, j)]) / g.dx
			if a := math.Abs(d); a > maxDiv {
				maxDiv = a
			}
		}
	}
	return maxDiv
}

// Pressure returns a copy of the pressure field with its value range.
func (g *Grid) Pressure() ScalarField {
	vals := make([]float64, len(g.p))
	copy(vals, g.p)
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, p := range vals {
		minVal = min(minVal, p)
		maxVal = max(maxVal, p)
	}
	return ScalarField{
		NumX:     g.nx,
		NumY:     g.ny,
		values:   vals,
		MinValue: minVal,
		MaxValue: maxVal,
	}
}
