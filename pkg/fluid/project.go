package fluid

// project subtracts the pressure gradient from the advected velocity field so
// the divergence at interior faces is reduced. The scale constant assumes
// density 1, matching the pressure solve. Outer-boundary faces are untouched;
// setBoundaries finalizes them.
func (g *Grid) project(dt float64) {
	scale := dt / g.dx

	parallelRange(1, g.ny-1, func(j int) {
		for i := 1; i < g.nx; i++ {
			pLeft := g.p[g.CellIndex(i-1, j)]
			pRight := g.p[g.CellIndex(i, j)]
			g.u[g.UIndex(i, j)] -= scale * (pRight - pLeft)
		}
	})

	parallelRange(1, g.ny, func(j int) {
		for i := 1; i < g.nx-1; i++ {
			pBot := g.p[g.CellIndex(i, j-1)]
			pTop := g.p[g.CellIndex(i, j)]
			g.v[g.VIndex(i, j)] -= scale * (pTop - pBot)
		}
	})
}
