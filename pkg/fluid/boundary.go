package fluid

// setBoundaries enforces the solid no-flow wall on all four sides: zero
// horizontal velocity on the left and right wall faces, zero vertical
// velocity on the bottom and top wall faces. It runs last in every step so
// neither advection nor projection can leave nonzero wall velocity behind.
func (g *Grid) setBoundaries() {
	for j := 0; j < g.ny; j++ {
		g.u[g.UIndex(0, j)] = 0
		g.u[g.UIndex(g.nx, j)] = 0
	}
	for i := 0; i < g.nx; i++ {
		g.v[g.VIndex(i, 0)] = 0
		g.v[g.VIndex(i, g.ny)] = 0
	}
}
