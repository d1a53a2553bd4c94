package fluid

// advect performs one semi-Lagrangian step on both velocity components. For
// each interior face the current velocity at the face position is used to
// trace one step backward along the flow, and the pre-step field is sampled
// at that source position. Every read during the sweep sees the pre-step
// field; results land in scratch buffers that replace the fields only after
// both sweeps complete, so cells cannot contaminate each other within a step.
// The outermost face columns of u and face rows of v are left alone here;
// setBoundaries finalizes them at the end of the step.
func (g *Grid) advect(dt float64) {
	copy(g.uNew, g.u)
	copy(g.vNew, g.v)

	// Horizontal component, one output row per worker item.
	parallelRange(0, g.ny, func(j int) {
		y := (float64(j) + 0.5) * g.dx
		for i := 1; i < g.nx; i++ {
			x := float64(i) * g.dx
			u, v := g.SampleVelocity(x, y)
			su, _ := g.SampleVelocity(x-dt*u, y-dt*v)
			g.uNew[g.UIndex(i, j)] = su
		}
	})

	// Vertical component.
	parallelRange(1, g.ny, func(j int) {
		y := float64(j) * g.dx
		for i := 0; i < g.nx; i++ {
			x := (float64(i) + 0.5) * g.dx
			u, v := g.SampleVelocity(x, y)
			_, sv := g.SampleVelocity(x-dt*u, y-dt*v)
			g.vNew[g.VIndex(i, j)] = sv
		}
	})

	copy(g.u, g.uNew)
	copy(g.v, g.vNew)
}
