package fluid

import "math"

// SampleVelocity returns the bilinearly interpolated velocity at the domain
// position (x, y). Positions outside the domain are clamped to the nearest
// boundary point, so sampling never fails. The query is pure: the renderer
// may call it between steps, and the advection sweep relies on it for
// off-grid lookups.
func (g *Grid) SampleVelocity(x, y float64) (u, v float64) {
	x = max(min(x, g.Width()), 0)
	y = max(min(y, g.Height()), 0)
	return g.sampleU(x, y), g.sampleV(x, y)
}

// sampleU interpolates the horizontal component. Vertical faces sit at
// integer multiples of dx in x and are offset by half a cell in y.
func (g *Grid) sampleU(x, y float64) float64 {
	fx := x / g.dx
	fy := y/g.dx - 0.5

	i0 := int(math.Floor(fx))
	j0 := int(math.Floor(fy))
	tx := fx - float64(i0)
	ty := fy - float64(j0)

	// Clamp each corner individually so out-of-range lookups degrade to
	// edge replication.
	ia := clampIndex(i0, g.nx)
	ib := clampIndex(i0+1, g.nx)
	ja := clampIndex(j0, g.ny-1)
	jb := clampIndex(j0+1, g.ny-1)

	u00 := g.u[g.UIndex(ia, ja)]
	u10 := g.u[g.UIndex(ib, ja)]
	u01 := g.u[g.UIndex(ia, jb)]
	u11 := g.u[g.UIndex(ib, jb)]

	return u00*(1-tx)*(1-ty) +
		u10*tx*(1-ty) +
		u01*(1-tx)*ty +
		u11*tx*ty
}

// sampleV interpolates the vertical component. Horizontal faces sit at
// integer multiples of dx in y and are offset by half a cell in x.
func (g *Grid) sampleV(x, y float64) float64 {
	fx := x/g.dx - 0.5
	fy := y / g.dx

	i0 := int(math.Floor(fx))
	j0 := int(math.Floor(fy))
	tx := fx - float64(i0)
	ty := fy - float64(j0)

	ia := clampIndex(i0, g.nx-1)
	ib := clampIndex(i0+1, g.nx-1)
	ja := clampIndex(j0, g.ny)
	jb := clampIndex(j0+1, g.ny)

	v00 := g.v[g.VIndex(ia, ja)]
	v10 := g.v[g.VIndex(ib, ja)]
	v01 := g.v[g.VIndex(ia, jb)]
	v11 := g.v[g.VIndex(ib, jb)]

	return v00*(1-tx)*(1-ty) +
		v10*tx*(1-ty) +
		v01*(1-tx)*ty +
		v11*tx*ty
}

// clampIndex constrains i to the inclusive range [0, hi].
func clampIndex(i, hi int) int {
	return max(min(i, hi), 0)
}
