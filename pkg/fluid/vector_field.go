package fluid

import (
	"fmt"
	"math"
)

// VectorField is a copy-out snapshot of the velocity averaged to cell
// centers, row-major with the row index outermost. MaxMagnitude covers the
// whole field so consumers can scale arrows or colors without a second pass.
type VectorField struct {
	NumX, NumY       int
	valuesU, valuesV []float64

	MaxMagnitude float64
}

// At returns the cell-center velocity at cell (i, j).
func (f VectorField) At(i, j int) (float64, float64, error) {
	if i < 0 || i >= f.NumX {
		return 0, 0, fmt.Errorf("x index out of range, must be between 0 and %d", f.NumX-1)
	}
	if j < 0 || j >= f.NumY {
		return 0, 0, fmt.Errorf("y index out of range, must be between 0 and %d", f.NumY-1)
	}
	idx := j*f.NumX + i
	return f.valuesU[idx], f.valuesV[idx], nil
}

// Velocity averages the staggered face values to cell centers and returns
// them as a snapshot. For the staggered layout this equals bilinear sampling
// at the center points.
func (g *Grid) Velocity() VectorField {
	us := make([]float64, g.nx*g.ny)
	vs := make([]float64, g.nx*g.ny)
	maxMag := 0.0
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			u := (g.u[g.UIndex(i, j)] + g.u[g.UIndex(i+1, j)]) * 0.5
			v := (g.v[g.VIndex(i, j)] + g.v[g.VIndex(i, j+1)]) * 0.5
			idx := g.CellIndex(i, j)
			us[idx] = u
			vs[idx] = v
			if mag := math.Hypot(u, v); mag > maxMag {
				maxMag = mag
			}
		}
	}
	return VectorField{
		NumX:         g.nx,
		NumY:         g.ny,
		valuesU:      us,
		valuesV:      vs,
		MaxMagnitude: maxMag,
	}
}
