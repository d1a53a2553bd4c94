package fluid

import "fmt"

// ScalarField is a copy-out snapshot of a per-cell scalar quantity, row-major
// with the row index outermost. MinValue and MaxValue cover the whole field
// so consumers can normalize without a second pass.
type ScalarField struct {
	NumX, NumY int
	values     []float64

	MinValue, MaxValue float64
}

// Value returns the scalar at cell (i, j).
func (s ScalarField) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.NumX {
		return 0, fmt.Errorf("x index out of range, must be between 0 and %d", s.NumX-1)
	}
	if j < 0 || j >= s.NumY {
		return 0, fmt.Errorf("y index out of range, must be between 0 and %d", s.NumY-1)
	}
	return s.values[j*s.NumX+i], nil
}
