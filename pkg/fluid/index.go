package fluid

// Flat-array geometry for the three staggered fields lives here and nowhere
// else. All layouts are row-major with the row index outermost.

// CellIndex maps cell-center coordinates (column i, row j) to a flat offset
// into the pressure field.
func (g *Grid) CellIndex(i, j int) int {
	return j*g.nx + i
}

// UIndex maps vertical-face coordinates to a flat offset into the horizontal
// velocity field. Face columns run 0..nx inclusive.
func (g *Grid) UIndex(i, j int) int {
	return j*(g.nx+1) + i
}

// VIndex maps horizontal-face coordinates to a flat offset into the vertical
// velocity field. Face rows run 0..ny inclusive.
func (g *Grid) VIndex(i, j int) int {
	return j*g.nx + i
}
