package fluid

import "testing"

func TestNewGridFieldSizes(t *testing.T) {
	g := NewGrid(7, 4, 1.5)

	if len(g.p) != 7*4 {
		t.Errorf("pressure field size = %d, want %d", len(g.p), 7*4)
	}
	if len(g.u) != 8*4 {
		t.Errorf("u field size = %d, want %d", len(g.u), 8*4)
	}
	if len(g.v) != 7*5 {
		t.Errorf("v field size = %d, want %d", len(g.v), 7*5)
	}
	for idx, val := range g.p {
		if val != 0 {
			t.Fatalf("pressure not zero-initialized at %d: %f", idx, val)
		}
	}
	for idx, val := range g.u {
		if val != 0 {
			t.Fatalf("u not zero-initialized at %d: %f", idx, val)
		}
	}
	for idx, val := range g.v {
		if val != 0 {
			t.Fatalf("v not zero-initialized at %d: %f", idx, val)
		}
	}
	if g.PressureIters != DefaultPressureIters {
		t.Errorf("PressureIters = %d, want %d", g.PressureIters, DefaultPressureIters)
	}
}

func TestNewGridPanicsOnInvalidArgs(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny int
		dx     float64
	}{
		{"zero columns", 0, 10, 1.0},
		{"zero rows", 10, 0, 1.0},
		{"negative columns", -3, 10, 1.0},
		{"zero spacing", 10, 10, 0},
		{"negative spacing", 10, 10, -1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d, %f) did not panic", tc.nx, tc.ny, tc.dx)
				}
			}()
			NewGrid(tc.nx, tc.ny, tc.dx)
		})
	}
}

func TestStepPanicsOnInvalidDt(t *testing.T) {
	g := NewGrid(4, 4, 1.0)
	for _, dt := range []float64{0, -0.016} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Step(%f) did not panic", dt)
				}
			}()
			g.Step(dt)
		}()
	}
}

// Each index function must map its coordinate domain one-to-one onto
// [0, size), and dividing the offset back out must return the original pair.
func TestIndexBijectivity(t *testing.T) {
	g := NewGrid(5, 3, 1.0)

	cases := []struct {
		name         string
		cols, rows   int
		size, stride int
		index        func(i, j int) int
	}{
		{"cell", 5, 3, 5 * 3, 5, g.CellIndex},
		{"u-face", 6, 3, 6 * 3, 6, g.UIndex},
		{"v-face", 5, 4, 5 * 4, 5, g.VIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[int]bool, tc.size)
			for j := 0; j < tc.rows; j++ {
				for i := 0; i < tc.cols; i++ {
					idx := tc.index(i, j)
					if idx < 0 || idx >= tc.size {
						t.Fatalf("(%d,%d) maps to %d, outside [0,%d)", i, j, idx, tc.size)
					}
					if seen[idx] {
						t.Fatalf("(%d,%d) maps to already-used offset %d", i, j, idx)
					}
					seen[idx] = true
					if gi, gj := idx%tc.stride, idx/tc.stride; gi != i || gj != j {
						t.Fatalf("offset %d round-trips to (%d,%d), want (%d,%d)", idx, gi, gj, i, j)
					}
				}
			}
			if len(seen) != tc.size {
				t.Errorf("covered %d offsets, want %d", len(seen), tc.size)
			}
		})
	}
}

func TestSettersPanicOutOfRange(t *testing.T) {
	g := NewGrid(4, 4, 1.0)
	cases := []func(){
		func() { g.SetU(5, 0, 1) },  // u columns run 0..nx
		func() { g.SetU(0, 4, 1) },  // u rows run 0..ny-1
		func() { g.SetV(4, 0, 1) },  // v columns run 0..nx-1
		func() { g.SetV(0, 5, 1) },  // v rows run 0..ny
		func() { g.P(4, 0) },
		func() { g.P(0, -1) },
	}
	for n, call := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d did not panic", n)
				}
			}()
			call()
		}()
	}
}

func TestResetClearsFields(t *testing.T) {
	g := NewGrid(8, 8, 2.0)
	g.AddImpulse(4, 4, 3.0, -2.0, 2)
	g.Step(0.016)

	g.Reset()

	for idx, val := range g.u {
		if val != 0 {
			t.Fatalf("u[%d] = %f after Reset", idx, val)
		}
	}
	for idx, val := range g.v {
		if val != 0 {
			t.Fatalf("v[%d] = %f after Reset", idx, val)
		}
	}
	for idx, val := range g.p {
		if val != 0 {
			t.Fatalf("p[%d] = %f after Reset", idx, val)
		}
	}
}

func TestAddImpulseSkipsWallFaces(t *testing.T) {
	g := NewGrid(6, 6, 1.0)
	// Centered on a corner cell so the stamp overlaps every wall.
	g.AddImpulse(0, 0, 5.0, 5.0, 3)

	for j := 0; j < g.Ny(); j++ {
		if g.U(0, j) != 0 {
			t.Errorf("left wall u at row %d = %f, want 0", j, g.U(0, j))
		}
		if g.U(g.Nx(), j) != 0 {
			t.Errorf("right wall u at row %d = %f, want 0", j, g.U(g.Nx(), j))
		}
	}
	for i := 0; i < g.Nx(); i++ {
		if g.V(i, 0) != 0 {
			t.Errorf("bottom wall v at col %d = %f, want 0", i, g.V(i, 0))
		}
		if g.V(i, g.Ny()) != 0 {
			t.Errorf("top wall v at col %d = %f, want 0", i, g.V(i, g.Ny()))
		}
	}
	if g.U(1, 0) == 0 && g.V(0, 1) == 0 {
		t.Error("impulse did not reach any interior face")
	}
}
