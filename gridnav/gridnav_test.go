package gridnav_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/terrapath/gridnav"
)

//----------------------------------------------------------------------------//
// New and Neighbors Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty grids and bad ROIs.
func TestNew_Errors(t *testing.T) {
	roiOut := &gridnav.Rect{MinRow: 0, MinCol: 0, MaxRow: 5, MaxCol: 2}
	roiInv := &gridnav.Rect{MinRow: 2, MinCol: 0, MaxRow: 1, MaxCol: 2}
	cases := []struct {
		name string
		h, w int
		opts gridnav.GridOptions
		err  error
	}{
		{"ZeroRows", 0, 4, gridnav.DefaultGridOptions(), gridnav.ErrEmptyGrid},
		{"ZeroCols", 4, 0, gridnav.DefaultGridOptions(), gridnav.ErrEmptyGrid},
		{"NegativeDims", -1, -1, gridnav.DefaultGridOptions(), gridnav.ErrEmptyGrid},
		{"ROIOutside", 4, 4, gridnav.GridOptions{Conn: gridnav.Conn8, ROI: roiOut}, gridnav.ErrBadROI},
		{"ROIInverted", 4, 4, gridnav.GridOptions{Conn: gridnav.Conn8, ROI: roiInv}, gridnav.ErrBadROI},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridnav.New(tc.h, tc.w, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.h, tc.w, err, tc.err)
			}
		})
	}
}

// TestNeighbors_Counts checks fan-out for interior, edge, and corner cells
// under both connectivities.
func TestNeighbors_Counts(t *testing.T) {
	cases := []struct {
		name string
		conn gridnav.Connectivity
		at   gridnav.Node
		want int
	}{
		{"Conn8Interior", gridnav.Conn8, gridnav.Node{Row: 1, Col: 1}, 8},
		{"Conn8Corner", gridnav.Conn8, gridnav.Node{Row: 0, Col: 0}, 3},
		{"Conn8Edge", gridnav.Conn8, gridnav.Node{Row: 0, Col: 1}, 5},
		{"Conn4Interior", gridnav.Conn4, gridnav.Node{Row: 1, Col: 1}, 4},
		{"Conn4Corner", gridnav.Conn4, gridnav.Node{Row: 2, Col: 2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridnav.New(3, 3, gridnav.GridOptions{Conn: tc.conn})
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if got := len(g.Neighbors(tc.at)); got != tc.want {
				t.Errorf("Neighbors(%v) fan-out = %d; want %d", tc.at, got, tc.want)
			}
		})
	}
}

// TestNeighbors_NoDiagonalsUnderConn4 verifies Conn4 omits diagonal offsets.
func TestNeighbors_NoDiagonalsUnderConn4(t *testing.T) {
	g, err := gridnav.New(3, 3, gridnav.GridOptions{Conn: gridnav.Conn4})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	u := gridnav.Node{Row: 1, Col: 1}
	for _, v := range g.Neighbors(u) {
		if v.Row != u.Row && v.Col != u.Col {
			t.Errorf("Conn4 produced diagonal neighbor %v", v)
		}
	}
}

// TestNeighbors_ROI verifies neighbors never leave a configured rectangle.
func TestNeighbors_ROI(t *testing.T) {
	roi := &gridnav.Rect{MinRow: 1, MinCol: 1, MaxRow: 3, MaxCol: 3}
	g, err := gridnav.New(5, 5, gridnav.GridOptions{Conn: gridnav.Conn8, ROI: roi})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, v := range g.Neighbors(gridnav.Node{Row: 1, Col: 1}) {
		if !roi.Contains(v) {
			t.Errorf("neighbor %v escapes ROI %+v", v, *roi)
		}
	}
	// Corner of the ROI: exactly the 3 in-rectangle neighbors survive.
	if got := len(g.Neighbors(gridnav.Node{Row: 1, Col: 1})); got != 3 {
		t.Errorf("ROI corner fan-out = %d; want 3", got)
	}
}

// TestNeighbors_DeterministicOrder verifies the fixed offset emission order.
func TestNeighbors_DeterministicOrder(t *testing.T) {
	g, err := gridnav.New(3, 3, gridnav.DefaultGridOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	a := g.Neighbors(gridnav.Node{Row: 1, Col: 1})
	b := g.Neighbors(gridnav.Node{Row: 1, Col: 1})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("neighbor order not reproducible at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestEuclidHeuristic checks metric scaling of the straight-line heuristic.
func TestEuclidHeuristic(t *testing.T) {
	h := gridnav.EuclidHeuristic(5.0)
	got := h(gridnav.Node{Row: 0, Col: 0}, gridnav.Node{Row: 3, Col: 4})
	if math.Abs(got-25.0) > 1e-12 {
		t.Errorf("EuclidHeuristic = %f; want 25", got)
	}
	if h(gridnav.Node{Row: 2, Col: 2}, gridnav.Node{Row: 2, Col: 2}) != 0 {
		t.Error("heuristic at goal must be 0")
	}
}
