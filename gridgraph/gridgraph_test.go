package gridgraph_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits of the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	grid[0][0] = 0
	if !gg.Walkable(gridgraph.Point{X: 0, Y: 0}) {
		t.Error("mutation of the input grid changed the GridGraph")
	}
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestWalkable_Threshold checks that the threshold separates walls from ground.
func TestWalkable_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Threshold = 3
	gg, err := gridgraph.NewGridGraph([][]int{{2, 3, 4}}, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	want := []bool{false, true, true}
	for x, w := range want {
		if got := gg.Walkable(gridgraph.Point{X: x}); got != w {
			t.Errorf("Walkable(%d,0)=%v; want %v", x, got, w)
		}
	}
	if gg.Walkable(gridgraph.Point{X: 5}) {
		t.Error("out-of-bounds cell reported walkable")
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 verifies that only orthogonal walkable cells are yielded.
func TestNeighbors_Conn4(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 0},
		{1, 1, 1},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	got := slices.Collect(gg.Neighbors(gridgraph.Point{X: 1, Y: 1}))
	// N, (E is a wall), S, W
	want := []gridgraph.Point{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_Conn8 verifies diagonal connectivity and bounds clipping.
func TestNeighbors_Conn8(t *testing.T) {
	grid := [][]int{
		{1, 1},
		{1, 1},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	got := slices.Collect(gg.Neighbors(gridgraph.Point{X: 0, Y: 0}))
	// E, SE, S
	want := []gridgraph.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestNeighbors_FromWall yields nothing for walls and outside cells.
func TestNeighbors_FromWall(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn8)
	if n := len(slices.Collect(gg.Neighbors(gridgraph.Point{X: 0, Y: 0}))); n != 0 {
		t.Errorf("wall has %d neighbors; want 0", n)
	}
	if n := len(slices.Collect(gg.Neighbors(gridgraph.Point{X: -1, Y: 0}))); n != 0 {
		t.Errorf("outside cell has %d neighbors; want 0", n)
	}
}

// TestNeighbors_EarlyStop checks that the sequence honors a false yield.
func TestNeighbors_EarlyStop(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, gridgraph.Conn8)
	count := 0
	for range gg.Neighbors(gridgraph.Point{X: 1, Y: 1}) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("visited %d neighbors; want 2", count)
	}
}

//----------------------------------------------------------------------------//
// Parse and Set Tests
//----------------------------------------------------------------------------//

// TestParse_Template checks walls, padding of short lines and dimensions.
func TestParse_Template(t *testing.T) {
	tpl := "..#\n.\n#..\n"
	gg, err := gridgraph.Parse(tpl, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if gg.Width != 3 || gg.Height != 3 {
		t.Fatalf("size = %d×%d; want 3×3", gg.Width, gg.Height)
	}
	want := [][]int{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	}
	if !reflect.DeepEqual(gg.CellValues, want) {
		t.Errorf("CellValues = %v; want %v", gg.CellValues, want)
	}
}

// TestParse_CustomWall uses a non-default wall rune and ignores Threshold.
func TestParse_CustomWall(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Wall = 'X'
	opts.Threshold = 10
	gg, err := gridgraph.Parse("#X ", opts)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []bool{true, false, true}
	for x, w := range want {
		if got := gg.Walkable(gridgraph.Point{X: x}); got != w {
			t.Errorf("Walkable(%d,0)=%v; want %v", x, got, w)
		}
	}
}

// TestParse_Empty rejects templates without cells.
func TestParse_Empty(t *testing.T) {
	for _, tpl := range []string{"", "\n", "\n\n"} {
		if _, err := gridgraph.Parse(tpl, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrEmptyGrid) {
			t.Errorf("Parse(%q) error = %v; want ErrEmptyGrid", tpl, err)
		}
	}
}

// TestSet toggles a wall and checks bounds errors.
func TestSet(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 1}}, gridgraph.Conn4)
	p := gridgraph.Point{X: 1, Y: 0}
	if err := gg.Set(p, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if gg.Walkable(p) {
		t.Error("cell still walkable after Set(…, 0)")
	}
	if err := gg.Set(gridgraph.Point{X: 2, Y: 0}, 1); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("Set out of bounds error = %v; want ErrOutOfBounds", err)
	}
}
