package gridgraph

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits go through Set only.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.Threshold,
		neighborOffsets: offsetsFor(opts.Conn),
	}

	return gg, nil
}

// From2D is shorthand for NewGridGraph with the default threshold and the
// given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// Parse builds a GridGraph from a text template, one grid row per line.
// opts.Wall marks blocked cells (0); any other rune is open (1). Lines shorter
// than the longest one are padded with open cells. The resulting graph uses
// Threshold 1 regardless of opts.Threshold.
// Returns ErrEmptyGrid for a template without any cell.
func Parse(template string, opts GridOptions) (*GridGraph, error) {
	if opts.Wall == 0 {
		opts.Wall = DefaultGridOptions().Wall
	}
	lines := strings.Split(strings.TrimRight(template, "\n"), "\n")
	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, width)
		for x := range row {
			row[x] = 1
		}
		x := 0
		for _, r := range line {
			if r == opts.Wall {
				row[x] = 0
			}
			x++
		}
		values[y] = row
	}
	opts.Threshold = 1

	return NewGridGraph(values, opts)
}

// offsetsFor returns the neighbor offsets in clockwise order starting north.
func offsetsFor(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Walkable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.Threshold
}

// Set overwrites the value of cell p. Any path engine built over this grid
// must be invalidated afterwards.
// Returns ErrOutOfBounds if p lies outside the grid.
func (gg *GridGraph) Set(p Point, value int) error {
	if !gg.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, p.X, p.Y, gg.Width, gg.Height)
	}
	gg.CellValues[p.Y][p.X] = value

	return nil
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors yields the walkable cells adjacent to p in offset order.
// A wall or out-of-bounds p has no neighbors. Diagonal moves are allowed
// between two walls under Conn8.
func (gg *GridGraph) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !gg.Walkable(p) {
			return
		}
		for _, d := range gg.neighborOffsets {
			q := Point{X: p.X + d[0], Y: p.Y + d[1]}
			if !gg.Walkable(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
