// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlath.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point addresses a cell; X is the column, Y the row.
type Point struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Threshold specifies the minimum cell value considered walkable.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Wall is the rune Parse treats as blocked.
	Wall rune
}

// DefaultGridOptions returns a GridOptions with default settings:
// Threshold=1 (values ≥1 are walkable), Conn=Conn4, Wall='#'.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: 1,
		Conn:      Conn4,
		Wall:      '#',
	}
}

// Glyphs selects the runes Render draws with.
type Glyphs struct {
	Open, Wall, Path, Start, Goal rune
}

// DefaultGlyphs returns '.', '#', '*', 'S' and 'G'.
func DefaultGlyphs() Glyphs {
	return Glyphs{Open: '.', Wall: '#', Path: '*', Start: 'S', Goal: 'G'}
}

// GridGraph treats a 2D integer grid as a graph.
// Width and Height define dimensions; CellValues[y][x] holds the cell value.
// Conn and Threshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
//
// GridGraph is not safe for concurrent mutation; Set must not race with
// Neighbors.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	Threshold       int
	neighborOffsets [][2]int
}
