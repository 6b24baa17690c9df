package gridgraph

import "strings"

// Render draws the grid row by row with the route marked on it.
// path follows the engine convention: it excludes source and ends at the
// goal. Rows are separated by '\n' without a trailing newline.
// Points outside the grid are ignored.
func (gg *GridGraph) Render(source Point, path []Point, glyphs Glyphs) string {
	canvas := make([][]rune, gg.Height)
	for y := range canvas {
		canvas[y] = make([]rune, gg.Width)
		for x := range canvas[y] {
			if gg.Walkable(Point{X: x, Y: y}) {
				canvas[y][x] = glyphs.Open
			} else {
				canvas[y][x] = glyphs.Wall
			}
		}
	}

	mark := func(p Point, r rune) {
		if gg.InBounds(p.X, p.Y) {
			canvas[p.Y][p.X] = r
		}
	}
	for i, p := range path {
		if i == len(path)-1 {
			mark(p, glyphs.Goal)
			continue
		}
		mark(p, glyphs.Path)
	}
	mark(source, glyphs.Start)

	var sb strings.Builder
	for y, row := range canvas {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}

	return sb.String()
}
