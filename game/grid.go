// Package game holds the snake simulation: the toroidal grid, the snake body,
// free-cell placement, input resolution and the alive/dead state machine.
//
// Nothing in here draws, reads files or owns a clock. Frontends feed it key
// events and elapsed time and read back a Snapshot each frame.
package game

// Cell is a grid coordinate. (0,0) is the top-left cell, y grows downwards.
type Cell struct {
	X, Y int
}

func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid is the playfield size in cells.
type Grid struct {
	Width  int
	Height int
}

// Wrap folds a cell that stepped one cell past an edge back onto the opposite
// edge. Only single-step overflow is handled; movement never skips cells.
func (g Grid) Wrap(c Cell) Cell {
	if c.X < 0 {
		c.X = g.Width - 1
	} else if c.X >= g.Width {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = g.Height - 1
	} else if c.Y >= g.Height {
		c.Y = 0
	}
	return c
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Size is the number of cells on the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}
