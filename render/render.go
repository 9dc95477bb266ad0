package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/steer"
)

// Frame glyphs.
const (
	Post        = 'o'
	WallGlyph   = '|'
	TargetGlyph = '*'
	NoMove      = ' '
)

const (
	hWall = "---"
	hGap  = "   "
)

// console collects writes and keeps the first error.
type console struct {
	w   io.Writer
	err error
}

func (c *console) print(s string) {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.w, s)
}

func (c *console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

// horizontal prints one line of posts with the wall on side d of every cell
// in row.
func (c *console) horizontal(m *maze.Maze, row int, d maze.Direction) {
	for col := 0; col < maze.Width; col++ {
		c.print(string(Post))
		if m.IsWall(cellAt(row, col), d) {
			c.print(hWall)
		} else {
			c.print(hGap)
		}
	}
	c.print(string(Post) + "\n")
}

// framed draws the wall frame and fills each cell body with body(cell),
// which must be three columns wide.
func framed(w io.Writer, m *maze.Maze, body func(maze.Cell) string) error {
	c := &console{w: w}
	c.print("\n")
	for row := maze.Width - 1; row >= 0; row-- {
		c.horizontal(m, row, maze.North)
		for col := 0; col < maze.Width; col++ {
			cell := cellAt(row, col)
			if m.IsWall(cell, maze.West) {
				c.print(string(WallGlyph))
			} else {
				c.print(" ")
			}
			c.print(body(cell))
		}
		c.print(string(WallGlyph) + "\n")
	}
	c.horizontal(m, 0, maze.South)
	c.print("\n")
	return c.err
}

// Plain prints the walls only.
func Plain(w io.Writer, m *maze.Maze) error {
	return framed(w, m, func(maze.Cell) string { return hGap })
}

// Costs prints the walls with the current cost of every cell. Unreached
// cells show 255.
func Costs(w io.Writer, m *maze.Maze) error {
	return framed(w, m, func(cell maze.Cell) string {
		return fmt.Sprintf("%3d", m.Cost(cell))
	})
}

// Directions floods m toward its goal and prints the best heading of every
// cell as seen by a robot facing North. The goal shows TargetGlyph; a cell
// with no cheaper neighbour shows NoMove.
func Directions(w io.Writer, m *maze.Maze) error {
	if _, err := flood.Goal(m); err != nil {
		return err
	}
	goal := m.Goal()
	return framed(w, m, func(cell maze.Cell) string {
		return string([]rune{' ', DirectionGlyph(m, cell, goal), ' '})
	})
}

// DirectionGlyph returns the glyph Directions prints for cell.
func DirectionGlyph(m *maze.Maze, cell, goal maze.Cell) rune {
	if cell == goal {
		return TargetGlyph
	}
	d, ok := steer.Best(m, cell, maze.North)
	if !ok {
		return NoMove
	}
	return d.Glyph()
}

// WallData prints the raw wall byte of every cell in hex, row 15 first.
func WallData(w io.Writer, m *maze.Maze) error {
	c := &console{w: w}
	walls := m.Walls()
	c.print("\n")
	for row := maze.Width - 1; row >= 0; row-- {
		for col := 0; col < maze.Width; col++ {
			c.printf("%02X ", walls.Raw(cellAt(row, col)))
		}
		c.print("\n")
	}
	c.print("\n")
	return c.err
}

// cellAt is maze.At for indices known to be in range.
func cellAt(row, col int) maze.Cell {
	return maze.Cell(row + maze.Width*col)
}
