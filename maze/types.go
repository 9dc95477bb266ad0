package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDirection indicates a direction value outside North..West.
	ErrInvalidDirection = errors.New("maze: invalid direction")

	// ErrCellOutOfRange indicates a row, column or cell index outside the grid.
	ErrCellOutOfRange = errors.New("maze: cell out of range")

	// ErrAsymmetricWall indicates a wall recorded on one side of a boundary only.
	ErrAsymmetricWall = errors.New("maze: asymmetric wall")

	// ErrOpenBoundary indicates a missing wall on the outer edge of the grid.
	ErrOpenBoundary = errors.New("maze: open boundary")

	// ErrBoundaryWall indicates an attempt to clear a wall on the outer edge.
	ErrBoundaryWall = errors.New("maze: boundary wall cannot be cleared")
)

// Grid geometry and the fixed cells of a classic micromouse maze.
const (
	// Width is the number of rows and of columns.
	Width = 16

	// Cells is the total number of cells.
	Cells = Width * Width

	// Start is the corner cell the robot starts in.
	Start Cell = 0x00

	// DefaultGoal is two rows and two columns in from the start corner.
	DefaultGoal Cell = 0x22
)

// Cell identifies one of the 256 grid positions as row + 16*column.
type Cell uint8

// At returns the cell at (row, col).
// Returns ErrCellOutOfRange if either coordinate is outside [0,15].
func At(row, col int) (Cell, error) {
	if row < 0 || row >= Width || col < 0 || col >= Width {
		return 0, fmt.Errorf("%w: row %d, col %d", ErrCellOutOfRange, row, col)
	}
	return Cell(row + Width*col), nil
}

// CellOf validates a raw integer cell index.
// Returns ErrCellOutOfRange if index is outside [0,255].
func CellOf(index int) (Cell, error) {
	if index < 0 || index >= Cells {
		return 0, fmt.Errorf("%w: index %d", ErrCellOutOfRange, index)
	}
	return Cell(index), nil
}

// Row returns the cell's row (0 = south edge).
func (c Cell) Row() int { return int(c) % Width }

// Col returns the cell's column (0 = west edge).
func (c Cell) Col() int { return int(c) / Width }

// Next returns the neighbouring cell in direction d.
// The arithmetic wraps modulo 256; the boundary walls set by Initialise
// are what stop a wrapped neighbour from being reachable.
// An invalid direction returns c itself.
func (c Cell) Next(d Direction) Cell {
	switch d {
	case North:
		return c + 1
	case East:
		return c + Width
	case South:
		return c + 255
	case West:
		return c + 240
	}
	return c
}

// String formats the cell the way the firmware names cells, e.g. "0x22".
func (c Cell) String() string {
	return fmt.Sprintf("0x%02X", uint8(c))
}

// OnPerimeter reports whether side d of c lies on the outer edge of the grid.
// Crossing such a side would wrap onto an unrelated cell.
func (c Cell) OnPerimeter(d Direction) bool {
	switch d {
	case North:
		return c.Row() == Width-1
	case East:
		return c.Col() == Width-1
	case South:
		return c.Row() == 0
	case West:
		return c.Col() == 0
	}
	return false
}

// Direction is one of the four compass headings.
type Direction uint8

// Compass headings. d and d+2 (mod 4) are always opposite.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the headings in the order the flood expands them.
var Directions = [4]Direction{North, East, South, West}

var (
	directionNames  = [4]string{"N", "E", "S", "W"}
	directionGlyphs = [4]rune{'^', '>', 'v', '<'}
)

// ParseDirection validates a raw direction value.
// Returns ErrInvalidDirection for values outside 0..3.
func ParseDirection(v int) (Direction, error) {
	if v < 0 || v > int(West) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, v)
	}
	return Direction(v), nil
}

// DirectionFromName accepts "N", "E", "S", "W" or the full compass names,
// case-insensitively.
func DirectionFromName(name string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// Valid reports whether d is one of North, East, South, West.
func (d Direction) Valid() bool { return d <= West }

// Opposite returns the heading behind d.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Right returns the heading after a right turn from d.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left returns the heading after a left turn from d.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Mask returns the wall bit for d, or 0 for an invalid direction.
func (d Direction) Mask() uint8 {
	if !d.Valid() {
		return 0
	}
	return 1 << d
}

// Glyph returns the arrow used by the debug views.
func (d Direction) Glyph() rune {
	if !d.Valid() {
		return '?'
	}
	return directionGlyphs[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
