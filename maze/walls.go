package maze

import "fmt"

// VisitedMask is the flag stored above the four wall bits of a visited cell.
const VisitedMask uint8 = 0xF0

// WallMap is the per-cell wall and visited state of the whole grid.
// The zero value has no walls at all; call Initialise before flooding.
type WallMap struct {
	cells [Cells]uint8
}

// Initialise clears every cell, then places the boundary walls on all four
// edges and the start cell's fixed walls (east closed, north open).
func (w *WallMap) Initialise() {
	w.cells = [Cells]uint8{}
	for i := 0; i < Width; i++ {
		_ = w.SetWallPresent(Cell(i), West)           // column 0
		_ = w.SetWallPresent(Cell(15*Width+i), East)  // column 15
		_ = w.SetWallPresent(Cell(i*Width), South)    // row 0
		_ = w.SetWallPresent(Cell(i*Width+15), North) // row 15
	}
	_ = w.SetWallPresent(Start, East)
	_ = w.SetWallAbsent(Start, North)
}

// SetWallPresent records a wall on side d of cell and on the opposite side of
// the neighbouring cell. It is unconditional: setting an existing wall is a no-op.
// Returns ErrInvalidDirection without touching the map if d is not valid.
func (w *WallMap) SetWallPresent(cell Cell, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}
	w.cells[cell] |= d.Mask()
	w.cells[cell.Next(d)] |= d.Opposite().Mask()
	return nil
}

// SetWallAbsent clears the wall on side d of cell and on the opposite side of
// the neighbouring cell. Boundary walls are not protected here; Maze.SetWallAbsent
// refuses to clear them.
// Returns ErrInvalidDirection without touching the map if d is not valid.
func (w *WallMap) SetWallAbsent(cell Cell, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}
	w.cells[cell] &^= d.Mask()
	w.cells[cell.Next(d)] &^= d.Opposite().Mask()
	return nil
}

// IsWall reports whether side d of cell is blocked.
// An invalid direction is reported as a wall.
func (w *WallMap) IsWall(cell Cell, d Direction) bool {
	if !d.Valid() {
		return true
	}
	return w.cells[cell]&d.Mask() != 0
}

// IsExit reports whether side d of cell is open.
func (w *WallMap) IsExit(cell Cell, d Direction) bool {
	return !w.IsWall(cell, d)
}

// MarkVisited sets the visited flag of cell. Wall bits are untouched.
func (w *WallMap) MarkVisited(cell Cell) {
	w.cells[cell] |= VisitedMask
}

// Visited reports whether cell carries the visited flag.
func (w *WallMap) Visited(cell Cell) bool {
	return w.cells[cell]&VisitedMask == VisitedMask
}

// Raw returns the packed wall byte of cell.
func (w *WallMap) Raw(cell Cell) uint8 {
	return w.cells[cell]
}

// Symmetric checks the two-sided wall invariant for every cell and direction.
// Returns ErrAsymmetricWall naming the first offending side.
func (w *WallMap) Symmetric() error {
	for i := 0; i < Cells; i++ {
		c := Cell(i)
		for _, d := range Directions {
			if w.IsWall(c, d) != w.IsWall(c.Next(d), d.Opposite()) {
				return fmt.Errorf("%w: cell %s side %s", ErrAsymmetricWall, c, d)
			}
		}
	}
	return nil
}

// Bounded checks that every side on the outer edge of the grid is walled.
// Returns ErrOpenBoundary naming the first open side.
func (w *WallMap) Bounded() error {
	for i := 0; i < Cells; i++ {
		c := Cell(i)
		for _, d := range Directions {
			if c.OnPerimeter(d) && w.IsExit(c, d) {
				return fmt.Errorf("%w: cell %s side %s", ErrOpenBoundary, c, d)
			}
		}
	}
	return nil
}

// Bytes returns a copy of every packed wall byte, indexed by cell.
func (w *WallMap) Bytes() [Cells]uint8 {
	return w.cells
}

// Load replaces the map with raw wall bytes. The bytes must describe
// symmetric walls and a closed boundary; otherwise the map is left
// unchanged and ErrAsymmetricWall or ErrOpenBoundary is returned.
func (w *WallMap) Load(raw [Cells]uint8) error {
	next := WallMap{cells: raw}
	if err := next.Symmetric(); err != nil {
		return err
	}
	if err := next.Bounded(); err != nil {
		return err
	}
	*w = next
	return nil
}
