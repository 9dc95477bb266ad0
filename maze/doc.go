// Package maze holds the wall and cost state of a 16×16 micromouse maze.
//
// What:
//
//   - Cell is an 8-bit cell id encoded as row + 16*column, so every id in
//     [0,255] is a valid grid position and moving north/east/south/west is
//     +1/+16/-1/-16 with uint8 wraparound.
//   - WallMap stores one byte per cell: bit 1<<d is the wall on side d and
//     VisitedMask (0xF0) flags a visited cell.
//   - CostField stores one byte per cell: the move count to the last flood
//     target, with MaxCost (255) meaning "not reached".
//   - Maze is the grid context that owns both, plus the goal cell.
//   - Shared serialises access to a Maze for concurrent users.
//
// Invariants:
//
//   - Walls are always written from both sides. SetWallPresent(c, d) also sets
//     the opposite bit on c.Next(d); SetWallAbsent clears both. Any asymmetry
//     silently corrupts a flood, so WallMap.Symmetric exists to check it.
//   - After Initialise every perimeter cell carries its outward wall. The
//     neighbour arithmetic wraps modulo 256 and only these walls keep, for
//     instance, cell 0x0F (row 15) from being joined to cell 0x10 (row 0).
//     Maze.SetWallAbsent refuses to clear them (see Cell.OnPerimeter).
//   - Any wall mutation through Maze invalidates the CostField.
//
// Errors:
//
//   - ErrInvalidDirection: direction value outside North..West.
//   - ErrCellOutOfRange:   row, column or index outside the grid.
//   - ErrAsymmetricWall:   a wall bit without its mirrored bit.
//   - ErrOpenBoundary:     a perimeter side without its wall.
//   - ErrBoundaryWall:     an attempt to clear a perimeter wall through Maze.
//
// Complexity:
//
//   - Every wall and cost query is O(1) by direct indexing.
//   - Initialise and Symmetric are O(256).
package maze
