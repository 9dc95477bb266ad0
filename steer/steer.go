package steer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeflood/maze"
)

// Sentinel errors for route extraction.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("steer: maze is nil")

	// ErrStale is returned when the cost field is not fresh.
	ErrStale = errors.New("steer: cost field is stale")

	// ErrNoRoute is returned when the walk reaches a cell with no cheaper neighbour.
	ErrNoRoute = errors.New("steer: no route to target")

	// ErrRouteTooLong is returned when the walk exceeds the step limit.
	ErrRouteTooLong = errors.New("steer: route exceeds limit")
)

// Fallback is the heading the firmware reported when no side improved.
const Fallback = maze.North

// Turn is a move relative to the current heading.
type Turn uint8

// Relative turns, numbered as the heading offset they add.
const (
	Ahead Turn = iota
	Right
	Behind
	Left
)

func (t Turn) String() string {
	switch t {
	case Ahead:
		return "ahead"
	case Right:
		return "right"
	case Behind:
		return "behind"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Turn(%d)", uint8(t))
}

// TurnTo returns the turn that changes heading into d.
func TurnTo(heading, d maze.Direction) Turn {
	return Turn((d + 4 - heading) % 4)
}

// ScanOrder returns the sides of a cell in tie-break order for heading:
// ahead, right, left, behind.
func ScanOrder(heading maze.Direction) [4]maze.Direction {
	return [4]maze.Direction{heading, heading.Right(), heading.Left(), heading.Opposite()}
}

// NeighbourCost returns the cost beyond side d of cell, or maze.MaxCost if
// that side is walled.
func NeighbourCost(m *maze.Maze, cell maze.Cell, d maze.Direction) uint8 {
	return m.NeighbourCost(cell, d)
}

// Best returns the cheapest open side of cell, scanning in ScanOrder(heading).
// ok is false when no side is strictly cheaper than the cell itself; the
// returned direction is then Fallback.
func Best(m *maze.Maze, cell maze.Cell, heading maze.Direction) (d maze.Direction, ok bool) {
	if m == nil || !heading.Valid() {
		return Fallback, false
	}
	best := m.Cost(cell)
	d = Fallback
	for _, side := range ScanOrder(heading) {
		if c := m.NeighbourCost(cell, side); c < best {
			best, d, ok = c, side, true
		}
	}
	return d, ok
}

// BestOrFallback is Best without the ok flag.
func BestOrFallback(m *maze.Maze, cell maze.Cell, heading maze.Direction) maze.Direction {
	d, _ := Best(m, cell, heading)
	return d
}

// Route follows Best from start until it reaches a cell of cost 0 and
// returns every cell visited, start and target included. The heading is
// updated after each move so the walk prefers going straight.
// limit bounds the number of moves; limit <= 0 means maze.Cells.
//
// Returns ErrStale if the cost field is not fresh, ErrNoRoute if the walk
// reaches a cell with no cheaper side, ErrRouteTooLong if it exceeds limit.
func Route(m *maze.Maze, start maze.Cell, heading maze.Direction, limit int) ([]maze.Cell, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if _, fresh := m.Costs().Target(); !fresh {
		return nil, ErrStale
	}
	if limit <= 0 {
		limit = maze.Cells
	}

	path := []maze.Cell{start}
	here := start
	for m.Cost(here) != 0 {
		if len(path)-1 >= limit {
			return path, fmt.Errorf("%w: %d moves", ErrRouteTooLong, limit)
		}
		d, ok := Best(m, here, heading)
		if !ok {
			return path, fmt.Errorf("%w: stuck at %s", ErrNoRoute, here)
		}
		heading = d
		here = here.Next(d)
		path = append(path, here)
	}
	return path, nil
}

// Turns converts a route into the relative turns a robot makes, starting
// from heading. The result has one entry per move.
func Turns(path []maze.Cell, heading maze.Direction) []Turn {
	if len(path) < 2 {
		return nil
	}
	out := make([]Turn, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		d := stepDirection(path[i-1], path[i])
		out = append(out, TurnTo(heading, d))
		heading = d
	}
	return out
}

// stepDirection returns the side of from that leads to the adjacent cell to.
func stepDirection(from, to maze.Cell) maze.Direction {
	for _, d := range maze.Directions {
		if from.Next(d) == to {
			return d
		}
	}
	return Fallback
}
