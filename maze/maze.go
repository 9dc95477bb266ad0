package maze

import "fmt"

// Maze is the grid context: one WallMap, one CostField and the goal cell.
// It replaces process-wide maze state; whoever drives navigation owns it and
// passes it to the flood and steer packages.
//
// A Maze is not safe for concurrent use; wrap it in Shared for that.
type Maze struct {
	walls WallMap
	costs CostField
	goal  Cell
}

// New returns an initialised maze whose goal is DefaultGoal.
func New() *Maze {
	m := &Maze{goal: DefaultGoal}
	m.Initialise()
	return m
}

// Initialise zeroes all wall and cost state, then places the boundary and
// start-cell walls. The goal is kept.
func (m *Maze) Initialise() {
	m.walls.Initialise()
	m.costs = CostField{}
}

// Goal returns the cell the robot is heading for.
func (m *Maze) Goal() Cell { return m.goal }

// SetGoal changes the goal cell. Costs are not recomputed.
func (m *Maze) SetGoal(cell Cell) { m.goal = cell }

// Walls exposes the wall map for read access. Writes through the returned
// pointer bypass the Maze bookkeeping: the cost field stays sealed and
// boundary walls are not protected. Mutate walls through the Maze methods.
func (m *Maze) Walls() *WallMap { return &m.walls }

// LoadWalls replaces the wall map with raw bytes, as WallMap.Load does, and
// invalidates the costs on success.
func (m *Maze) LoadWalls(raw [Cells]uint8) error {
	if err := m.walls.Load(raw); err != nil {
		return err
	}
	m.costs.Invalidate()
	return nil
}

// Costs exposes the cost field.
func (m *Maze) Costs() *CostField { return &m.costs }

// SetWallPresent records a wall on both sides of the boundary in direction d.
func (m *Maze) SetWallPresent(cell Cell, d Direction) error {
	if err := m.walls.SetWallPresent(cell, d); err != nil {
		return err
	}
	m.costs.Invalidate()
	return nil
}

// SetWallAbsent clears the wall on both sides of the boundary in direction d.
// Returns ErrBoundaryWall, leaving walls and costs untouched, if side d of
// cell is on the outer edge of the grid.
func (m *Maze) SetWallAbsent(cell Cell, d Direction) error {
	if d.Valid() && cell.OnPerimeter(d) {
		return fmt.Errorf("%w: cell %s side %s", ErrBoundaryWall, cell, d)
	}
	if err := m.walls.SetWallAbsent(cell, d); err != nil {
		return err
	}
	m.costs.Invalidate()
	return nil
}

// IsWall reports whether side d of cell is blocked.
func (m *Maze) IsWall(cell Cell, d Direction) bool { return m.walls.IsWall(cell, d) }

// IsExit reports whether side d of cell is open.
func (m *Maze) IsExit(cell Cell, d Direction) bool { return m.walls.IsExit(cell, d) }

// MarkVisited flags cell as visited.
func (m *Maze) MarkVisited(cell Cell) { m.walls.MarkVisited(cell) }

// Visited reports whether cell has been visited.
func (m *Maze) Visited(cell Cell) bool { return m.walls.Visited(cell) }

// Cost returns the stored cost of cell.
func (m *Maze) Cost(cell Cell) uint8 { return m.costs.Cost(cell) }

// NeighbourCost returns the cost of the cell beyond side d, or MaxCost when
// that side is walled. A walled side can therefore never look cheaper than
// the current cell. Assumes the maze has been flooded.
func (m *Maze) NeighbourCost(cell Cell, d Direction) uint8 {
	if m.walls.IsWall(cell, d) {
		return MaxCost
	}
	return m.costs.Cost(cell.Next(d))
}

// Clone returns an independent copy of the maze.
func (m *Maze) Clone() *Maze {
	c := *m
	return &c
}
