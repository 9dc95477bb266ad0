package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazeflood/maze"
)

// ErrOptionViolation is returned when an option value is out of range.
var ErrOptionViolation = errors.New("generate: option violation")

// Option configures New.
type Option func(*Options)

// Options holds the generator settings.
type Options struct {
	// Seed feeds the random source. Zero picks a time-based seed.
	Seed int64
	// Braid is the chance, in [0,1], that a dead end gets an extra opening.
	Braid float64
	// Goal is the goal cell of the generated maze.
	Goal maze.Cell
	// OnSeed receives the seed actually used, time-based or not.
	OnSeed func(seed int64)

	err error
}

// DefaultOptions returns a perfect maze with the default goal and a
// time-based seed.
func DefaultOptions() Options {
	return Options{Goal: maze.DefaultGoal, OnSeed: func(int64) {}}
}

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBraid sets the dead-end opening probability. p must lie in [0,1].
func WithBraid(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: braid %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.Braid = p
	}
}

// WithOnSeed reports the effective seed to fn, so a time-seeded maze can
// be generated again with WithSeed.
func WithOnSeed(fn func(seed int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSeed = fn
		}
	}
}

// WithGoal sets the goal of the generated maze.
func WithGoal(c maze.Cell) Option {
	return func(o *Options) { o.Goal = c }
}

// carver holds the generator state.
type carver struct {
	m      *maze.Maze
	rng    *rand.Rand
	inTree [maze.Cells]bool
	exit   [maze.Cells]maze.Direction
}

// New generates a maze. Its walls are symmetric, its boundary is closed and
// the start cell's east side is walled. The cost field is stale.
func New(opts ...Option) (*maze.Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	o.OnSeed(o.Seed)

	c := &carver{m: maze.New(), rng: rand.New(rand.NewSource(o.Seed))}
	c.closeAll()
	c.carve()
	if o.Braid > 0 {
		c.braid(o.Braid)
	}
	c.m.SetGoal(o.Goal)
	c.m.Costs().Invalidate()
	return c.m, nil
}

// closeAll walls every side of every cell.
func (c *carver) closeAll() {
	for i := 0; i < maze.Cells; i++ {
		for _, d := range maze.Directions {
			_ = c.m.SetWallPresent(maze.Cell(i), d)
		}
	}
}

// carve runs Wilson's algorithm over the grid.
func (c *carver) carve() {
	c.inTree[c.rng.Intn(maze.Cells)] = true

	for _, i := range c.rng.Perm(maze.Cells) {
		first := maze.Cell(i)
		if c.inTree[first] {
			continue
		}

		// random walk until the tree is hit; later exits overwrite earlier
		// ones, which erases the loops
		for here := first; !c.inTree[here]; {
			d := c.randomSide(here)
			c.exit[here] = d
			here = here.Next(d)
		}

		for here := first; !c.inTree[here]; {
			c.inTree[here] = true
			_ = c.m.SetWallAbsent(here, c.exit[here])
			here = here.Next(c.exit[here])
		}
	}
}

// braid opens one more side of each dead end with probability p.
func (c *carver) braid(p float64) {
	for _, i := range c.rng.Perm(maze.Cells) {
		cell := maze.Cell(i)
		if !DeadEnd(c.m, cell) || c.rng.Float64() >= p {
			continue
		}
		var walled []maze.Direction
		for _, d := range maze.Directions {
			if Carvable(cell, d) && c.m.IsWall(cell, d) {
				walled = append(walled, d)
			}
		}
		if len(walled) > 0 {
			_ = c.m.SetWallAbsent(cell, walled[c.rng.Intn(len(walled))])
		}
	}
}

// randomSide picks a carvable side of cell uniformly.
func (c *carver) randomSide(cell maze.Cell) maze.Direction {
	var sides [4]maze.Direction
	n := 0
	for _, d := range maze.Directions {
		if Carvable(cell, d) {
			sides[n] = d
			n++
		}
	}
	return sides[c.rng.Intn(n)]
}

// Carvable reports whether side d of cell may ever be opened: it must lead
// to another cell of the grid and must not be the start cell's east side.
func Carvable(cell maze.Cell, d maze.Direction) bool {
	if !d.Valid() || cell.OnPerimeter(d) {
		return false
	}
	switch d {
	case maze.East:
		return cell != maze.Start
	case maze.West:
		return cell.Next(maze.West) != maze.Start
	}
	return true
}

// DeadEnd reports whether cell has exactly one open side.
func DeadEnd(m *maze.Maze, cell maze.Cell) bool {
	open := 0
	for _, d := range maze.Directions {
		if m.IsExit(cell, d) {
			open++
		}
	}
	return open == 1
}
