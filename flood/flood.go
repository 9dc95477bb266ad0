// Package flood fills a maze's cost field with the move count from every
// cell to a target, breadth-first over the open sides of the wall map.
package flood

import (
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/zyedidia/generic/queue"
)

// filler encapsulates mutable flood state.
type filler struct {
	m     *maze.Maze
	costs *maze.CostField
	opts  Options
	queue *queue.Queue[maze.Cell]
	res   *Result
}

// Flood rebuilds m's cost field toward target, applying any number of
// functional Options, and seals the field for target.
// Returns ErrNilMaze for a nil maze or ErrOptionViolation for bad options;
// an unreachable target region is not an error.
func Flood(m *maze.Maze, target maze.Cell, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &filler{
		m:     m,
		costs: m.Costs(),
		opts:  o,
		queue: queue.New[maze.Cell](),
		res:   &Result{Target: target},
	}
	f.costs.Reset()
	f.enqueue(target, 0)
	f.loop()
	f.costs.Seal(target)
	f.summarise()

	return f.res, nil
}

// Goal floods m toward its own goal cell.
func Goal(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	return Flood(m, m.Goal(), opts...)
}

// enqueue lowers cell to cost, calls OnEnqueue and queues it.
func (f *filler) enqueue(cell maze.Cell, cost uint8) {
	f.costs.Set(cell, cost)
	f.opts.OnEnqueue(cell, cost)
	f.queue.Enqueue(cell)
}

// loop drains the queue. Each dequeued cell offers cost+1 to every
// neighbour behind an open side.
func (f *filler) loop() {
	for !f.queue.Empty() {
		here := f.queue.Dequeue()
		cost := f.costs.Cost(here)
		f.res.Dequeued++
		f.opts.OnDequeue(here, cost)

		if f.opts.MaxCost > 0 && cost >= f.opts.MaxCost {
			continue
		}
		// a cost of 255 would collide with the sentinel
		next := int(cost) + 1
		if next >= int(maze.MaxCost) {
			continue
		}

		for _, d := range maze.Directions {
			if !f.m.IsExit(here, d) {
				continue
			}
			nbr := here.Next(d)
			if f.opts.VisitedOnly && !f.m.Visited(nbr) {
				continue
			}
			if !f.opts.Filter(here, d, nbr) {
				continue
			}
			if int(f.costs.Cost(nbr)) > next {
				f.enqueue(nbr, uint8(next))
			}
		}
	}
}

// summarise counts reached cells and the largest real distance.
func (f *filler) summarise() {
	for i := 0; i < maze.Cells; i++ {
		c := f.costs.Cost(maze.Cell(i))
		if c == maze.MaxCost {
			continue
		}
		f.res.Reached++
		if c > f.res.Farthest {
			f.res.Farthest = c
		}
	}
}
