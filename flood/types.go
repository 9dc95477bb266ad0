// Package flood provides tunable options and error definitions
// for the flood fill over a maze.Maze.
package flood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeflood/maze"
)

// Sentinel errors for flood execution.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("flood: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Option configures a flood via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Flood is invoked.
type Option func(*Options)

// Options holds the hooks and limits of one flood.
type Options struct {
	// OnEnqueue is called each time a cell is lowered to cost and queued.
	OnEnqueue func(cell maze.Cell, cost uint8)

	// OnDequeue is called each time a cell is taken off the queue.
	OnDequeue func(cell maze.Cell, cost uint8)

	// Filter can refuse the passage from -> to through side d.
	Filter func(from maze.Cell, d maze.Direction, to maze.Cell) bool

	// VisitedOnly skips cells without the visited flag.
	VisitedOnly bool

	// MaxCost, if > 0, stops expansion from cells at this cost or more.
	MaxCost uint8

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, an accept-all filter
// and no cost limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(maze.Cell, uint8) {},
		OnDequeue: func(maze.Cell, uint8) {},
		Filter:    func(maze.Cell, maze.Direction, maze.Cell) bool { return true },
	}
}

// WithOnEnqueue registers a callback run when a cell is queued.
func WithOnEnqueue(fn func(cell maze.Cell, cost uint8)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run when a cell is dequeued.
func WithOnDequeue(fn func(cell maze.Cell, cost uint8)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithFilter skips passages for which fn returns false.
// Filters compose: every registered filter must accept the passage.
func WithFilter(fn func(from maze.Cell, d maze.Direction, to maze.Cell) bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.Filter
		o.Filter = func(from maze.Cell, d maze.Direction, to maze.Cell) bool {
			return prev(from, d, to) && fn(from, d, to)
		}
	}
}

// WithVisitedOnly restricts the flood to cells the robot has visited.
// The target itself is always costed. This is the flood used for a speed
// run, where only explored passages are trusted.
func WithVisitedOnly() Option {
	return func(o *Options) {
		o.VisitedOnly = true
	}
}

// WithMaxCost stops expanding cells whose cost has reached n.
//
//	1 <= n <= 254: limit
//	otherwise:     ErrOptionViolation
func WithMaxCost(n int) Option {
	return func(o *Options) {
		if n < 1 || n >= int(maze.MaxCost) {
			o.err = fmt.Errorf("%w: MaxCost must be in [1,%d] (got %d)", ErrOptionViolation, maze.MaxCost-1, n)
			return
		}
		o.MaxCost = uint8(n)
	}
}

// Result summarises one flood.
type Result struct {
	// Target is the cell the costs were computed toward.
	Target maze.Cell

	// Reached counts cells holding a real distance, target included.
	Reached int

	// Farthest is the largest real distance in the field.
	Farthest uint8

	// Dequeued counts queue pops, i.e. the work done.
	Dequeued int
}
