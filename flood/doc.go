// Package flood rebuilds a maze's cost field with a breadth-first flood fill.
//
// What
//
//   - Resets every cost to maze.MaxCost, seeds the target with cost 0 and
//     expands through open sides (no wall) in the fixed order N, E, S, W.
//   - A neighbour is lowered to cost(here)+1 and queued only when that is
//     strictly cheaper than what it already holds, so costs never rise and
//     the flood always terminates.
//   - When the FIFO drains, every cell reachable from the target holds its
//     exact move count to the target; the rest keep maze.MaxCost. That is
//     not an error: callers treat the sentinel as "no known route".
//   - The field is sealed for the target; a later wall change through the
//     Maze makes it stale again.
//
// Why
//
//   - This is the classic micromouse flood: walls are discovered as the
//     robot explores, and the field is refreshed on demand.
//
// Options
//
//   - DefaultOptions(): no hooks, no filter, no cost limit.
//   - WithOnEnqueue(fn):  hook when a cell is lowered and queued.
//   - WithOnDequeue(fn):  hook when a cell is taken off the queue.
//   - WithFilter(fn):     skip passages for which fn returns false.
//   - WithVisitedOnly():  expand only into visited cells (speed runs).
//   - WithMaxCost(n):     do not expand cells at cost n or more.
//
// Errors
//
//   - ErrNilMaze          if the maze pointer is nil.
//   - ErrOptionViolation  if an option is invalid (e.g. WithMaxCost(0)).
//
// Complexity
//
//   - Time:   O(256 × 4), bounded and deterministic, no recursion.
//   - Memory: O(256) for the queue.
//
// Usage
//
//	m := maze.New()
//	res, err := flood.Flood(m, m.Goal())
//	if err != nil {
//	    // ErrNilMaze or ErrOptionViolation
//	}
//	fmt.Println(m.Cost(maze.Start), res.Reached)
package flood
