// Package generate builds random 16x16 test mazes.
//
// New carves a perfect maze (exactly one path between any two cells) with
// Wilson's algorithm: loop-erased random walks from every cell not yet in
// the tree until they hit it. The result is a uniform spanning tree of the
// grid with one edge removed from the graph first: the start cell's east
// side, which every micromouse maze keeps closed.
//
// WithBraid removes extra walls from dead ends so that the maze has loops,
// which is what exercises a flood-fill solver's re-planning.
//
// The same seed always yields the same maze.
package generate
