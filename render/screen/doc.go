// Package screen paints the render views on a terminal with tcell and runs
// a small interactive viewer around a shared maze.
//
// Draw is a pure painter: it renders one view of a maze into a tcell.Screen
// with walls, the goal and unreached cells styled apart. Viewer owns the
// event loop:
//
//	p c d w   switch to the plain, costs, directions or wall-data view
//	g         flood toward the goal and redraw
//	q Esc     quit
//
// Tests drive both through tcell.NewSimulationScreen.
package screen
