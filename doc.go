// Package mazeflood is the navigation core of a 16x16 micromouse robot:
// wall mapping, flood-fill distance fields and next-move selection, plus the
// tooling around them for debugging on a desk instead of on the track.
//
// 🚀 What is in the box?
//
//	• Wall map: two-sided walls with a closed boundary and a visited flag
//	• Flood fill: breadth-first distance-to-target over open passages
//	• Steering: cheapest next heading with a straight-ahead tie-break
//	• Views: the serial-console pictures (walls, costs, arrows, hex dump)
//	• Files: maze pictures and YAML snapshots
//	• Tools: random mazes, a terminal viewer and a debug HTTP server
//
// ✨ Guarantees
//
//   - Fixed memory: every structure is a 256-entry array, no allocation per flood
//   - Cost 255 always means "not reached"
//   - A wall change marks the cost field stale until the next flood
//
// Packages:
//
//	maze/          cells, directions, WallMap, CostField, Maze, Shared
//	flood/         Flood, Goal and the flood options
//	steer/         Best, Route, Turns
//	render/        Plain, Costs, Directions, WallData
//	render/screen/ tcell painter and interactive viewer
//	mazefile/      text and YAML maze files
//	generate/      random perfect and braided mazes
//	config/        YAML, .env and environment settings
//	server/        HTTP and websocket debug surface
//	cmd/mazeflood/ the command line tool
//
// Quick start:
//
//	m := maze.New()
//	_ = m.SetWallPresent(0x01, maze.East)
//	_, _ = flood.Goal(m)
//	d, ok := steer.Best(m, maze.Start, maze.North)
package mazeflood
