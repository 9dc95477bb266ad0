// Package render prints a maze in the text layouts used on the robot's
// serial console.
//
// All four views write to an io.Writer and draw row 15 at the top, so the
// picture matches the maze as seen from above with the start in the bottom
// left corner:
//
//	Plain       posts "o", walls "---" and "|", empty cell bodies
//	Costs       the same frame with each cost right-justified in 3 columns
//	Directions  floods toward the goal, then the best heading of every cell
//	WallData    the raw wall bytes as hex, row 15 first
//
// Every view begins and ends with a blank line. Directions mutates the cost
// field of the maze it is given; pass a clone when that matters.
//
// View and ParseView name the views for callers that choose one at run time
// (the CLI, the HTTP server, the terminal viewer).
package render
