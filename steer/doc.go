// Package steer picks the next move from a flooded cost field.
//
// Best scans the four neighbours of a cell in a fixed order relative to the
// current heading: ahead, right, left, behind. It starts from the cell's own
// cost and adopts a side only when that side is strictly cheaper, so among
// equally cheap sides ahead beats right, right beats left and left beats
// behind. A walled side reports maze.MaxCost and can never win.
//
// When no side improves on the cell's own cost the result carries ok=false.
// That happens at the target, in a cell the flood did not reach, and in a
// cell whose costs are stale. Callers decide what "no move" means;
// BestOrFallback keeps the firmware's habit of answering North.
//
// Route repeats Best from a start cell to the target and returns the cells
// on the way, which is what a speed run drives.
package steer
