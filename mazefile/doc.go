// Package mazefile loads and saves mazes.
//
// Two formats are supported:
//
//   - Text: the picture render.Plain prints, 17 post lines and 16 cell lines
//     with row 15 at the top. Blank lines around the picture are ignored. A
//     'G' anywhere in a cell body marks the goal. Interior walls are read
//     from the picture and applied to both sides; the outer boundary is
//     always closed whatever the picture shows.
//
//   - YAML: a snapshot of the raw wall bytes, visited flags included, plus
//     the goal cell. Rows are listed from row 15 down, as in render.WallData:
//
//     width: 16
//     goal: "0x22"
//     walls:
//     - "09 01 01 ... 03"
//     ...
//
// Both readers return a fresh maze whose cost field is stale.
package mazefile
