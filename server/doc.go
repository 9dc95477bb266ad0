// Package server exposes a shared maze over HTTP for bench debugging.
//
// Routes:
//
//	GET  /maze /costs /directions /walls   text views, as on the serial console
//	GET  /snapshot                         YAML snapshot of walls and goal
//	PUT  /snapshot                         replace walls and goal from YAML
//	POST /walls                            set or clear one wall (JSON)
//	POST /flood                            flood toward a target (JSON)
//	GET  /cells/{cell}/best?heading=N      best direction out of a cell (JSON)
//	GET  /route?from=0x00&heading=N        route to the flooded target (JSON)
//	GET  /ws                               websocket pushing the directions view
//
// Every handler goes through maze.Shared, so requests may arrive from any
// number of clients. Mutating requests notify websocket subscribers, which
// receive a fresh directions frame. The directions view is computed on a
// snapshot and never changes the shared cost field.
package server
