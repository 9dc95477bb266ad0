package server

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/mazeflood/maze"
)

// Sentinel errors for request decoding.
var (
	// ErrBadRequest is wrapped by every request validation failure.
	ErrBadRequest = errors.New("server: bad request")
)

const (
	// writeWait bounds a single websocket write.
	writeWait = 2 * time.Second
	// pongWait is how long a websocket peer may stay silent.
	pongWait = 30 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxBody bounds JSON and YAML request bodies.
	maxBody = 1 << 16
	// shutdownGrace bounds graceful shutdown in ListenAndServe.
	shutdownGrace = 5 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithLogger routes request and websocket logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHeading sets the heading used when a request does not name one.
func WithHeading(d maze.Direction) Option {
	return func(s *Server) {
		if d.Valid() {
			s.heading = d
		}
	}
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

// WallRequest is the body of POST /walls. Cell is hex ("0x22") or decimal,
// Side is N, E, S or W.
type WallRequest struct {
	Cell    string `json:"cell"`
	Side    string `json:"side"`
	Present bool   `json:"present"`
}

// WallResponse echoes the applied change.
type WallResponse struct {
	Cell    string `json:"cell"`
	Side    string `json:"side"`
	Present bool   `json:"present"`
	Raw     uint8  `json:"raw"`
}

// FloodRequest is the optional body of POST /flood. An empty Target floods
// toward the maze goal.
type FloodRequest struct {
	Target      string `json:"target,omitempty"`
	VisitedOnly bool   `json:"visitedOnly,omitempty"`
}

// FloodResponse summarises a flood.
type FloodResponse struct {
	Target   string `json:"target"`
	Reached  int    `json:"reached"`
	Farthest uint8  `json:"farthest"`
	Dequeued int    `json:"dequeued"`
}

// BestResponse is the answer of GET /cells/{cell}/best.
type BestResponse struct {
	Cell      string `json:"cell"`
	Heading   string `json:"heading"`
	Direction string `json:"direction"`
	OK        bool   `json:"ok"`
	Cost      uint8  `json:"cost"`
	Fresh     bool   `json:"fresh"`
}

// RouteResponse is the answer of GET /route.
type RouteResponse struct {
	Path  []string `json:"path"`
	Turns []string `json:"turns"`
}

// Frame is one websocket message.
type Frame struct {
	Seq  uint64 `json:"seq"`
	View string `json:"view"`
	Text string `json:"text"`
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}
