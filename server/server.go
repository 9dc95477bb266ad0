package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/mazefile"
	"github.com/katalvlaran/mazeflood/render"
	"github.com/katalvlaran/mazeflood/steer"
	"golang.org/x/sync/errgroup"
)

// Server serves one shared maze.
type Server struct {
	shared  *maze.Shared
	heading maze.Direction
	logger  *log.Logger
	hub     *hub
	router  *mux.Router
}

// New builds a server around shared. A nil shared gets a fresh maze.
func New(shared *maze.Shared, opts ...Option) *Server {
	if shared == nil {
		shared = maze.NewShared(nil)
	}
	s := &Server{
		shared:  shared,
		heading: maze.North,
		logger:  discardLogger(),
		hub:     newHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	for _, v := range render.Views {
		r.HandleFunc("/"+pathFor(v), s.handleView(v)).Methods(http.MethodGet)
	}
	r.HandleFunc("/snapshot", s.handleGetSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", s.handlePutSnapshot).Methods(http.MethodPut)
	r.HandleFunc("/walls", s.handleWall).Methods(http.MethodPost)
	r.HandleFunc("/flood", s.handleFlood).Methods(http.MethodPost)
	r.HandleFunc("/cells/{cell}/best", s.handleBest).Methods(http.MethodGet)
	r.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)
	return r
}

// pathFor maps a view to its route; the plain view lives at /maze.
func pathFor(v render.View) string {
	if v == render.ViewPlain {
		return "maze"
	}
	return v.String()
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:     s.router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Printf("[server] listening on %s", ln.Addr())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Printf("[server] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Printf("[server] %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// changed notifies websocket subscribers.
func (s *Server) changed(what string) {
	seq := s.hub.publish()
	s.logger.Printf("[server] change %d: %s", seq, what)
}

//----------------------------------------------------------------------------//
// Views
//----------------------------------------------------------------------------//

func (s *Server) handleView(v render.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := s.renderView(v)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, text)
	}
}

// renderView renders v. The directions view floods a snapshot so the shared
// cost field is left alone.
func (s *Server) renderView(v render.View) (string, error) {
	var buf bytes.Buffer
	if v == render.ViewDirections {
		err := render.Render(&buf, s.shared.Snapshot(), v)
		return buf.String(), err
	}
	err := s.shared.View(func(m *maze.Maze) error {
		return render.Render(&buf, m, v)
	})
	return buf.String(), err
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := mazefile.WriteYAML(&buf, s.shared.Snapshot()); err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	loaded, err := mazefile.ReadYAML(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	err = s.shared.Update(func(m *maze.Maze) error {
		if err := m.LoadWalls(loaded.Walls().Bytes()); err != nil {
			return err
		}
		m.SetGoal(loaded.Goal())
		return nil
	})
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	s.changed("snapshot loaded")
	w.WriteHeader(http.StatusNoContent)
}

//----------------------------------------------------------------------------//
// Mutations
//----------------------------------------------------------------------------//

func (s *Server) handleWall(w http.ResponseWriter, r *http.Request) {
	var req WallRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	cell, err := parseCell(req.Cell)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	side, err := maze.DirectionFromName(req.Side)
	if err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	var resp WallResponse
	err = s.shared.Update(func(m *maze.Maze) error {
		set := m.SetWallAbsent
		if req.Present {
			set = m.SetWallPresent
		}
		if err := set(cell, side); err != nil {
			return err
		}
		resp = WallResponse{Cell: cell.String(), Side: side.String(), Present: req.Present, Raw: m.Walls().Raw(cell)}
		return nil
	})
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	s.changed(fmt.Sprintf("wall %s %s present=%t", cell, side, req.Present))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFlood(w http.ResponseWriter, r *http.Request) {
	var req FloodRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
	}

	var opts []flood.Option
	if req.VisitedOnly {
		opts = append(opts, flood.WithVisitedOnly())
	}

	var res *flood.Result
	err := s.shared.Update(func(m *maze.Maze) error {
		target := m.Goal()
		if req.Target != "" {
			c, err := parseCell(req.Target)
			if err != nil {
				return err
			}
			target = c
		}
		var err error
		res, err = flood.Flood(m, target, opts...)
		return err
	})
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	s.changed("flood " + res.Target.String())
	writeJSON(w, http.StatusOK, FloodResponse{
		Target:   res.Target.String(),
		Reached:  res.Reached,
		Farthest: res.Farthest,
		Dequeued: res.Dequeued,
	})
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	cell, err := parseCell(mux.Vars(r)["cell"])
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	heading, err := s.headingParam(r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	var resp BestResponse
	_ = s.shared.View(func(m *maze.Maze) error {
		d, ok := steer.Best(m, cell, heading)
		_, fresh := m.Costs().Target()
		resp = BestResponse{
			Cell:      cell.String(),
			Heading:   heading.String(),
			Direction: d.String(),
			OK:        ok,
			Cost:      m.Cost(cell),
			Fresh:     fresh,
		}
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from := maze.Start
	if v := r.URL.Query().Get("from"); v != "" {
		c, err := parseCell(v)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
		from = c
	}
	heading, err := s.headingParam(r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	var path []maze.Cell
	err = s.shared.View(func(m *maze.Maze) error {
		var err error
		path, err = steer.Route(m, from, heading, 0)
		return err
	})
	switch {
	case errors.Is(err, steer.ErrStale):
		s.fail(w, http.StatusConflict, err)
		return
	case err != nil:
		s.fail(w, http.StatusUnprocessableEntity, err)
		return
	}

	resp := RouteResponse{Path: make([]string, len(path))}
	for i, c := range path {
		resp.Path[i] = c.String()
	}
	for _, t := range steer.Turns(path, heading) {
		resp.Turns = append(resp.Turns, t.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) headingParam(r *http.Request) (maze.Direction, error) {
	v := r.URL.Query().Get("heading")
	if v == "" {
		return s.heading, nil
	}
	d, err := maze.DirectionFromName(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return d, nil
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

func parseCell(v string) (maze.Cell, error) {
	if strings.TrimSpace(v) == "" {
		return 0, fmt.Errorf("%w: missing cell", ErrBadRequest)
	}
	c, err := mazefile.ParseCell(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return c, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Printf("[server] %d: %v", status, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
