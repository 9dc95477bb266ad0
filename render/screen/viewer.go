package screen

import (
	"context"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/render"
)

// Option configures a Viewer.
type Option func(*Viewer)

// WithView sets the view shown first. The default is the directions view.
func WithView(v render.View) Option {
	return func(w *Viewer) { w.view = v }
}

// WithLogger routes viewer diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(w *Viewer) {
		if l != nil {
			w.logger = l
		}
	}
}

// Viewer shows a shared maze on a terminal screen and reacts to keys.
type Viewer struct {
	screen tcell.Screen
	shared *maze.Shared
	view   render.View
	logger *log.Logger
}

// NewViewer builds a viewer over an initialised screen.
func NewViewer(s tcell.Screen, shared *maze.Shared, opts ...Option) *Viewer {
	w := &Viewer{
		screen: s,
		shared: shared,
		view:   render.ViewDirections,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// View returns the view currently shown.
func (w *Viewer) View() render.View { return w.view }

// Redraw paints the current view. The maze is held exclusively because the
// directions view floods it.
func (w *Viewer) Redraw() error {
	return w.shared.Update(func(m *maze.Maze) error {
		return Draw(w.screen, m, w.view)
	})
}

// HandleEvent applies one terminal event and reports whether the viewer
// should keep running.
func (w *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return false
		case 'g', 'G':
			if err := w.flood(false); err != nil {
				w.logger.Printf("flood: %v", err)
			}
		default:
			v, err := render.ParseView(string(r))
			if err != nil {
				return true
			}
			w.view = v
		}
	case *tcell.EventResize:
		w.screen.Sync()
	}

	if err := w.Redraw(); err != nil {
		w.logger.Printf("redraw: %v", err)
	}
	return true
}

// Run floods stale costs, draws the maze and processes events until the
// user quits or ctx is done. The caller owns the screen and calls Fini afterwards.
func (w *Viewer) Run(ctx context.Context) error {
	if err := w.flood(true); err != nil {
		return err
	}
	if err := w.Redraw(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !w.HandleEvent(ev) {
				w.logger.Printf("viewer closed in %s view", w.view)
				return nil
			}
		}
	}
}

// flood recomputes the costs toward the goal. With onlyStale set, fresh
// costs are left alone.
func (w *Viewer) flood(onlyStale bool) error {
	return w.shared.Update(func(m *maze.Maze) error {
		if _, fresh := m.Costs().Target(); onlyStale && fresh {
			return nil
		}
		res, err := flood.Goal(m)
		if err == nil {
			w.logger.Printf("flooded toward %s: %d cells reached", res.Target, res.Reached)
		}
		return err
	})
}
