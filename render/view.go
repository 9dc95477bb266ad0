package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazeflood/maze"
)

// ErrUnknownView is returned by ParseView and Render for an unknown view.
var ErrUnknownView = errors.New("render: unknown view")

// View selects one of the text layouts.
type View uint8

const (
	ViewPlain View = iota
	ViewCosts
	ViewDirections
	ViewWalls
)

// Views lists every view in menu order.
var Views = [...]View{ViewPlain, ViewCosts, ViewDirections, ViewWalls}

var viewNames = [...]string{"plain", "costs", "directions", "walls"}

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", uint8(v))
}

// ParseView maps a view name to its View. Names are case-insensitive and may
// be abbreviated to their first letter.
func ParseView(name string) (View, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, full := range viewNames {
		if n == full || (len(n) == 1 && n[0] == full[0]) {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// Render writes m to w in the given view.
func Render(w io.Writer, m *maze.Maze, v View) error {
	switch v {
	case ViewPlain:
		return Plain(w, m)
	case ViewCosts:
		return Costs(w, m)
	case ViewDirections:
		return Directions(w, m)
	case ViewWalls:
		return WallData(w, m)
	}
	return fmt.Errorf("%w: %d", ErrUnknownView, uint8(v))
}
