package screen

import (
	"bytes"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/render"
)

// Styles used by Draw.
var (
	StyleText      = tcell.StyleDefault
	StyleWall      = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleTarget    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleUnreached = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleHeader    = tcell.StyleDefault.Reverse(true)
)

// Origin is the screen row of the first frame line; row 0 holds the header.
const Origin = 1

// Draw clears s and paints view v of m below a one-line header. The
// directions view floods m first, exactly as render.Directions does.
func Draw(s tcell.Screen, m *maze.Maze, v render.View) error {
	var buf bytes.Buffer
	if err := render.Render(&buf, m, v); err != nil {
		return err
	}

	s.Clear()
	putString(s, 0, 0, header(v), StyleHeader)

	// drop the leading blank line the console views start with
	text := strings.TrimPrefix(buf.String(), "\n")
	for y, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		for x, r := range line {
			s.SetContent(x, Origin+y, r, nil, styleFor(r))
		}
	}

	if v == render.ViewCosts || v == render.ViewDirections {
		markCells(s, m)
	}
	s.Show()
	return nil
}

// BodyAt returns the screen position of the first body column of cell in a
// frame view.
func BodyAt(cell maze.Cell) (x, y int) {
	return 4*cell.Col() + 1, Origin + 1 + 2*(maze.Width-1-cell.Row())
}

func header(v render.View) string {
	return " " + v.String() + " | p c d w: view  g: flood  q: quit "
}

func styleFor(r rune) tcell.Style {
	switch r {
	case render.Post, render.WallGlyph, '-':
		return StyleWall
	case render.TargetGlyph:
		return StyleTarget
	}
	return StyleText
}

// markCells restyles the bodies of the goal and of every unreached cell.
func markCells(s tcell.Screen, m *maze.Maze) {
	for i := 0; i < maze.Cells; i++ {
		cell := maze.Cell(i)
		var style tcell.Style
		switch {
		case cell == m.Goal():
			style = StyleTarget
		case !m.Costs().Reached(cell):
			style = StyleUnreached
		default:
			continue
		}
		x, y := BodyAt(cell)
		for dx := 0; dx < 3; dx++ {
			r, _, _, _ := s.GetContent(x+dx, y)
			s.SetContent(x+dx, y, r, nil, style)
		}
	}
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
