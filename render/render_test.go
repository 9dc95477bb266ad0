package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lines renders m with fn and splits the output. A frame view yields 36
// entries: leading blank, 33 frame lines, trailing blank, and the empty
// remainder after the final newline.
func lines(t *testing.T, m *maze.Maze, fn func(*bytes.Buffer, *maze.Maze) error) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf, m))
	return strings.Split(buf.String(), "\n")
}

func plain(b *bytes.Buffer, m *maze.Maze) error      { return render.Plain(b, m) }
func costs(b *bytes.Buffer, m *maze.Maze) error      { return render.Costs(b, m) }
func directions(b *bytes.Buffer, m *maze.Maze) error { return render.Directions(b, m) }
func wallData(b *bytes.Buffer, m *maze.Maze) error   { return render.WallData(b, m) }

// cellLine returns the index of the body line for row.
func cellLine(row int) int { return 2 + 2*(maze.Width-1-row) }

// northLine returns the index of the line of posts above row.
func northLine(row int) int { return 1 + 2*(maze.Width-1-row) }

// body returns the three body columns of (row, col).
func body(ls []string, row, col int) string {
	l := ls[cellLine(row)]
	return l[4*col+1 : 4*col+4]
}

//----------------------------------------------------------------------------//
// Plain
//----------------------------------------------------------------------------//

func TestPlain_FreshMaze(t *testing.T) {
	ls := lines(t, maze.New(), plain)
	require.Len(t, ls, 36)
	assert.Equal(t, "", ls[0])
	assert.Equal(t, "", ls[34])
	assert.Equal(t, "", ls[35])

	closed := strings.Repeat("o---", maze.Width) + "o"
	open := strings.Repeat("o   ", maze.Width) + "o"
	assert.Equal(t, closed, ls[northLine(15)], "north boundary")
	assert.Equal(t, closed, ls[33], "south boundary")
	for row := 0; row < maze.Width-1; row++ {
		assert.Equal(t, open, ls[northLine(row)], "row %d", row)
	}

	edge := "|   " + strings.Repeat("    ", maze.Width-1) + "|"
	for row := 1; row < maze.Width; row++ {
		assert.Equal(t, edge, ls[cellLine(row)], "row %d", row)
	}
	// the start cell's east wall shows as the west wall of 0x10
	assert.Equal(t, "|   |   "+strings.Repeat("    ", maze.Width-2)+"|", ls[cellLine(0)])
}

func TestPlain_InteriorWalls(t *testing.T) {
	m := maze.New()
	c, _ := maze.At(7, 4)
	require.NoError(t, m.SetWallPresent(c, maze.North))
	require.NoError(t, m.SetWallPresent(c, maze.West))

	ls := lines(t, m, plain)
	assert.Equal(t, "o---", ls[northLine(7)][16:20])
	assert.Equal(t, "o   ", ls[northLine(7)][12:16], "neighbour column stays open")
	assert.Equal(t, byte('|'), ls[cellLine(7)][16])
	assert.Equal(t, byte(' '), ls[cellLine(7)][20], "east side untouched")
}

//----------------------------------------------------------------------------//
// Costs
//----------------------------------------------------------------------------//

func TestCosts_AfterFlood(t *testing.T) {
	m := maze.New()
	_, err := flood.Goal(m)
	require.NoError(t, err)

	ls := lines(t, m, costs)
	require.Len(t, ls, 36)
	assert.Equal(t, "  4", body(ls, 0, 0))
	assert.Equal(t, "  3", body(ls, 0, 1))
	assert.Equal(t, "  0", body(ls, 2, 2))
	assert.Equal(t, " 26", body(ls, 15, 15))
	assert.Equal(t, "|  4|  3   2", ls[cellLine(0)][:12])
}

func TestCosts_Unreached(t *testing.T) {
	m := maze.New()
	box, _ := maze.At(9, 9)
	for _, d := range maze.Directions {
		require.NoError(t, m.SetWallPresent(box, d))
	}
	_, err := flood.Goal(m)
	require.NoError(t, err)

	ls := lines(t, m, costs)
	assert.Equal(t, "255", body(ls, 9, 9))
	assert.Equal(t, byte('|'), ls[cellLine(9)][4*9])
	assert.Equal(t, byte('|'), ls[cellLine(9)][4*10])
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

func TestDirections_FreshMaze(t *testing.T) {
	m := maze.New()
	m.Costs().Invalidate()

	ls := lines(t, m, directions)
	require.Len(t, ls, 36)

	_, fresh := m.Costs().Target()
	assert.True(t, fresh, "view floods the maze")

	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, " ^ "},
		{0, 1, " ^ "},
		{0, 3, " ^ "},
		{2, 0, " > "},
		{2, 2, " * "},
		{2, 5, " < "},
		{7, 2, " v "},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, body(ls, tc.row, tc.col), "row %d col %d", tc.row, tc.col)
	}
}

func TestDirections_CustomGoalAndBlockedCell(t *testing.T) {
	m := maze.New()
	goal, _ := maze.At(8, 8)
	m.SetGoal(goal)
	box, _ := maze.At(1, 12)
	for _, d := range maze.Directions {
		require.NoError(t, m.SetWallPresent(box, d))
	}

	ls := lines(t, m, directions)
	assert.Equal(t, " * ", body(ls, 8, 8))
	assert.Equal(t, "   ", body(ls, 1, 12), "no improving side")
	assert.Equal(t, " ^ ", body(ls, 2, 2))
	assert.Equal(t, uint8(0), m.Cost(goal))
}

func TestDirectionGlyph(t *testing.T) {
	m := maze.New()
	_, err := flood.Goal(m)
	require.NoError(t, err)
	assert.Equal(t, render.TargetGlyph, render.DirectionGlyph(m, maze.DefaultGoal, maze.DefaultGoal))
	assert.Equal(t, '^', render.DirectionGlyph(m, maze.Start, maze.DefaultGoal))
}

//----------------------------------------------------------------------------//
// WallData
//----------------------------------------------------------------------------//

func TestWallData_FreshMaze(t *testing.T) {
	ls := lines(t, maze.New(), wallData)
	require.Len(t, ls, 19)
	assert.Equal(t, "", ls[0])
	assert.Equal(t, "", ls[17])

	top := "09 " + strings.Repeat("01 ", maze.Width-2) + "03 "
	assert.Equal(t, top, ls[1])
	bottom := "0E 0C " + strings.Repeat("04 ", maze.Width-3) + "06 "
	assert.Equal(t, bottom, ls[16])
	middle := "08 " + strings.Repeat("00 ", maze.Width-2) + "02 "
	assert.Equal(t, middle, ls[8])
}

func TestWallData_VisitedBits(t *testing.T) {
	m := maze.New()
	m.MarkVisited(maze.Start)
	ls := lines(t, m, wallData)
	assert.True(t, strings.HasPrefix(ls[16], "FE "))
}

//----------------------------------------------------------------------------//
// Writer errors
//----------------------------------------------------------------------------//

type failWriter struct{ n int }

var errFull = errors.New("full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errFull
	}
	f.n--
	return len(p), nil
}

func TestRender_WriterError(t *testing.T) {
	for _, v := range render.Views {
		err := render.Render(&failWriter{n: 3}, maze.New(), v)
		assert.ErrorIs(t, err, errFull, v.String())
	}
}
