package mazefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/render"
)

// Sentinel errors for maze files.
var (
	// ErrSyntax indicates a malformed text picture.
	ErrSyntax = errors.New("mazefile: syntax error")

	// ErrGoal indicates a missing, repeated or malformed goal.
	ErrGoal = errors.New("mazefile: bad goal")

	// ErrSnapshot indicates a YAML snapshot that does not describe a maze.
	ErrSnapshot = errors.New("mazefile: bad snapshot")
)

const (
	// frameLines is the height of the picture without surrounding blanks.
	frameLines = 2*maze.Width + 1
	// lineWidth is the width of every picture line.
	lineWidth = 4*maze.Width + 1
	// GoalMark marks the goal inside a cell body.
	GoalMark = 'G'
)

// ReadText parses a maze picture.
func ReadText(r io.Reader) (*maze.Maze, error) {
	lines, err := frame(r)
	if err != nil {
		return nil, err
	}

	m := maze.New()
	goalSeen := false
	for row := maze.Width - 1; row >= 0; row-- {
		top := lines[northIndex(row)]
		body := lines[northIndex(row)+1]
		for col := 0; col < maze.Width; col++ {
			cell := maze.Cell(row + maze.Width*col)

			if row < maze.Width-1 {
				wall, err := horizontal(top, col, northIndex(row))
				if err != nil {
					return nil, err
				}
				if err = setSide(m, cell, maze.North, wall); err != nil {
					return nil, err
				}
			}

			if col > 0 {
				wall, err := vertical(body, col, northIndex(row)+1)
				if err != nil {
					return nil, err
				}
				if err = setSide(m, cell, maze.West, wall); err != nil {
					return nil, err
				}
			}

			if strings.ContainsRune(body[4*col+1:4*col+4], GoalMark) {
				if goalSeen {
					return nil, fmt.Errorf("%w: second goal at %s", ErrGoal, cell)
				}
				goalSeen = true
				m.SetGoal(cell)
			}
		}
	}
	m.Costs().Invalidate()
	return m, nil
}

// WriteText writes m as a picture that ReadText reads back. The goal cell
// carries GoalMark.
func WriteText(w io.Writer, m *maze.Maze) error {
	var buf bytes.Buffer
	if err := render.Plain(&buf, m); err != nil {
		return err
	}
	out := []byte(buf.String())

	// the picture starts after one blank line
	goal := m.Goal()
	line := northIndex(goal.Row()) + 1
	out[1+line*(lineWidth+1)+4*goal.Col()+2] = GoalMark

	_, err := w.Write(out)
	return err
}

// frame reads the picture lines, trimming blanks around them and padding
// each line to full width.
func frame(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != frameLines {
		return nil, fmt.Errorf("%w: %d lines, want %d", ErrSyntax, len(lines), frameLines)
	}

	for i, l := range lines {
		if len(l) > lineWidth {
			return nil, fmt.Errorf("%w: line %d is %d columns wide", ErrSyntax, i+1, len(l))
		}
		lines[i] = l + strings.Repeat(" ", lineWidth-len(l))
	}
	return lines, nil
}

// northIndex returns the picture line above row.
func northIndex(row int) int {
	return 2 * (maze.Width - 1 - row)
}

// horizontal reads the wall segment of col on a post line.
func horizontal(line string, col, n int) (bool, error) {
	switch seg := line[4*col+1 : 4*col+4]; seg {
	case "---":
		return true, nil
	case "   ":
		return false, nil
	default:
		return false, fmt.Errorf("%w: line %d col %d: %q is neither wall nor gap", ErrSyntax, n+1, col, seg)
	}
}

// vertical reads the west wall of col on a cell line.
func vertical(line string, col, n int) (bool, error) {
	switch line[4*col] {
	case byte(render.WallGlyph):
		return true, nil
	case ' ':
		return false, nil
	default:
		return false, fmt.Errorf("%w: line %d col %d: %q is neither wall nor gap", ErrSyntax, n+1, col, line[4*col])
	}
}

func setSide(m *maze.Maze, cell maze.Cell, d maze.Direction, wall bool) error {
	if wall {
		return m.SetWallPresent(cell, d)
	}
	return m.SetWallAbsent(cell, d)
}
