package mazefile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazeflood/maze"
	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML form of a maze.
type Snapshot struct {
	Width int      `yaml:"width"`
	Goal  string   `yaml:"goal"`
	Walls []string `yaml:"walls"`
}

// NewSnapshot captures the walls and goal of m.
func NewSnapshot(m *maze.Maze) Snapshot {
	s := Snapshot{
		Width: maze.Width,
		Goal:  m.Goal().String(),
		Walls: make([]string, 0, maze.Width),
	}
	raw := m.Walls().Bytes()
	for row := maze.Width - 1; row >= 0; row-- {
		hex := make([]string, maze.Width)
		for col := range hex {
			hex[col] = fmt.Sprintf("%02X", raw[row+maze.Width*col])
		}
		s.Walls = append(s.Walls, strings.Join(hex, " "))
	}
	return s
}

// Maze rebuilds a maze from the snapshot. The walls must be symmetric and
// closed at the boundary.
func (s Snapshot) Maze() (*maze.Maze, error) {
	if s.Width != maze.Width {
		return nil, fmt.Errorf("%w: width %d, want %d", ErrSnapshot, s.Width, maze.Width)
	}
	if len(s.Walls) != maze.Width {
		return nil, fmt.Errorf("%w: %d wall rows, want %d", ErrSnapshot, len(s.Walls), maze.Width)
	}

	var raw [maze.Cells]uint8
	for i, line := range s.Walls {
		row := maze.Width - 1 - i
		fields := strings.Fields(line)
		if len(fields) != maze.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrSnapshot, row, len(fields))
		}
		for col, f := range fields {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrSnapshot, row, col, err)
			}
			raw[row+maze.Width*col] = uint8(v)
		}
	}

	goal, err := ParseCell(s.Goal)
	if err != nil {
		return nil, err
	}

	m := maze.New()
	if err = m.LoadWalls(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	m.SetGoal(goal)
	return m, nil
}

// ReadYAML decodes a snapshot and rebuilds its maze.
func ReadYAML(r io.Reader) (*maze.Maze, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return s.Maze()
}

// WriteYAML encodes a snapshot of m.
func WriteYAML(w io.Writer, m *maze.Maze) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(m)); err != nil {
		return err
	}
	return enc.Close()
}

// ParseCell reads a cell written as hex ("0x22") or as a decimal index
// ("34"). An empty string means maze.DefaultGoal.
func ParseCell(s string) (maze.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return maze.DefaultGoal, nil
	}
	v, err := strconv.ParseInt(s, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrGoal, s)
	}
	c, err := maze.CellOf(int(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGoal, err)
	}
	return c, nil
}
