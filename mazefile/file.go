package mazefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mazeflood/maze"
)

// Format names a file format.
type Format string

const (
	FormatAuto Format = ""
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "", "auto", "text", "txt", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("mazefile: unknown format %q", s)
}

// FormatFor resolves FormatAuto from the file extension: .yaml and .yml
// are snapshots, anything else is a picture.
func FormatFor(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatText
}

// Load reads the maze stored at path.
func Load(path string, f Format) (*maze.Maze, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var m *maze.Maze
	if FormatFor(path, f) == FormatYAML {
		m, err = ReadYAML(file)
	} else {
		m, err = ReadText(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes m to path, replacing any existing file.
func Save(path string, f Format, m *maze.Maze) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if FormatFor(path, f) == FormatYAML {
		err = WriteYAML(file, m)
	} else {
		err = WriteText(file, m)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
