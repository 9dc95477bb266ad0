package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mazeflood/config"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// noEnvFile points Load at a .env path that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	goal, err := cfg.GoalCell()
	require.NoError(t, err)
	assert.Equal(t, maze.DefaultGoal, goal)

	view, err := cfg.RenderView()
	require.NoError(t, err)
	assert.Equal(t, render.ViewDirections, view)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "mazeflood.yaml", `
maze: mazes/japan2019.txt
format: text
goal: 0x77
heading: east
view: costs
listen: 127.0.0.1:9000
debug: true
generate:
  seed: 42
  braid: 0.25
`)
	cfg, err := config.Load(path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "mazes/japan2019.txt", cfg.Maze)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.InDelta(t, 0.25, cfg.Generate.Braid, 1e-9)

	goal, err := cfg.GoalCell()
	require.NoError(t, err)
	assert.Equal(t, maze.Cell(0x77), goal, "unquoted hex decodes as a number")

	h, err := cfg.HeadingDirection()
	require.NoError(t, err)
	assert.Equal(t, maze.East, h)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "mazeflood.yaml", "listen: :9000\nview: plain\n")
	t.Setenv("MAZEFLOOD_LISTEN", ":9999")
	t.Setenv("MAZEFLOOD_GENERATE_SEED", "17")

	cfg, err := config.Load(path, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "plain", cfg.View)
	assert.Equal(t, int64(17), cfg.Generate.Seed)
}

func TestLoad_DotEnv(t *testing.T) {
	env := writeFile(t, "test.env", "MAZEFLOOD_HEADING=W\n")
	t.Cleanup(func() { _ = os.Unsetenv("MAZEFLOOD_HEADING") })

	cfg, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "W", cfg.Heading)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), noEnvFile(t))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "heading: up\n")
	_, err = config.Load(bad, noEnvFile(t))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, maze.ErrInvalidDirection)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*config.Config)
	}{
		{"Goal", func(c *config.Config) { c.Goal = "0x300" }},
		{"Heading", func(c *config.Config) { c.Heading = "up" }},
		{"View", func(c *config.Config) { c.View = "fancy" }},
		{"Format", func(c *config.Config) { c.Format = "json" }},
		{"Listen", func(c *config.Config) { c.Listen = "" }},
		{"Braid", func(c *config.Config) { c.Generate.Braid = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, cfg.Validate())
			tc.edit(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
