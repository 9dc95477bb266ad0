// Package config loads mazeflood settings from a YAML file, a .env file and
// MAZEFLOOD_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/mazefile"
	"github.com/katalvlaran/mazeflood/render"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate and Load for a bad setting.
var ErrInvalidConfig = errors.New("config: invalid")

// EnvPrefix prefixes every environment override, e.g. MAZEFLOOD_LISTEN or
// MAZEFLOOD_GENERATE_SEED.
const EnvPrefix = "MAZEFLOOD"

// Config holds the settings shared by the CLI, the viewer and the server.
type Config struct {
	// Maze is the file to load; empty means a fresh or generated maze.
	Maze string `mapstructure:"maze"`
	// Format of Maze: text, yaml or empty to guess from the extension.
	Format string `mapstructure:"format"`
	// Goal overrides the goal cell, in hex ("0x22") or decimal.
	Goal string `mapstructure:"goal"`
	// Heading is the robot heading used for route extraction.
	Heading string `mapstructure:"heading"`
	// View is the initial render view.
	View string `mapstructure:"view"`
	// Listen is the HTTP address of the debug server.
	Listen string `mapstructure:"listen"`
	// Debug enables diagnostic logging.
	Debug bool `mapstructure:"debug"`
	// Generate configures random mazes.
	Generate Generate `mapstructure:"generate"`
}

// Generate holds the random maze settings.
type Generate struct {
	Enabled bool    `mapstructure:"enabled"`
	Seed    int64   `mapstructure:"seed"`
	Braid   float64 `mapstructure:"braid"`
}

var defaults = map[string]any{
	"maze":             "",
	"format":           "",
	"goal":             maze.DefaultGoal.String(),
	"heading":          "N",
	"view":             "directions",
	"listen":           ":8080",
	"debug":            false,
	"generate.enabled": false,
	"generate.seed":    int64(0),
	"generate.braid":   0.0,
}

// Load reads the YAML file at path, if path is not empty, after loading
// envFiles (".env" when none are named) into the environment. A missing
// .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: env file: %w", err)
	}

	vp := viper.New()
	for k, v := range defaults {
		vp.SetDefault(k, v)
	}
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the settings Load yields with no file and no environment.
func Default() *Config {
	return &Config{
		Goal:    maze.DefaultGoal.String(),
		Heading: "N",
		View:    "directions",
		Listen:  ":8080",
	}
}

// Validate checks every field that has a restricted form.
func (c *Config) Validate() error {
	if _, err := c.GoalCell(); err != nil {
		return fmt.Errorf("%w: goal: %w", ErrInvalidConfig, err)
	}
	if _, err := c.HeadingDirection(); err != nil {
		return fmt.Errorf("%w: heading: %w", ErrInvalidConfig, err)
	}
	if _, err := c.RenderView(); err != nil {
		return fmt.Errorf("%w: view: %w", ErrInvalidConfig, err)
	}
	if _, err := c.MazeFormat(); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if c.Generate.Braid < 0 || c.Generate.Braid > 1 {
		return fmt.Errorf("%w: generate.braid %v outside [0,1]", ErrInvalidConfig, c.Generate.Braid)
	}
	return nil
}

// GoalCell parses Goal.
func (c *Config) GoalCell() (maze.Cell, error) { return mazefile.ParseCell(c.Goal) }

// HeadingDirection parses Heading.
func (c *Config) HeadingDirection() (maze.Direction, error) {
	return maze.DirectionFromName(c.Heading)
}

// RenderView parses View.
func (c *Config) RenderView() (render.View, error) { return render.ParseView(c.View) }

// MazeFormat parses Format.
func (c *Config) MazeFormat() (mazefile.Format, error) { return mazefile.ParseFormat(c.Format) }
