// Command mazeflood floods, prints, edits and serves 16x16 micromouse mazes.
//
// Usage:
//
//	mazeflood [-config file] [-maze file | -random] [-view name] [-route]
//	mazeflood -interactive
//	mazeflood -serve [-listen addr]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazeflood/config"
	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/generate"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/mazefile"
	"github.com/katalvlaran/mazeflood/render"
	"github.com/katalvlaran/mazeflood/render/screen"
	"github.com/katalvlaran/mazeflood/server"
	"github.com/katalvlaran/mazeflood/steer"
)

// options holds the command line after it has been merged with the config.
type options struct {
	cfg         *config.Config
	interactive bool
	serve       bool
	route       bool
	save        string
	logPath     string
	// goalSet is true when -goal was given on the command line.
	goalSet bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mazeflood: %v\n", err)
		os.Exit(1)
	}
}

// run is main without the process plumbing.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(opts.cfg.Debug, opts.logPath)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	m, err := buildMaze(opts.cfg, opts.goalSet, logger)
	if err != nil {
		return err
	}
	heading, _ := opts.cfg.HeadingDirection()
	view, _ := opts.cfg.RenderView()

	if opts.save != "" {
		format, _ := opts.cfg.MazeFormat()
		if err = mazefile.Save(opts.save, format, m); err != nil {
			return err
		}
		logger.Printf("saved maze to %s", opts.save)
	}

	res, err := flood.Goal(m)
	if err != nil {
		return err
	}
	logger.Printf("flooded toward %s: %d cells reached", res.Target, res.Reached)

	shared := maze.NewShared(m)
	switch {
	case opts.serve:
		srv := server.New(shared, server.WithLogger(logger), server.WithHeading(heading))
		fmt.Fprintf(stdout, "serving on %s\n", opts.cfg.Listen)
		return srv.ListenAndServe(ctx, opts.cfg.Listen)

	case opts.interactive:
		return runViewer(ctx, shared, view, logger)
	}

	if err = render.Render(stdout, m, view); err != nil {
		return err
	}
	if opts.route {
		return printRoute(stdout, m, heading)
	}
	return nil
}

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("mazeflood", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "YAML config file")
		mazePath    = fs.String("maze", "", "maze file to load (text picture or YAML snapshot)")
		format      = fs.String("format", "", "maze file format: text, yaml or empty to guess")
		random      = fs.Bool("random", false, "generate a random maze")
		seed        = fs.Int64("seed", 0, "seed for -random (0 = time based)")
		braid       = fs.Float64("braid", 0, "dead-end opening probability for -random, 0..1")
		goal        = fs.String("goal", "", "goal cell, hex (0x22) or decimal")
		heading     = fs.String("heading", "", "robot heading: N, E, S or W")
		view        = fs.String("view", "", "view: plain, costs, directions or walls")
		listen      = fs.String("listen", "", "address for -serve")
		debug       = fs.Bool("debug", false, "enable diagnostic logging")
		interactive = fs.Bool("interactive", false, "open the terminal viewer")
		serve       = fs.Bool("serve", false, "serve the maze over HTTP")
		route       = fs.Bool("route", false, "print the route from the start to the goal")
		save        = fs.String("save", "", "write the maze to this file and continue")
		logPath     = fs.String("log", "", "debug log file (default stderr, or logs/mazeflood.log with -interactive)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	// explicit flags win over the config
	goalSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maze":
			cfg.Maze = *mazePath
		case "format":
			cfg.Format = *format
		case "random":
			cfg.Generate.Enabled = *random
		case "seed":
			cfg.Generate.Seed = *seed
		case "braid":
			cfg.Generate.Braid = *braid
		case "goal":
			cfg.Goal = *goal
			goalSet = true
		case "heading":
			cfg.Heading = *heading
		case "view":
			cfg.View = *view
		case "listen":
			cfg.Listen = *listen
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if *interactive && *serve {
		return nil, errors.New("-interactive and -serve are exclusive")
	}

	opts := &options{
		cfg:         cfg,
		interactive: *interactive,
		serve:       *serve,
		route:       *route,
		save:        *save,
		logPath:     *logPath,
		goalSet:     goalSet,
	}
	if opts.logPath == "" && opts.interactive {
		opts.logPath = "logs/mazeflood.log"
	}
	return opts, nil
}

// buildMaze loads, generates or creates the maze described by cfg and
// applies the configured goal. A goal stored in a loaded file is kept
// unless goalSet reports an explicit -goal or the config names another goal.
func buildMaze(cfg *config.Config, goalSet bool, logger *log.Logger) (*maze.Maze, error) {
	var (
		m   *maze.Maze
		err error
	)
	switch {
	case cfg.Maze != "":
		format, _ := cfg.MazeFormat()
		m, err = mazefile.Load(cfg.Maze, format)
		if err == nil {
			logger.Printf("loaded %s", cfg.Maze)
		}
	case cfg.Generate.Enabled:
		var seed int64
		m, err = generate.New(
			generate.WithSeed(cfg.Generate.Seed),
			generate.WithBraid(cfg.Generate.Braid),
			generate.WithOnSeed(func(s int64) { seed = s }),
		)
		if err == nil {
			logger.Printf("generated maze, seed %d braid %.2f", seed, cfg.Generate.Braid)
		}
	default:
		m = maze.New()
	}
	if err != nil {
		return nil, err
	}

	if goal, _ := cfg.GoalCell(); cfg.Maze == "" || goalSet || goal != maze.DefaultGoal {
		m.SetGoal(goal)
	}
	return m, nil
}

func printRoute(w io.Writer, m *maze.Maze, heading maze.Direction) error {
	if _, err := flood.Goal(m); err != nil {
		return err
	}
	path, err := steer.Route(m, maze.Start, heading, 0)
	if err != nil {
		return err
	}
	cells := make([]string, len(path))
	for i, c := range path {
		cells[i] = c.String()
	}
	turns := steer.Turns(path, heading)
	names := make([]string, len(turns))
	for i, t := range turns {
		names[i] = t.String()
	}
	_, err = fmt.Fprintf(w, "route (%d moves): %s\nturns: %s\n",
		len(path)-1, strings.Join(cells, " "), strings.Join(names, " "))
	return err
}

func runViewer(ctx context.Context, shared *maze.Shared, view render.View, logger *log.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	v := screen.NewViewer(s, shared, screen.WithView(view), screen.WithLogger(logger))
	if err = v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
