package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/models/model"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
)

type Options struct {
	Games      int
	Size       int
	Target     int
	Preset     string
	Directions string
	Depth      int
	Branching  int
	Workers    int
	Parallel   model.Switch
	Seed       int64
	Out        string
	Pprof      string
}

func parseOptions(args []string, output io.Writer) (o Options, err error) {
	fs := flag.NewFlagSet("engine", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&o.Games, "n", 16, "number of self-play games")
	fs.IntVar(&o.Size, "size", game.DefaultSize, "board size")
	fs.IntVar(&o.Target, "target", game.DefaultTargetRooms, "target rooms")
	fs.StringVar(&o.Preset, "preset", string(game.OrthogonalDiagonals), "orthogonal, orthogonal-diagonals or custom")
	fs.StringVar(&o.Directions, "dirs", "", `custom directions, e.g. "1,0;0,1;1,2"`)
	fs.IntVar(&o.Depth, "depth", assess.DefaultDepth, "search depth")
	fs.IntVar(&o.Branching, "branching", assess.MaxBranchingFactor, "candidate moves searched per node, 0 for all")
	fs.IntVar(&o.Workers, "workers", runtime.NumCPU(), "games played at once")
	fs.Var(&o.Parallel, "parallel", "ON to split each root search across CPUs")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed, 0 for time based")
	fs.StringVar(&o.Out, "o", "", "write one JSON report per game to this file")
	fs.StringVar(&o.Pprof, "pprof", "", "serve pprof on this address")

	if err = fs.Parse(args); err != nil {
		return
	}

	if o.Games < 1 {
		return o, fmt.Errorf("-n must be positive, got %d", o.Games)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Depth < 1 {
		return o, fmt.Errorf("-depth must be positive, got %d", o.Depth)
	}
	if o.Branching < 0 {
		return o, fmt.Errorf("-branching must not be negative, got %d", o.Branching)
	}

	_, err = o.GameConfig()
	return
}

func (o Options) GameConfig() (game.Config, error) {
	var c game.Config
	if game.Preset(o.Preset) == game.Custom || o.Directions != "" {
		dirs, err := game.ParseDirections(o.Directions)
		if err != nil {
			return c, err
		}
		c = game.NewConfig(o.Size, o.Target, dirs)
	} else {
		dirs, found := game.PresetDirections(game.Preset(o.Preset))
		if !found {
			return c, fmt.Errorf("unknown preset %q", o.Preset)
		}
		c = game.NewConfig(o.Size, o.Target, dirs)
	}

	return c, session.ValidateConfig(c)
}
