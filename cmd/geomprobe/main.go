package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/annel0/flatsquares/internal/config"
	"github.com/annel0/flatsquares/internal/logging"
	"github.com/annel0/flatsquares/internal/probe"
	"github.com/annel0/flatsquares/internal/vec"
)

type options struct {
	configPath string
	command    string
	x, y       float64
	width      float64
	height     float64
	targetX    float64
	targetY    float64
	amount     float64
	length     float64
	angle      float64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML config (default: $GEOMPROBE_CONFIG)")
	flag.StringVar(&opts.command, "cmd", "probe", "Command: probe, nearest, lerp, polar")
	flag.Float64Var(&opts.x, "x", 0, "Query X")
	flag.Float64Var(&opts.y, "y", 0, "Query Y")
	flag.Float64Var(&opts.width, "w", 0, "Query width")
	flag.Float64Var(&opts.height, "h", 0, "Query height")
	flag.Float64Var(&opts.targetX, "tx", 0, "Lerp target X")
	flag.Float64Var(&opts.targetY, "ty", 0, "Lerp target Y")
	flag.Float64Var(&opts.amount, "t", 0.5, "Lerp amount")
	flag.Float64Var(&opts.length, "length", 1, "Polar length")
	flag.Float64Var(&opts.angle, "angle", 0, "Polar angle in radians")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Invalid log level: %v", err)
	}
	if err := logging.Init(logging.Options{
		Console:      os.Stderr,
		ConsoleLevel: level,
		File:         cfg.Log.File,
		FileLevel:    level,
		MaxSizeMB:    cfg.Log.MaxSizeMB,
		MaxBackups:   cfg.Log.MaxBackups,
	}); err != nil {
		log.Fatalf("❌ Failed to init logging: %v", err)
	}
	defer logging.CloseLogger()

	if err := run(os.Stdout, cfg, opts); err != nil {
		logging.LogError("%v", err)
		logging.CloseLogger()
		os.Exit(1)
	}
}

func run(out io.Writer, cfg *config.Config, opts options) error {
	point := vec.New(opts.x, opts.y)

	switch opts.command {
	case "probe":
		prober := probe.FromConfig(cfg, logging.GetProbeLogger())
		if err := prober.Validate(); err != nil {
			return err
		}
		q := probe.Query{X: opts.x, Y: opts.y, Width: opts.width, Height: opts.height}
		for _, res := range prober.Run(q) {
			fmt.Fprintf(out, "%-16s center=%v empty=%t contains=%t intersects=%t\n",
				res.Region, res.Center, res.Empty, res.Contains, res.Intersects)
		}

	case "nearest":
		prober := probe.FromConfig(cfg, logging.GetProbeLogger())
		region, dist, ok := prober.Nearest(point)
		if !ok {
			return probe.ErrNoRegions
		}
		fmt.Fprintf(out, "%s %v distance=%g\n", region.Name, region.Rect, dist)

	case "lerp":
		fmt.Fprintln(out, vec.Lerp(point, vec.New(opts.targetX, opts.targetY), opts.amount))

	case "polar":
		fmt.Fprintln(out, vec.Polar(opts.length, opts.angle))

	default:
		return fmt.Errorf("unknown command %q", opts.command)
	}

	return nil
}
