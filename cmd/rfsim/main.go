// Package main provides the rfsim command line tool.
// It replays and generates test vectors for the SIMD register file model.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/sarchlab/rfsim/bench"
	"github.com/sarchlab/rfsim/timing/config"
)

var (
	configFlag = &cli.PathFlag{
		Name:  "config",
		Usage: "Path to harness configuration JSON file",
	}
	clockedFlag = &cli.BoolFlag{
		Name:  "clocked",
		Usage: "Drive the register file with the Akita event engine",
	}
	stopFlag = &cli.BoolFlag{
		Name:  "stop-on-mismatch",
		Usage: "Stop checking at the first output mismatch",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "Log level: debug, info, warn, error",
	}
	dumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "Print the final register contents",
	}
	pprofFlag = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "Write a CPU profile to the working directory",
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of cycles to generate",
		Value: 64,
	}
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Random seed",
		Value: 1,
	}
	outFlag = &cli.PathFlag{
		Name:  "out",
		Usage: "Output file, stdout when empty",
	}
)

// loadConfig returns the effective config and the base it was derived
// from, before command line overrides.
func loadConfig(ctx *cli.Context) (cfg, base *config.Config, err error) {
	base = config.DefaultConfig()
	if path := ctx.Path(configFlag.Name); path != "" {
		base, err = config.LoadConfig(path)
		if err != nil {
			return nil, nil, err
		}
	}

	cfg = base.Clone()

	if ctx.IsSet(clockedFlag.Name) {
		cfg.Clocked = ctx.Bool(clockedFlag.Name)
	}
	if ctx.IsSet(stopFlag.Name) {
		cfg.StopOnMismatch = ctx.Bool(stopFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logLevelFlag.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, base, nil
}

// Run replays a vector file.
func Run(ctx *cli.Context) error {
	if ctx.Bool(pprofFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one vector file, got %d arguments", ctx.NArg())
	}

	cfg, base, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	l := Logger(ctx.App.ErrWriter, lvl)
	if *cfg != *base {
		l.Info("flags override config",
			"clocked", cfg.Clocked,
			"stop_on_mismatch", cfg.StopOnMismatch,
			"log_level", cfg.LogLevel)
	}

	path := ctx.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open vectors: %w", err)
	}
	defer f.Close()

	vs, err := bench.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	l.Info("loaded vectors", "path", path, "cycles", len(vs), "clocked", cfg.Clocked)

	r, c, err := replay(ctx.App.Writer, l, cfg, vs)
	if err != nil {
		return err
	}

	if ctx.Bool(dumpFlag.Name) {
		if err := dumpCells(ctx.App.Writer, c.RegFile()); err != nil {
			return err
		}
	}

	if !r.Passed() {
		return cli.Exit(fmt.Sprintf("%d of %d checked cycles mismatched",
			len(r.Mismatches), r.Checked), 1)
	}
	return nil
}

// Gen writes random vectors with reference outputs.
func Gen(ctx *cli.Context) error {
	n := ctx.Int(countFlag.Name)
	if n <= 0 {
		return fmt.Errorf("count must be > 0")
	}

	seed := ctx.Uint64(seedFlag.Name)
	vs := bench.Generate(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), n)

	path := ctx.Path(outFlag.Name)
	if path == "" {
		return bench.Write(ctx.App.Writer, vs)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := bench.Write(f, vs); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rfsim",
		Usage: "SIMD register file simulator",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Replay a vector file and check expected outputs",
				ArgsUsage: "<vectors>",
				Flags: []cli.Flag{
					configFlag, clockedFlag, stopFlag, logLevelFlag, dumpFlag, pprofFlag,
				},
				Action: Run,
			},
			{
				Name:   "gen",
				Usage:  "Generate random vectors with reference outputs",
				Flags:  []cli.Flag{countFlag, seedFlag, outFlag},
				Action: Gen,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
