package main

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/rfsim/bench"
	"github.com/sarchlab/rfsim/regfile"
	"github.com/sarchlab/rfsim/timing/clocked"
	"github.com/sarchlab/rfsim/timing/config"
	"github.com/sarchlab/rfsim/timing/core"
)

// replay evaluates vs, writes the observed outputs to w in vector format
// and checks them against any expectations.
func replay(
	w io.Writer,
	l log.Logger,
	cfg *config.Config,
	vs []bench.Vector,
) (bench.Report, *core.Core, error) {
	c := core.NewCore(core.WithTracer(
		func(cycle uint64, in regfile.Inputs, out regfile.Outputs) {
			l.Debug("cycle",
				"n", cycle,
				"in", bench.FormatInputs(in),
				"dout0", bench.FormatDWord(out.Dout0),
				"dout1", bench.FormatDWord(out.Dout1))
		}))

	var outs []regfile.Outputs
	if cfg.Clocked {
		engine := sim.NewSerialEngine()
		comp := clocked.MakeBuilder().
			WithEngine(engine).
			WithFreq(sim.Freq(cfg.FreqMHz) * sim.MHz).
			WithCore(c).
			Build("RegFile")

		var err error
		outs, err = comp.Run(bench.Inputs(vs))
		if err != nil {
			return bench.Report{}, nil, err
		}
	} else {
		outs = c.RunCycles(bench.Inputs(vs))
	}

	observed := make([]bench.Vector, len(vs))
	for i := range vs {
		observed[i] = bench.Vector{Inputs: vs[i].Inputs, Expected: &outs[i]}
	}
	if err := bench.Write(w, observed); err != nil {
		return bench.Report{}, nil, fmt.Errorf("failed to write outputs: %w", err)
	}

	r, err := bench.Check(vs, outs, cfg.StopOnMismatch)
	if err != nil {
		return bench.Report{}, nil, err
	}

	for _, m := range r.Mismatches {
		l.Error("output mismatch", "cycle", m.Index, "line", m.Line,
			"expected0", bench.FormatDWord(m.Expected.Dout0),
			"expected1", bench.FormatDWord(m.Expected.Dout1),
			"got0", bench.FormatDWord(m.Got.Dout0),
			"got1", bench.FormatDWord(m.Got.Dout1))
	}

	stats := c.Stats()
	l.Info("replay finished",
		"cycles", stats.Cycles,
		"writes", stats.Writes,
		"simd_writes", stats.SIMDWrites,
		"resets", stats.Resets,
		"checked", r.Checked,
		"mismatches", len(r.Mismatches))

	return r, c, nil
}

// dumpCells prints the register contents, one cell per line.
func dumpCells(w io.Writer, rf *regfile.RegFile) error {
	for i, v := range rf.Snapshot() {
		if _, err := fmt.Fprintf(w, "r%02d %07x\n", i, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}
