// Package core provides the cycle-level register file model.
// It wraps the register file storage to provide a clocked interface with
// statistics, the way a pipeline's register stage would drive it.
package core

import (
	"github.com/sarchlab/rfsim/regfile"
)

// Stats holds activity statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Resets is the number of cycles with reset asserted.
	Resets uint64
	// Writes is the number of committed writes (reset cycles excluded).
	Writes uint64
	// SIMDWrites counts the committed writes that were SIMD.
	SIMDWrites uint64
	// SIMDReads is the number of cycles with the read ports in SIMD mode.
	SIMDReads uint64
}

// Tracer observes every evaluated cycle.
type Tracer func(cycle uint64, in regfile.Inputs, out regfile.Outputs)

// Option configures a Core.
type Option func(*Core)

// WithTracer installs a per-cycle observer.
func WithTracer(t Tracer) Option {
	return func(c *Core) {
		c.tracer = t
	}
}

// WithRegFile makes the core drive an existing register file.
func WithRegFile(rf *regfile.RegFile) Option {
	return func(c *Core) {
		c.regFile = rf
	}
}

// Core advances a register file one cycle at a time.
type Core struct {
	regFile *regfile.RegFile
	tracer  Tracer
	stats   Stats
}

// NewCore creates a Core over a freshly reset register file.
func NewCore(opts ...Option) *Core {
	c := &Core{}
	for _, opt := range opts {
		opt(c)
	}

	if c.regFile == nil {
		c.regFile = regfile.New()
	}

	return c
}

// RegFile returns the driven register file.
func (c *Core) RegFile() *regfile.RegFile {
	return c.regFile
}

// Tick evaluates one cycle and returns both read port values.
func (c *Core) Tick(in regfile.Inputs) regfile.Outputs {
	in = in.Masked()
	out := c.regFile.Step(in)

	c.stats.Cycles++
	switch {
	case in.Reset:
		c.stats.Resets++
	case in.WriteEnable:
		c.stats.Writes++
		if in.WriteSIMD {
			c.stats.SIMDWrites++
		}
	}
	if in.ReadSIMD {
		c.stats.SIMDReads++
	}

	if c.tracer != nil {
		c.tracer(c.stats.Cycles, in, out)
	}

	return out
}

// RunCycles evaluates each input in order and returns the outputs.
func (c *Core) RunCycles(ins []regfile.Inputs) []regfile.Outputs {
	outs := make([]regfile.Outputs, 0, len(ins))
	for _, in := range ins {
		outs = append(outs, c.Tick(in))
	}

	return outs
}

// Stats returns activity statistics for the core.
func (c *Core) Stats() Stats {
	return c.stats
}

// Reset clears the register file and the statistics.
func (c *Core) Reset() {
	c.regFile.Reset()
	c.stats = Stats{}
}
