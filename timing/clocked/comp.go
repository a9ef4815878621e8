// Package clocked runs the register file as an Akita ticking component.
// Every tick consumes one queued set of input signals.
package clocked

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/rfsim/regfile"
	"github.com/sarchlab/rfsim/timing/core"
)

// Comp is a register file clocked by an Akita engine.
type Comp struct {
	*sim.TickingComponent

	engine  sim.Engine
	core    *core.Core
	pending []regfile.Inputs
	results []regfile.Outputs
}

// Core returns the driven core.
func (c *Comp) Core() *core.Core {
	return c.core
}

// Feed queues stimulus, one entry per cycle, and wakes the component.
func (c *Comp) Feed(ins ...regfile.Inputs) {
	if len(ins) == 0 {
		return
	}

	c.pending = append(c.pending, ins...)
	c.TickLater()
}

// Pending returns the number of queued cycles not yet evaluated.
func (c *Comp) Pending() int {
	return len(c.pending)
}

// Results returns the outputs of every evaluated cycle, in order.
func (c *Comp) Results() []regfile.Outputs {
	return c.results
}

// Tick evaluates the next queued cycle. It reports no progress once the
// queue is drained so the engine can go idle.
func (c *Comp) Tick() bool {
	if len(c.pending) == 0 {
		return false
	}

	in := c.pending[0]
	c.pending = c.pending[1:]
	c.results = append(c.results, c.core.Tick(in))

	return true
}

// Run feeds ins and runs the engine until the queue is drained.
// It returns the outputs of exactly these cycles.
func (c *Comp) Run(ins []regfile.Inputs) ([]regfile.Outputs, error) {
	start := len(c.results)
	c.Feed(ins...)

	if err := c.engine.Run(); err != nil {
		return nil, fmt.Errorf("%s: engine run failed: %w", c.Name(), err)
	}

	if len(c.pending) != 0 {
		return nil, fmt.Errorf("%s: %d cycles left unevaluated", c.Name(), len(c.pending))
	}

	return c.results[start:], nil
}
