package clocked

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/rfsim/timing/core"
)

// Builder constructs a Comp.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	core   *core.Core
}

// MakeBuilder returns a Builder running at 1 GHz.
func MakeBuilder() Builder {
	return Builder{freq: 1 * sim.GHz}
}

// WithEngine sets the event engine that drives the component.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithCore makes the component drive an existing core.
func (b Builder) WithCore(c *core.Core) Builder {
	b.core = c
	return b
}

// Build creates the component. An engine must have been set.
func (b Builder) Build(name string) *Comp {
	if b.engine == nil {
		panic("clocked: engine is not set")
	}

	c := &Comp{
		engine: b.engine,
		core:   b.core,
	}
	if c.core == nil {
		c.core = core.NewCore()
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
