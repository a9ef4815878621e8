package bench

import (
	"fmt"

	"github.com/sarchlab/rfsim/regfile"
)

// Mismatch records a cycle whose outputs differ from the expected values.
type Mismatch struct {
	Index    int
	Line     int
	Inputs   regfile.Inputs
	Expected regfile.Outputs
	Got      regfile.Outputs
}

func (m Mismatch) String() string {
	return fmt.Sprintf("cycle %d (line %d): expected %s %s, got %s %s",
		m.Index, m.Line,
		FormatDWord(m.Expected.Dout0), FormatDWord(m.Expected.Dout1),
		FormatDWord(m.Got.Dout0), FormatDWord(m.Got.Dout1))
}

// Report summarises a replay.
type Report struct {
	// Cycles is the number of evaluated cycles.
	Cycles int
	// Checked is the number of cycles that carried expected outputs.
	Checked int
	// Mismatches lists every failed check.
	Mismatches []Mismatch
}

// Passed reports whether every checked cycle matched.
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0
}

// Check compares outs against the expectations in vs. With stopOnFirst set
// the comparison ends at the first mismatch.
func Check(vs []Vector, outs []regfile.Outputs, stopOnFirst bool) (Report, error) {
	if len(outs) != len(vs) {
		return Report{}, fmt.Errorf("got %d outputs for %d vectors", len(outs), len(vs))
	}

	r := Report{Cycles: len(vs)}
	for i, v := range vs {
		if v.Expected == nil {
			continue
		}

		r.Checked++
		if outs[i] == *v.Expected {
			continue
		}

		r.Mismatches = append(r.Mismatches, Mismatch{
			Index:    i,
			Line:     v.Line,
			Inputs:   v.Inputs,
			Expected: *v.Expected,
			Got:      outs[i],
		})
		if stopOnFirst {
			break
		}
	}

	return r, nil
}

// CycleRunner evaluates a sequence of cycles.
type CycleRunner interface {
	RunCycles(ins []regfile.Inputs) []regfile.Outputs
}

// Run replays vs on runner and checks the outputs.
func Run(runner CycleRunner, vs []Vector, stopOnFirst bool) (Report, []regfile.Outputs, error) {
	outs := runner.RunCycles(Inputs(vs))

	r, err := Check(vs, outs, stopOnFirst)
	if err != nil {
		return Report{}, nil, err
	}

	return r, outs, nil
}
