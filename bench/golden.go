package bench

import (
	"math/rand/v2"

	"github.com/sarchlab/rfsim/regfile"
)

// golden is a bit-slice reference model of the register file, independent
// of package regfile.
type golden struct {
	rf [16]uint64
}

// bits returns v[hi:lo].
func bits(v uint64, hi, lo uint) uint64 {
	return (v >> lo) & ((1 << (hi - lo + 1)) - 1)
}

func (g *golden) eval(in regfile.Inputs) regfile.Outputs {
	if in.Reset {
		g.rf = [16]uint64{}
	}

	rs0 := bits(uint64(in.Rs0), 3, 0)
	rs1 := bits(uint64(in.Rs1), 3, 0)
	dest := bits(uint64(in.Dest), 3, 0)
	data := uint64(in.DataIn)

	port := func(rs uint64) uint64 {
		v := g.rf[rs] << 28
		if in.ReadSIMD {
			v |= g.rf[bits(rs+1, 3, 0)]
		}
		return v
	}
	out := regfile.Outputs{
		Dout0: regfile.DWord(port(rs0)),
		Dout1: regfile.DWord(port(rs1)),
	}

	if !in.Reset && in.WriteEnable {
		g.rf[dest] = bits(data, 55, 28)
		if in.WriteSIMD {
			g.rf[bits(dest+1, 3, 0)] = bits(data, 27, 0)
		}
	}

	return out
}

// Generate produces n random cycles, starting with a reset, each carrying
// the outputs of the reference model.
func Generate(r *rand.Rand, n int) []Vector {
	var g golden
	vs := make([]Vector, 0, n)

	for i := 0; i < n; i++ {
		in := regfile.Inputs{
			Reset:       i == 0 || r.IntN(32) == 0,
			WriteEnable: r.IntN(2) == 0,
			WriteSIMD:   r.IntN(2) == 0,
			Dest:        regfile.Addr(r.IntN(regfile.NumCells)),
			DataIn:      regfile.MaskDWord(r.Uint64()),
			ReadSIMD:    r.IntN(2) == 0,
			Rs0:         regfile.Addr(r.IntN(regfile.NumCells)),
			Rs1:         regfile.Addr(r.IntN(regfile.NumCells)),
		}

		out := g.eval(in)
		vs = append(vs, Vector{Inputs: in, Expected: &out})
	}

	return vs
}
