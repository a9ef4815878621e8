// Package bench replays and generates test vectors for the register file.
//
// A vector file holds one cycle per line: the packed input signals as hex,
// optionally followed by the expected read port values.
//
//	80_0_0_00000000000000                                # reset
//	40_0_0_abcdef12345678 00000000000000 00000000000000  # write cell 0
//	00_0_0_00000000000000 abcdef10000000 abcdef10000000  # read cell 0
//
// Packed input layout (72 bits):
//
//	71     reset
//	70     write enable
//	69     write SIMD
//	68     read SIMD
//	67:64  destination address
//	63:60  read address 0
//	59:56  read address 1
//	55:0   write data
package bench

import (
	"github.com/holiman/uint256"

	"github.com/sarchlab/rfsim/regfile"
)

// PackedBits is the width of a packed input word.
const PackedBits = 72

const (
	bitReset    = 7
	bitWrite    = 6
	bitWrSIMD   = 5
	bitRdSIMD   = 4
	shiftRs0    = 60
	shiftRs1    = 56
	upperOffset = 64
)

func flag(b bool, pos uint) uint64 {
	if b {
		return 1 << pos
	}
	return 0
}

// Pack encodes one cycle of input signals. Fields are masked to width.
func Pack(in regfile.Inputs) *uint256.Int {
	in = in.Masked()

	upper := flag(in.Reset, bitReset) |
		flag(in.WriteEnable, bitWrite) |
		flag(in.WriteSIMD, bitWrSIMD) |
		flag(in.ReadSIMD, bitRdSIMD) |
		uint64(in.Dest)
	lower := uint64(in.Rs0)<<shiftRs0 |
		uint64(in.Rs1)<<shiftRs1 |
		uint64(in.DataIn)

	x := uint256.NewInt(upper)
	x.Lsh(x, upperOffset)

	return x.Or(x, uint256.NewInt(lower))
}

// Unpack decodes a packed input word. Bits above 71 are ignored.
func Unpack(x *uint256.Int) regfile.Inputs {
	lower := x.Uint64()
	upper := new(uint256.Int).Rsh(x, upperOffset).Uint64()

	return regfile.Inputs{
		Reset:       upper&(1<<bitReset) != 0,
		WriteEnable: upper&(1<<bitWrite) != 0,
		WriteSIMD:   upper&(1<<bitWrSIMD) != 0,
		ReadSIMD:    upper&(1<<bitRdSIMD) != 0,
		Dest:        regfile.MaskAddr(upper),
		Rs0:         regfile.MaskAddr(lower >> shiftRs0),
		Rs1:         regfile.MaskAddr(lower >> shiftRs1),
		DataIn:      regfile.MaskDWord(lower),
	}
}
