package regfile

// Inputs holds every signal sampled in one step.
type Inputs struct {
	// Reset clears all cells. It wins over a write in the same step.
	Reset bool

	// WriteEnable commits DataIn at the end of the step.
	WriteEnable bool
	// WriteSIMD stores both halves of DataIn into Dest and Dest+1.
	WriteSIMD bool
	// Dest is the write address.
	Dest Addr
	// DataIn is the write value. A non-SIMD write uses bits 55:28 only.
	DataIn DWord

	// ReadSIMD is shared by both read ports.
	ReadSIMD bool
	Rs0      Addr
	Rs1      Addr
}

// Masked returns a copy of in with every field truncated to its width.
func (in Inputs) Masked() Inputs {
	in.Dest = in.Dest.Masked()
	in.DataIn = in.DataIn.Masked()
	in.Rs0 = in.Rs0.Masked()
	in.Rs1 = in.Rs1.Masked()

	return in
}

// Outputs holds the two read port values of one step.
type Outputs struct {
	Dout0 DWord
	Dout1 DWord
}

// RegFile is the storage array. The zero value is a reset register file.
type RegFile struct {
	cells [NumCells]Word
}

// New creates a register file with every cell cleared.
func New() *RegFile {
	return &RegFile{}
}

// Reset clears every cell.
func (r *RegFile) Reset() {
	for i := range r.cells {
		r.cells[i] = 0
	}
}

// Cell returns the value stored at a.
func (r *RegFile) Cell(a Addr) Word {
	return r.cells[a.Masked()]
}

// Snapshot returns a copy of all cells.
func (r *RegFile) Snapshot() [NumCells]Word {
	return r.cells
}

// Read evaluates one read port against the current state.
// In SIMD mode the low half comes from the wraparound neighbour of rs,
// otherwise it is zero.
func (r *RegFile) Read(rs Addr, simd bool) DWord {
	rs = rs.Masked()

	if simd {
		return Join(r.cells[rs], r.cells[rs.Next()])
	}

	return Join(r.cells[rs], 0)
}

// Write commits data immediately. A SIMD write stores the high half at
// dest and the low half at dest+1 (mod 16); a non-SIMD write stores only
// the high half and leaves the neighbour untouched.
func (r *RegFile) Write(dest Addr, data DWord, simd bool) {
	dest = dest.Masked()
	data = data.Masked()

	r.cells[dest] = data.Hi()
	if simd {
		r.cells[dest.Next()] = data.Lo()
	}
}

// Step evaluates one clock cycle. Reset is asynchronous: it clears the
// cells before the read ports sample them and suppresses any write.
// Otherwise both ports sample the state as it was on entry and the write
// commits for the next step.
func (r *RegFile) Step(in Inputs) Outputs {
	in = in.Masked()

	if in.Reset {
		r.Reset()
	}

	out := Outputs{
		Dout0: r.Read(in.Rs0, in.ReadSIMD),
		Dout1: r.Read(in.Rs1, in.ReadSIMD),
	}

	if !in.Reset && in.WriteEnable {
		r.Write(in.Dest, in.DataIn, in.WriteSIMD)
	}

	return out
}
