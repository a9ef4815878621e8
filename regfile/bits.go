// Package regfile provides a 16-entry, 28-bit register file with two read
// ports, one write port and a SIMD mode pairing adjacent entries.
package regfile

// Field widths of the register file signals.
const (
	AddrBits  = 4
	WordBits  = 28
	DWordBits = 2 * WordBits

	// NumCells is the number of addressable entries.
	NumCells = 1 << AddrBits

	addrMask  = NumCells - 1
	wordMask  = (1 << WordBits) - 1
	dwordMask = (1 << DWordBits) - 1
)

// Addr selects one of the 16 cells. Only the low 4 bits are significant.
type Addr uint8

// Word is the 28-bit content of a single cell.
type Word uint32

// DWord is a 56-bit port value: high half in bits 55:28, low half in 27:0.
type DWord uint64

// MaskAddr truncates v to 4 bits.
func MaskAddr(v uint64) Addr {
	return Addr(v & addrMask)
}

// MaskWord truncates v to 28 bits.
func MaskWord(v uint64) Word {
	return Word(v & wordMask)
}

// MaskDWord truncates v to 56 bits.
func MaskDWord(v uint64) DWord {
	return DWord(v & dwordMask)
}

// Masked returns a with the bits above the address width cleared.
func (a Addr) Masked() Addr {
	return a & addrMask
}

// Next returns the SIMD pair partner of a. Address 15 pairs with 0.
func (a Addr) Next() Addr {
	return (a + 1) & addrMask
}

// Masked returns w truncated to 28 bits.
func (w Word) Masked() Word {
	return w & wordMask
}

// Masked returns d truncated to 56 bits.
func (d DWord) Masked() DWord {
	return d & dwordMask
}

// Hi returns bits 55:28.
func (d DWord) Hi() Word {
	return Word((d >> WordBits) & wordMask)
}

// Lo returns bits 27:0.
func (d DWord) Lo() Word {
	return Word(d & wordMask)
}

// Join concatenates hi and lo into a 56-bit value.
func Join(hi, lo Word) DWord {
	return DWord(hi&wordMask)<<WordBits | DWord(lo&wordMask)
}
