package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/sarchlab/rfsim/regfile"
)

// ErrMalformed is returned for a vector line that cannot be decoded.
var ErrMalformed = errors.New("malformed vector")

// Vector is one cycle of stimulus with optional expected outputs.
type Vector struct {
	// Line is the 1-based source line, zero for generated vectors.
	Line int

	Inputs   regfile.Inputs
	Expected *regfile.Outputs
}

// Inputs extracts the stimulus of every vector, in order.
func Inputs(vs []Vector) []regfile.Inputs {
	ins := make([]regfile.Inputs, len(vs))
	for i, v := range vs {
		ins[i] = v.Inputs
	}

	return ins
}

// cleanHex strips an optional 0x prefix and _ separators. It reports false
// unless only hex digits remain.
func cleanHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.ReplaceAll(s, "_", "")

	if s == "" {
		return "", false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}

	return s, true
}

func parsePacked(s string) (regfile.Inputs, error) {
	digits, ok := cleanHex(s)
	if !ok {
		return regfile.Inputs{}, fmt.Errorf("%w: bad input word %q", ErrMalformed, s)
	}

	b, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return regfile.Inputs{}, fmt.Errorf("%w: bad input word %q", ErrMalformed, s)
	}

	x, overflow := uint256.FromBig(b)
	if overflow || x.BitLen() > PackedBits {
		return regfile.Inputs{}, fmt.Errorf("%w: input word %q exceeds %d bits",
			ErrMalformed, s, PackedBits)
	}

	return Unpack(x), nil
}

func parseDWord(s string) (regfile.DWord, error) {
	digits, ok := cleanHex(s)
	if !ok {
		return 0, fmt.Errorf("%w: bad output word %q", ErrMalformed, s)
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad output word %q", ErrMalformed, s)
	}

	if v>>regfile.DWordBits != 0 {
		return 0, fmt.Errorf("%w: output word %q exceeds %d bits",
			ErrMalformed, s, regfile.DWordBits)
	}

	return regfile.DWord(v), nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

func parseLine(line string) (Vector, error) {
	fields := strings.Fields(line)

	var v Vector
	switch len(fields) {
	case 1, 3:
	default:
		return v, fmt.Errorf("%w: want 1 or 3 fields, got %d", ErrMalformed, len(fields))
	}

	in, err := parsePacked(fields[0])
	if err != nil {
		return v, err
	}
	v.Inputs = in

	if len(fields) == 3 {
		d0, err := parseDWord(fields[1])
		if err != nil {
			return v, err
		}
		d1, err := parseDWord(fields[2])
		if err != nil {
			return v, err
		}
		v.Expected = &regfile.Outputs{Dout0: d0, Dout1: d1}
	}

	return v, nil
}

// Parse reads a vector file.
func Parse(r io.Reader) ([]Vector, error) {
	var vs []Vector

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		v.Line = lineNo
		vs = append(vs, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}

	return vs, nil
}

// FormatInputs renders a packed input word as 18 hex digits.
func FormatInputs(in regfile.Inputs) string {
	return fmt.Sprintf("%018x", Pack(in).ToBig())
}

// FormatDWord renders a port value as 14 hex digits.
func FormatDWord(d regfile.DWord) string {
	return fmt.Sprintf("%014x", uint64(d))
}

// Write emits vectors in the format accepted by Parse.
func Write(w io.Writer, vs []Vector) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "# inputs(72b) dout0(56b) dout1(56b)"); err != nil {
		return err
	}

	for _, v := range vs {
		line := FormatInputs(v.Inputs)
		if v.Expected != nil {
			line += " " + FormatDWord(v.Expected.Dout0) +
				" " + FormatDWord(v.Expected.Dout1)
		}

		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
