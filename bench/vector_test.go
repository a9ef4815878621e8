package bench_test

import (
	"bytes"
	"math/rand/v2"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rfsim/bench"
	"github.com/sarchlab/rfsim/regfile"
	"github.com/sarchlab/rfsim/timing/core"
)

const scenario = `
# reset, write cell 0, read it back
80_0_0_00000000000000
40_0_0_FFFFFFF0000000 00000000000000 00000000000000 // write
0x00_0_0_00000000000000 fffffff0000000 fffffff0000000
`

var _ = Describe("Vectors", func() {
	Describe("Parse", func() {
		It("should parse inputs, expectations and comments", func() {
			vs, err := bench.Parse(strings.NewReader(scenario))
			Expect(err).NotTo(HaveOccurred())
			Expect(vs).To(HaveLen(3))

			Expect(vs[0].Line).To(Equal(3))
			Expect(vs[0].Inputs.Reset).To(BeTrue())
			Expect(vs[0].Expected).To(BeNil())

			Expect(vs[1].Inputs.WriteEnable).To(BeTrue())
			Expect(vs[1].Inputs.DataIn.Hi()).To(Equal(regfile.Word(0xFFFFFFF)))

			Expect(*vs[2].Expected).To(Equal(regfile.Outputs{
				Dout0: 0xFFFFFFF0000000,
				Dout1: 0xFFFFFFF0000000,
			}))
		})

		It("should reject a wrong field count", func() {
			_, err := bench.Parse(strings.NewReader("00 01\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))
			Expect(err.Error()).To(ContainSubstring("line 1"))
		})

		It("should reject non-hex input", func() {
			_, err := bench.Parse(strings.NewReader("\nzz\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))
			Expect(err.Error()).To(ContainSubstring("line 2"))
		})

		It("should reject signed words", func() {
			_, err := bench.Parse(strings.NewReader("+80_0_0_00000000000000\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))

			_, err = bench.Parse(strings.NewReader("0 -1 0\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))

			_, err = bench.Parse(strings.NewReader("0x 0 0\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))
		})

		It("should reject input words wider than 72 bits", func() {
			_, err := bench.Parse(strings.NewReader("1000000000000000000\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))
		})

		It("should reject output words wider than 56 bits", func() {
			_, err := bench.Parse(strings.NewReader("0 100000000000000 0\n"))
			Expect(err).To(MatchError(bench.ErrMalformed))
		})
	})

	Describe("Write", func() {
		It("should produce a file Parse accepts", func() {
			vs := bench.Generate(rand.New(rand.NewPCG(1, 2)), 20)

			var buf bytes.Buffer
			Expect(bench.Write(&buf, vs)).To(Succeed())

			parsed, err := bench.Parse(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(HaveLen(len(vs)))
			for i := range vs {
				Expect(parsed[i].Inputs).To(Equal(vs[i].Inputs))
				Expect(*parsed[i].Expected).To(Equal(*vs[i].Expected))
			}
		})
	})

	Describe("Run", func() {
		It("should pass the concrete scenario", func() {
			vs, err := bench.Parse(strings.NewReader(scenario))
			Expect(err).NotTo(HaveOccurred())

			r, outs, err := bench.Run(core.NewCore(), vs, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(outs).To(HaveLen(3))
			Expect(r.Cycles).To(Equal(3))
			Expect(r.Checked).To(Equal(2))
			Expect(r.Passed()).To(BeTrue())
		})

		It("should agree with the reference model on random stimulus", func() {
			vs := bench.Generate(rand.New(rand.NewPCG(42, 7)), 2000)

			r, _, err := bench.Run(core.NewCore(), vs, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Checked).To(Equal(2000))
			Expect(r.Mismatches).To(BeEmpty())
		})

		It("should expect cleared outputs in reset cycles", func() {
			vs := bench.Generate(rand.New(rand.NewPCG(3, 4)), 500)

			resets := 0
			for _, v := range vs {
				if v.Inputs.Reset {
					resets++
					Expect(*v.Expected).To(Equal(regfile.Outputs{}))
				}
			}
			Expect(resets).To(BeNumerically(">", 1))
		})

		It("should report mismatches", func() {
			bad := regfile.Outputs{Dout0: 1}
			vs := []bench.Vector{
				{Line: 1, Expected: &bad},
				{Line: 2, Expected: &bad},
			}

			r, _, err := bench.Run(core.NewCore(), vs, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Passed()).To(BeFalse())
			Expect(r.Mismatches).To(HaveLen(2))
			Expect(r.Mismatches[0].String()).To(ContainSubstring("line 1"))

			r, _, err = bench.Run(core.NewCore(), vs, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Mismatches).To(HaveLen(1))
		})

		It("should reject an output count mismatch", func() {
			_, err := bench.Check(make([]bench.Vector, 2), nil, false)
			Expect(err).To(HaveOccurred())
		})
	})
})
