package regfile_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rfsim/regfile"
)

var _ = Describe("Shared", func() {
	It("should behave like a plain register file", func() {
		s := regfile.NewShared()
		s.Step(regfile.Inputs{WriteEnable: true, WriteSIMD: true, Dest: 15,
			DataIn: regfile.Join(7, 8)})

		out := s.Step(regfile.Inputs{ReadSIMD: true, Rs0: 15})
		Expect(out.Dout0).To(Equal(regfile.Join(7, 8)))

		s.Reset()
		Expect(s.Snapshot()).To(Equal([regfile.NumCells]regfile.Word{}))
	})

	It("should keep SIMD pairs consistent under concurrent steps", func() {
		s := regfile.NewShared()
		var wg sync.WaitGroup

		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(v regfile.Word) {
				defer GinkgoRecover()
				defer wg.Done()
				for i := 0; i < 200; i++ {
					out := s.Step(regfile.Inputs{
						WriteEnable: true,
						WriteSIMD:   true,
						Dest:        4,
						DataIn:      regfile.Join(v, v),
						ReadSIMD:    true,
						Rs0:         4,
					})
					Expect(out.Dout0.Hi()).To(Equal(out.Dout0.Lo()))
				}
			}(regfile.Word(g + 1))
		}

		wg.Wait()
		snap := s.Snapshot()
		Expect(snap[4]).To(Equal(snap[5]))
	})
})
