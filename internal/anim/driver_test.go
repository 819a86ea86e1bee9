package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractanim/internal/anim"
)

var _ = Describe("Driver", func() {
	var d *anim.Driver

	BeforeEach(func() {
		d = anim.NewDriver(20, 100)
	})

	It("starts at threshold 1", func() {
		Expect(d.Elapsed()).To(BeZero())
		Expect(d.CheckIters()).To(Equal(1))
	})

	It("grows linearly across the period", func() {
		d.Advance(10)
		Expect(d.CheckIters()).To(Equal(50))
		d.Advance(9.9)
		Expect(d.CheckIters()).To(Equal(99))
	})

	It("reaches the budget exactly at the period and keeps it", func() {
		d.Advance(20)
		Expect(d.Elapsed()).To(BeNumerically("==", 20))
		Expect(d.CheckIters()).To(Equal(100))
	})

	It("wraps to zero once the period is exceeded", func() {
		d.Advance(19.5)
		d.Advance(1)
		Expect(d.Elapsed()).To(BeZero())
		Expect(d.CheckIters()).To(Equal(1))
	})

	It("never leaves [1, MaxIters] while frames accumulate", func() {
		for i := 0; i < 5000; i++ {
			d.Advance(1.0 / 60)
			Expect(d.CheckIters()).To(SatisfyAll(
				BeNumerically(">=", 1),
				BeNumerically("<=", 100),
			))
		}
	})

	It("is monotone within one period", func() {
		prev := d.CheckIters()
		for d.Elapsed() < 19.9 {
			d.Advance(0.05)
			if d.Elapsed() == 0 {
				break
			}
			Expect(d.CheckIters()).To(BeNumerically(">=", prev))
			prev = d.CheckIters()
		}
	})
})

var _ = DescribeTable("ThresholdAt",
	func(elapsed, period float64, maxIters, want int) {
		Expect(anim.ThresholdAt(elapsed, period, maxIters)).To(Equal(want))
	},
	Entry("zero elapsed", 0.0, 20.0, 100, 1),
	Entry("half period", 10.0, 20.0, 100, 50),
	Entry("full period", 20.0, 20.0, 100, 100),
	Entry("past period clamps", 25.0, 20.0, 100, 100),
	Entry("negative clamps", -1.0, 20.0, 100, 1),
	Entry("single iteration budget", 10.0, 20.0, 1, 1),
	Entry("zero period", 10.0, 0.0, 100, 1),
)
