package shade_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractanim/internal/anim"
	"github.com/san-kum/fractanim/internal/fractal"
	"github.com/san-kum/fractanim/internal/shade"
)

var _ = DescribeTable("Intensity",
	func(v, checkIters, norm int, want uint8, drawn bool) {
		level, ok := shade.Intensity(v, checkIters, norm)
		Expect(ok).To(Equal(drawn))
		Expect(level).To(Equal(want))
	},
	Entry("zero is skipped", 0, 50, 100, uint8(0), false),
	Entry("below threshold", 20, 50, 100, uint8(51), true),
	Entry("capped at threshold", 90, 50, 100, uint8(127), true),
	Entry("in-set at full budget", 100, 100, 100, uint8(255), true),
	Entry("current mode saturates at threshold", 90, 50, 50, uint8(255), true),
	Entry("threshold one", 7, 1, 100, uint8(2), true),
)

var _ = Describe("Effective", func() {
	It("never exceeds the threshold or the grid value", func() {
		for v := 0; v <= 100; v++ {
			for check := 1; check <= 100; check++ {
				e := shade.Effective(v, check)
				Expect(e).To(BeNumerically("<=", check))
				Expect(e).To(BeNumerically("<=", v))
			}
		}
	})
})

var _ = Describe("Norm", func() {
	It("uses the budget in max mode", func() {
		Expect(shade.Norm(anim.ModeMax, 100, 30)).To(Equal(100))
	})

	It("uses the threshold in current mode", func() {
		Expect(shade.Norm(anim.ModeCurrent, 100, 30)).To(Equal(30))
	})
})

var _ = Describe("Frame", func() {
	var (
		grid  *fractal.Grid
		frame *shade.Frame
	)

	BeforeEach(func() {
		var err error
		grid, err = fractal.Compute(fractal.Plane{Width: 41, Height: 41, XRange: 2, YRange: 2}, 100)
		Expect(err).NotTo(HaveOccurred())
		frame = shade.NewFrame(grid.Width(), grid.Height())
	})

	It("starts black", func() {
		for _, c := range frame.Pix {
			Expect(c).To(Equal(shade.Black))
		}
	})

	It("leaves escaped-at-zero pixels black", func() {
		Expect(grid.At(0, 0)).To(BeZero())
		Expect(frame.Render(grid, 100, anim.ModeMax)).To(Succeed())
		Expect(frame.At(0, 0)).To(Equal(shade.Black))
	})

	It("paints the center white at full threshold", func() {
		Expect(frame.Render(grid, 100, anim.ModeMax)).To(Succeed())
		Expect(frame.At(20, 20)).To(Equal(shade.Gray(255)))
	})

	It("is vertically symmetric", func() {
		Expect(frame.Render(grid, 37, anim.ModeCurrent)).To(Succeed())
		for row := 0; row < frame.Height; row++ {
			for col := 0; col < frame.Width; col++ {
				Expect(frame.At(row, col)).To(Equal(frame.At(frame.Height-1-row, col)))
			}
		}
	})

	It("brightens in current mode without touching the grid", func() {
		before := grid.Histogram()

		Expect(frame.Render(grid, 10, anim.ModeMax)).To(Succeed())
		dim := frame.At(20, 20)
		Expect(frame.Render(grid, 10, anim.ModeCurrent)).To(Succeed())
		bright := frame.At(20, 20)

		Expect(dim).To(Equal(shade.Gray(25)))
		Expect(bright).To(Equal(shade.Gray(255)))
		Expect(grid.Histogram()).To(Equal(before))
	})

	It("rejects a mismatched grid", func() {
		other := shade.NewFrame(3, 3)
		Expect(other.Render(grid, 10, anim.ModeMax)).NotTo(Succeed())
	})
})

var _ = Describe("Overlay", func() {
	It("prints the hint and the elapsed seconds", func() {
		Expect(shade.Overlay('T', 1.5)).To(Equal("Toggle coloring mode: T\nAnimation time: 1.500000"))
	})
})
