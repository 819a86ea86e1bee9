package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractanim/internal/anim"
)

var _ = Describe("Controller", func() {
	var ctl *anim.Controller

	BeforeEach(func() {
		ctl = anim.NewController(anim.ModeMax, 'T')
	})

	It("flips the mode on the toggle key", func() {
		ctl.Handle(anim.KeyPress{Key: 'T'})
		Expect(ctl.Mode).To(Equal(anim.ModeCurrent))
		ctl.Handle(anim.KeyPress{Key: 't'})
		Expect(ctl.Mode).To(Equal(anim.ModeMax))
	})

	It("ignores other keys", func() {
		ctl.Handle(anim.KeyPress{Key: 'x'})
		Expect(ctl.Mode).To(Equal(anim.ModeMax))
		Expect(ctl.Closed).To(BeFalse())
	})

	It("stops on close", func() {
		running := ctl.HandleAll([]anim.Event{anim.KeyPress{Key: 'T'}, anim.Close{}})
		Expect(running).To(BeFalse())
		Expect(ctl.Closed).To(BeTrue())
		Expect(ctl.Mode).To(Equal(anim.ModeCurrent))
	})

	It("ignores a nil event", func() {
		ctl.Handle(nil)
		Expect(ctl.Mode).To(Equal(anim.ModeMax))
		Expect(ctl.Closed).To(BeFalse())
	})

	It("keeps running with no events", func() {
		Expect(ctl.HandleAll(nil)).To(BeTrue())
	})
})

var _ = Describe("Mode", func() {
	It("round-trips through its name", func() {
		for _, m := range []anim.Mode{anim.ModeMax, anim.ModeCurrent} {
			parsed, err := anim.ParseMode(m.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(m))
		}
	})

	It("defaults an empty name to max", func() {
		m, err := anim.ParseMode("")
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(anim.ModeMax))
	})

	It("rejects unknown names", func() {
		_, err := anim.ParseMode("rainbow")
		Expect(err).To(MatchError(anim.ErrUnknownMode))
	})
})
