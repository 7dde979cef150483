package braillecam

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// recordingTerminal notes cursor operations instead of writing ANSI.
type recordingTerminal struct {
	resets []int
	shown  []bool
}

func (t *recordingTerminal) ResetCursor(rows int) {
	t.resets = append(t.resets, rows)
}

func (t *recordingTerminal) ShowCursor(show bool) {
	t.shown = append(t.shown, show)
}

var _ = Describe("Animator", func() {
	It("renders a still frame fitted to the bounds", func() {
		var out bytes.Buffer
		conv, _ := NewConverter(AlgorithmBayer, DefaultConfig)
		anim := NewAnimator(&out, conv)

		Expect(anim.Render(gradientImage(160, 80), 80, 40)).To(Succeed())
		// 160x80 source fits 80x40 bounds width-limited at 80x20 cells.
		Expect(out.Len()).To(Equal(20 * (80*3 + 1)))
	})

	It("draws every frame until the stream ends and restores the cursor", func() {
		src := newGatedSource(160, 100)
		src.gate <- 1
		src.gate <- 2
		close(src.gate)

		var out bytes.Buffer
		term := &recordingTerminal{}
		conv, _ := NewConverter(AlgorithmFloydSteinberg, DefaultConfig)
		anim := NewAnimator(&out, conv, WithFPS(1000), WithTerminal(term))

		p := NewDirect(src)
		defer p.Close()
		Expect(anim.Animate(p, 80, 25)).To(Succeed())

		// Two frames drawn, each filling the 80x25 bounds exactly.
		Expect(out.Len()).To(Equal(2 * 25 * (80*3 + 1)))
		Expect(term.resets).To(Equal([]int{25, 25}))
		Expect(term.shown).To(Equal([]bool{false, true}))
	})
})
