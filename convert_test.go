package braillecam

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Converters", func() {
	img := gradientImage(64, 48)

	It("emit exactly rows*(cols*3+1) bytes", func() {
		for _, name := range Algorithms {
			conv, err := NewConverter(name, DefaultConfig)
			Expect(err).NotTo(HaveOccurred())
			for _, grid := range [][2]int{{16, 6}, {7, 3}, {1, 1}} {
				cols, rows := grid[0], grid[1]
				out := conv.Convert(img, cols, rows)
				Expect(out).To(HaveLen(rows*(cols*3+1)), name)
			}
		}
	})

	It("produce different output when inverted", func() {
		for _, name := range Algorithms {
			plain, err := NewConverter(name, Config{Threshold: 128})
			Expect(err).NotTo(HaveOccurred())
			inverted, err := NewConverter(name, Config{Threshold: 128, Invert: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(plain.Convert(img, 16, 6)).NotTo(Equal(inverted.Convert(img, 16, 6)), name)
		}
	})

	It("clamp degenerate grids to a single cell", func() {
		conv, _ := NewConverter(AlgorithmBayer, DefaultConfig)
		Expect(conv.Convert(img, 0, -3)).To(HaveLen(1*3 + 1))
	})

	It("rejects unknown algorithm names", func() {
		_, err := NewConverter("ascii", DefaultConfig)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("renderBinary", func() {
	It("treats out-of-range samples as off", func() {
		// A fully-lit 2x4 buffer rendered at two columns: the second
		// cell samples x=2,3 which don't exist, so it stays blank.
		binary := []byte{255, 255, 255, 255, 255, 255, 255, 255}
		out := renderBinary(binary, 2, 4, 2, 1, false)
		full := Pattern(0xFF).AppendUTF8(nil)
		blank := Pattern(0).AppendUTF8(nil)
		Expect(out).To(Equal(append(append(full, blank...), '\n')))
	})

	It("inverts dots with the invert flag", func() {
		binary := make([]byte, 2*4)
		out := renderBinary(binary, 2, 4, 1, 1, true)
		Expect(out).To(Equal(append(Pattern(0xFF).AppendUTF8(nil), '\n')))
	})
})

var _ = Describe("EdgeConverter", func() {
	It("renders a 2x4 alternating stripe image as one glyph", func() {
		img := &Image{
			Data:   []byte{0, 0, 255, 255, 0, 0, 255, 255},
			Width:  2,
			Height: 4,
			Stride: 2,
		}
		conv := NewEdgeConverter(Config{Threshold: 128})
		out := conv.Convert(img, 1, 1)
		Expect(out).To(HaveLen(4))
		// Rows 0 and 3 have one in-bounds vertical neighbor apiece and
		// a mean gradient of 127, just under threshold; the middle rows
		// average 170 and light up.
		Expect(out).To(Equal([]byte{0xE2, 0xA0, 0xB6, '\n'}))
	})

	It("uses the in-bounds neighbor count at borders", func() {
		// A lone white pixel in a 1x2 image: a fixed divide-by-4 would
		// quarter the gradient and miss the threshold.
		img := &Image{Data: []byte{255, 0}, Width: 1, Height: 2, Stride: 1}
		conv := NewEdgeConverter(Config{Threshold: 200})
		Expect(conv.gradientAt(img, 0, 0)).To(Equal(255))
	})
})

var _ = Describe("AtkinsonConverter", func() {
	conv := NewAtkinsonConverter(Config{Threshold: 128})

	It("diffuses six eighths of the quantization error", func() {
		// 136 alone clears the threshold; 15/8ths of the first pixel's
		// negative error pushed right drags it back under.
		img := &Image{Data: []byte{128, 136}, Width: 2, Height: 1, Stride: 2}
		Expect(conv.binarize(img)).To(Equal([]byte{255, 0}))
	})

	It("scatters a uniform mid-gray into the expected pattern", func() {
		Expect(conv.binarize(uniformImage(3, 3, 127))).To(Equal([]byte{
			0, 255, 255,
			255, 0, 0,
			255, 0, 255,
		}))
	})

	It("preserves average brightness on a mid-gray field", func() {
		binary := conv.binarize(uniformImage(16, 16, 127))
		on := 0
		for _, v := range binary {
			if v != 0 {
				on++
			}
		}
		Expect(on).To(Equal(128))
	})
})

var _ = Describe("FloydSteinbergConverter", func() {
	conv := NewFloydSteinbergConverter(Config{Threshold: 128})

	It("pushes seven sixteenths of the error to the right neighbor", func() {
		// 120 is under threshold on its own; 120*7/16 = 52 carried
		// right lifts the neighbor to 172.
		img := &Image{Data: []byte{120, 120}, Width: 2, Height: 1, Stride: 2}
		Expect(conv.binarize(img)).To(Equal([]byte{0, 255}))
	})

	It("scatters a uniform mid-gray into the expected pattern", func() {
		Expect(conv.binarize(uniformImage(3, 2, 127))).To(Equal([]byte{
			0, 255, 0,
			255, 0, 255,
		}))
	})

	It("preserves average brightness on a mid-gray field", func() {
		binary := conv.binarize(uniformImage(16, 16, 127))
		on := 0
		for _, v := range binary {
			if v != 0 {
				on++
			}
		}
		Expect(on).To(Equal(128))
	})
})

var _ = Describe("Threshold matrices", func() {
	It("spreads the bayer matrix across the full range, centered", func() {
		min, max, sum := 255, 0, 0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				v := int(bayerMatrix[y][x])
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += v
			}
		}
		Expect(min).To(BeNumerically("<", 10))
		Expect(max).To(BeNumerically(">", 245))
		Expect(sum / 64).To(BeNumerically("~", 128, 28))
	})

	It("matches the classical 8x8 bayer ordering", func() {
		// First row of the standard index matrix is 0 32 8 40 2 34 10 42.
		Expect(bayerMatrix[0]).To(Equal([8]uint8{2, 130, 34, 162, 10, 138, 42, 170}))
	})

	It("spreads the blue-noise texture across the full range, centered", func() {
		min, max, sum := 255, 0, 0
		for y := 0; y < blueNoiseSize; y++ {
			for x := 0; x < blueNoiseSize; x++ {
				v := int(blueNoiseTexture[y][x])
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += v
			}
		}
		Expect(min).To(BeNumerically("<", 20))
		Expect(max).To(BeNumerically(">", 235))
		mean := sum / (blueNoiseSize * blueNoiseSize)
		Expect(mean).To(BeNumerically(">=", 100))
		Expect(mean).To(BeNumerically("<=", 156))
	})

	It("biases the effective threshold with the configured one", func() {
		dark, _ := NewConverter(AlgorithmBayer, Config{Threshold: 230})
		light, _ := NewConverter(AlgorithmBayer, Config{Threshold: 30})
		img := uniformImage(16, 16, 128)
		darkOn := countOn(dark.Convert(img, 8, 4))
		lightOn := countOn(light.Convert(img, 8, 4))
		Expect(lightOn).To(BeNumerically(">", darkOn))
	})
})

// countOn counts lit dots in rendered braille text.
func countOn(text []byte) int {
	on := 0
	for _, r := range string(text) {
		if r == '\n' {
			continue
		}
		p := r - '⠀'
		for p != 0 {
			on += int(p & 1)
			p >>= 1
		}
	}
	return on
}
