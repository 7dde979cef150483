package braillecam

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("DimensionsToFit", func() {
	It("limits by width when the image is wide", func() {
		cols, rows := DimensionsToFit(1600, 800, 80, 40)
		Expect(cols).To(Equal(80))
		Expect(rows).To(Equal(20))
	})

	It("limits by height when the image is tall", func() {
		cols, rows := DimensionsToFit(800, 1600, 100, 30)
		Expect(cols).To(Equal(30))
		Expect(rows).To(Equal(30))
	})

	It("fills the bounds exactly when the aspect ratios agree", func() {
		cols, rows := DimensionsToFit(1920, 1080, 160, 45)
		Expect(cols).To(Equal(160))
		Expect(rows).To(Equal(45))
	})

	It("never returns an empty grid", func() {
		for _, dims := range [][4]int{
			{1, 1, 80, 25},
			{3, 5000, 80, 25},
			{5000, 3, 80, 25},
			{0, 0, 80, 25},
			{640, 480, 0, 0},
		} {
			cols, rows := DimensionsToFit(dims[0], dims[1], dims[2], dims[3])
			Expect(cols).To(BeNumerically(">=", 1))
			Expect(rows).To(BeNumerically(">=", 1))
		}
	})
})

var _ = Describe("RowsForCols", func() {
	It("preserves the aspect ratio for the requested columns", func() {
		// 1600x800 at 80 columns: scale 10, 80 output rows of pixels,
		// 20 rows of cells.
		Expect(RowsForCols(1600, 800, 80)).To(Equal(20))
	})

	It("clamps to a single row for extreme ratios", func() {
		Expect(RowsForCols(5000, 3, 80)).To(Equal(1))
	})
})
