package braillecam

// Each braille symbol stands in for a 2 pixel wide, 4 pixel tall region
// of the source image at 1:1 scale.
const (
	cellWidth  = 2
	cellHeight = 4
)

// DimensionsToFit computes the largest symbol grid that fits within
// boundCols x boundRows while preserving the source aspect ratio. The
// larger of the two axis scales wins (yielding the smaller output), so
// both bounds are always respected. Degenerate inputs clamp to 1x1.
func DimensionsToFit(srcWidth, srcHeight, boundCols, boundRows int) (cols, rows int) {
	if srcWidth < 1 || srcHeight < 1 || boundCols < 1 || boundRows < 1 {
		return 1, 1
	}
	scaleW := float64(srcWidth) / float64(boundCols*cellWidth)
	scaleH := float64(srcHeight) / float64(boundRows*cellHeight)
	scale := scaleW
	if scaleH > scale {
		scale = scaleH
	}
	cols = int(float64(srcWidth)/scale) / cellWidth
	rows = int(float64(srcHeight)/scale) / cellHeight
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// RowsForCols computes the symbol row count that preserves the source
// aspect ratio at exactly targetCols columns.
func RowsForCols(srcWidth, srcHeight, targetCols int) int {
	if srcWidth < 1 || srcHeight < 1 || targetCols < 1 {
		return 1
	}
	scale := float64(srcWidth) / float64(targetCols*cellWidth)
	rows := int(float64(srcHeight)/scale) / cellHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// sampleScale is the single per-call scale factor mapping output pixel
// coordinates back onto source pixels. Converters multiply an output
// pixel coordinate by it and truncate (nearest-floor sampling, no
// interpolation). The larger axis scale is used so the limiting axis
// covers the full source extent; samples that land past the other edge
// are treated as "off" by the renderer.
func sampleScale(srcWidth, srcHeight, cols, rows int) float64 {
	scaleW := float64(srcWidth) / float64(cols*cellWidth)
	scaleH := float64(srcHeight) / float64(rows*cellHeight)
	if scaleH > scaleW {
		return scaleH
	}
	return scaleW
}
