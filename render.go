package braillecam

// renderBinary folds a binarized (0/255) pixel buffer of width x height
// into a cols x rows braille grid. Each dot samples the source at its
// scaled cell-local position; samples outside the buffer count as off.
// Every row of output is cols symbols followed by '\n', so the result
// is always exactly rows*(cols*3+1) bytes.
func renderBinary(binary []byte, width, height, cols, rows int, invert bool) []byte {
	scale := sampleScale(width, height, cols, rows)
	buf := make([]byte, 0, rows*(cols*3+1))
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var p Pattern
			for i, off := range dotOffsets {
				sx := int(float64(cx*cellWidth+off.dx) * scale)
				sy := int(float64(cy*cellHeight+off.dy) * scale)
				on := false
				if sx < width && sy < height {
					on = binary[sy*width+sx] != 0
				}
				if invert {
					on = !on
				}
				if on {
					p |= 1 << uint(i)
				}
			}
			buf = p.AppendUTF8(buf)
		}
		buf = append(buf, '\n')
	}
	return buf
}
