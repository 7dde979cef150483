package braillecam

// EdgeConverter lights a dot where the local gradient is steep: the
// mean absolute difference between a pixel and its 4-connected
// neighbors must exceed the threshold. It works on the grayscale data
// directly, with no binarization pass, which keeps outlines crisp where
// dithering would shred them.
type EdgeConverter struct {
	cfg Config
}

func NewEdgeConverter(cfg Config) *EdgeConverter {
	return &EdgeConverter{cfg: cfg}
}

func (c *EdgeConverter) Convert(img *Image, cols, rows int) []byte {
	cols, rows = clampDims(cols, rows)
	scale := sampleScale(img.Width, img.Height, cols, rows)
	buf := make([]byte, 0, rows*(cols*3+1))
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var p Pattern
			for i, off := range dotOffsets {
				sx := int(float64(cx*cellWidth+off.dx) * scale)
				sy := int(float64(cy*cellHeight+off.dy) * scale)
				on := false
				if sx < img.Width && sy < img.Height {
					on = c.gradientAt(img, sx, sy) > int(c.cfg.Threshold)
				}
				if c.cfg.Invert {
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

// gradientAt is the mean absolute difference between (x, y) and its
// in-bounds left/right/up/down neighbors. The divisor is the actual
// neighbor count, not a fixed 4, so border pixels aren't biased dark.
func (c *EdgeConverter) gradientAt(img *Image, x, y int) int {
	center := int(img.At(x, y))
	sum, count := 0, 0
	if x > 0 {
		sum += abs(center - int(img.At(x-1, y)))
		count++
	}
	if x < img.Width-1 {
		sum += abs(center - int(img.At(x+1, y)))
		count++
	}
	if y > 0 {
		sum += abs(center - int(img.At(x, y-1)))
		count++
	}
	if y < img.Height-1 {
		sum += abs(center - int(img.At(x, y+1)))
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
