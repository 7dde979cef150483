package braillecam

// AtkinsonConverter binarizes with Bill Atkinson's error diffusion: each
// pixel's quantization error is split into eighths and six of those
// shares are pushed to not-yet-visited neighbors. Only 75% of the error
// is diffused, which burns out highlights and deepens shadows for a
// higher-contrast look than Floyd-Steinberg.
type AtkinsonConverter struct {
	cfg Config
}

func NewAtkinsonConverter(cfg Config) *AtkinsonConverter {
	return &AtkinsonConverter{cfg: cfg}
}

func (c *AtkinsonConverter) Convert(img *Image, cols, rows int) []byte {
	cols, rows = clampDims(cols, rows)
	binary := c.binarize(img)
	return renderBinary(binary, img.Width, img.Height, cols, rows, c.cfg.Invert)
}

// binarize thresholds the image in raster order, diffusing err/8 to
// (x+1,y), (x+2,y), (x-1,y+1), (x,y+1), (x+1,y+1) and (x,y+2). Error
// state is three rolling rows rotated at the end of each scanline, so
// memory stays O(width).
func (c *AtkinsonConverter) binarize(img *Image) []byte {
	w, h := img.Width, img.Height
	binary := make([]byte, w*h)
	threshold := int(c.cfg.Threshold)

	cur := make([]int, w)
	next := make([]int, w)
	after := make([]int, w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			value := int(img.At(x, y)) + cur[x]
			out := 0
			if value >= threshold {
				out = 255
			}
			binary[y*w+x] = byte(out)

			frac := (value - out) / 8
			if x+1 < w {
				cur[x+1] += frac
			}
			if x+2 < w {
				cur[x+2] += frac
			}
			if x-1 >= 0 {
				next[x-1] += frac
			}
			next[x] += frac
			if x+1 < w {
				next[x+1] += frac
			}
			after[x] += frac
		}
		// Rotate rather than copy: the finished row becomes the new
		// row-after-next once cleared.
		cur, next, after = next, after, cur
		for i := range after {
			after[i] = 0
		}
	}
	return binary
}
