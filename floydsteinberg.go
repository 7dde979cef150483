package braillecam

// FloydSteinbergConverter binarizes with the classic Floyd-Steinberg
// kernel: 7/16 right, 3/16 down-left, 5/16 down, 1/16 down-right. All
// sixteen sixteenths are diffused, preserving average brightness
// exactly. This is the same diffusion image/draw.FloydSteinberg
// performs, reimplemented over the packed grayscale buffer so the
// binarized plane can feed the shared braille renderer.
type FloydSteinbergConverter struct {
	cfg Config
}

func NewFloydSteinbergConverter(cfg Config) *FloydSteinbergConverter {
	return &FloydSteinbergConverter{cfg: cfg}
}

func (c *FloydSteinbergConverter) Convert(img *Image, cols, rows int) []byte {
	cols, rows = clampDims(cols, rows)
	binary := c.binarize(img)
	return renderBinary(binary, img.Width, img.Height, cols, rows, c.cfg.Invert)
}

// binarize needs only two rows of error state: the row being quantized
// and the one below it. Each neighbor's share is computed independently
// with truncating integer division, then the rows swap and the new
// "next" row is cleared.
func (c *FloydSteinbergConverter) binarize(img *Image) []byte {
	w, h := img.Width, img.Height
	binary := make([]byte, w*h)
	threshold := int(c.cfg.Threshold)

	cur := make([]int, w)
	next := make([]int, w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			value := int(img.At(x, y)) + cur[x]
			out := 0
			if value >= threshold {
				out = 255
			}
			binary[y*w+x] = byte(out)

			e := value - out
			if x+1 < w {
				cur[x+1] += e * 7 / 16
			}
			if y+1 < h {
				if x-1 >= 0 {
					next[x-1] += e * 3 / 16
				}
				next[x] += e * 5 / 16
				if x+1 < w {
					next[x+1] += e * 1 / 16
				}
			}
		}
		cur, next = next, cur
		for i := range next {
			next[i] = 0
		}
	}
	return binary
}
