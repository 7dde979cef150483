package braillecam

// BayerConverter binarizes by ordered dithering against a tiled 8x8
// Bayer matrix. Every pixel is an independent compare, so the cost is
// O(1) per pixel with no error state, at the price of the crosshatch
// texture characteristic of ordered dithering.
type BayerConverter struct {
	cfg Config
}

func NewBayerConverter(cfg Config) *BayerConverter {
	return &BayerConverter{cfg: cfg}
}

// bayerMatrix is the classical 8x8 index matrix scaled to 0-255,
// computed once at startup.
var bayerMatrix = newBayerMatrix()

// newBayerMatrix builds the 8x8 matrix by the recursive doubling
// construction: starting from the 2x2 base permutation [0 2; 3 1], each
// step expands an n x n matrix M into
//
//	| 4M   4M+2 |
//	| 4M+3 4M+1 |
//
// Two doublings take 2x2 to 8x8 with indices 0-63, which v*4+2 then
// spreads across 2-254.
func newBayerMatrix() [8][8]uint8 {
	m := [][]int{{0, 2}, {3, 1}}
	for len(m) < 8 {
		n := len(m)
		grown := make([][]int, n*2)
		for i := range grown {
			grown[i] = make([]int, n*2)
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				grown[y][x] = 4 * m[y][x]
				grown[y][x+n] = 4*m[y][x] + 2
				grown[y+n][x] = 4*m[y][x] + 3
				grown[y+n][x+n] = 4*m[y][x] + 1
			}
		}
		m = grown
	}
	var out [8][8]uint8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			out[y][x] = uint8(m[y][x]*4 + 2)
		}
	}
	return out
}

func (c *BayerConverter) Convert(img *Image, cols, rows int) []byte {
	cols, rows = clampDims(cols, rows)
	w, h := img.Width, img.Height
	binary := make([]byte, w*h)
	bias := int(c.cfg.Threshold) - 128
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			effective := clamp255(int(bayerMatrix[y%8][x%8]) + bias)
			if int(img.At(x, y)) > effective {
				binary[y*w+x] = 255
			}
		}
	}
	return renderBinary(binary, w, h, cols, rows, c.cfg.Invert)
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
