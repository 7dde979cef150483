package braillecam

import "math"

// BlueNoiseConverter is ordered dithering like Bayer, but against a
// 64x64 interleaved-gradient-noise texture instead of a recursive index
// matrix. The texture is spatially decorrelated ("blue"), which trades
// Bayer's crosshatch artifacts for a grain that reads as film-like.
type BlueNoiseConverter struct {
	cfg Config
}

func NewBlueNoiseConverter(cfg Config) *BlueNoiseConverter {
	return &BlueNoiseConverter{cfg: cfg}
}

const blueNoiseSize = 64

// blueNoiseTexture is computed once at startup and tiled thereafter.
var blueNoiseTexture = newBlueNoiseTexture()

// newBlueNoiseTexture fills the table with Jorge Jimenez's interleaved
// gradient noise:
//
//	value(x,y) = fract(52.9829189 * fract(0.06711056*x + 0.00583715*y))
func newBlueNoiseTexture() [blueNoiseSize][blueNoiseSize]uint8 {
	var out [blueNoiseSize][blueNoiseSize]uint8
	for y := 0; y < blueNoiseSize; y++ {
		for x := 0; x < blueNoiseSize; x++ {
			v := fract(52.9829189 * fract(0.06711056*float64(x)+0.00583715*float64(y)))
			out[y][x] = uint8(v * 255)
		}
	}
	return out
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func (c *BlueNoiseConverter) Convert(img *Image, cols, rows int) []byte {
	cols, rows = clampDims(cols, rows)
	w, h := img.Width, img.Height
	binary := make([]byte, w*h)
	bias := int(c.cfg.Threshold) - 128
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			effective := clamp255(int(blueNoiseTexture[y%blueNoiseSize][x%blueNoiseSize]) + bias)
			if int(img.At(x, y)) > effective {
				binary[y*w+x] = 255
			}
		}
	}
	return renderBinary(binary, w, h, cols, rows, c.cfg.Invert)
}
