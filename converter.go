package braillecam

import (
	"fmt"
)

// Config holds the settings shared by every conversion algorithm. A
// converter keeps its Config for life; changing settings means building
// a new converter.
type Config struct {
	Threshold uint8 // binarization threshold, 0-255
	Invert    bool  // swap on/off dots
}

// DefaultConfig is a mid-gray threshold with no inversion.
var DefaultConfig = Config{Threshold: 128}

// Converter turns a grayscale frame into a cols x rows grid of braille
// symbols, returned as UTF-8 text with one '\n'-terminated line per
// symbol row. Conversions are pure: no state is carried between frames,
// so converters can be swapped mid-stream and used from tests without
// setup.
type Converter interface {
	Convert(img *Image, cols, rows int) []byte
}

// Algorithm names accepted by NewConverter.
const (
	AlgorithmEdge           = "edge"
	AlgorithmAtkinson       = "atkinson"
	AlgorithmFloydSteinberg = "floyd_steinberg"
	AlgorithmBayer          = "bayer"
	AlgorithmBlueNoise      = "blue_noise"
)

// Algorithms lists the accepted algorithm names in presentation order.
var Algorithms = []string{
	AlgorithmEdge,
	AlgorithmAtkinson,
	AlgorithmFloydSteinberg,
	AlgorithmBayer,
	AlgorithmBlueNoise,
}

// NewConverter builds the named conversion algorithm.
func NewConverter(name string, cfg Config) (Converter, error) {
	switch name {
	case AlgorithmEdge:
		return &EdgeConverter{cfg: cfg}, nil
	case AlgorithmAtkinson:
		return &AtkinsonConverter{cfg: cfg}, nil
	case AlgorithmFloydSteinberg:
		return &FloydSteinbergConverter{cfg: cfg}, nil
	case AlgorithmBayer:
		return &BayerConverter{cfg: cfg}, nil
	case AlgorithmBlueNoise:
		return &BlueNoiseConverter{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("braillecam: unknown algorithm %q", name)
	}
}

// clampDims guards the degenerate cases so every converter can assume a
// non-empty output grid.
func clampDims(cols, rows int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
