package braillecam

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// PatternSource generates a synthetic calibration pattern: concentric
// circles with a radar-style sweep line rotating one step per frame.
// It exists so the pipeline, converters and animator can be exercised
// end to end without a camera or an input file.
type PatternSource struct {
	width  int
	height int
	fps    int
	phase  float64
	closed bool
}

func NewPatternSource(width, height, fps int) *PatternSource {
	if fps < 1 {
		fps = 30
	}
	return &PatternSource{width: width, height: height, fps: fps}
}

func (s *PatternSource) Capture() (*Image, error) {
	if s.closed {
		return nil, ErrNotOpen
	}
	delay := time.After(time.Second / time.Duration(s.fps))

	rgba := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	gc := draw2dimg.NewGraphicContext(rgba)

	// White field, black markings.
	gc.SetFillColor(color.White)
	draw2dkit.Rectangle(gc, 0, 0, float64(s.width), float64(s.height))
	gc.Fill()

	cx, cy := float64(s.width)/2, float64(s.height)/2
	max := math.Min(cx, cy) - 2

	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(2)
	for r := max / 4; r <= max; r += max / 4 {
		gc.BeginPath()
		draw2dkit.Circle(gc, cx, cy, r)
		gc.Stroke()
	}

	// Sweep line.
	gc.BeginPath()
	gc.MoveTo(cx, cy)
	gc.LineTo(cx+max*math.Cos(s.phase), cy+max*math.Sin(s.phase))
	gc.Stroke()

	s.phase += 2 * math.Pi / 60

	<-delay
	return Grayscale(rgba), nil
}

func (s *PatternSource) Close() error {
	s.closed = true
	return nil
}
