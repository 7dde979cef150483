package braillecam

import (
	"image"
	"image/gif"
	"io"
	"time"
)

// GIFSource plays an animated GIF as a frame stream. Frame delays and
// disposal methods are respected: Capture blocks for the current
// frame's delay and composes frames onto a persistent screen the way a
// GIF viewer would. The stream ends after the GIF's loop count (and
// never ends for LoopCount == 0).
type GIFSource struct {
	giff   *gif.GIF
	screen *image.Paletted
	idx    int
	loops  int
	closed bool
}

func NewGIFSource(r io.Reader) (*GIFSource, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(giff.Image) == 0 {
		return nil, ErrNoFrame
	}
	return &GIFSource{giff: giff}, nil
}

func (s *GIFSource) Capture() (*Image, error) {
	if s.closed {
		return nil, ErrNotOpen
	}
	g := s.giff
	if s.idx >= len(g.Image) {
		s.loops++
		if g.LoopCount != 0 && s.loops >= g.LoopCount {
			return nil, ErrSourceClosed
		}
		s.idx = 0
	}
	i := s.idx
	delay := time.After(time.Duration(g.Delay[i]) * time.Second / 100)
	frame := g.Image[i]

	// Always draw the first frame from scratch
	if s.screen == nil {
		s.screen = image.NewPaletted(frame.Bounds(), frame.Palette)
	}

	// Dispose previous essentially means draw then undo
	var previous *image.Paletted
	if g.Disposal[i] == gif.DisposalPrevious {
		previous = image.NewPaletted(s.screen.Bounds(), s.screen.Palette)
		copy(previous.Pix, s.screen.Pix)
	}

	drawFrame(s.screen, frame)
	out := Grayscale(s.screen)

	switch g.Disposal[i] {
	case gif.DisposalPrevious:
		s.screen = previous
	// Dispose background replaces what the frame just drew with the
	// background canvas
	case gif.DisposalBackground:
		clearRect(s.screen, frame.Bounds())
	}

	s.idx++
	<-delay
	return out, nil
}

func (s *GIFSource) Close() error {
	s.closed = true
	return nil
}

// drawFrame composites source over target, skipping fully transparent
// pixels so earlier frames show through.
func drawFrame(target *image.Paletted, source image.Image) {
	bounds := source.Bounds().Intersect(target.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := source.At(x, y).RGBA(); a == 0 {
				continue
			}
			target.Set(x, y, source.At(x, y))
		}
	}
}

func clearRect(target *image.Paletted, r image.Rectangle) {
	r = r.Intersect(target.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			target.SetColorIndex(x, y, 0)
		}
	}
}
