package braillecam

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
)

// Image is an immutable view over a grayscale frame: one byte per pixel,
// row y starting at Data[y*Stride]. Stride may exceed Width when the
// producer pads rows. Whoever produced the Image owns Data; consumers
// must not retain it past the call that received it.
type Image struct {
	Data   []byte
	Width  int
	Height int
	Stride int
}

// At returns the pixel at (x, y). Callers must only request coordinates
// within [0,Width)x[0,Height); anything else is a contract violation.
func (img *Image) At(x, y int) byte {
	return img.Data[y*img.Stride+x]
}

// NewImage allocates a zeroed grayscale image with Stride == Width.
func NewImage(width, height int) *Image {
	return &Image{
		Data:   make([]byte, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Grayscale converts any image.Image into a packed grayscale Image.
// Standard-ish algorithm for determining the best grayscale for human eyes:
// 0.21 R + 0.72 G + 0.07 B
func Grayscale(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			lum := 0.21*float32(r) + 0.72*float32(g) + 0.07*float32(b)
			img.Data[i] = byte(lum / float32(0xffff) * 0xff)
			i++
		}
	}
	return img
}

// StillSource serves a single decoded image as a frame stream. Every
// Capture returns the same frame, which makes static files first-class
// citizens of the render loop.
type StillSource struct {
	img    *Image
	closed bool
}

// NewStillSource decodes r (gif, jpeg, png or bmp) into a StillSource.
func NewStillSource(r io.Reader) (*StillSource, error) {
	decoded, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &StillSource{img: Grayscale(decoded)}, nil
}

// NewStillSourceFromImage wraps an already-decoded image.
func NewStillSourceFromImage(src image.Image) *StillSource {
	return &StillSource{img: Grayscale(src)}
}

func (s *StillSource) Capture() (*Image, error) {
	if s.closed {
		return nil, ErrNotOpen
	}
	return s.img, nil
}

func (s *StillSource) Close() error {
	s.closed = true
	return nil
}
