package braillecam

import (
	"bytes"
	"image/jpeg"
	"io"
)

// MJPEGSource extracts frames from a raw MJPEG byte stream: JPEG images
// back to back with no container. It scans for each JPEG's end-of-image
// marker (FF D9), decodes the accumulated bytes, and hands back the
// grayscale result. Capture blocks until a full frame has arrived.
type MJPEGSource struct {
	r      io.Reader
	buf    bytes.Buffer
	p      [1]byte
	closed bool
}

func NewMJPEGSource(r io.Reader) *MJPEGSource {
	return &MJPEGSource{r: r}
}

func (s *MJPEGSource) Capture() (*Image, error) {
	if s.closed {
		return nil, ErrNotOpen
	}
	for {
		n, err := s.r.Read(s.p[:])
		if n == 0 {
			if err == nil {
				continue
			}
			if err == io.EOF {
				return nil, ErrSourceClosed
			}
			return nil, err
		}

		s.buf.WriteByte(s.p[0])

		if s.buf.Len() > 1 {
			data := s.buf.Bytes()
			if data[s.buf.Len()-2] == 0xff && data[s.buf.Len()-1] == 0xd9 {
				img, err := jpeg.Decode(&s.buf)
				s.buf.Reset()
				if err != nil {
					return nil, err
				}
				return Grayscale(img), nil
			}
		}
	}
}

func (s *MJPEGSource) Close() error {
	s.closed = true
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
