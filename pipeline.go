package braillecam

import (
	"errors"
	"fmt"
	"sync"
)

// Discrete frame source failures. Sources surface these; the pipeline
// and converters never generate them.
var (
	// ErrNoFrame means the source had no frame to deliver.
	ErrNoFrame = errors.New("braillecam: no frame available")
	// ErrPermissionDenied means access to the device was refused.
	ErrPermissionDenied = errors.New("braillecam: permission denied")
	// ErrDeviceBusy means another process holds the device.
	ErrDeviceBusy = errors.New("braillecam: device busy")
	// ErrNotOpen means the source was closed or never opened.
	ErrNotOpen = errors.New("braillecam: source not open")
	// ErrSourceClosed means the stream behind the source ended.
	ErrSourceClosed = errors.New("braillecam: source closed")
)

// FrameSource is the boundary to whatever produces frames: a camera
// wrapper, a decoded file, an MJPEG stream. Capture blocks until a
// frame is ready and returns a buffer that stays valid only until the
// next Capture or Close, so anyone keeping a frame must copy it.
type FrameSource interface {
	Capture() (*Image, error)
	Close() error
}

// Pipeline supplies the render loop with frames. Latest returns the
// most recent available frame; whether that call blocks on the source
// depends on the strategy.
type Pipeline interface {
	Latest() (*Image, error)
	Close() error
}

// Direct is the synchronous strategy: every Latest blocks on the
// source, adding full capture latency to each render cycle.
type Direct struct {
	src FrameSource
}

func NewDirect(src FrameSource) *Direct {
	return &Direct{src: src}
}

func (d *Direct) Latest() (*Image, error) {
	return d.src.Capture()
}

func (d *Direct) Close() error {
	return d.src.Close()
}

// Pipelined decouples capture latency from the render loop with a
// double buffer. One background goroutine captures continuously into
// whichever of two fixed buffers the consumer is not being handed,
// holding a single mutex for the whole write (copy, metadata, index
// swap). Latest takes the same mutex only to pick up the other buffer,
// so it never waits on the source: it returns the most recently
// completed frame, possibly the same one twice when capture runs
// slower than rendering. No frame is delivered exactly once and no
// partially written frame is ever observable.
type Pipelined struct {
	src FrameSource

	mu      sync.Mutex
	bufs    [2]*Image
	writing int // index of the buffer the capture goroutine owns
	err     error

	stop chan struct{}
	done chan struct{}
}

// NewPipelined captures one frame synchronously to size the two
// buffers, then starts the background capture goroutine. Buffer sizes
// are fixed for the life of the pipeline; a source that later changes
// resolution trips ErrFrameSizeChanged instead of corrupting a copy.
func NewPipelined(src FrameSource) (*Pipelined, error) {
	first, err := src.Capture()
	if err != nil {
		return nil, fmt.Errorf("braillecam: pipeline start: %v", err)
	}
	p := &Pipelined{
		src:  src,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	p.bufs[0] = NewImage(first.Width, first.Height)
	p.bufs[1] = NewImage(first.Width, first.Height)
	copyFrame(p.bufs[1], first)
	p.writing = 0
	go p.captureLoop()
	return p, nil
}

// ErrFrameSizeChanged reports a mid-session source resolution change.
// The double buffers are sized once at pipeline start, so this is a
// terminal condition rather than a silently truncated copy.
var ErrFrameSizeChanged = errors.New("braillecam: source frame size changed mid-session")

func (p *Pipelined) captureLoop() {
	defer close(p.done)
	for {
		select {
		case <-p.stop:
			return
		default:
		}
		frame, err := p.src.Capture()
		if err != nil {
			// A failed capture is retried on the next iteration;
			// the consumer keeps getting the last good frame.
			continue
		}
		p.mu.Lock()
		if frame.Width != p.bufs[p.writing].Width || frame.Height != p.bufs[p.writing].Height {
			p.err = ErrFrameSizeChanged
			p.mu.Unlock()
			return
		}
		copyFrame(p.bufs[p.writing], frame)
		p.writing ^= 1
		p.mu.Unlock()
	}
}

// Latest returns the most recently completed frame without waiting for
// a new one. The returned buffer is overwritten by a later capture
// cycle, which is acceptable for a serial render loop that finishes
// with the frame before asking for the next.
func (p *Pipelined) Latest() (*Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.bufs[p.writing^1], nil
}

// Close signals the capture goroutine to stop after its current
// attempt, joins it, then closes the source.
func (p *Pipelined) Close() error {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	<-p.done
	return p.src.Close()
}

// copyFrame copies src's pixels into dst, row by row so padded strides
// collapse to packed rows. Dimensions must already match.
func copyFrame(dst, src *Image) {
	for y := 0; y < src.Height; y++ {
		copy(dst.Data[y*dst.Stride:y*dst.Stride+src.Width],
			src.Data[y*src.Stride:y*src.Stride+src.Width])
	}
}
