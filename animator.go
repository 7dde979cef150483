package braillecam

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// AnimatorOpt configures an Animator.
type AnimatorOpt func(a *Animator)

// WithFPS caps the render loop at fps frames per second.
func WithFPS(fps int) AnimatorOpt {
	return func(a *Animator) {
		a.fps = fps
	}
}

// WithTerminal overrides the ANSI terminal used for cursor control.
func WithTerminal(t Terminal) AnimatorOpt {
	return func(a *Animator) {
		a.term = t
	}
}

// Animator runs the render loop: pull the latest frame from a
// Pipeline, convert it to braille text, write it, reset the cursor,
// repeat. It owns cursor visibility for the duration of the loop.
type Animator struct {
	w    io.Writer
	conv Converter
	term Terminal
	fps  int
}

func NewAnimator(w io.Writer, conv Converter, opts ...AnimatorOpt) *Animator {
	a := &Animator{
		w:    w,
		conv: conv,
		fps:  30,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.term == nil {
		a.term = &Xterm{Writer: w}
	}
	return a
}

/*
Animate draws frames from the pipeline until the pipeline reports a
terminal error. Each frame is fit within boundCols x boundRows braille
cells; sources are free to change what they deliver frame to frame, the
grid is recomputed per frame. The stream's end (ErrSourceClosed or
ErrNoFrame from a Direct pipeline) ends the loop without error.
*/
func (a *Animator) Animate(p Pipeline, boundCols, boundRows int) error {
	a.term.ShowCursor(false)
	defer a.term.ShowCursor(true)
	go a.handleInterrupt()

	for {
		delay := time.After(time.Second / time.Duration(a.fps))

		frame, err := p.Latest()
		if err == ErrSourceClosed || err == ErrNoFrame {
			return nil
		}
		if err != nil {
			return err
		}

		cols, rows := DimensionsToFit(frame.Width, frame.Height, boundCols, boundRows)
		if _, err := a.w.Write(a.conv.Convert(frame, cols, rows)); err != nil {
			return err
		}
		a.term.ResetCursor(rows)

		<-delay
	}
}

// Render is the one-shot variant: convert a single frame and write it,
// with no cursor games. Used for still images.
func (a *Animator) Render(img *Image, boundCols, boundRows int) error {
	cols, rows := DimensionsToFit(img.Width, img.Height, boundCols, boundRows)
	_, err := a.w.Write(a.conv.Convert(img, cols, rows))
	return err
}

func (a *Animator) handleInterrupt() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-signals
		a.term.ShowCursor(true)
		// Stop notifying this channel
		signal.Stop(signals)
		// All Signals returned by the signal package should be of type syscall.Signal
		if signum, ok := s.(syscall.Signal); ok {
			// Calling os.Exit here would be a bad idea if there are other goroutines
			// waiting to catch the same signal.
			syscall.Kill(syscall.Getpid(), signum)
		} else {
			panic(fmt.Sprintf("unexpected signal: %v", s))
		}
	}()
}
