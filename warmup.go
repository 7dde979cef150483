package braillecam

import "time"

// WarmupStats summarizes the discarded warm-up phase.
type WarmupStats struct {
	FramesDiscarded int
	Duration        time.Duration
	FPSMean         float64
}

// Warmup captures and discards n frames from the source. Cameras meter
// exposure over their first frames; throwing those away keeps the
// render from opening on a blown-out image. Capture errors during
// warm-up are skipped, not counted, mirroring the pipeline's
// retry-on-failure policy.
func Warmup(src FrameSource, n int) WarmupStats {
	start := time.Now()
	stats := WarmupStats{}
	for stats.FramesDiscarded < n {
		if _, err := src.Capture(); err != nil {
			if err == ErrNotOpen || err == ErrSourceClosed {
				break
			}
			continue
		}
		stats.FramesDiscarded++
	}
	stats.Duration = time.Since(start)
	if secs := stats.Duration.Seconds(); secs > 0 {
		stats.FPSMean = float64(stats.FramesDiscarded) / secs
	}
	return stats
}
