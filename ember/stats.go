package ember

import (
	"log/slog"
	"time"
)

// FrameTimes keeps a rolling view on how long frames take.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

// tick records that a frame was presented at the given time.
func (t *FrameTimes) tick(now time.Time) {
	if !t.lastTime.IsZero() {
		t.update(now.Sub(t.lastTime))
	}

	t.lastTime = now
	t.FrameCount++

	if t.FrameCount%64 == 0 {
		slog.Debug("Frame times",
			slog.Uint64("frameCount", t.FrameCount),
			slog.Duration("average", t.AverageDuration),
			slog.Duration("max", t.MaxDuration),
		)
	}
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}
