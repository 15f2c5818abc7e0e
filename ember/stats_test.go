package ember

import (
	"testing"
	"time"
)

func TestFrameTimes(t *testing.T) {
	var frames FrameTimes

	now := time.Unix(0, 0)
	for i := 0; i < 8; i++ {
		frames.tick(now)
		now = now.Add(16 * time.Millisecond)
	}

	if frames.FrameCount != 8 {
		t.Errorf("FrameCount = %d, want 8", frames.FrameCount)
	}

	if frames.Delta != 16*time.Millisecond {
		t.Errorf("Delta = %v, want 16ms", frames.Delta)
	}

	if frames.AverageDuration != 16*time.Millisecond {
		t.Errorf("AverageDuration = %v, want 16ms", frames.AverageDuration)
	}

	if frames.MaxDuration != 16*time.Millisecond {
		t.Errorf("MaxDuration = %v, want 16ms", frames.MaxDuration)
	}
}

func TestFrameTimesMax(t *testing.T) {
	var frames FrameTimes

	frames.tick(time.Unix(0, 0))
	frames.tick(time.Unix(0, 0).Add(16 * time.Millisecond))
	frames.tick(time.Unix(0, 0).Add(116 * time.Millisecond))
	frames.tick(time.Unix(0, 0).Add(132 * time.Millisecond))

	if frames.MaxDuration != 100*time.Millisecond {
		t.Errorf("MaxDuration = %v, want 100ms", frames.MaxDuration)
	}

	if frames.Delta != 16*time.Millisecond {
		t.Errorf("Delta = %v, want 16ms", frames.Delta)
	}
}
