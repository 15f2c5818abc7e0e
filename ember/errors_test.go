package ember

import (
	"errors"
	"testing"
)

func TestClassifyAcquire(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"out of memory", "Out of Memory when acquiring texture", ErrOutOfMemory},
		{"lost", "parent device is Lost", ErrSurfaceLost},
		{"outdated", "surface texture is Outdated", ErrSurfaceOutdated},
		{"timeout", "Timeout while acquiring texture", ErrAcquireTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAcquire(errors.New(tt.msg))
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyAcquire(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestClassifyAcquirePassthrough(t *testing.T) {
	if got := classifyAcquire(nil); got != nil {
		t.Errorf("classifyAcquire(nil) = %v", got)
	}

	err := errors.New("validation error")
	got := classifyAcquire(err)

	if got != err {
		t.Errorf("unknown error was rewritten: %v", got)
	}

	for _, sentinel := range []error{ErrSurfaceLost, ErrSurfaceOutdated, ErrAcquireTimeout, ErrOutOfMemory} {
		if errors.Is(got, sentinel) {
			t.Errorf("unknown error classified as %v", sentinel)
		}
	}
}

func TestSkipOrFail(t *testing.T) {
	if err := SkipOrFail(nil); err != nil {
		t.Errorf("SkipOrFail(nil) = %v", err)
	}

	oom := classifyAcquire(errors.New("Out of Memory"))
	if err := SkipOrFail(oom); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("out of memory did not terminate the loop: %v", err)
	}

	lost := classifyAcquire(errors.New("surface Lost"))
	if err := SkipOrFail(lost); err != nil {
		t.Errorf("lost surface terminated the loop: %v", err)
	}

	outdated := classifyAcquire(errors.New("Outdated"))
	if err := SkipOrFail(outdated); err != nil {
		t.Errorf("outdated surface terminated the loop: %v", err)
	}

	if err := SkipOrFail(errors.New("validation error")); err != nil {
		t.Errorf("unexpected error terminated the loop: %v", err)
	}
}

// Drives the per frame policy the way an event loop would: recoverable
// failures skip the frame, out of memory ends the loop.
func TestSkipOrFailLoop(t *testing.T) {
	results := []error{
		nil,
		classifyAcquire(errors.New("surface is Lost")),
		nil,
		classifyAcquire(errors.New("Out of Memory")),
		nil,
	}

	var frames int
	var loopErr error

	for _, result := range results {
		if loopErr = SkipOrFail(result); loopErr != nil {
			break
		}
		frames++
	}

	if !errors.Is(loopErr, ErrOutOfMemory) {
		t.Fatalf("loop ended with %v, want out of memory", loopErr)
	}

	if frames != 3 {
		t.Errorf("loop ran %d frames before failing, want 3", frames)
	}
}
