package ember

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Acquisition failures reported by the surface, classified so that
// callers can decide between skipping a frame and giving up.
var (
	// ErrSurfaceLost means the surface became unusable and has to be
	// reconfigured before another frame can be acquired.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated means the surface no longer matches the
	// window, usually because a resize has not been applied yet.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrAcquireTimeout means no image became available in time.
	ErrAcquireTimeout = errors.New("surface acquire timed out")

	// ErrOutOfMemory means the backend could not allocate the next
	// frame. There is no way to recover from this.
	ErrOutOfMemory = errors.New("surface out of memory")
)

// classifyAcquire attaches one of the sentinel errors above to an
// acquisition failure. The wgpu bindings only surface a message
// string, so this is the single place that inspects it.
func classifyAcquire(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)

	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)

	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)

	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrAcquireTimeout, err)

	default:
		return err
	}
}

// SkipOrFail implements the frame loop policy for the result of a
// Render call: running out of memory terminates the loop, every other
// failure is logged and the frame is skipped.
func SkipOrFail(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, ErrOutOfMemory):
		return err

	case errors.Is(err, ErrSurfaceLost),
		errors.Is(err, ErrSurfaceOutdated),
		errors.Is(err, ErrAcquireTimeout):
		slog.Warn("Skipping frame", slog.Any("error", err))
		return nil

	default:
		slog.Error("Skipping frame after unexpected render error", slog.Any("error", err))
		return nil
	}
}
