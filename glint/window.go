package glint

import "github.com/oliverbestmann/webgpu/wgpu"

// Window is a native window the renderer can draw into. Implementations
// own the platform handle and deliver lifecycle events through Run.
type Window interface {
	// Size returns the current framebuffer size in pixels.
	Size() (uint32, uint32)

	// SurfaceDescriptor describes the native surface of this window
	// so that wgpu can render to it.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run delivers events to the handler until the handler returns
	// Stop or fails with an error.
	Run(handler Handler) error

	Terminate()
}
