package ember

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/firstframe/glint"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context: the
// Device, Queue, active Adapter and the configured Surface of the
// window. It is exclusively owned by the event loop thread.
type Context struct {
	*wgpu.Device
	*wgpu.Queue

	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	config *wgpu.SurfaceConfiguration

	frames FrameTimes

	width  uint32
	height uint32
}

type ContextOptions struct {
	// VSync pins the surface to the vertical sync locked present
	// mode. If false, the first present mode reported by the surface
	// is used instead.
	VSync bool
}

// NewContext negotiates an adapter and device for the given window and
// configures its surface. Negotiation failures are returned as errors,
// there is no fallback to another backend.
func NewContext(win glint.Window, opts ContextOptions) (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	ctx.Surface = instance.CreateSurface(win.SurfaceDescriptor())

	// create an adapter that can render to the Surface
	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    ctx.Surface,
	})

	if err != nil {
		err = fmt.Errorf("request adapter: %w", err)
		return
	}

	// get a Device with the default settings
	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		err = fmt.Errorf("request device: %w", err)
		return
	}

	ctx.Queue = ctx.Device.GetQueue()

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	presentMode := caps.PresentModes[0]
	if opts.VSync {
		presentMode = wgpu.PresentModeFifo
	}

	width, height := win.Size()

	ctx.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      pickFormat(caps.Formats),
		Width:       width,
		Height:      height,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],

		// allow the backend to pipeline up to two frames
		DesiredMaximumFrameLatency: 2,
	}

	ctx.width, ctx.height = width, height
	ctx.Surface.Configure(ctx.Device, ctx.config)

	return ctx, nil
}

// Resize reconfigures the surface for a new framebuffer size. A zero
// width or height is ignored, those show up during minimize on some
// platforms.
func (c *Context) Resize(width, height uint32) {
	if !c.applySize(width, height) {
		return
	}

	c.Surface.Configure(c.Device, c.config)
}

// applySize updates the stored dimensions and reports whether the
// surface has to be reconfigured.
func (c *Context) applySize(width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}

	c.width, c.height = width, height
	c.config.Width = width
	c.config.Height = height

	return true
}

// Size returns the dimensions the surface is currently configured with.
func (c *Context) Size() (uint32, uint32) {
	return c.width, c.height
}

// Format returns the texture format the surface is configured with.
func (c *Context) Format() wgpu.TextureFormat {
	return c.config.Format
}

func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}

	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
}
