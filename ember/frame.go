package ember

import (
	"fmt"
	"time"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ClearColor is the color every frame starts from.
var ClearColor = wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// RenderFrame runs one acquire/encode/submit/present cycle: it clears
// the next surface image to ClearColor, lets record add draws to the
// render pass and presents the result. An acquisition failure aborts
// the frame before anything is submitted.
func (c *Context) RenderFrame(record func(pass *wgpu.RenderPassEncoder)) error {
	frame, err := c.Surface.GetCurrentTexture()
	if err != nil {
		return classifyAcquire(err)
	}

	defer func() {
		if frame != nil {
			frame.Release()
		}
	}()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer view.Release()

	encoder, err := c.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Frame"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: ClearColor,
			},
		},
	})

	defer func() {
		if pass != nil {
			pass.Release()
		}
	}()

	if record != nil {
		record(pass)
	}

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	// must release the pass before finishing the encoder
	pass.Release()
	pass = nil

	buf, err := encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	c.Submit(buf)
	c.Surface.Present()

	// present took ownership of the surface texture
	frame = nil

	c.frames.tick(time.Now())

	return nil
}

// Frames returns timing statistics over the frames presented so far.
func (c *Context) Frames() FrameTimes {
	return c.frames
}
