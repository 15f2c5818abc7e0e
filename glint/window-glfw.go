package glint

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if os.Getenv("FIRSTFRAME_PROFILE") == "1" {
		w.prof = profile.Start(profile.CPUProfile)
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.push(Resized{Width: uint32(width), Height: uint32(height)})
	})

	return w, nil
}

func (g *glfwWindow) Size() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler Handler) error {
	width, height := g.Size()
	g.queue.push(Created{Width: width, Height: height})

	for {
		if err := g.queue.drain(handler); err != nil {
			if errors.Is(err, Stop) {
				return nil
			}

			return err
		}

		glfw.PollEvents()

		if g.win.ShouldClose() {
			g.queue.push(CloseRequested{})
			continue
		}

		// schedule the next frame right away
		g.queue.push(Redraw{})
	}
}
