package ember

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed quad.wgsl
var quadShaderCode string

// Quad renders a single indexed quad with per vertex colors on top of
// the cleared surface. The geometry is uploaded once at construction.
type Quad struct {
	ctx *Context

	pipelineCache *PipelineCache[quadPipelineConfig]

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
}

func NewQuad(ctx *Context) (*Quad, error) {
	bufVertices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Vertices",
		Contents: wgpu.ToBytes(QuadVertices),
		Usage:    wgpu.BufferUsageVertex,
	})

	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	bufIndices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Indices",
		Contents: wgpu.ToBytes(QuadIndices),
		Usage:    wgpu.BufferUsageIndex,
	})

	if err != nil {
		bufVertices.Release()
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	q := &Quad{
		ctx:         ctx,
		bufVertices: bufVertices,
		bufIndices:  bufIndices,
	}

	q.pipelineCache = NewPipelineCache[quadPipelineConfig](ctx)

	return q, nil
}

// Render draws the quad into the next surface image and presents it.
func (q *Quad) Render() error {
	pipeline, err := q.pipelineCache.Get(quadPipelineConfig{
		TargetFormat: q.ctx.Format(),
	})

	if err != nil {
		return fmt.Errorf("get quad pipeline: %w", err)
	}

	return q.ctx.RenderFrame(func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(pipeline)
		pass.SetVertexBuffer(0, q.bufVertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(q.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(QuadIndices)), 1, 0, 0, 0)
	})
}

func (q *Quad) Release() {
	if q.bufVertices != nil {
		q.bufVertices.Release()
		q.bufVertices = nil
	}

	if q.bufIndices != nil {
		q.bufIndices.Release()
		q.bufIndices = nil
	}
}

type quadPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf quadPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for quad",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Quad.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: quadShaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile quad shader: %w", err)
	}

	defer shader.Release()

	// the quad has no uniforms or textures
	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Quad.PipelineLayout",
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	defer layout.Release()

	blendState := wgpu.BlendStateReplace

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("Quad.%s", conf.TargetFormat),
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
							ShaderLocation: 0,
						},
						{
							// color
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &blendState,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build quad pipeline: %w", err)
	}

	return pipeline, nil
}
