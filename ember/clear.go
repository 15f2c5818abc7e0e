package ember

// Clear renders frames that only clear the surface. It is the smallest
// possible renderer and the first step towards Quad.
type Clear struct {
	ctx *Context
}

func NewClear(ctx *Context) *Clear {
	return &Clear{ctx: ctx}
}

// Render clears the next surface image and presents it.
func (c *Clear) Render() error {
	return c.ctx.RenderFrame(nil)
}
