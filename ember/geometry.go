package ember

// Vertex is the layout of the quad vertex buffer: a position in clip
// space and an rgb color that is interpolated across the triangle.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// The unit quad: four corners, split into two counter clockwise
// triangles by the index buffer.
var (
	QuadVertices = []Vertex{
		{Position: [3]float32{-0.5, 0.5, 0}, Color: [3]float32{1, 0, 0}},
		{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},
		{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},
		{Position: [3]float32{0.5, 0.5, 0}, Color: [3]float32{1, 1, 0}},
	}

	QuadIndices = []uint16{0, 1, 2, 0, 2, 3}
)
