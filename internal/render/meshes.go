package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// uploadMesh creates a VAO/VBO pair for interleaved position+normal data.
func uploadMesh(verts []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)
	return vao, vbo
}

// cubeVerts builds a unit box: x,z in [-0.5,0.5], y in [0,1], so uniform
// scaling gives a building footprint centered on its position with the
// base on the ground.
func cubeVerts() []float32 {
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, 0, 0.5}, {0.5, 0, 0.5}, {0.5, 1, 0.5}, {-0.5, 1, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, 0, -0.5}, {-0.5, 0, -0.5}, {-0.5, 1, -0.5}, {0.5, 1, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, 0, 0.5}, {0.5, 0, -0.5}, {0.5, 1, -0.5}, {0.5, 1, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, 0, -0.5}, {-0.5, 0, 0.5}, {-0.5, 1, 0.5}, {-0.5, 1, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 1, 0.5}, {0.5, 1, 0.5}, {0.5, 1, -0.5}, {-0.5, 1, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, 0, -0.5}, {0.5, 0, -0.5}, {0.5, 0, 0.5}, {-0.5, 0, 0.5}}},
	}

	verts := make([]float32, 0, 36*6)
	push := func(f face, i int) {
		c := f.corners[i]
		verts = append(verts, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
	}
	for _, f := range faces {
		for _, i := range []int{0, 1, 2, 0, 2, 3} {
			push(f, i)
		}
	}
	return verts
}

// planeVerts builds a unit ground quad spanning [0,1] in x and z, normal
// up; tiles scale it to TileSize and place it at the cell origin.
func planeVerts() []float32 {
	n := [3]float32{0, 1, 0}
	c := [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}
	verts := make([]float32, 0, 6*6)
	for _, i := range []int{0, 2, 1, 0, 3, 2} {
		v := c[i]
		verts = append(verts, v[0], v[1], v[2], n[0], n[1], n[2])
	}
	return verts
}
