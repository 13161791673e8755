package render

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"snowcity/internal/game"
)

const (
	fogFar   = 160.0
	nearClip = 0.5
	farClip  = 400.0
	fovY     = math.Pi / 4
)

var skyColor = [3]float32{0.62, 0.66, 0.72}

type rgb struct{ r, g, b float32 }

// Visual palettes per instance kind. Building variants line up with the
// prefab order the simulation spawns with; tile variants are subtle
// pavement shades so the grid doesn't read as a single slab.
var (
	buildingColors = []rgb{
		{0.45, 0.47, 0.52},
		{0.52, 0.44, 0.40},
		{0.40, 0.43, 0.48},
		{0.55, 0.52, 0.46},
	}
	tileColors = []rgb{
		{0.82, 0.84, 0.87},
		{0.79, 0.81, 0.85},
		{0.84, 0.86, 0.88},
		{0.80, 0.83, 0.85},
	}
	playerColor = rgb{0.75, 0.25, 0.22}
)

// buildingDims are the visual box extents (half-width, height) per prefab
// at scale 1, matching the collider proportions the simulation uses.
var buildingDims = [][2]float32{
	{4.2, 22},
	{5.0, 12},
	{5.6, 9},
	{4.8, 6},
}

type instance struct {
	kind    game.Kind
	variant int
	tf      game.Transform
}

// Renderer draws the scene-graph handles the simulation maintains. It
// implements game.Scene; the simulation never issues draw calls.
type Renderer struct {
	prog   uint32
	uProj  int32
	uView  int32
	uModel int32
	uColor int32
	uFog   int32
	uFogF  int32

	pointProg  uint32
	pUProj     int32
	pUView     int32
	pointVAO   uint32
	pointVBO   uint32
	pointCount int

	cubeVAO  uint32
	cubeVBO  uint32
	planeVAO uint32
	planeVBO uint32

	instances map[game.Handle]*instance
	points    []mgl64.Vec3
	next      game.Handle

	eye, look mgl64.Vec3
	fbW, fbH  int

	pointBuf []float32
}

func NewRenderer(fbW, fbH int) (*Renderer, error) {
	prog, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, errors.Wrap(err, "mesh program")
	}
	pointProg, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		gl.DeleteProgram(prog)
		return nil, errors.Wrap(err, "point program")
	}

	r := &Renderer{
		prog:      prog,
		pointProg: pointProg,
		instances: make(map[game.Handle]*instance),
		next:      1,
		fbW:       fbW,
		fbH:       fbH,
	}

	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uFog = gl.GetUniformLocation(prog, gl.Str("uFogColor\x00"))
	r.uFogF = gl.GetUniformLocation(prog, gl.Str("uFogFar\x00"))
	gl.Uniform3f(r.uFog, skyColor[0], skyColor[1], skyColor[2])
	gl.Uniform1f(r.uFogF, fogFar)

	gl.UseProgram(pointProg)
	r.pUProj = gl.GetUniformLocation(pointProg, gl.Str("uProj\x00"))
	r.pUView = gl.GetUniformLocation(pointProg, gl.Str("uView\x00"))

	r.cubeVAO, r.cubeVBO = uploadMesh(cubeVerts())
	r.planeVAO, r.planeVBO = uploadMesh(planeVerts())

	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(skyColor[0], skyColor[1], skyColor[2], 1.0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.planeVBO, r.pointVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeVAO, r.planeVAO, r.pointVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.prog, r.pointProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Resize updates the surface and the projection aspect.
func (r *Renderer) Resize(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	r.fbW = fbW
	r.fbH = fbH
}

// --- game.Scene ---

func (r *Renderer) AddInstance(kind game.Kind, variant int, tf game.Transform) game.Handle {
	h := r.next
	r.next++
	r.instances[h] = &instance{kind: kind, variant: variant, tf: tf}
	return h
}

func (r *Renderer) SetTransform(h game.Handle, tf game.Transform) {
	if inst, ok := r.instances[h]; ok {
		inst.tf = tf
	}
}

func (r *Renderer) Remove(h game.Handle) {
	delete(r.instances, h)
}

func (r *Renderer) AddPoints(positions []mgl64.Vec3) game.Handle {
	h := r.next
	r.next++
	r.points = positions
	return h
}

func (r *Renderer) SetCamera(eye, look mgl64.Vec3) {
	r.eye = eye
	r.look = look
}

// Draw renders one frame from the current handle set and camera pose.
func (r *Renderer) Draw() {
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(r.fbW) / float32(r.fbH)
	proj := mgl32.Perspective(float32(fovY), aspect, nearClip, farClip)
	view := mgl32.LookAtV(vec32(r.eye), vec32(r.look), mgl32.Vec3{0, 1, 0})

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])

	for _, inst := range r.instances {
		model, col := r.modelFor(inst)
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.Uniform3f(r.uColor, col.r, col.g, col.b)
		switch inst.kind {
		case game.KindGroundTile:
			gl.BindVertexArray(r.planeVAO)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		default:
			gl.BindVertexArray(r.cubeVAO)
			gl.DrawArrays(gl.TRIANGLES, 0, 36)
		}
	}

	r.drawSnow(proj, view)
	gl.BindVertexArray(0)
}

func (r *Renderer) modelFor(inst *instance) (mgl32.Mat4, rgb) {
	tf := inst.tf
	pos := vec32(tf.Pos)
	switch inst.kind {
	case game.KindBuilding:
		d := buildingDims[inst.variant%len(buildingDims)]
		s := float32(tf.Scale)
		m := mgl32.Translate3D(pos.X(), 0, pos.Z()).
			Mul4(mgl32.HomogRotate3DY(float32(tf.Yaw))).
			Mul4(mgl32.Scale3D(d[0]*2*s, d[1]*s, d[0]*2*s))
		return m, buildingColors[inst.variant%len(buildingColors)]
	case game.KindGroundTile:
		m := mgl32.Translate3D(pos.X(), 0, pos.Z()).
			Mul4(mgl32.Scale3D(game.TileSize, 1, game.TileSize))
		return m, tileColors[inst.variant%len(tileColors)]
	default: // player
		m := mgl32.Translate3D(pos.X(), pos.Y()-game.LandingHeight, pos.Z()).
			Mul4(mgl32.HomogRotate3DY(float32(tf.Yaw))).
			Mul4(mgl32.Scale3D(1.4, 2.4, 1.4))
		return m, playerColor
	}
}

func (r *Renderer) drawSnow(proj, view mgl32.Mat4) {
	if len(r.points) == 0 {
		return
	}
	r.pointBuf = r.pointBuf[:0]
	for _, p := range r.points {
		r.pointBuf = append(r.pointBuf, float32(p.X()), float32(p.Y()), float32(p.Z()))
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.UseProgram(r.pointProg)
	gl.UniformMatrix4fv(r.pUProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.pUView, 1, false, &view[0])

	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	if len(r.points) != r.pointCount {
		gl.BufferData(gl.ARRAY_BUFFER, len(r.pointBuf)*4, gl.Ptr(&r.pointBuf[0]), gl.STREAM_DRAW)
		r.pointCount = len(r.points)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.pointBuf)*4, gl.Ptr(&r.pointBuf[0]))
	}
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.points)))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
