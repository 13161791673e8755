package game

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies a renderable owned by the scene collaborator. Zero is
// never a valid handle.
type Handle uint64

// Kind selects which mesh family an instance renders with.
type Kind uint8

const (
	KindGroundTile Kind = iota
	KindBuilding
	KindPlayer
)

// Transform is a world placement: position, yaw about the vertical axis,
// uniform scale.
type Transform struct {
	Pos   mgl64.Vec3
	Yaw   float64
	Scale float64
}

// Scene is the narrow surface the simulation drives the renderer through.
// The core adds and removes handles and sets poses; it never draws.
type Scene interface {
	// AddInstance places a mesh instance. variant picks a deterministic
	// shape/color within the kind (building prefab, tile pattern).
	AddInstance(kind Kind, variant int, tf Transform) Handle
	SetTransform(h Handle, tf Transform)
	Remove(h Handle)

	// AddPoints registers a point buffer rendered every frame. The caller
	// keeps ownership and mutates the slice in place between frames.
	AddPoints(positions []mgl64.Vec3) Handle

	// SetCamera sets the view pose for the next frame.
	SetCamera(eye, look mgl64.Vec3)
}
