package game

import "github.com/go-gl/mathgl/mgl64"

// cameraOffsets are the candidate camera placements relative to the
// player, nominal first, then progressively higher and farther fallbacks.
// They are expressed in player-local space (+Z behind the player) and
// rotated by the player's yaw before testing.
var cameraOffsets = []mgl64.Vec3{
	{0, 4, 8},
	{0, 6, 10},
	{0, 8, 13},
	{0, 11, 16},
	{0, 14, 20},
}

// ChaseCamera follows the player with a two-stage exponential smoother:
// one stage damps switches between candidate offsets, the other damps the
// camera position itself. Both stages exist on purpose; obstruction can
// toggle the chosen offset every few ticks and a single stage jitters.
type ChaseCamera struct {
	scene Scene
	index *CollisionIndex

	offset mgl64.Vec3 // smoothed target offset
	pos    mgl64.Vec3 // smoothed world position
	look   mgl64.Vec3 // current look target
}

func NewChaseCamera(scene Scene, index *CollisionIndex) *ChaseCamera {
	nominal := cameraOffsets[0]
	return &ChaseCamera{
		scene:  scene,
		index:  index,
		offset: nominal,
		pos:    mgl64.Vec3{nominal.X(), CameraBaseline + nominal.Y(), nominal.Z()},
	}
}

// Update re-targets the camera for this tick. The target height is pinned
// to the baseline so jump arcs do not bob the view.
func (c *ChaseCamera) Update(playerPos mgl64.Vec3, yaw float64) {
	target := mgl64.Vec3{playerPos.X(), CameraBaseline, playerPos.Z()}

	chosen := c.chooseOffset(target, yaw)
	c.offset = lerpVec(c.offset, chosen, CameraSmoothing)
	c.pos = lerpVec(c.pos, target.Add(c.offset), CameraSmoothing)
	c.look = target

	c.scene.SetCamera(c.pos, c.look)
}

// chooseOffset returns the first candidate whose sight line from the
// target is clear of building geometry; if every candidate is obstructed
// the farthest fallback wins unconditionally.
func (c *ChaseCamera) chooseOffset(target mgl64.Vec3, yaw float64) mgl64.Vec3 {
	var last mgl64.Vec3
	for _, off := range cameraOffsets {
		world := rotateY(off, yaw)
		if !c.index.RayBlocked(target, target.Add(world)) {
			return world
		}
		last = world
	}
	return last
}

// Pose reports the current smoothed camera placement.
func (c *ChaseCamera) Pose() (eye, look mgl64.Vec3) {
	return c.pos, c.look
}
