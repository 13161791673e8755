package game

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// PlayerController owns the player transform, jump physics and animation
// state machine. Every candidate position is checked against the collision
// index before it is committed.
type PlayerController struct {
	scene  Scene
	index  *CollisionIndex
	logger golog.Logger

	pos mgl64.Vec3
	yaw float64

	// Jump state; meaningful only while jumping.
	jumping   bool
	velY      float64
	jumpTicks int

	anim *Animator

	model   *SkinnedModel
	modelCh <-chan SkinnedResult
	loadErr error
	handle  Handle
}

// NewPlayerController starts the character model load and places the
// player at the origin. The controller no-ops until the load lands.
func NewPlayerController(scene Scene, index *CollisionIndex, loader Loader, logger golog.Logger) *PlayerController {
	return &PlayerController{
		scene:   scene,
		index:   index,
		logger:  logger,
		pos:     mgl64.Vec3{0, LandingHeight, 0},
		anim:    NewAnimator(),
		modelCh: loader.LoadSkinnedModel("character"),
	}
}

func (p *PlayerController) Position() mgl64.Vec3 { return p.pos }
func (p *PlayerController) Yaw() float64         { return p.yaw }
func (p *PlayerController) Airborne() bool       { return p.jumping }
func (p *PlayerController) Animator() *Animator  { return p.anim }

// ready polls the pending model load. A failed character load is fatal to
// player readiness and is surfaced from Tick.
func (p *PlayerController) ready() bool {
	if p.model != nil {
		return true
	}
	if p.modelCh == nil {
		return false
	}
	select {
	case res := <-p.modelCh:
		p.modelCh = nil
		if res.Err != nil {
			p.loadErr = errors.Wrap(res.Err, "load character model")
			p.logger.Errorw("character model load failed", "error", res.Err)
			return false
		}
		p.model = res.Model
		p.handle = p.scene.AddInstance(KindPlayer, 0, p.transform())
		p.logger.Infow("character model ready", "clips", len(p.model.Clips))
		return true
	default:
		return false
	}
}

func (p *PlayerController) transform() Transform {
	return Transform{Pos: p.pos, Yaw: p.yaw, Scale: 1}
}

// Tick advances the player one simulation step. With no loaded model it is
// a no-op, except that a failed load is reported once as a fatal error.
func (p *PlayerController) Tick(dt float64, in Intent) error {
	if p.loadErr != nil {
		err := p.loadErr
		p.loadErr = nil
		return err
	}
	if !p.ready() {
		return nil
	}

	// Rotation always applies; it cannot collide.
	p.yaw += float64(in.Rotate) * RotateSpeed

	if in.Jump && !p.jumping {
		p.jump()
	}

	// Pick the animation target before moving so entering Walk/Run with a
	// move axis already held applies its first position update this tick.
	p.anim.Set(p.targetState(in))
	p.anim.Advance(dt)

	if in.Move != 0 {
		p.stepHorizontal(in.Move)
	}
	if p.jumping {
		p.stepVertical()
	}

	p.scene.SetTransform(p.handle, p.transform())
	return nil
}

// targetState derives the animation target in priority order:
// Jump > Run (forward) > Walk (backward) > Idle.
func (p *PlayerController) targetState(in Intent) AnimState {
	switch {
	case p.jumping:
		return AnimJump
	case in.Move > 0:
		return AnimRun
	case in.Move < 0:
		return AnimWalk
	default:
		return AnimIdle
	}
}

// jump starts a jump from the ground. Mid-air calls never reach here; the
// caller guards on p.jumping.
func (p *PlayerController) jump() {
	p.jumping = true
	p.velY = JumpSpeed
	p.jumpTicks = 0
	p.anim.Set(AnimJump)
}

// stepHorizontal moves along the facing direction if the collision index
// permits. The candidate keeps the current height.
func (p *PlayerController) stepHorizontal(axis int) {
	speed := RunSpeed
	if axis < 0 {
		speed = WalkBackSpeed
	}
	if p.jumping {
		progress := float64(p.jumpTicks) / float64(MaxJumpTicks)
		speed = JumpForwardSpeed * (1 - JumpSpeedDecay*progress)
	}

	step := speed * float64(axis)
	cand := mgl64.Vec3{
		p.pos.X() - math.Sin(p.yaw)*step,
		p.pos.Y(),
		p.pos.Z() - math.Cos(p.yaw)*step,
	}

	if p.index.Intersects(cand, PlayerRadius) {
		if p.jumping {
			// Clipping a building mid-air counts as a landing: kill most of
			// the vertical motion and put the player back on the ground.
			p.velY *= -0.5
			p.land()
		}
		return
	}
	p.pos = cand
}

// stepVertical integrates one tick of parabolic jump motion and ends the
// jump on touchdown or timeout, whichever comes first.
func (p *PlayerController) stepVertical() {
	p.velY -= Gravity
	p.pos = mgl64.Vec3{p.pos.X(), p.pos.Y() + p.velY, p.pos.Z()}
	p.jumpTicks++
	if p.pos.Y() <= LandingHeight || p.jumpTicks >= MaxJumpTicks {
		p.land()
	}
}

// land snaps to the landing height and discards the jump state.
func (p *PlayerController) land() {
	p.pos = mgl64.Vec3{p.pos.X(), LandingHeight, p.pos.Z()}
	p.velY = 0
	p.jumping = false
	p.jumpTicks = 0
}
