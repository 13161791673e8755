package game

// AnimState is the animation finite-state machine state. Exactly one is
// current at a time.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimJump
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	}
	return "unknown"
}

// clipSpec is the per-state transition table entry: loop mode, playback
// rate scale and cross-fade length into the state.
type clipSpec struct {
	once  bool // play once and clamp on the final frame
	rate  float64
	blend float64 // seconds
}

var clipSpecs = [4]clipSpec{
	AnimIdle: {rate: 1.0, blend: BlendDuration},
	AnimWalk: {rate: 1.0, blend: BlendDuration},
	AnimRun:  {rate: 1.3, blend: BlendDuration},
	AnimJump: {once: true, rate: 1.0, blend: BlendDuration},
}

// Animator runs the clip state machine with a time-domain cross-fade: the
// previous clip keeps playing and fades out while the new clip fades in.
type Animator struct {
	current AnimState
	prev    AnimState

	time     float64 // current clip local time
	prevTime float64 // previous clip local time, still advancing in a blend
	blend    float64 // seconds into the active blend
	blending bool
	clamped  bool // play-once clip finished
}

func NewAnimator() *Animator {
	return &Animator{current: AnimIdle}
}

func (a *Animator) State() AnimState { return a.current }

// Set switches the active clip. Re-selecting the current state is a no-op;
// otherwise the new clip starts at time zero with its table-configured
// loop mode and a cross-fade from the previous clip begins.
func (a *Animator) Set(s AnimState) {
	if s == a.current {
		return
	}
	a.prev = a.current
	a.prevTime = a.time
	a.current = s
	a.time = 0
	a.blend = 0
	a.blending = true
	a.clamped = false
}

// Advance moves clip playback and the blend forward by dt seconds.
func (a *Animator) Advance(dt float64) {
	spec := clipSpecs[a.current]
	if !a.clamped {
		a.time += dt * spec.rate
	}
	if spec.once && a.time >= clipLength(a.current) {
		a.time = clipLength(a.current)
		a.clamped = true
	}
	if a.blending {
		a.prevTime += dt * clipSpecs[a.prev].rate
		a.blend += dt
		if a.blend >= spec.blend {
			a.blending = false
		}
	}
}

// Weight is the blend-in weight of the current clip, in [0,1]. The
// previous clip renders with the complement while a blend is running.
func (a *Animator) Weight() float64 {
	if !a.blending {
		return 1
	}
	spec := clipSpecs[a.current]
	if spec.blend <= 0 {
		return 1
	}
	return clampF(a.blend/spec.blend, 0, 1)
}

// Playback reports what the renderer should sample this frame: the current
// clip time plus, mid-blend, the decaying previous clip.
func (a *Animator) Playback() (cur AnimState, curTime float64, prev AnimState, prevTime float64, weight float64) {
	return a.current, a.time, a.prev, a.prevTime, a.Weight()
}

// clipLength is the nominal clip length used for play-once clamping.
// Real clip lengths come from the loaded model; the jump clip in the
// shipped set is 1.2s and the clamp only needs to be monotone with it.
func clipLength(s AnimState) float64 {
	if s == AnimJump {
		return 1.2
	}
	return 1.0
}
