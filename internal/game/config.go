package game

// Ground tile streaming (world units).
const (
	TileSize        = 40
	TileWindow      = 2 // 5x5 ring around the player's cell
	TileEvictRadius = 3 // Chebyshev cells
)

// Building grid streaming.
const (
	GridSize         = 25
	CityWindow       = 2
	CityEvictRadius  = 3
	BuildingChance   = 0.8  // per-cell spawn probability
	SpawnClearRadius = 30.0 // no buildings this close to the origin
	BuildingSpacing  = 6.0  // margin kept free inside each cell
)

// Player kinematics. Velocities are per simulation tick, not per second;
// the game runs one tick per display refresh.
const (
	PlayerRadius     = 1.5
	LandingHeight    = 2.0
	RunSpeed         = 0.15
	WalkBackSpeed    = 0.075
	RotateSpeed      = 0.05 // rad/tick
	JumpSpeed        = 0.19 // initial vertical velocity
	Gravity          = 0.0045
	MaxJumpTicks     = 90
	JumpForwardSpeed = 0.22
	JumpSpeedDecay   = 0.7 // fraction of forward speed lost over a full jump
)

// Chase camera.
const (
	CameraBaseline  = 3.0 // target height, pinned to kill jump bobbing
	CameraSmoothing = 0.1 // exponential factor per tick, both stages
)

// Snow.
const (
	SnowflakeCount = 600
	SnowFallStep   = 0.12 // units/tick
	SnowSwayAmp    = 0.02
	SnowSwayFreq   = 1.1 // rad/s of wall-clock time
	SnowRadius     = 45.0
	SnowCeiling    = 35.0
)

// Animation cross-fade length in seconds.
const BlendDuration = 0.25

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)
