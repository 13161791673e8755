package game

import (
	"math"

	"github.com/benbjohnson/clock"
	"github.com/go-gl/mathgl/mgl64"
)

// WeatherField simulates falling snow in a fixed-size position buffer.
// Flakes have no identity beyond their slot and respawn at the ceiling
// near the player's current position once they reach the ground. The
// horizontal sway phase runs on wall-clock time while the fall rate is
// per-tick; the asymmetry is inherited behavior and kept as-is.
type WeatherField struct {
	clk clock.Clock
	rng *Rand
	pos []mgl64.Vec3
}

// NewWeatherField scatters the initial buffer around the origin and
// registers it with the scene. The scene reads the same slice every frame.
func NewWeatherField(scene Scene, clk clock.Clock, seed uint64) *WeatherField {
	w := &WeatherField{
		clk: clk,
		rng: NewRand(seed ^ 0x57A7),
		pos: make([]mgl64.Vec3, SnowflakeCount),
	}
	for i := range w.pos {
		w.pos[i] = mgl64.Vec3{
			w.rng.RangeF(-SnowRadius, SnowRadius),
			w.rng.RangeF(0, SnowCeiling),
			w.rng.RangeF(-SnowRadius, SnowRadius),
		}
	}
	scene.AddPoints(w.pos)
	return w
}

// Update advances every flake one tick: constant fall, sinusoidal sway
// keyed on wall-clock time and slot index, respawn at the ceiling within
// SnowRadius of the player when a flake reaches the ground.
func (w *WeatherField) Update(playerPos mgl64.Vec3) {
	now := float64(w.clk.Now().UnixNano()) / 1e9
	for i := range w.pos {
		p := w.pos[i]
		y := p.Y() - SnowFallStep
		if y < 0 {
			w.pos[i] = mgl64.Vec3{
				playerPos.X() + w.rng.RangeF(-SnowRadius, SnowRadius),
				SnowCeiling,
				playerPos.Z() + w.rng.RangeF(-SnowRadius, SnowRadius),
			}
			continue
		}
		sway := math.Sin(now*SnowSwayFreq+float64(i)) * SnowSwayAmp
		w.pos[i] = mgl64.Vec3{p.X() + sway, y, p.Z()}
	}
}

// Positions exposes the live buffer; callers must not resize it.
func (w *WeatherField) Positions() []mgl64.Vec3 { return w.pos }
