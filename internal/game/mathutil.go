package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hash2D returns a deterministic 64-bit hash for (x,z) under the given seed.
func hash2D(seed uint64, x, z int) uint64 {
	ux := uint64(uint32(x))
	uz := uint64(uint32(z))
	h := seed
	h ^= ux * 0x9E3779B185EBCA87
	h ^= uz * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

// cellOf maps a world coordinate to its grid cell index (floor division).
func cellOf(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

func chebyshev(ax, az, bx, bz int) int {
	dx := abs(ax - bx)
	dz := abs(az - bz)
	if dx > dz {
		return dx
	}
	return dz
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerpVec moves a toward b by factor t (one exponential smoothing step).
func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// rotateY rotates v about the vertical axis by yaw radians.
func rotateY(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(yaw).Mul3x1(v)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
