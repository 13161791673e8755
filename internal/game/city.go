package game

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey is a composite integer grid coordinate. Tiles and building
// cells both key on it, each on their own lattice.
type CellKey struct {
	X, Z int
}

// buildingVariant describes one building prefab: its model name, base
// scale, collider proportions and the per-prefab trigger buffer added to
// the collision test (the prefabs overhang their footprints differently).
type buildingVariant struct {
	model     string
	baseScale float64
	halfWidth float64 // collider half-width at scale 1
	height    float64 // collider height at scale 1
	buffer    float64
}

var buildingVariants = []buildingVariant{
	{model: "tower", baseScale: 1.0, halfWidth: 4.2, height: 22, buffer: 0.6},
	{model: "block", baseScale: 1.1, halfWidth: 5.0, height: 12, buffer: 1.1},
	{model: "slab", baseScale: 0.9, halfWidth: 5.6, height: 9, buffer: 0.8},
	{model: "shop", baseScale: 1.0, halfWidth: 4.8, height: 6, buffer: 1.3},
}

// Building is one placed instance plus its collision volume. The volume is
// a vertical cylinder: placement rotation never affects collision.
type Building struct {
	Variant   int
	Tf        Transform
	HalfWidth float64
	Height    float64
	Buffer    float64

	handle Handle
}

// CityStreamer spawns and evicts building instances on a coarse grid
// around the player. Each cell is decided exactly once per session: the
// processed set memoizes the spawn-or-skip roll so an evicted cell never
// regenerates differently (or at all) on re-entry.
type CityStreamer struct {
	scene  Scene
	logger golog.Logger
	seed   uint64

	processed map[CellKey]bool
	active    map[CellKey]*Building

	loads  []<-chan StaticResult
	ready  bool
	failed bool
}

// NewCityStreamer starts one model load per prefab. The streamer stays a
// no-op until every load lands; a single failure parks it permanently
// (logged, never retried).
func NewCityStreamer(scene Scene, loader Loader, seed uint64, logger golog.Logger) *CityStreamer {
	c := &CityStreamer{
		scene:     scene,
		logger:    logger,
		seed:      seed,
		processed: make(map[CellKey]bool),
		active:    make(map[CellKey]*Building),
	}
	for _, v := range buildingVariants {
		c.loads = append(c.loads, loader.LoadStaticModel(v.model))
	}
	return c
}

func (c *CityStreamer) pollReady() bool {
	if c.ready || c.failed {
		return c.ready
	}
	remaining := c.loads[:0]
	for _, ch := range c.loads {
		select {
		case res := <-ch:
			if res.Err != nil {
				c.failed = true
				c.loads = nil
				c.logger.Warnw("building model load failed, city streaming disabled", "error", res.Err)
				return false
			}
		default:
			remaining = append(remaining, ch)
		}
	}
	c.loads = remaining
	if len(c.loads) == 0 {
		c.ready = true
		c.logger.Infow("building models ready", "variants", len(buildingVariants))
	}
	return c.ready
}

// Update decides every unprocessed cell in the 5x5 window around the
// player and evicts active buildings that fell out of range. Calling it
// twice with the same position changes nothing the second time.
func (c *CityStreamer) Update(playerPos mgl64.Vec3) {
	if !c.pollReady() {
		return
	}
	px := cellOf(playerPos.X(), GridSize)
	pz := cellOf(playerPos.Z(), GridSize)

	for dz := -CityWindow; dz <= CityWindow; dz++ {
		for dx := -CityWindow; dx <= CityWindow; dx++ {
			key := CellKey{X: px + dx, Z: pz + dz}
			if c.processed[key] {
				continue
			}
			c.processed[key] = true
			c.decide(key)
		}
	}

	for key, b := range c.active {
		if chebyshev(key.X, key.Z, px, pz) > CityEvictRadius {
			c.scene.Remove(b.handle)
			delete(c.active, key)
		}
	}
}

// decide rolls the one-shot spawn decision for a cell. All randomness is a
// pure function of (seed, cell), so the roll would come out the same even
// without the processed memo.
func (c *CityStreamer) decide(key CellKey) {
	cx := (float64(key.X) + 0.5) * GridSize
	cz := (float64(key.Z) + 0.5) * GridSize
	if math.Hypot(cx, cz) < SpawnClearRadius {
		return // keep the spawn point clear
	}

	r := NewRand(hash2D(c.seed, key.X, key.Z))
	if r.Float64() >= BuildingChance {
		return
	}

	variant := r.Intn(len(buildingVariants))
	v := buildingVariants[variant]
	rot := float64(r.Intn(4)) * (math.Pi / 2)
	scale := v.baseScale * (0.9 + 0.2*r.Float64())

	// Offset inside the cell, leaving the spacing margin so neighbours
	// cannot overlap.
	usable := float64(GridSize) - BuildingSpacing
	ox := r.RangeF(0, usable) - usable/2
	oz := r.RangeF(0, usable) - usable/2

	tf := Transform{
		Pos:   mgl64.Vec3{cx + ox, 0, cz + oz},
		Yaw:   rot,
		Scale: scale,
	}
	b := &Building{
		Variant:   variant,
		Tf:        tf,
		HalfWidth: v.halfWidth * scale,
		Height:    v.height * scale,
		Buffer:    v.buffer,
	}
	b.handle = c.scene.AddInstance(KindBuilding, variant, tf)
	c.active[key] = b
}

// ActiveCount reports how many buildings are currently placed in the scene.
func (c *CityStreamer) ActiveCount() int { return len(c.active) }
