package game

import "github.com/go-gl/mathgl/mgl64"

// WorldStreamer keeps ground tiles alive in a ring around the player.
// Unlike buildings, tiles carry no session memory: a key re-entering the
// window is recreated identically (its shape is a pure function of the
// key), so eviction is purely a resource measure.
type WorldStreamer struct {
	scene  Scene
	seed   uint64
	active map[CellKey]Handle
}

func NewWorldStreamer(scene Scene, seed uint64) *WorldStreamer {
	return &WorldStreamer{
		scene:  scene,
		seed:   seed,
		active: make(map[CellKey]Handle),
	}
}

// Update materializes the 5x5 tile window around the player and drops
// tiles beyond the eviction radius.
func (w *WorldStreamer) Update(playerPos mgl64.Vec3) {
	px := cellOf(playerPos.X(), TileSize)
	pz := cellOf(playerPos.Z(), TileSize)

	for dz := -TileWindow; dz <= TileWindow; dz++ {
		for dx := -TileWindow; dx <= TileWindow; dx++ {
			key := CellKey{X: px + dx, Z: pz + dz}
			if _, ok := w.active[key]; ok {
				continue
			}
			variant := int(hash2D(w.seed, key.X, key.Z) % 4)
			tf := Transform{
				Pos:   mgl64.Vec3{float64(key.X) * TileSize, 0, float64(key.Z) * TileSize},
				Scale: 1,
			}
			w.active[key] = w.scene.AddInstance(KindGroundTile, variant, tf)
		}
	}

	for key, h := range w.active {
		if chebyshev(key.X, key.Z, px, pz) > TileEvictRadius {
			w.scene.Remove(h)
			delete(w.active, key)
		}
	}
}

// ActiveCount reports the number of live tiles.
func (w *WorldStreamer) ActiveCount() int { return len(w.active) }
