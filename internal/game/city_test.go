package game

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func newTestCity(t *testing.T, scene *fakeScene, seed uint64) *CityStreamer {
	t.Helper()
	return NewCityStreamer(scene, &fakeLoader{}, seed, golog.NewTestLogger(t))
}

func TestCityUpdateIdempotent(t *testing.T) {
	scene := newFakeScene()
	c := newTestCity(t, scene, 7)
	pos := mgl64.Vec3{0, LandingHeight, 0}

	c.Update(pos)
	adds, removes := scene.adds, scene.removes
	activeBefore := len(c.active)
	processedBefore := len(c.processed)

	c.Update(pos)
	test.That(t, scene.adds, test.ShouldEqual, adds)
	test.That(t, scene.removes, test.ShouldEqual, removes)
	test.That(t, len(c.active), test.ShouldEqual, activeBefore)
	test.That(t, len(c.processed), test.ShouldEqual, processedBefore)
}

func TestCityProcessedSurvivesEviction(t *testing.T) {
	scene := newFakeScene()
	c := newTestCity(t, scene, 7)

	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	test.That(t, len(c.processed), test.ShouldEqual, 25)

	// Find a cell that spawned a building.
	var spawned CellKey
	found := false
	for key := range c.active {
		spawned = key
		found = true
		break
	}
	test.That(t, found, test.ShouldBeTrue)

	// Walk far away: the building is evicted but the cell stays processed.
	far := mgl64.Vec3{500, LandingHeight, 500}
	c.Update(far)
	_, stillActive := c.active[spawned]
	test.That(t, stillActive, test.ShouldBeFalse)
	test.That(t, c.processed[spawned], test.ShouldBeTrue)

	// Coming back must not recreate it: the decision was final.
	addsBefore := scene.adds
	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	_, recreated := c.active[spawned]
	test.That(t, recreated, test.ShouldBeFalse)
	test.That(t, scene.adds, test.ShouldEqual, addsBefore)
}

func TestCityEvictionRadius(t *testing.T) {
	scene := newFakeScene()
	c := newTestCity(t, scene, 3)

	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	c.Update(mgl64.Vec3{500, LandingHeight, 500})

	px := cellOf(500, GridSize)
	pz := cellOf(500, GridSize)
	for key := range c.active {
		test.That(t, chebyshev(key.X, key.Z, px, pz), test.ShouldBeLessThanOrEqualTo, CityEvictRadius)
	}
}

func TestCitySpawnExclusionZone(t *testing.T) {
	scene := newFakeScene()
	c := newTestCity(t, scene, 11)

	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	for key := range c.active {
		cx := (float64(key.X) + 0.5) * GridSize
		cz := (float64(key.Z) + 0.5) * GridSize
		test.That(t, mgl64.Vec2{cx, cz}.Len(), test.ShouldBeGreaterThanOrEqualTo, SpawnClearRadius)
	}
}

func TestCitySpawnDeterministicPerSeed(t *testing.T) {
	a := newTestCity(t, newFakeScene(), 42)
	b := newTestCity(t, newFakeScene(), 42)
	pos := mgl64.Vec3{100, LandingHeight, -100}

	a.Update(pos)
	b.Update(pos)

	test.That(t, len(a.active), test.ShouldEqual, len(b.active))
	for key, ba := range a.active {
		bb, ok := b.active[key]
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, bb.Variant, test.ShouldEqual, ba.Variant)
		test.That(t, bb.Tf, test.ShouldResemble, ba.Tf)
	}
}

func TestCityBuildingsStayInsideCells(t *testing.T) {
	c := newTestCity(t, newFakeScene(), 99)
	c.Update(mgl64.Vec3{200, LandingHeight, 200})

	for key, b := range c.active {
		cx := (float64(key.X) + 0.5) * GridSize
		cz := (float64(key.Z) + 0.5) * GridSize
		half := (float64(GridSize) - BuildingSpacing) / 2
		test.That(t, b.Tf.Pos.X(), test.ShouldBeGreaterThanOrEqualTo, cx-half)
		test.That(t, b.Tf.Pos.X(), test.ShouldBeLessThanOrEqualTo, cx+half)
		test.That(t, b.Tf.Pos.Z(), test.ShouldBeGreaterThanOrEqualTo, cz-half)
		test.That(t, b.Tf.Pos.Z(), test.ShouldBeLessThanOrEqualTo, cz+half)
		// Scale jitter stays within ±10% of the prefab base.
		base := buildingVariants[b.Variant].baseScale
		test.That(t, b.Tf.Scale, test.ShouldBeGreaterThanOrEqualTo, base*0.9)
		test.That(t, b.Tf.Scale, test.ShouldBeLessThanOrEqualTo, base*1.1)
	}
}

func TestCityLoadFailureDisablesStreaming(t *testing.T) {
	scene := newFakeScene()
	c := NewCityStreamer(scene, &fakeLoader{staticErr: errors.New("missing prefab")}, 5, golog.NewTestLogger(t))

	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	c.Update(mgl64.Vec3{0, LandingHeight, 0})

	test.That(t, scene.adds, test.ShouldEqual, 0)
	test.That(t, len(c.processed), test.ShouldEqual, 0)
	test.That(t, c.failed, test.ShouldBeTrue)
}

func TestCityNotReadyNoop(t *testing.T) {
	scene := newFakeScene()
	c := NewCityStreamer(scene, &fakeLoader{hang: true}, 5, golog.NewTestLogger(t))

	c.Update(mgl64.Vec3{0, LandingHeight, 0})
	test.That(t, scene.adds, test.ShouldEqual, 0)
	test.That(t, len(c.processed), test.ShouldEqual, 0)
}

func TestCollisionBoundary(t *testing.T) {
	city := emptyCity()
	placeBuilding(city, CellKey{}, mgl64.Vec3{0, 0, 0}, 4, 20, 1)
	index := NewCollisionIndex(city)

	// Threshold = halfWidth + radius + buffer = 4 + 1.5 + 1 = 6.5.
	const eps = 1e-9
	inside := mgl64.Vec3{6.5 - eps, LandingHeight, 0}
	outside := mgl64.Vec3{6.5 + eps, LandingHeight, 0}
	test.That(t, index.Intersects(inside, PlayerRadius), test.ShouldBeTrue)
	test.That(t, index.Intersects(outside, PlayerRadius), test.ShouldBeFalse)
}

func TestCollisionIgnoresRotation(t *testing.T) {
	cityA := emptyCity()
	placeBuilding(cityA, CellKey{}, mgl64.Vec3{0, 0, 0}, 4, 20, 1)
	cityB := emptyCity()
	placeBuilding(cityB, CellKey{}, mgl64.Vec3{0, 0, 0}, 4, 20, 1)
	cityB.active[CellKey{}].Tf.Yaw = 1.2

	p := mgl64.Vec3{5, LandingHeight, 2}
	test.That(t, NewCollisionIndex(cityA).Intersects(p, PlayerRadius),
		test.ShouldEqual, NewCollisionIndex(cityB).Intersects(p, PlayerRadius))
}

func TestRayBlocked(t *testing.T) {
	city := emptyCity()
	placeBuilding(city, CellKey{}, mgl64.Vec3{0, 0, -10}, 4, 20, 0)
	index := NewCollisionIndex(city)

	from := mgl64.Vec3{0, 3, 0}
	behind := mgl64.Vec3{0, 3, -20}
	aside := mgl64.Vec3{20, 3, 0}
	above := mgl64.Vec3{0, 30, -20}

	test.That(t, index.RayBlocked(from, behind), test.ShouldBeTrue)
	test.That(t, index.RayBlocked(from, aside), test.ShouldBeFalse)
	// The march point clears the roofline partway: still blocked early on.
	test.That(t, index.RayBlocked(from, above), test.ShouldBeTrue)
}
