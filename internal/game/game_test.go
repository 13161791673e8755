package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// fakeScene records the handle operations the simulation performs.
type fakeScene struct {
	next      Handle
	instances map[Handle]Transform
	kinds     map[Handle]Kind
	adds      int
	removes   int
	points    []mgl64.Vec3
	eye, look mgl64.Vec3
	camSet    bool
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		next:      1,
		instances: make(map[Handle]Transform),
		kinds:     make(map[Handle]Kind),
	}
}

func (s *fakeScene) AddInstance(kind Kind, variant int, tf Transform) Handle {
	h := s.next
	s.next++
	s.instances[h] = tf
	s.kinds[h] = kind
	s.adds++
	return h
}

func (s *fakeScene) SetTransform(h Handle, tf Transform) {
	s.instances[h] = tf
}

func (s *fakeScene) Remove(h Handle) {
	delete(s.instances, h)
	delete(s.kinds, h)
	s.removes++
}

func (s *fakeScene) AddPoints(positions []mgl64.Vec3) Handle {
	s.points = positions
	h := s.next
	s.next++
	return h
}

func (s *fakeScene) SetCamera(eye, look mgl64.Vec3) {
	s.eye = eye
	s.look = look
	s.camSet = true
}

// fakeLoader resolves loads synchronously into buffered channels so the
// first tick already sees them; hang leaves channels empty forever.
type fakeLoader struct {
	skinnedErr error
	staticErr  error
	hang       bool
}

func (l *fakeLoader) LoadSkinnedModel(name string) <-chan SkinnedResult {
	ch := make(chan SkinnedResult, 1)
	if l.hang {
		return ch
	}
	if l.skinnedErr != nil {
		ch <- SkinnedResult{Err: l.skinnedErr}
		return ch
	}
	ch <- SkinnedResult{Model: &SkinnedModel{Name: name, Clips: []Clip{
		{Name: "idle", Length: 2.0},
		{Name: "walk", Length: 1.0},
		{Name: "run", Length: 0.8},
		{Name: "jump", Length: 1.2},
	}}}
	return ch
}

func (l *fakeLoader) LoadStaticModel(name string) <-chan StaticResult {
	ch := make(chan StaticResult, 1)
	if l.hang {
		return ch
	}
	if l.staticErr != nil {
		ch <- StaticResult{Err: l.staticErr}
		return ch
	}
	ch <- StaticResult{Model: &StaticModel{Name: name}}
	return ch
}

// emptyCity builds a ready streamer with no buildings, for collision-free
// player and camera tests.
func emptyCity() *CityStreamer {
	return &CityStreamer{
		processed: make(map[CellKey]bool),
		active:    make(map[CellKey]*Building),
		ready:     true,
	}
}

// placeBuilding drops a synthetic building into the streamer's active set.
func placeBuilding(c *CityStreamer, key CellKey, pos mgl64.Vec3, halfWidth, height, buffer float64) {
	c.active[key] = &Building{
		Tf:        Transform{Pos: pos, Scale: 1},
		HalfWidth: halfWidth,
		Height:    height,
		Buffer:    buffer,
	}
}
