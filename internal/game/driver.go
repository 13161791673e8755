package game

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
)

// FrameDriver ticks the simulation in fixed order:
// input intent -> player -> city -> ground -> snow -> camera.
// One tick per display refresh, single goroutine; only asset loads run
// concurrently and they hand results over via channels polled in-tick.
type FrameDriver struct {
	clk    clock.Clock
	logger golog.Logger

	input  *InputMapper
	player *PlayerController
	city   *CityStreamer
	ground *WorldStreamer
	snow   *WeatherField
	camera *ChaseCamera

	last    time.Time
	started bool
}

// NewFrameDriver wires the systems together against a scene and loader.
func NewFrameDriver(scene Scene, loader Loader, clk clock.Clock, seed uint64, logger golog.Logger) *FrameDriver {
	city := NewCityStreamer(scene, loader, seed, logger)
	index := NewCollisionIndex(city)
	return &FrameDriver{
		clk:    clk,
		logger: logger,
		input:  NewInputMapper(),
		player: NewPlayerController(scene, index, loader, logger),
		city:   city,
		ground: NewWorldStreamer(scene, seed^0x6E0D),
		snow:   NewWeatherField(scene, clk, seed),
		camera: NewChaseCamera(scene, index),
	}
}

// Input exposes the mapper for the window layer's key dispatch.
func (d *FrameDriver) Input() *InputMapper { return d.input }

// Player exposes the player for overlays and the entrypoint.
func (d *FrameDriver) Player() *PlayerController { return d.player }

// Step runs one simulation tick. The returned error is fatal (character
// model load failure); every other failure mode is a logged no-op. Delta
// time is intentionally unclamped, so a stalled frame jumps the world.
func (d *FrameDriver) Step() error {
	now := d.clk.Now()
	var dt float64
	if d.started {
		dt = now.Sub(d.last).Seconds()
	}
	d.last = now
	d.started = true

	in := d.input.Intent(d.player.Airborne())
	if err := d.player.Tick(dt, in); err != nil {
		return err
	}
	pos := d.player.Position()
	d.city.Update(pos)
	d.ground.Update(pos)
	d.snow.Update(pos)
	d.camera.Update(pos, d.player.Yaw())
	return nil
}
