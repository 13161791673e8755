package main

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"snowcity/internal/game"
	"snowcity/internal/render"
)

func main() {
	runtime.LockOSThread()

	logger := golog.NewDevelopmentLogger("snowcity")
	if err := run(logger); err != nil {
		logger.Fatalw("exiting", "error", err)
	}
}

func run(logger golog.Logger) error {
	window, werr := render.InitWindow(game.WindowWidth, game.WindowHeight)
	if werr != nil {
		return werr
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if glErr := gl.Init(); glErr != nil {
		return errors.Wrap(glErr, "gl init")
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNOWCITY_SEED"); s != "" {
		if v, perr := strconv.ParseUint(s, 10, 64); perr == nil {
			seed = v
		}
	}
	logger.Infow("starting", "seed", seed)

	fbW, fbH := window.GetFramebufferSize()
	rend, rerr := render.NewRenderer(fbW, fbH)
	if rerr != nil {
		return rerr
	}
	defer rend.Destroy()

	driver := game.NewFrameDriver(rend, render.NewModelLoader(), clock.New(), seed, logger)
	render.BindInput(window, driver.Input())
	render.BindResize(window, rend)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if serr := driver.Step(); serr != nil {
			return serr
		}
		rend.Draw()
		window.SwapBuffers()
	}
	return nil
}
