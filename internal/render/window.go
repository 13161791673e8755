package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"snowcity/internal/game"
)

// InitWindow creates the GLFW window and context. glfw.Init is owned by
// the caller's deferred glfw.Terminate.
func InitWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, "Snow City", nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// BindInput translates raw key edges into semantic keys and forwards them
// to the input mapper. This is the whole input substrate boundary; nothing
// below it sees GLFW key codes. Repeats are dropped so the mapper only
// sees clean down/up edges.
func BindInput(window *glfw.Window, mapper *game.InputMapper) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		down := action == glfw.Press
		switch key {
		case glfw.KeyW:
			mapper.HandleKey(game.KeyForward, down)
		case glfw.KeyS:
			mapper.HandleKey(game.KeyBackward, down)
		case glfw.KeyA:
			mapper.HandleKey(game.KeyLeft, down)
		case glfw.KeyD:
			mapper.HandleKey(game.KeyRight, down)
		case glfw.KeySpace:
			mapper.HandleKey(game.KeyJump, down)
		}
	})
}

// BindResize keeps the renderer surface and camera aspect in sync with
// the framebuffer.
func BindResize(window *glfw.Window, r *Renderer) {
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		r.Resize(w, h)
	})
}
