//go:build !glfw
// +build !glfw

package draw

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	window  *sdl.Window
	running bool
}

// RunWindow creates a centered OpenGL window, calls setup once and then
// calls update every frame until the window is closed.
func RunWindow(title string, width, height int, setup SetupFunction, update UpdateFunction) error {
	windowRunningMutex.Lock()
	defer windowRunningMutex.Unlock()

	if update == nil {
		return errors.New("update function was nil")
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	defer sdl.Quit()

	sdlWindow, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	defer sdlWindow.Destroy()

	context, err := sdlWindow.GLCreateContext()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	defer sdl.GLDeleteContext(context)
	if err := sdlWindow.GLMakeCurrent(context); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	if err := initGL(width, height); err != nil {
		return err
	}

	w := &window{window: sdlWindow, running: true}
	if setup != nil {
		if err := setup(w); err != nil {
			return err
		}
	}
	runMainLoop(w, update)
	return nil
}

func (w *window) isRunning() bool {
	return w.running
}

func (w *window) pollEvents() {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch event := e.(type) {
		case *sdl.QuitEvent:
			w.running = false
		case *sdl.WindowEvent:
			if event.Event == sdl.WINDOWEVENT_CLOSE {
				w.running = false
			}
		}
	}
}

func (w *window) swap() {
	w.window.GLSwap()
}

func (w *window) Close() {
	w.running = false
}

func (w *window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *window) Seconds() float64 {
	return float64(sdl.GetTicks()) / 1000
}
