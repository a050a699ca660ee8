//go:build glfw
// +build glfw

package draw

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type window struct {
	window  *glfw.Window
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

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	defer glfwWindow.Destroy()
	glfwWindow.MakeContextCurrent()
	// center the window on the screen (omitting the window border)
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		screen := monitor.GetVideoMode()
		glfwWindow.SetPos((screen.Width-width)/2, (screen.Height-height)/2)
	}

	if err := initGL(width, height); err != nil {
		return err
	}

	w := &window{window: glfwWindow, running: true}
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
	glfw.PollEvents()
	if w.window.ShouldClose() {
		w.running = false
	}
}

func (w *window) swap() {
	w.window.SwapBuffers()
}

func (w *window) Close() {
	w.running = false
}

func (w *window) Size() (int, int) {
	return w.window.GetSize()
}

func (w *window) Seconds() float64 {
	return glfw.GetTime()
}
