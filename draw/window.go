package draw

import (
	"errors"
	"sync"
)

// Window is the open window as seen by the setup and update functions.
type Window interface {
	// Close stops the main loop once the current frame is done.
	Close()
	// Size returns the window's client size in pixels.
	Size() (int, int)
	// Seconds returns the time since the window was opened.
	Seconds() float64
}

// SetupFunction is called once after the window and its OpenGL context were
// created and before the first frame. Load shaders and textures in here. A
// non-nil error closes the window and is returned from RunWindow.
type SetupFunction func(window Window) error

// UpdateFunction is called once per frame, after all pending window events
// were handled and before the frame is shown.
type UpdateFunction func(window Window)

// ErrWindowCreation is wrapped by the error RunWindow returns when the
// window or its OpenGL context could not be created.
var ErrWindowCreation = errors.New("window could not be created")

var windowRunningMutex sync.Mutex

// Color channels are in the range [0, 1].
type Color struct{ R, G, B, A float32 }

// mainWindow is implemented by each window backend.
type mainWindow interface {
	Window
	isRunning() bool
	pollEvents()
	swap()
}

// runMainLoop has no frame rate limit, frames are shown as fast as the swap
// allows.
func runMainLoop(w mainWindow, update UpdateFunction) {
	for w.isRunning() {
		w.pollEvents()
		update(w)
		w.swap()
	}
}
