package draw

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
)

func init() {
	// OpenGL and the window backends only work from the main thread.
	runtime.LockOSThread()
}

// initGL loads the OpenGL functions of the current context and sets the
// state that stays the same for the whole run.
func initGL(width, height int) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// GLInfo describes the current OpenGL context. Call it from a SetupFunction.
func GLInfo() string {
	return fmt.Sprintf(
		"OpenGL %s on %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
	)
}
