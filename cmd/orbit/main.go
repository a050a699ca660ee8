// orbit shows two minotaurs circling the center of the window. The smaller
// circle's minotaur also swings back and forth and pulses in size.
//
// Run it from this directory, the shaders and images are loaded relative to
// the working directory. Build with -tags glfw to use GLFW instead of SDL2.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonutz/orbit/draw"
	"github.com/gonutz/orbit/scene"
)

const (
	windowTitle               = "Simple 2D Scene"
	windowWidth, windowHeight = 640 * 2, 480 * 2

	vertexShaderPath   = "shaders/vertex_textured.glsl"
	fragmentShaderPath = "shaders/fragment_textured.glsl"
)

// The view spans 10 by 7.5 units around the origin, the same 4:3 aspect
// ratio as the window.
var projection = mgl32.Ortho(-5, 5, -3.75, 3.75, -1, 1)

var background = draw.Color{R: 0.1922, G: 0.549, B: 0.9059, A: 1}

func main() {
	log.SetFlags(0)
	log.SetPrefix("orbit: ")

	d := &demo{state: scene.Default()}
	check(draw.RunWindow(windowTitle, windowWidth, windowHeight, d.setup, d.frame))
	log.Println("window closed")
}

type demo struct {
	state    *scene.State
	renderer *draw.Renderer
	// textures[i] belongs to state.Sprites[i]
	textures []draw.Texture
}

func (d *demo) setup(window draw.Window) error {
	w, h := window.Size()
	log.Printf("opened %dx%d window, %s", w, h, draw.GLInfo())

	program, err := draw.LoadShaderProgram(vertexShaderPath, fragmentShaderPath)
	if err != nil {
		return err
	}
	program.SetProjectionMatrix(projection)
	program.SetViewMatrix(mgl32.Ident4())
	program.Use()

	d.renderer = draw.NewRenderer(program, background)

	for _, sprite := range d.state.Sprites {
		tex, err := draw.LoadTexture(sprite.Texture)
		if err != nil {
			return err
		}
		log.Printf("loaded %s (%dx%d) for %s", sprite.Texture, tex.Width, tex.Height, sprite.Name)
		d.textures = append(d.textures, tex)
	}
	return nil
}

func (d *demo) frame(window draw.Window) {
	d.state.Tick(window.Seconds())

	d.renderer.Begin()
	for i, sprite := range d.state.Sprites {
		d.renderer.Draw(sprite.Model, d.textures[i])
	}
	d.renderer.End()
}

func check(err error) {
	if err == nil {
		return
	}

	var decodeErr *draw.ImageDecodeError
	if errors.As(err, &decodeErr) {
		log.Println("Unable to load image. Make sure the path is correct.")
		log.Panic(err)
	}
	if errors.Is(err, draw.ErrWindowCreation) {
		log.Println("Error: window could not be created.")
	}
	log.Println(err)
	os.Exit(1)
}
