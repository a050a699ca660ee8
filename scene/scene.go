// Package scene holds the animation state of the orbit demo and advances it
// frame by frame. It does not touch OpenGL, the draw package renders the
// model matrices computed here.
package scene

import "github.com/go-gl/mathgl/mgl32"

// State is everything that changes from frame to frame. It is owned by the
// render loop.
type State struct {
	// Sprites are updated and drawn in this order.
	Sprites []*Sprite
	Clock   Clock
}

// Default returns the two-sprite scene: minotaur1 circles the origin closely
// while swinging and pulsing, minotaur2 circles it on a wider orbit.
func Default() *State {
	return &State{
		Sprites: []*Sprite{
			{
				Name:    "minotaur1",
				Texture: "minotaur1.png",
				Orbit:   Orbit{Radius: 0.5, Speed: 0.5},
				Swing:   &Swing{Speed: 35, Limit: 20},
				Pulse: &Pulse{
					Scale:    1,
					Speed:    0.001,
					Growing:  true,
					High:     1.2,
					Low:      0.8,
					HighSnap: 3,
					LowSnap:  1,
				},
				Scale: 1,
				Model: mgl32.Ident4(),
			},
			{
				Name:    "minotaur2",
				Texture: "minotaur2.png",
				Orbit:   Orbit{Radius: 2, Speed: 1},
				// minotaur2 starts at the right end of its orbit.
				Position: mgl32.Vec3{2, 0, 0},
				Scale:    1,
				Model:    mgl32.Translate3D(2, 0, 0),
			},
		},
	}
}

// Update advances every sprite by dt seconds.
func (s *State) Update(dt float32) {
	for _, sprite := range s.Sprites {
		sprite.update(dt)
	}
}

// Tick advances the clock to now (in seconds) and updates the scene with
// the elapsed time.
func (s *State) Tick(now float64) {
	s.Update(s.Clock.Tick(now))
}
