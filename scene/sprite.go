package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const fullCircle = 2 * math.Pi

// Orbit moves a sprite on a circle around the origin.
type Orbit struct {
	Radius float32
	// Speed is in radians per second.
	Speed float32
	// Angle is in radians and always stays in [0, 2π).
	Angle float32
}

// advance moves the orbit angle forward by dt seconds and returns the new
// position on the circle. The angle wraps with a single subtraction, one
// frame never covers a full circle.
func (o *Orbit) advance(dt float32) mgl32.Vec3 {
	o.Angle += o.Speed * dt
	if o.Angle >= fullCircle {
		o.Angle -= fullCircle
	}
	sin, cos := math.Sincos(float64(o.Angle))
	return mgl32.Vec3{o.Radius * float32(cos), o.Radius * float32(sin), 0}
}

// Swing rotates a sprite back and forth between -Limit and +Limit degrees.
type Swing struct {
	// Angle is in degrees.
	Angle float32
	// Speed is in degrees per second, its sign is the current direction.
	Speed float32
	Limit float32
}

// advance first bounces off a bound that was crossed in the last frame and
// only then moves on, so the angle may overshoot a bound for one frame.
func (s *Swing) advance(dt float32) float32 {
	if s.Angle > s.Limit || s.Angle < -s.Limit {
		if s.Angle > s.Limit {
			s.Angle = s.Limit
		} else {
			s.Angle = -s.Limit
		}
		s.Speed = -s.Speed
	}
	s.Angle += s.Speed * dt
	return s.Angle
}

// Pulse grows and shrinks a sprite's uniform scale. Crossing High snaps the
// scale to HighSnap and starts shrinking, crossing Low snaps it to LowSnap
// and starts growing.
type Pulse struct {
	Scale   float32
	Speed   float32
	Growing bool

	// High and Low are compared against the scale in float64, so a scale of
	// float32(1.2) is above a High of 1.2.
	High, Low         float64
	HighSnap, LowSnap float32
}

func (p *Pulse) advance(dt float32) float32 {
	if scale := float64(p.Scale); scale > p.High {
		p.Growing = false
		p.Scale = p.HighSnap
	} else if scale < p.Low {
		p.Growing = true
		p.Scale = p.LowSnap
	}
	if p.Growing {
		p.Scale += p.Speed * dt
	} else {
		p.Scale -= p.Speed * dt
	}
	return p.Scale
}

// Sprite is one textured quad in the scene. Orbit, Swing and Pulse hold the
// persistent motion state, Position, Rotation, Scale and Model are derived
// from it on every update.
type Sprite struct {
	Name    string
	Texture string

	Orbit Orbit
	Swing *Swing
	Pulse *Pulse

	Position mgl32.Vec3
	// Rotation is in degrees around the Z axis.
	Rotation float32
	Scale    float32
	Model    mgl32.Mat4
}

// update recomputes the model matrix from scratch. The matrix is never
// accumulated across frames.
func (s *Sprite) update(dt float32) {
	s.Model = mgl32.Ident4()

	s.Position = s.Orbit.advance(dt)
	s.Model = s.Model.Mul4(mgl32.Translate3D(s.Position.X(), s.Position.Y(), s.Position.Z()))

	s.Rotation = 0
	if s.Swing != nil {
		s.Rotation = s.Swing.advance(dt)
		s.Model = s.Model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Rotation)))
	}

	s.Scale = 1
	if s.Pulse != nil {
		s.Scale = s.Pulse.advance(dt)
		s.Model = s.Model.Mul4(mgl32.Scale3D(s.Scale, s.Scale, 1))
	}
}
