package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func checkNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func checkMatrix(t *testing.T, name string, got, want mgl32.Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Errorf("%s =\n%v\nwant\n%v", name, got, want)
			return
		}
	}
}

func Test_default_scene_has_inner_sprite_first(t *testing.T) {
	s := Default()
	if len(s.Sprites) != 2 {
		t.Fatalf("%d sprites, want 2", len(s.Sprites))
	}
	inner, outer := s.Sprites[0], s.Sprites[1]
	if inner.Name != "minotaur1" || outer.Name != "minotaur2" {
		t.Errorf("draw order is %s, %s", inner.Name, outer.Name)
	}
	if inner.Swing == nil || inner.Pulse == nil {
		t.Error("inner sprite must swing and pulse")
	}
	if outer.Swing != nil || outer.Pulse != nil {
		t.Error("outer sprite must only orbit")
	}
	checkNear(t, "inner radius", inner.Orbit.Radius, 0.5)
	checkNear(t, "outer radius", outer.Orbit.Radius, 2)
}

func Test_orbit_half_circle_lands_on_opposite_side(t *testing.T) {
	o := Orbit{Radius: 2, Speed: 1}
	p := o.advance(math.Pi)
	checkNear(t, "angle", o.Angle, math.Pi)
	checkNear(t, "x", p.X(), -2)
	checkNear(t, "y", p.Y(), 0)
	checkNear(t, "z", p.Z(), 0)
}

func Test_orbit_angle_wraps_into_full_circle(t *testing.T) {
	o := Orbit{Radius: 1, Speed: 1, Angle: 6}
	o.advance(0.5)
	checkNear(t, "angle", o.Angle, 6.5-2*math.Pi)
}

func Test_orbit_angles_stay_in_full_circle(t *testing.T) {
	s := Default()
	// Angles wrap once per frame, which keeps them in range only while
	// speed*dt < 2pi. The fastest orbit turns at 1 rad/s, so every dt here is
	// below 2pi. See Test_orbit_wraps_at_most_once_per_frame.
	for _, dt := range []float32{0, 0.001, 0.016, 0.5, 1, 3, 6} {
		for i := 0; i < 100; i++ {
			s.Update(dt)
			for _, sprite := range s.Sprites {
				a := sprite.Orbit.Angle
				if a < 0 || a >= 2*math.Pi {
					t.Fatalf("%s angle %v out of [0, 2pi) after dt %v", sprite.Name, a, dt)
				}
			}
		}
	}
}

func Test_orbit_wraps_at_most_once_per_frame(t *testing.T) {
	o := Orbit{Radius: 1, Speed: 1}
	o.advance(7)
	checkNear(t, "angle after one wrap", o.Angle, 7-2*math.Pi)

	// A frame covering more than a full circle is only wrapped once.
	o = Orbit{Radius: 1, Speed: 1}
	o.advance(13)
	checkNear(t, "angle after a too long frame", o.Angle, 13-2*math.Pi)
	if o.Angle < 2*math.Pi {
		t.Errorf("angle %v was wrapped more than once", o.Angle)
	}
}

func Test_swing_bound_is_only_checked_before_moving(t *testing.T) {
	s := Swing{Angle: 19, Speed: 35, Limit: 20}
	checkNear(t, "first frame", s.advance(1), 54)
	checkNear(t, "speed", s.Speed, 35)

	checkNear(t, "second frame", s.advance(1), -15)
	checkNear(t, "speed", s.Speed, -35)
}

func Test_swing_flips_once_per_crossing(t *testing.T) {
	s := Swing{Angle: -21, Speed: -10, Limit: 20}
	s.advance(0)
	checkNear(t, "angle", s.Angle, -20)
	checkNear(t, "speed", s.Speed, 10)

	s.advance(0)
	checkNear(t, "angle at bound", s.Angle, -20)
	checkNear(t, "speed at bound", s.Speed, 10)
}

func Test_swing_stays_clamped_at_frame_start(t *testing.T) {
	s := Swing{Speed: 35, Limit: 20}
	for i := 0; i < 1000; i++ {
		before := s.Angle
		if before > 20 || before < -20 {
			// one overshooting frame is allowed, the next one must clamp
			s.advance(0)
			if s.Angle != 20 && s.Angle != -20 {
				t.Fatalf("angle %v not clamped to a bound", s.Angle)
			}
		}
		s.advance(0.1)
	}
}

func Test_pulse_snaps_to_exact_values(t *testing.T) {
	p := Pulse{Scale: 1.25, Speed: 0.001, Growing: true, High: 1.2, Low: 0.8, HighSnap: 3, LowSnap: 1}
	p.advance(0)
	if p.Scale != 3 || p.Growing {
		t.Errorf("above high: scale %v growing %v, want 3 false", p.Scale, p.Growing)
	}

	p.Scale = 0.75
	p.advance(0)
	if p.Scale != 1 || !p.Growing {
		t.Errorf("below low: scale %v growing %v, want 1 true", p.Scale, p.Growing)
	}
}

func Test_pulse_moves_in_its_direction_after_snapping(t *testing.T) {
	p := Pulse{Scale: 1.3, Speed: 0.5, Growing: true, High: 1.2, Low: 0.8, HighSnap: 3, LowSnap: 1}
	checkNear(t, "shrinking", p.advance(1), 2.5)
	p.Scale = 0.7
	checkNear(t, "growing", p.advance(1), 1.5)
}

func Test_pulse_at_float32_high_threshold_snaps(t *testing.T) {
	// float32(1.2) is 1.20000005, which is above 1.2.
	p := Pulse{Scale: 1.2, Speed: 0.5, Growing: true, High: 1.2, Low: 0.8, HighSnap: 3, LowSnap: 1}
	p.advance(0)
	if p.Scale != 3 || p.Growing {
		t.Errorf("scale %v growing %v, want 3 false", p.Scale, p.Growing)
	}
	checkNear(t, "shrinking", p.advance(1), 2.5)
}

func Test_pulse_at_float32_low_threshold_does_not_snap(t *testing.T) {
	// float32(0.8) is 0.80000001, which is not below 0.8.
	p := Pulse{Scale: 0.8, Speed: 0, Growing: false, High: 1.2, Low: 0.8, HighSnap: 3, LowSnap: 1}
	p.advance(1)
	if p.Scale != 0.8 || p.Growing {
		t.Errorf("scale %v growing %v, want 0.8 false", p.Scale, p.Growing)
	}
}

func Test_zero_delta_keeps_state_and_model(t *testing.T) {
	s := Default()
	s.Update(0.5)
	type snapshot struct {
		orbit    Orbit
		rotation float32
		scale    float32
		model    mgl32.Mat4
	}
	var before []snapshot
	for _, sprite := range s.Sprites {
		before = append(before, snapshot{sprite.Orbit, sprite.Rotation, sprite.Scale, sprite.Model})
	}

	s.Update(0)

	for i, sprite := range s.Sprites {
		b := before[i]
		if sprite.Orbit != b.orbit {
			t.Errorf("%s orbit changed from %v to %v", sprite.Name, b.orbit, sprite.Orbit)
		}
		checkNear(t, sprite.Name+" rotation", sprite.Rotation, b.rotation)
		checkNear(t, sprite.Name+" scale", sprite.Scale, b.scale)
		checkMatrix(t, sprite.Name+" model", sprite.Model, b.model)
	}
}

func Test_model_is_translate_rotate_scale(t *testing.T) {
	s := Default()
	s.Update(1)
	inner := s.Sprites[0]

	checkNear(t, "rotation", inner.Rotation, 35)
	checkNear(t, "scale", inner.Scale, 1.001)
	want := mgl32.Translate3D(inner.Position.X(), inner.Position.Y(), 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(35))).
		Mul4(mgl32.Scale3D(1.001, 1.001, 1))
	checkMatrix(t, "inner model", inner.Model, want)
}

func Test_outer_sprite_is_only_translated(t *testing.T) {
	s := Default()
	s.Update(math.Pi / 2)
	outer := s.Sprites[1]
	checkNear(t, "x", outer.Position.X(), 0)
	checkNear(t, "y", outer.Position.Y(), 2)
	checkNear(t, "rotation", outer.Rotation, 0)
	checkNear(t, "scale", outer.Scale, 1)
	checkMatrix(t, "outer model", outer.Model, mgl32.Translate3D(0, 2, 0))
}

func Test_transforms_are_not_accumulated(t *testing.T) {
	a, b := Default(), Default()
	a.Update(0.25)
	a.Update(0.25)
	b.Update(0.5)
	for i := range a.Sprites {
		checkMatrix(t, a.Sprites[i].Name, a.Sprites[i].Model, b.Sprites[i].Model)
	}
}

func Test_tick_feeds_clock_delta_into_update(t *testing.T) {
	s := Default()
	s.Tick(1)
	checkNear(t, "outer angle", s.Sprites[1].Orbit.Angle, 1)
	s.Tick(1.5)
	checkNear(t, "outer angle", s.Sprites[1].Orbit.Angle, 1.5)
}
