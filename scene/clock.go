package scene

// Clock turns absolute timestamps into frame deltas. The zero Clock starts at
// time 0, so the first delta is the time since the window opened.
type Clock struct {
	previous float64
}

// Tick returns the seconds passed since the last Tick and remembers now. A
// timestamp older than the previous one yields 0.
func (c *Clock) Tick(now float64) float32 {
	delta := now - c.previous
	c.previous = now
	if delta < 0 {
		return 0
	}
	return float32(delta)
}
