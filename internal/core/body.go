package core

// Body is a circle moving under constant downward gravity.
type Body struct {
	Pos     PointF  // Center position in pixels
	Vel     PointF  // Velocity in pixels per second
	Radius  float64 // Circle radius in pixels
	Gravity float64 // Downward acceleration in pixels per second squared
}

// Env holds the per-tick parameters Body.Update needs from its surroundings.
type Env struct {
	Width            int     // Area width in pixels
	Height           int     // Area height in pixels (the floor is at Height)
	FPS              int     // Ticks per second; zero yields an infinite step
	Restitution      float64 // Vertical velocity multiplier on floor contact
	RespawnVelocityX float64 // Horizontal velocity given after respawn
}

// Event flags what happened during a single Update.
type Event uint8

const (
	EventBounced   Event = 1 << iota // Hit the floor
	EventRespawned                   // Left the right edge and was reset
)

// Has reports whether e includes flag.
func (e Event) Has(flag Event) bool {
	return e&flag != 0
}

// Spawn returns a body just off the top-left corner, moving right.
func Spawn(radius, gravity, velocityX float64) Body {
	return Body{
		Pos:     Pt(-radius, -radius),
		Vel:     Pt(velocityX, 0),
		Radius:  radius,
		Gravity: gravity,
	}
}

// Update advances the body by one tick of 1/FPS seconds using semi-implicit
// Euler integration, then applies the floor bounce and the right-edge
// respawn, in that order. The receiver is not modified.
func (b Body) Update(env Env) (Body, Event) {
	var ev Event
	dt := 1 / float64(env.FPS)

	b.Vel.Y += b.Gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	floor := float64(env.Height) - b.Radius
	if b.Pos.Y > floor {
		b.Pos.Y = floor
		b.Vel.Y *= env.Restitution
		ev |= EventBounced
	}

	// Fully past the right edge plus one diameter of margin.
	if b.Pos.X >= float64(env.Width)+b.Radius+2*b.Radius {
		b = Spawn(b.Radius, b.Gravity, env.RespawnVelocityX)
		ev |= EventRespawned
	}

	return b, ev
}
