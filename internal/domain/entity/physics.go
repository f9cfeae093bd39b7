package entity

// Physics adds motion to a body. Speed is horizontal and never negative;
// SpeedY is positive while rising.
type Physics struct {
	Speed        float64
	SpeedY       float64
	Acceleration float64
	GroundY      float64

	// Gravity enables the vertical update. Walking chickens and the boss have none.
	Gravity bool
	// AlwaysAirborne never snaps to the ground (thrown bottles).
	AlwaysAirborne bool
}

// Airborne reports whether the body is above its ground level
func (p *Physics) Airborne(b *Body) bool {
	return p.AlwaysAirborne || b.Y < p.GroundY
}

// Rising reports whether the body still moves upward
func (p *Physics) Rising() bool {
	return p.SpeedY > 0
}

// ApplyGravity performs one vertical step: y -= vy; vy -= g while airborne or rising,
// otherwise the body rests exactly on its ground level.
func (p *Physics) ApplyGravity(b *Body) {
	if p.Airborne(b) || p.Rising() {
		b.Y -= p.SpeedY
		p.SpeedY -= p.Acceleration
		return
	}
	b.Y = p.GroundY
	p.SpeedY = 0
}

// Jump launches the body with the given vertical speed.
// Returns false if it is still moving upward.
func (p *Physics) Jump(launch float64) bool {
	if p.Rising() {
		return false
	}
	p.SpeedY = launch
	return true
}

// Halt zeroes every speed and the acceleration.
func (p *Physics) Halt() {
	p.Speed = 0
	p.SpeedY = 0
	p.Acceleration = 0
}
