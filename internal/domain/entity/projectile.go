package entity

// Projectile is the state of a thrown bottle.
type Projectile struct {
	// Direction is +1 when thrown right, -1 when thrown left.
	Direction float64
	HasHit    bool
	Broken    bool
}

// NewProjectile creates a projectile flying in the facing direction
func NewProjectile(mirrored bool) Projectile {
	dir := 1.0
	if mirrored {
		dir = -1.0
	}
	return Projectile{Direction: dir}
}

// RegisterHit latches HasHit. Returns false if the projectile already hit something.
func (p *Projectile) RegisterHit() bool {
	if p.HasHit {
		return false
	}
	p.HasHit = true
	return true
}

// Step moves the body horizontally unless the projectile burst.
func (p *Projectile) Step(b *Body, step float64) {
	if p.Broken {
		return
	}
	b.X += p.Direction * step
}

// Burst marks the projectile broken. Returns true only on the first call.
func (p *Projectile) Burst() bool {
	if p.Broken {
		return false
	}
	p.Broken = true
	return true
}
