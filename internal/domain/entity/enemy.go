package entity

// EndbossState drives the boss patrol and its alert latch.
type EndbossState struct {
	MovingLeft   bool
	Alert        bool
	AlertCounter int
	FirstContact bool
}

// NewEndbossState creates a boss that starts walking left
func NewEndbossState() EndbossState {
	return EndbossState{MovingLeft: true}
}

// Patrol moves the boss one step, turning right at minX and left at maxX.
func (s *EndbossState) Patrol(b *Body, speed, minX, maxX float64) {
	if b.X <= minX {
		s.MovingLeft = false
	}
	if b.X >= maxX {
		s.MovingLeft = true
	}
	if s.MovingLeft {
		b.X -= speed
	} else {
		b.X += speed
	}
}

// TriggerAlert fires the alert the first time characterX passes triggerX.
// Returns true when it fired.
func (s *EndbossState) TriggerAlert(characterX, triggerX float64) bool {
	if s.FirstContact || characterX <= triggerX {
		return false
	}
	s.FirstContact = true
	s.Alert = true
	s.AlertCounter = 0
	return true
}

// StepAlert counts one alert frame and clears the alert after frames steps.
func (s *EndbossState) StepAlert(frames int) {
	s.AlertCounter++
	if s.AlertCounter >= frames {
		s.Alert = false
		s.AlertCounter = 0
	}
}
