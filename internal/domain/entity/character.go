package entity

// CharacterState holds the player character's intent and idle escalation flags.
type CharacterState struct {
	MovingLeft  bool
	MovingRight bool
	Throwing    bool

	Idle     bool
	LongIdle bool
}

// Moving reports whether any movement or throw intent was applied this tick
func (s *CharacterState) Moving() bool {
	return s.MovingLeft || s.MovingRight || s.Throwing
}

// Wake clears both idle flags.
func (s *CharacterState) Wake() {
	s.Idle = false
	s.LongIdle = false
}

// HoldJumpFrame keeps the airborne sequence on frame 1 while rising and on its last frame after.
func HoldJumpFrame(a *Animation, frames int, rising bool) {
	if a.Cursor >= 1 && rising {
		a.Cursor = 1
	} else if frames > 0 && a.Cursor >= frames {
		a.Cursor = frames - 1
	}
}
