package system

import (
	"fmt"
	"strings"
)

// Intent is a named input action the simulation reads.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentUp
	IntentDown
	IntentJump
	IntentThrow
	intentCount
)

// String returns the string representation of the intent
func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "LEFT"
	case IntentRight:
		return "RIGHT"
	case IntentUp:
		return "UP"
	case IntentDown:
		return "DOWN"
	case IntentJump:
		return "JUMP"
	case IntentThrow:
		return "THROW"
	default:
		return "UNKNOWN"
	}
}

// ParseIntent returns the intent with the given name, case-insensitively
func ParseIntent(name string) (Intent, error) {
	for i := Intent(0); i < intentCount; i++ {
		if strings.EqualFold(i.String(), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", name)
}

// Intents holds the pressed state of every intent.
// The simulation never learns which device set a flag.
type Intents struct {
	pressed [intentCount]bool
}

// Set updates one intent
func (s *Intents) Set(i Intent, pressed bool) {
	if i < 0 || i >= intentCount {
		return
	}
	s.pressed[i] = pressed
}

// Pressed reports whether an intent is held
func (s *Intents) Pressed(i Intent) bool {
	if i < 0 || i >= intentCount {
		return false
	}
	return s.pressed[i]
}

// Reset releases every intent
func (s *Intents) Reset() {
	s.pressed = [intentCount]bool{}
}
