package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterState_Moving(t *testing.T) {
	tests := []struct {
		name  string
		state CharacterState
		want  bool
	}{
		{"still", CharacterState{}, false},
		{"left", CharacterState{MovingLeft: true}, true},
		{"right", CharacterState{MovingRight: true}, true},
		{"throwing counts as activity", CharacterState{Throwing: true}, true},
		{"idle flags do not", CharacterState{Idle: true, LongIdle: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Moving())
		})
	}
}

func TestCharacterState_Wake(t *testing.T) {
	s := CharacterState{Idle: true, LongIdle: true}
	s.Wake()
	assert.False(t, s.Idle)
	assert.False(t, s.LongIdle)
}
