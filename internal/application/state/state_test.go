package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
		ended    bool
	}{
		{StateMenu, "Menu", false},
		{StatePlaying, "Playing", false},
		{StateWon, "Won", true},
		{StateLost, "Lost", true},
		{GameState(99), "Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
			assert.Equal(t, tt.ended, tt.state.Ended())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StatePlaying)
	assert.Equal(t, GameState(2), StateWon)
	assert.Equal(t, GameState(3), StateLost)
}
