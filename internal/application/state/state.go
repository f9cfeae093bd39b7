package state

// GameState names the screen the game is on
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Ended reports whether the state is an end screen
func (s GameState) Ended() bool {
	return s == StateWon || s == StateLost
}
