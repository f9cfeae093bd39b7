package entity

// BarKind selects how a status bar projects its value.
type BarKind int

const (
	BarHealth BarKind = iota
	BarCoin
	BarBottle
	BarBoss
)

// StatusBar is a view of a counter or percentage. It has no lifecycle of its own.
type StatusBar struct {
	Kind   BarKind
	X, Y   float64
	Width  float64
	Height float64

	Percentage float64
	Count      int
	// Energy and MaxEnergy feed the boss bar fill.
	Energy    int
	MaxEnergy int

	// Frames holds the health images for 0, 20, 40, 60, 80 and 100 percent.
	Frames []string
	Icon   string
}

// SetPercentage updates the health projection
func (s *StatusBar) SetPercentage(p float64) {
	s.Percentage = p
}

// FrameIndex maps the percentage to one of six frames.
func (s *StatusBar) FrameIndex() int {
	switch {
	case s.Percentage > 80:
		return 5
	case s.Percentage > 60:
		return 4
	case s.Percentage > 40:
		return 3
	case s.Percentage > 20:
		return 2
	case s.Percentage > 0:
		return 1
	default:
		return 0
	}
}

// Image returns the health frame for the current percentage, or "" if unknown
func (s *StatusBar) Image() string {
	i := s.FrameIndex()
	if i >= len(s.Frames) {
		return ""
	}
	return s.Frames[i]
}

// BossFill returns the width of the green part of the boss bar.
// It scales by the boss' fixed energy pool, not by the health percentage buckets.
func BossFill(width float64, energy, maxEnergy int) float64 {
	if maxEnergy <= 0 || energy <= 0 {
		return 0
	}
	if energy > maxEnergy {
		energy = maxEnergy
	}
	return width * float64(energy) / float64(maxEnergy)
}
