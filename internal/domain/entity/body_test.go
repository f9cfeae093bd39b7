package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody_Bounds(t *testing.T) {
	tests := []struct {
		name string
		body Body
		want Rect
	}{
		{
			name: "no offset",
			body: Body{X: 10, Y: 20, Width: 60, Height: 60},
			want: Rect{Left: 10, Top: 20, Right: 70, Bottom: 80},
		},
		{
			name: "asymmetric offset facing right",
			body: Body{X: 100, Y: 80, Width: 140, Height: 280, Offset: Offset{Top: 120, Left: 25, Right: 42, Bottom: 20}},
			want: Rect{Left: 125, Top: 200, Right: 198, Bottom: 340},
		},
		{
			name: "mirrored swaps left and right",
			body: Body{X: 100, Y: 80, Width: 140, Height: 280, Mirrored: true, Offset: Offset{Top: 120, Left: 25, Right: 42, Bottom: 20}},
			want: Rect{Left: 142, Top: 200, Right: 215, Bottom: 340},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.body.Bounds())
		})
	}
}

func TestCollides(t *testing.T) {
	base := Body{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		other Body
		want  bool
	}{
		{"overlapping", Body{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Body{X: 10, Y: 10, Width: 20, Height: 20}, true},
		{"touching right edge", Body{X: 100, Y: 0, Width: 50, Height: 50}, false},
		{"touching bottom edge", Body{X: 0, Y: 100, Width: 50, Height: 50}, false},
		{"apart", Body{X: 300, Y: 300, Width: 10, Height: 10}, false},
		{"offset removes overlap", Body{X: 90, Y: 0, Width: 50, Height: 50, Offset: Offset{Left: 15}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(base, tt.other))
			assert.Equal(t, Collides(base, tt.other), Collides(tt.other, base), "collision must be symmetric")
		})
	}
}

func TestLandedOnTop(t *testing.T) {
	chicken := Body{X: 300, Y: 365, Width: 60, Height: 60}

	tests := []struct {
		name  string
		mover Body
		vy    float64
		want  bool
	}{
		{"falling onto head", Body{X: 260, Y: 100, Width: 140, Height: 280}, -12, true},
		{"resting at top edge", Body{X: 260, Y: 85, Width: 140, Height: 280}, 0, true},
		{"rising through", Body{X: 260, Y: 100, Width: 140, Height: 280}, 9, false},
		{"below the stomp zone", Body{X: 260, Y: 145, Width: 140, Height: 280}, -3, false},
		{"center left of target", Body{X: 200, Y: 100, Width: 140, Height: 280}, -3, false},
		{"center on target edge", Body{X: 230, Y: 100, Width: 140, Height: 280}, -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandedOnTop(tt.mover, tt.vy, chicken, 0.75))
		})
	}
}
