package falling

import (
	"testing"

	"github.com/vovakirdan/falling-blocks/internal/core"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name      string
		player    core.Vec2
		obstacle  core.Vec2
		threshold float64
		expected  bool
	}{
		{"same position", core.Vec2{X: 0, Y: -0.8}, core.Vec2{X: 0, Y: -0.8}, 0.09, true},
		{"inside on both axes", core.Vec2{X: 0, Y: -0.5}, core.Vec2{X: 0.0625, Y: -0.4375}, 0.125, true},
		{"x distance equals threshold", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 0.25, Y: 0}, 0.25, false},
		{"y distance equals threshold", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 0, Y: -0.25}, 0.25, false},
		{"close on x, far on y", core.Vec2{X: 0, Y: -0.8}, core.Vec2{X: 0.01, Y: 0.5}, 0.1, false},
		{"close on y, far on x", core.Vec2{X: 0, Y: -0.8}, core.Vec2{X: 0.5, Y: -0.8}, 0.1, false},
		// A circle of radius 0.1 would miss this corner; the box test hits
		{"corner inside box but outside circle", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 0.09, Y: 0.09}, 0.1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.player, tc.obstacle, tc.threshold); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			if got := Collides(tc.obstacle, tc.player, tc.threshold); got != tc.expected {
				t.Errorf("Collides() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
