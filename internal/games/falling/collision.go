package falling

import "github.com/vovakirdan/falling-blocks/internal/core"

// Collides reports whether the player and an obstacle overlap.
// threshold is the sum of both half extents and applies to each axis on its
// own: |dx| < threshold and |dy| < threshold. Equality is a miss.
func Collides(player, obstacle core.Vec2, threshold float64) bool {
	// A zero-size box on one side puts the whole threshold on the other
	return core.NewBox(player, 0).Overlaps(core.NewBox(obstacle, threshold))
}
