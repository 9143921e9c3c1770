package falling

import (
	"fmt"
	"math"

	"github.com/vovakirdan/falling-blocks/internal/core"
)

// Shape is the outline an obstacle is drawn with.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeTriangle
	ShapeCircle
	ShapeHexagon
	ShapeDiamond
	ShapeStar
)

var shapeNames = [...]string{
	ShapeSquare:   "square",
	ShapeTriangle: "triangle",
	ShapeCircle:   "circle",
	ShapeHexagon:  "hexagon",
	ShapeDiamond:  "diamond",
	ShapeStar:     "star",
}

// Terminal glyph per shape.
var shapeGlyphs = [...]rune{
	ShapeSquare:   '■',
	ShapeTriangle: '▲',
	ShapeCircle:   '●',
	ShapeHexagon:  '⬢',
	ShapeDiamond:  '◆',
	ShapeStar:     '★',
}

// String returns the config name of the shape.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// Glyph returns the rune used to draw the shape in a terminal.
func (s Shape) Glyph() rune {
	if s < 0 || int(s) >= len(shapeGlyphs) {
		return '?'
	}
	return shapeGlyphs[s]
}

// ParseShape converts a config name into a Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("falling: unknown shape %q", name)
}

// Obstacle is one falling object. X is fixed at spawn, Y only decreases.
type Obstacle struct {
	X, Y  float64
	Shape Shape
	Color core.Color
}

// Pos returns the obstacle center.
func (o Obstacle) Pos() core.Vec2 {
	return core.Vec2{X: o.X, Y: o.Y}
}

// circleSegments is the vertex count of a circle outline.
const circleSegments = 20

// Outline returns the polygon of the shape around center, counter-clockwise
// in playfield coordinates. size is the half extent. Every outline is
// star-shaped around center, so a triangle fan from center fills it.
func (s Shape) Outline(center core.Vec2, size float64) []core.Vec2 {
	at := func(dx, dy float64) core.Vec2 {
		return core.Vec2{X: center.X + dx, Y: center.Y + dy}
	}
	ring := func(n int, radius func(i int) float64) []core.Vec2 {
		pts := make([]core.Vec2, n)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(n)
			r := radius(i)
			pts[i] = at(r*math.Cos(a), r*math.Sin(a))
		}
		return pts
	}

	switch s {
	case ShapeTriangle:
		return []core.Vec2{at(0, size), at(-size, -size), at(size, -size)}
	case ShapeCircle:
		return ring(circleSegments, func(int) float64 { return size })
	case ShapeHexagon:
		return ring(6, func(int) float64 { return size })
	case ShapeDiamond:
		return []core.Vec2{at(0, size), at(-size, 0), at(0, -size), at(size, 0)}
	case ShapeStar:
		// Alternating outer and inner points
		return ring(10, func(i int) float64 {
			if i%2 == 0 {
				return size
			}
			return size / 2
		})
	default:
		return []core.Vec2{at(-size, -size), at(size, -size), at(size, size), at(-size, size)}
	}
}
