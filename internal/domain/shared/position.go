package shared

import (
	"fmt"
	"math"
)

// Position is an immutable 2D coordinate. Celestial bodies measure it in
// astronomical units; region-level coordinates use light-years.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPosition creates a position from cartesian coordinates.
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// PolarOffset returns the position displaced by the given distance at the
// given angle (radians).
func (p Position) PolarOffset(distance, angle float64) Position {
	return Position{
		X: p.X + distance*math.Cos(angle),
		Y: p.Y + distance*math.Sin(angle),
	}
}

// DistanceTo calculates Euclidean distance to another position.
func (p Position) DistanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Position) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", p.X, p.Y)
}
