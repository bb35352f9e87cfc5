package mathx

import "math"

// Orientation is the logical facing of the card, derived from its Y rotation.
type Orientation int

const (
	Front Orientation = iota
	Back
)

func (o Orientation) String() string {
	if o == Back {
		return "back"
	}
	return "front"
}

// OrientationOf resolves a Y rotation (radians) to a facing.
// Front iff the wrapped angle is within a quarter turn of zero.
func OrientationOf(rotY float64) Orientation {
	if math.Abs(WrapAngle(rotY)) < math.Pi/2 {
		return Front
	}
	return Back
}

// FlipTarget returns the Y rotation closest to current that resolves to the
// requested facing, so flips always take the shortest arc.
func FlipTarget(current float64, o Orientation) float64 {
	w := WrapAngle(current)
	base := current - w // nearest full-turn multiple
	if o == Front {
		return base
	}
	if w >= 0 {
		return base + math.Pi
	}
	return base - math.Pi
}
