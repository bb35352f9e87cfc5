package overlay

import "checkout3d/internal/mathx"

// Face declares which card facing a region belongs to.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceAlways
)

func (f Face) String() string {
	switch f {
	case FaceBack:
		return "back"
	case FaceAlways:
		return "always"
	default:
		return "front"
	}
}

// Matches reports whether the face is interactive under the given orientation.
func (f Face) Matches(o mathx.Orientation) bool {
	switch f {
	case FaceAlways:
		return true
	case FaceBack:
		return o == mathx.Back
	default:
		return o == mathx.Front
	}
}

// Region is a logical overlay area with a fixed fractional placement inside
// the card's container rect. The geometry never changes after setup; only the
// face predicate's evaluation does.
type Region struct {
	Name string

	// Fractions of the container rect.
	Left   float64
	Top    float64
	Width  float64
	Height float64

	Face Face
}

// Field region names. These match the opaque input layer's field names.
const (
	RegionNumber = "number"
	RegionName   = "name"
	RegionExpiry = "expiry"
	RegionCVV    = "cvv"
	RegionPostal = "postal"
	RegionSubmit = "submit"
)

// DefaultRegions mirrors the embossed layout of an ID-1 card: number across
// the front middle, name and expiry along the bottom, CVV on the signature
// strip of the back, and the submit strip pinned under the card on both faces.
func DefaultRegions() []Region {
	return []Region{
		{Name: RegionNumber, Left: 0.06, Top: 0.40, Width: 0.88, Height: 0.17, Face: FaceFront},
		{Name: RegionName, Left: 0.06, Top: 0.72, Width: 0.50, Height: 0.14, Face: FaceFront},
		{Name: RegionExpiry, Left: 0.60, Top: 0.72, Width: 0.20, Height: 0.14, Face: FaceFront},
		{Name: RegionPostal, Left: 0.82, Top: 0.72, Width: 0.12, Height: 0.14, Face: FaceFront},
		{Name: RegionCVV, Left: 0.66, Top: 0.30, Width: 0.20, Height: 0.16, Face: FaceBack},
		{Name: RegionSubmit, Left: 0.25, Top: 1.08, Width: 0.50, Height: 0.15, Face: FaceAlways},
	}
}
