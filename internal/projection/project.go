package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenRect is a pixel-space rectangle. It is derived per frame from object,
// camera and viewport; never stored authoritatively.
type ScreenRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the pixel (px, py) lies inside the rect.
func (r ScreenRect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.Width && py >= r.Y && py <= r.Y+r.Height
}

// ContainsRect reports whether o lies fully inside r.
func (r ScreenRect) ContainsRect(o ScreenRect) bool {
	return r.Contains(o.X, o.Y) && r.Contains(o.X+o.Width, o.Y+o.Height)
}

// Project maps a world-space point to pixel coordinates: camera space, clip
// space, perspective divide, then NDC [-1,1]² to pixels with the Y axis
// flipped (screen Y grows downward, NDC Y grows upward).
//
// Returns ok=false when the viewport or camera is unusable or the point sits
// behind the eye. Callers treat that as "layout unavailable this frame", not
// as an error.
func Project(world mgl64.Vec3, cam Camera, vw, vh float64) (mgl64.Vec2, bool) {
	if vw <= 0 || vh <= 0 || cam.Aspect <= 0 || cam.FOV <= 0 {
		return mgl64.Vec2{}, false
	}

	clip := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 0 || math.IsNaN(w) {
		return mgl64.Vec2{}, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	return mgl64.Vec2{
		(ndcX + 1) / 2 * vw,
		(1 - ndcY) / 2 * vh,
	}, true
}

// ProjectBox projects the two extreme corners center±halfExtents independently
// and returns their pixel bounds.
//
// The box is treated as axis-aligned in world space: rotation moves only the
// center, the half extents are never re-derived from the rotated corners. This
// is a deliberate approximation — the overlay tracks a card that is wider than
// it is deep, so the footprint error mid-flip stays small and collapses to
// zero at rest. ProjectOrientedBox is the exact alternative.
func ProjectBox(center, halfExtents mgl64.Vec3, cam Camera, vw, vh float64) (ScreenRect, bool) {
	lo, ok := Project(center.Sub(halfExtents), cam, vw, vh)
	if !ok {
		return ScreenRect{}, false
	}
	hi, ok := Project(center.Add(halfExtents), cam, vw, vh)
	if !ok {
		return ScreenRect{}, false
	}

	x0, x1 := math.Min(lo.X(), hi.X()), math.Max(lo.X(), hi.X())
	y0, y1 := math.Min(lo.Y(), hi.Y()), math.Max(lo.Y(), hi.Y())
	return ScreenRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// ProjectOrientedBox projects all eight corners of the box after applying the
// Euler XYZ rotation and returns their pixel bounds. Tighter than ProjectBox
// during rotation, at eight projections instead of two.
func ProjectOrientedBox(center, halfExtents, eulerXYZ mgl64.Vec3, cam Camera, vw, vh float64) (ScreenRect, bool) {
	q := mgl64.AnglesToQuat(eulerXYZ.X(), eulerXYZ.Y(), eulerXYZ.Z(), mgl64.XYZ)

	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{
			halfExtents.X() * sign(i&1 == 0),
			halfExtents.Y() * sign(i&2 == 0),
			halfExtents.Z() * sign(i&4 == 0),
		}
		p, ok := Project(center.Add(q.Rotate(corner)), cam, vw, vh)
		if !ok {
			return ScreenRect{}, false
		}
		x0 = math.Min(x0, p.X())
		y0 = math.Min(y0, p.Y())
		x1 = math.Max(x1, p.X())
		y1 = math.Max(y1, p.Y())
	}
	return ScreenRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}
