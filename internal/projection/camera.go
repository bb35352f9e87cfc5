package projection

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera. It is mutated only on initialization and on
// viewport resize; everything else treats it as a value.
type Camera struct {
	FOV    float64 // vertical field of view, radians
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// NewCamera builds the default checkout camera: pulled back on +Z, looking at
// the origin where the card floats.
func NewCamera(fovDeg, aspect float64) Camera {
	return Camera{
		FOV:      mgl64.DegToRad(fovDeg),
		Aspect:   aspect,
		Near:     0.1,
		Far:      100,
		Position: mgl64.Vec3{0, 0, 4.2},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

// SetAspect recomputes the aspect ratio from a viewport size.
func (c *Camera) SetAspect(vw, vh float64) {
	if vh > 0 {
		c.Aspect = vw / vh
	}
}

// ViewMatrix returns the world→camera transform.
func (c Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the camera→clip transform.
func (c Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}
