package projection

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() Camera {
	return NewCamera(35, 16.0/9.0)
}

func TestProject_CenterMapsToViewportCenter(t *testing.T) {
	cam := testCamera()

	p, ok := Project(mgl64.Vec3{0, 0, 0}, cam, 1920, 1080)
	require.True(t, ok)
	assert.InDelta(t, 960, p.X(), 1e-6)
	assert.InDelta(t, 540, p.Y(), 1e-6)
}

func TestProject_YAxisFlipped(t *testing.T) {
	cam := testCamera()

	up, ok := Project(mgl64.Vec3{0, 1, 0}, cam, 1920, 1080)
	require.True(t, ok)
	down, ok := Project(mgl64.Vec3{0, -1, 0}, cam, 1920, 1080)
	require.True(t, ok)

	// World +Y is up; screen Y grows downward.
	assert.Less(t, up.Y(), 540.0)
	assert.Greater(t, down.Y(), 540.0)
}

func TestProject_BehindCameraUnavailable(t *testing.T) {
	cam := testCamera()

	_, ok := Project(mgl64.Vec3{0, 0, cam.Position.Z() + 1}, cam, 1920, 1080)
	assert.False(t, ok)
}

func TestProject_DegenerateInputsUnavailable(t *testing.T) {
	cam := testCamera()

	_, ok := Project(mgl64.Vec3{}, cam, 0, 1080)
	assert.False(t, ok, "zero-width viewport")

	_, ok = Project(mgl64.Vec3{}, cam, 1920, 0)
	assert.False(t, ok, "zero-height viewport")

	bad := cam
	bad.Aspect = 0
	_, ok = Project(mgl64.Vec3{}, bad, 1920, 1080)
	assert.False(t, ok, "unset camera aspect")
}

func TestProject_Deterministic(t *testing.T) {
	cam := testCamera()
	world := mgl64.Vec3{0.3, -0.2, 0.1}

	a, ok := Project(world, cam, 1280, 800)
	require.True(t, ok)
	b, ok := Project(world, cam, 1280, 800)
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestProjectBox_CentersOnProjectedCenter(t *testing.T) {
	cam := testCamera()
	half := mgl64.Vec3{1.06, 0.67, 0.015}

	rect, ok := ProjectBox(mgl64.Vec3{0, 0, 0}, half, cam, 1920, 1080)
	require.True(t, ok)

	assert.Greater(t, rect.Width, 0.0)
	assert.Greater(t, rect.Height, 0.0)
	assert.InDelta(t, 960, rect.X+rect.Width/2, 1e-6)
	assert.InDelta(t, 540, rect.Y+rect.Height/2, 1e-6)
}

func TestProjectBox_UnavailableWhenCornerBehindCamera(t *testing.T) {
	cam := testCamera()
	// Deep box reaching past the eye.
	_, ok := ProjectBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, cam.Position.Z() + 1}, cam, 1920, 1080)
	assert.False(t, ok)
}

func TestProjectOrientedBox_MatchesApproximationAtRest(t *testing.T) {
	cam := testCamera()
	center := mgl64.Vec3{0, 0, 0}
	half := mgl64.Vec3{1.06, 0.67, 0.015}

	approx, ok := ProjectBox(center, half, cam, 1920, 1080)
	require.True(t, ok)
	exact, ok := ProjectOrientedBox(center, half, mgl64.Vec3{}, cam, 1920, 1080)
	require.True(t, ok)

	// With no rotation the oriented bounds may only differ by the perspective
	// of the depth corners, which is tiny for a thin card.
	assert.InDelta(t, approx.X, exact.X, 2)
	assert.InDelta(t, approx.Y, exact.Y, 2)
	assert.InDelta(t, approx.Width, exact.Width, 4)
	assert.InDelta(t, approx.Height, exact.Height, 4)
}

func TestScreenRect_Contains(t *testing.T) {
	r := ScreenRect{X: 10, Y: 20, Width: 100, Height: 50}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.True(t, r.Contains(60, 45))
	assert.False(t, r.Contains(9, 45))
	assert.False(t, r.Contains(60, 71))

	assert.True(t, r.ContainsRect(ScreenRect{X: 20, Y: 30, Width: 10, Height: 10}))
	assert.False(t, r.ContainsRect(ScreenRect{X: 20, Y: 30, Width: 200, Height: 10}))
}
