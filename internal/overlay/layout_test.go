package overlay

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout3d/internal/mathx"
	"checkout3d/internal/scene"
)

func computeFor(t *testing.T, st *scene.Stage, e *Engine) Layout {
	t.Helper()
	vw, vh := st.Viewport()
	l, ok := e.ComputeLayout(st.Card(), st.HalfExtents(), st.Camera(), vw, vh)
	require.True(t, ok)
	return l
}

func TestComputeLayout_Deterministic(t *testing.T) {
	st := scene.NewStage(1920, 1080)
	e := NewEngine(DefaultRegions())

	a := computeFor(t, st, e)
	b := computeFor(t, st, e)

	assert.Equal(t, a, b)
}

func TestComputeLayout_FrontRegionsContainedInContainer(t *testing.T) {
	st := scene.NewStage(1920, 1080)
	e := NewEngine(DefaultRegions())

	l := computeFor(t, st, e)

	for _, reg := range e.Regions() {
		r := l.Regions[reg.Name]
		if !r.Visible || reg.Top+reg.Height > 1 {
			// The submit strip deliberately hangs below the card.
			continue
		}
		assert.True(t, l.Container.ContainsRect(r.ScreenRect),
			"region %s %+v outside container %+v", reg.Name, r.ScreenRect, l.Container)
	}
}

func TestComputeLayout_ContainmentHoldsAcrossCameraAndRotationSweep(t *testing.T) {
	// Containment is quantified over the operating range, not one pose: sweep
	// camera offsets around the default rig and a full turn of card rotation.
	st := scene.NewStage(1280, 800)
	e := NewEngine(DefaultRegions())

	cameraOffsets := []mgl64.Vec3{
		{0, 0, 0},
		{0.8, 0, 0},
		{-0.8, 0.4, 0},
		{0, -0.5, 1.5},
		{0.3, 0.3, -0.8},
	}

	base := st.Camera()
	const steps = 12
	for _, off := range cameraOffsets {
		cam := base
		cam.Position = base.Position.Add(off)
		for i := 0; i < steps; i++ {
			st.Card().Rotation[1] = 2 * math.Pi * float64(i) / steps

			l, ok := e.ComputeLayout(st.Card(), st.HalfExtents(), cam, 1280, 800)
			require.True(t, ok, "offset %v angle step %d", off, i)

			for _, reg := range e.Regions() {
				if reg.Top+reg.Height > 1 {
					// The submit strip deliberately hangs below the card.
					continue
				}
				r := l.Regions[reg.Name]
				assert.True(t, l.Container.ContainsRect(r.ScreenRect),
					"region %s %+v outside container %+v (offset %v, step %d)",
					reg.Name, r.ScreenRect, l.Container, off, i)
			}
		}
	}
	st.Card().Rotation[1] = 0
}

func TestComputeLayout_VisibilityFollowsOrientation(t *testing.T) {
	st := scene.NewStage(1280, 800)
	e := NewEngine(DefaultRegions())

	front := computeFor(t, st, e)
	assert.True(t, front.Regions[RegionNumber].Visible)
	assert.True(t, front.Regions[RegionExpiry].Visible)
	assert.False(t, front.Regions[RegionCVV].Visible)
	assert.True(t, front.Regions[RegionSubmit].Visible, "always-face region shows on the front")
	assert.False(t, front.Flipped)

	st.Card().Rotation[1] = math.Pi
	back := computeFor(t, st, e)
	assert.False(t, back.Regions[RegionNumber].Visible)
	assert.True(t, back.Regions[RegionCVV].Visible)
	assert.True(t, back.Regions[RegionSubmit].Visible, "always-face region shows on the back")
	assert.True(t, back.Flipped)
}

func TestComputeLayout_InvisibleRegionsExcludedFromHitTesting(t *testing.T) {
	st := scene.NewStage(1280, 800)
	e := NewEngine(DefaultRegions())

	l := computeFor(t, st, e)
	cvv := l.Regions[RegionCVV]

	assert.False(t, cvv.Visible)
	assert.False(t, cvv.PointerEvents, "hidden-face field must not accept input")
	assert.Equal(t, 0.0, cvv.Opacity)

	num := l.Regions[RegionNumber]
	assert.True(t, num.PointerEvents)
	assert.Equal(t, 1.0, num.Opacity)
}

func TestComputeLayout_RegionsMoveRigidlyWithContainer(t *testing.T) {
	st := scene.NewStage(1280, 800)
	e := NewEngine(DefaultRegions())

	before := computeFor(t, st, e)
	st.Card().Position[0] += 0.5
	after := computeFor(t, st, e)

	dx := after.Container.X - before.Container.X
	require.Greater(t, dx, 0.0)

	for name := range before.Regions {
		gotDx := after.Regions[name].X - before.Regions[name].X
		assert.InDelta(t, dx, gotDx, 1e-6, "region %s must shift with the container", name)
	}
}

func TestComputeLayout_ResizeUsesNewViewportImmediately(t *testing.T) {
	st := scene.NewStage(1920, 1080)
	e := NewEngine(DefaultRegions())

	// Mid-tween resize: the next computation must already use 800×600.
	st.FlipTo(mathx.Back, 600*time.Millisecond)
	for i := 0; i < 10; i++ {
		st.Tick(16 * time.Millisecond)
	}
	large := computeFor(t, st, e)

	st.Resize(800, 600)
	small := computeFor(t, st, e)

	assert.Less(t, small.Container.Width, large.Container.Width)
	assert.Less(t, small.Container.X+small.Container.Width, 800.0+1)
	assert.Less(t, small.Container.Y+small.Container.Height, 600.0+1)
}

func TestComputeLayout_UnavailableProjectionIsNoop(t *testing.T) {
	st := scene.NewStage(1280, 800)
	e := NewEngine(DefaultRegions())

	_, ok := e.ComputeLayout(st.Card(), st.HalfExtents(), st.Camera(), 0, 0)
	assert.False(t, ok)

	_, ok = e.ComputeLayout(nil, st.HalfExtents(), st.Camera(), 1280, 800)
	assert.False(t, ok)
}

func TestComputeLayout_OrientedBoundsCoverApproximationMidFlip(t *testing.T) {
	st := scene.NewStage(1280, 800)
	st.Card().Rotation[1] = math.Pi / 4

	approx := NewEngine(DefaultRegions())
	exact := NewEngine(DefaultRegions())
	exact.UseOrientedBounds = true

	a := computeFor(t, st, approx)
	ex := computeFor(t, st, exact)

	// Mid-flip the true rotated footprint is narrower horizontally than the
	// axis-aligned approximation is tall; both must stay centered together.
	assert.InDelta(t, a.Container.X+a.Container.Width/2, ex.Container.X+ex.Container.Width/2, 5)
	assert.InDelta(t, a.Container.Y+a.Container.Height/2, ex.Container.Y+ex.Container.Height/2, 5)
}
