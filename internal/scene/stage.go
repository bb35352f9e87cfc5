package scene

import (
	"math"
	"time"

	"github.com/fogleman/ease"
	"github.com/go-gl/mathgl/mgl64"

	"checkout3d/internal/mathx"
	"checkout3d/internal/projection"
)

// Property keys used with the tween scheduler. One writer per key keeps
// flip-to-front and flip-to-back from racing: the later call wins.
const (
	propRotY   = "card.rotY"
	propBounce = "card.bounceY"
	propGlow   = "card.glow"
)

// Card dimensions in world units, ISO/IEC 7810 ID-1 aspect (85.60 × 53.98 mm).
const (
	cardWidth  = 2.12
	cardHeight = 1.337
	cardDepth  = 0.03
)

// Stage owns the card node, the camera and all tween state. The animation
// state controller is the only caller that sets transform targets; the frame
// loop is the only caller of Tick.
type Stage struct {
	root *Node
	card *Node
	cam  projection.Camera

	sched   *Scheduler
	elapsed float64
	vw, vh  float64

	// Idle animation parameters.
	FloatAmplitude float64
	FloatFrequency float64
	SwayAmplitude  float64
	SwayFrequency  float64

	basePosition mgl64.Vec3
	bounceY      float64
	glow         float64
}

// NewStage builds the card rig for the given viewport size.
func NewStage(vw, vh float64) *Stage {
	st := &Stage{
		root:  NewNode("root"),
		card:  NewNode("card"),
		cam:   projection.NewCamera(35, vw/vh),
		sched: NewScheduler(),
		vw:    vw,
		vh:    vh,

		FloatAmplitude: 0.06,
		FloatFrequency: 1.1,
		SwayAmplitude:  mathx.Deg2Rad(1.6),
		SwayFrequency:  0.7,
	}
	st.root.AddChild(st.card)
	return st
}

// Card returns the card node.
func (st *Stage) Card() *Node { return st.card }

// Camera returns the current camera value.
func (st *Stage) Camera() projection.Camera { return st.cam }

// Viewport returns the current viewport size in device-independent pixels.
func (st *Stage) Viewport() (w, h float64) { return st.vw, st.vh }

// HalfExtents returns half the card's world-space dimensions.
func (st *Stage) HalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{cardWidth / 2, cardHeight / 2, cardDepth / 2}
}

// Orientation resolves the card's current facing.
func (st *Stage) Orientation() mathx.Orientation { return st.card.Orientation() }

// Rotating reports whether a flip tween is in flight.
func (st *Stage) Rotating() bool { return st.sched.Active(propRotY) }

// Animating reports whether any tween is in flight. The idle float/sway runs
// regardless and does not count: it never moves the overlay enough to need a
// layout pass on its own — except vertically, which is why callers still
// recompute layout every frame (see Coordinator).
func (st *Stage) Animating() bool { return st.sched.AnyActive() }

// Glow returns the current glow intensity in [0,1].
func (st *Stage) Glow() float64 { return st.glow }

// Tick advances the idle float/sway and all active tweens by dt. The vertical
// position composes base + idle float + success bounce so the tweened bounce
// never fights the sine float.
func (st *Stage) Tick(dt time.Duration) {
	st.elapsed += dt.Seconds()

	floatY := st.FloatAmplitude * math.Sin(st.elapsed*st.FloatFrequency*2*math.Pi)
	st.card.Position = mgl64.Vec3{
		st.basePosition.X(),
		st.basePosition.Y() + floatY + st.bounceY,
		st.basePosition.Z(),
	}
	st.card.Rotation[2] = st.SwayAmplitude * math.Sin(st.elapsed*st.SwayFrequency*2*math.Pi)

	st.sched.Advance(dt)
}

// SetRotationTarget tweens the card's Y rotation toward eulerY. A concurrent
// call replaces the in-flight tween rather than stacking.
func (st *Stage) SetRotationTarget(eulerY float64, d time.Duration, e Easing) {
	st.sched.Start(propRotY, Tween{
		From:     st.card.Rotation.Y(),
		To:       eulerY,
		Duration: d,
		Easing:   e,
	}, func(v float64) { st.card.Rotation[1] = v })
}

// FlipTo rotates the card to the requested facing along the shortest arc.
// Already facing that way with no rotation in flight is a no-op.
func (st *Stage) FlipTo(o mathx.Orientation, d time.Duration) {
	if st.Orientation() == o && !st.Rotating() {
		return
	}
	st.SetRotationTarget(mathx.FlipTarget(st.card.Rotation.Y(), o), d, ease.InOutCubic)
}

// Bounce plays the success position bounce: up and back over the duration.
func (st *Stage) Bounce(height float64, d time.Duration) {
	st.sched.Start(propBounce, Tween{
		From:     0,
		To:       1,
		Duration: d,
		Easing:   ease.OutElastic,
		OnComplete: func() {
			st.bounceY = 0
		},
	}, func(v float64) {
		// Rise then settle: full height at the midpoint, zero at both ends.
		st.bounceY = height * math.Sin(v*math.Pi)
	})
}

// GlowTo tweens the radial glow intensity toward target.
func (st *Stage) GlowTo(target float64, d time.Duration) {
	st.sched.Start(propGlow, Tween{
		From:     st.glow,
		To:       target,
		Duration: d,
		Easing:   ease.OutQuad,
	}, func(v float64) { st.glow = v })
}

// Resize recomputes the camera aspect for the new viewport. The caller must
// run an alignment pass immediately afterwards — the next computed layout sees
// the new viewport, never a stale one.
func (st *Stage) Resize(vw, vh float64) {
	st.vw, st.vh = vw, vh
	st.cam.SetAspect(vw, vh)
}
