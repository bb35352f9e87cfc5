package theme

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Effects holds the active theme and the particle subsystem. The point cloud
// is generated once at construction; toggling the burst only flips a
// visibility flag, never regenerates geometry.
type Effects struct {
	current          Theme
	particles        []mgl64.Vec3
	particlesVisible bool
}

// NewEffects pre-generates count particle positions in a shell around the
// card. The seed is fixed by callers that need reproducible clouds (tests,
// snapshots).
func NewEffects(seed int64, count int) *Effects {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]mgl64.Vec3, count)
	for i := range pts {
		pts[i] = mgl64.Vec3{
			(rng.Float64() - 0.5) * 5,
			(rng.Float64() - 0.5) * 3.6,
			(rng.Float64() - 0.5) * 2,
		}
	}
	return &Effects{
		current:   presets[DefaultTheme],
		particles: pts,
	}
}

// Apply switches to the named preset. Unknown names are a no-op, never an
// error, so the host can cycle through candidate names blindly. Applying the
// active theme again is idempotent.
func (e *Effects) Apply(name string) {
	if t, ok := presets[name]; ok {
		e.current = t
	}
}

// Current returns the active preset.
func (e *Effects) Current() Theme { return e.current }

// Particles returns the pre-generated point cloud.
func (e *Effects) Particles() []mgl64.Vec3 { return e.particles }

// ParticlesVisible reports whether the burst is showing.
func (e *Effects) ParticlesVisible() bool { return e.particlesVisible }

// SetParticlesVisible toggles the burst without touching geometry.
func (e *Effects) SetParticlesVisible(v bool) { e.particlesVisible = v }
