package overlay

import (
	"github.com/go-gl/mathgl/mgl64"

	"checkout3d/internal/mathx"
	"checkout3d/internal/projection"
	"checkout3d/internal/scene"
)

// RegionRect is the per-frame pixel geometry of one region. Invisible regions
// are excluded from hit-testing (PointerEvents=false), not merely transparent:
// a field logically on the hidden face must not accept input.
type RegionRect struct {
	projection.ScreenRect
	Visible       bool
	PointerEvents bool
	Opacity       float64
}

// Layout is one frame of overlay geometry, in CSS pixels.
type Layout struct {
	Container projection.ScreenRect
	Flipped   bool
	Regions   map[string]RegionRect
}

// Engine positions the DOM overlay over the projected card. It holds only the
// immutable region table; ComputeLayout is pure in its inputs.
type Engine struct {
	regions []Region

	// UseOrientedBounds switches the container to the exact rotated-corner
	// projection. Off by default: the overlay's consumers tolerate the
	// axis-aligned approximation and it is what they were tuned against.
	UseOrientedBounds bool
}

// NewEngine builds an engine over the given region table.
func NewEngine(regions []Region) *Engine {
	return &Engine{regions: regions}
}

// Regions returns the region table.
func (e *Engine) Regions() []Region { return e.regions }

// ComputeLayout projects the card's bounding box and applies each region's
// fixed fractions against the container rect, so regions move rigidly with
// the container. ok=false means projection was unavailable (startup ordering,
// degenerate viewport); the caller skips the overlay update for this frame
// and retries on the next one.
func (e *Engine) ComputeLayout(card *scene.Node, halfExtents mgl64.Vec3, cam projection.Camera, vw, vh float64) (Layout, bool) {
	if card == nil {
		return Layout{}, false
	}

	var container projection.ScreenRect
	var ok bool
	if e.UseOrientedBounds {
		container, ok = projection.ProjectOrientedBox(card.WorldPosition(), halfExtents, card.Rotation, cam, vw, vh)
	} else {
		container, ok = projection.ProjectBox(card.WorldPosition(), halfExtents, cam, vw, vh)
	}
	if !ok {
		return Layout{}, false
	}

	orientation := card.Orientation()
	regions := make(map[string]RegionRect, len(e.regions))
	for _, reg := range e.regions {
		visible := reg.Face.Matches(orientation)
		rect := projection.ScreenRect{
			X:      container.X + reg.Left*container.Width,
			Y:      container.Y + reg.Top*container.Height,
			Width:  reg.Width * container.Width,
			Height: reg.Height * container.Height,
		}
		opacity := 0.0
		if visible {
			opacity = 1.0
		}
		regions[reg.Name] = RegionRect{
			ScreenRect:    rect,
			Visible:       visible,
			PointerEvents: visible,
			Opacity:       opacity,
		}
	}

	return Layout{
		Container: container,
		Flipped:   orientation == mathx.Back,
		Regions:   regions,
	}, true
}

// Surface receives overlay geometry once per frame during motion. The bridge
// implements it for the DOM; the preview implements it for the local window.
type Surface interface {
	Apply(Layout)
}
