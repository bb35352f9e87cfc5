// Package snapshot rasterizes computed overlay layouts into images for
// offline alignment inspection: the projected card container as a filled
// quad, each region as an outline, hidden regions dimmed.
package snapshot

import (
	"image"
	"image/color"

	"checkout3d/internal/overlay"
	"checkout3d/internal/projection"
	"checkout3d/internal/theme"
)

// Render draws one layout into a w×h NRGBA image using the theme's colors.
func Render(l overlay.Layout, t theme.Theme, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	fill(img, projection.ScreenRect{X: 0, Y: 0, Width: float64(w), Height: float64(h)}, toRGBA(t.Fog, 255))
	fill(img, l.Container, toRGBA(t.CardColor, 255))

	for _, r := range l.Regions {
		if r.Visible {
			outline(img, r.ScreenRect, toRGBA(t.ParticleColor, 255))
		} else {
			outline(img, r.ScreenRect, color.NRGBA{R: 90, G: 90, B: 100, A: 120})
		}
	}
	return img
}

func toRGBA(c theme.Color, a uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: a,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fill(img *image.NRGBA, r projection.ScreenRect, c color.NRGBA) {
	x0, y0, x1, y1 := clipRect(img, r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func outline(img *image.NRGBA, r projection.ScreenRect, c color.NRGBA) {
	x0, y0, x1, y1 := clipRect(img, r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x < x1; x++ {
		img.SetNRGBA(x, y0, c)
		img.SetNRGBA(x, y1-1, c)
	}
	for y := y0; y < y1; y++ {
		img.SetNRGBA(x0, y, c)
		img.SetNRGBA(x1-1, y, c)
	}
}

func clipRect(img *image.NRGBA, r projection.ScreenRect) (x0, y0, x1, y1 int) {
	b := img.Bounds()
	x0 = max(int(r.X), b.Min.X)
	y0 = max(int(r.Y), b.Min.Y)
	x1 = min(int(r.X+r.Width), b.Max.X)
	y1 = min(int(r.Y+r.Height), b.Max.Y)
	return
}
