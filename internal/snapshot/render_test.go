package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout3d/internal/overlay"
	"checkout3d/internal/projection"
	"checkout3d/internal/scene"
	"checkout3d/internal/theme"
)

func testLayout(t *testing.T) overlay.Layout {
	t.Helper()
	st := scene.NewStage(256, 256)
	e := overlay.NewEngine(overlay.DefaultRegions())
	l, ok := e.ComputeLayout(st.Card(), st.HalfExtents(), st.Camera(), 256, 256)
	require.True(t, ok)
	return l
}

func TestRender_FillsContainerWithCardColor(t *testing.T) {
	l := testLayout(t)
	th, _ := theme.Lookup(theme.DefaultTheme)

	img := Render(l, th, 256, 256)
	require.Equal(t, 256, img.Bounds().Dx())

	cx := int(l.Container.X + l.Container.Width/2)
	cy := int(l.Container.Y + l.Container.Height/2)
	got := img.NRGBAAt(cx, cy)

	assert.Equal(t, uint8(th.CardColor[0]*255+0.5), got.R)
	assert.Equal(t, uint8(th.CardColor[1]*255+0.5), got.G)
	assert.Equal(t, uint8(th.CardColor[2]*255+0.5), got.B)
}

func TestRender_ClipsOffscreenRects(t *testing.T) {
	th, _ := theme.Lookup(theme.DefaultTheme)
	l := overlay.Layout{
		Container: projection.ScreenRect{X: -100, Y: -100, Width: 1000, Height: 1000},
		Regions: map[string]overlay.RegionRect{
			"huge": {
				ScreenRect: projection.ScreenRect{X: -50, Y: -50, Width: 500, Height: 500},
				Visible:    true,
			},
		},
	}

	// Must not panic on geometry extending past the image.
	img := Render(l, th, 64, 64)
	assert.Equal(t, 64, img.Bounds().Dy())
}
