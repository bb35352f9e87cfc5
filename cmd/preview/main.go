// preview is a local window for exercising the checkout scene without a
// browser: the card container, overlay regions and particle burst are drawn
// directly, and the keyboard stands in for the opaque field events.
//
//	1-4   focus number / expiry / cvv / postal
//	esc   blur the focused field
//	v     mark all fields valid
//	enter submit
//	t     cycle themes
package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"checkout3d/internal/app"
	"checkout3d/internal/checkout"
	"checkout3d/internal/overlay"
	"checkout3d/internal/payment"
	"checkout3d/internal/projection"
	"checkout3d/internal/theme"
)

const (
	initialWidth  = 960
	initialHeight = 640
)

type game struct {
	co      *app.Coordinator
	surface *capturedSurface

	themeIdx int
	vw, vh   int
}

// capturedSurface stores the most recent layout; Apply runs synchronously
// inside Step, so Draw always sees a complete frame.
type capturedSurface struct {
	layout overlay.Layout
	seen   bool
}

func (s *capturedSurface) Apply(l overlay.Layout) {
	s.layout = l
	s.seen = true
}

func (g *game) Update() error {
	bus := g.co.Bus()

	for key, field := range map[ebiten.Key]string{
		ebiten.Key1: "number",
		ebiten.Key2: "expiry",
		ebiten.Key3: "cvv",
		ebiten.Key4: "postal",
	} {
		if inpututil.IsKeyJustPressed(key) {
			bus.Publish(app.Event{Kind: app.EventFocus, Field: field})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if f := g.co.Controller().FocusedField(); f != "" {
			bus.Publish(app.Event{Kind: app.EventBlur, Field: f})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		for _, f := range checkout.RequiredFields {
			bus.Publish(app.Event{Kind: app.EventValidity, Field: f, Valid: true})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		bus.Publish(app.Event{Kind: app.EventSubmit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		names := theme.Names()
		g.themeIdx = (g.themeIdx + 1) % len(names)
		bus.Publish(app.Event{Kind: app.EventTheme, Theme: names[g.themeIdx]})
	}

	g.co.Step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := g.co.Effects().Current()
	screen.Fill(toColor(t.Fog, 255))

	if !g.surface.seen {
		return
	}
	l := g.surface.layout

	c := l.Container
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), toColor(t.CardColor, 255), false)

	glowRegion := g.co.Controller().GlowRegion()
	glow := g.co.Stage().Glow()
	for name, r := range l.Regions {
		if !r.Visible {
			continue
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, toColor(t.ParticleColor, 200), false)
		if name == glowRegion && glow > 0 {
			vector.StrokeRect(screen, float32(r.X)-2, float32(r.Y)-2, float32(r.Width)+4, float32(r.Height)+4, 2, toColor(t.ParticleColor, uint8(80+glow*175)), false)
		}
		text.Draw(screen, name, basicfont.Face7x13, int(r.X)+4, int(r.Y)+14, color.White)
	}

	g.drawParticles(screen, t)

	status := fmt.Sprintf("state=%s  orientation=%s  flipped=%v", g.co.Controller().State(), g.co.Stage().Orientation(), l.Flipped)
	if msg := g.co.Controller().LastError(); msg != "" {
		status += "  error=" + msg
	}
	text.Draw(screen, status, basicfont.Face7x13, 8, g.vh-10, color.White)
}

func (g *game) drawParticles(screen *ebiten.Image, t theme.Theme) {
	fx := g.co.Effects()
	if !fx.ParticlesVisible() {
		return
	}
	cam := g.co.Stage().Camera()
	vw, vh := g.co.Stage().Viewport()
	for _, p := range fx.Particles() {
		px, ok := projection.Project(p, cam, vw, vh)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(px.X())-1, float32(px.Y())-1, 3, 3, toColor(t.ParticleColor, 255), false)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.vw || outsideHeight != g.vh {
		g.vw, g.vh = outsideWidth, outsideHeight
		g.co.Bus().Publish(app.Event{Kind: app.EventResize, Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

func toColor(c theme.Color, a uint8) color.Color {
	return color.NRGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: a,
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	surface := &capturedSurface{}
	co, err := app.New(app.Config{
		ViewportWidth:  initialWidth,
		ViewportHeight: initialHeight,
		FrameRate:      60,
		Amount:         "49.99",
		Theme:          theme.DefaultTheme,
		Checkout:       checkout.DefaultConfig(),
	}, surface, &payment.Simulated{Latency: 400 * time.Millisecond}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g := &game{co: co, surface: surface, vw: initialWidth, vh: initialHeight}

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowTitle("checkout3d preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
