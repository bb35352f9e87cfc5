package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"checkout3d/internal/checkout"
	"checkout3d/internal/overlay"
	"checkout3d/internal/payment"
	"checkout3d/internal/scene"
	"checkout3d/internal/theme"
)

// ErrInitialization marks a missing rendering surface or an unusable
// viewport. Fatal: setup halts and the subsystem must not be used.
var ErrInitialization = errors.New("app: initialization failed")

// Config holds coordinator construction parameters.
type Config struct {
	ViewportWidth  float64
	ViewportHeight float64
	FrameRate      int
	Amount         string // decimal string forwarded to the gateway
	Theme          string
	ParticleCount  int
	Checkout       checkout.Config
}

// Coordinator is the explicit application context: it owns the stage, the
// overlay engine, the effects layer and the state controller, and wires the
// opaque input layer's events to them. Constructed once and passed by
// reference; there is no ambient global scene.
type Coordinator struct {
	log     zerolog.Logger
	cfg     Config
	bus     *Bus
	stage   *scene.Stage
	engine  *overlay.Engine
	fx      *theme.Effects
	ctrl    *checkout.Controller
	surface overlay.Surface
	gateway payment.Gateway

	needsLayout bool
}

// New wires the subsystem. A nil surface, nil gateway or degenerate viewport
// is an initialization failure and prevents further use.
func New(cfg Config, surface overlay.Surface, gw payment.Gateway, log zerolog.Logger) (*Coordinator, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: no presentation surface", ErrInitialization)
	}
	if gw == nil {
		return nil, fmt.Errorf("%w: no payment gateway", ErrInitialization)
	}
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		return nil, fmt.Errorf("%w: viewport %gx%g", ErrInitialization, cfg.ViewportWidth, cfg.ViewportHeight)
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	if cfg.ParticleCount <= 0 {
		cfg.ParticleCount = 120
	}

	st := scene.NewStage(cfg.ViewportWidth, cfg.ViewportHeight)
	fx := theme.NewEffects(time.Now().UnixNano(), cfg.ParticleCount)
	fx.Apply(cfg.Theme)

	co := &Coordinator{
		log:         log.With().Str("component", "coordinator").Logger(),
		cfg:         cfg,
		bus:         NewBus(256),
		stage:       st,
		engine:      overlay.NewEngine(overlay.DefaultRegions()),
		fx:          fx,
		ctrl:        checkout.New(st, fx, cfg.Checkout, log),
		surface:     surface,
		gateway:     gw,
		needsLayout: true,
	}
	co.bus.Subscribe(co.handle)
	return co, nil
}

// Bus returns the event bus external layers publish into.
func (co *Coordinator) Bus() *Bus { return co.bus }

// Stage returns the scene rig.
func (co *Coordinator) Stage() *scene.Stage { return co.stage }

// Controller returns the animation state controller.
func (co *Coordinator) Controller() *checkout.Controller { return co.ctrl }

// Effects returns the theme/effects layer.
func (co *Coordinator) Effects() *theme.Effects { return co.fx }

// Run drives the frame loop until ctx is cancelled. One iteration per frame
// interval: drain events, advance animation, recompute the overlay, push it
// to the surface.
func (co *Coordinator) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(co.cfg.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			co.Step(now.Sub(last))
			last = now
		}
	}
}

// Step runs exactly one frame. Exposed so the preview's own loop (and tests)
// can drive the coordinator without the ticker.
func (co *Coordinator) Step(dt time.Duration) {
	if n := co.bus.Drain(); n > 0 {
		co.needsLayout = true
	}

	co.ctrl.Tick(dt)
	co.stage.Tick(dt)

	// Layout runs every frame while anything moves, and at least once after
	// any event. The idle float shifts the container vertically, so in
	// practice this recomputes every frame.
	if !co.needsLayout && !co.stage.Animating() && co.stage.FloatAmplitude == 0 {
		return
	}
	co.applyLayout()
}

// applyLayout recomputes and pushes overlay geometry. An unavailable
// projection skips the frame and retries next tick; the loop itself never
// stops because alignment failed.
func (co *Coordinator) applyLayout() {
	vw, vh := co.stage.Viewport()
	layout, ok := co.engine.ComputeLayout(co.stage.Card(), co.stage.HalfExtents(), co.stage.Camera(), vw, vh)
	if !ok {
		co.log.Debug().Msg("layout unavailable, retrying next frame")
		return
	}
	co.surface.Apply(layout)
	co.needsLayout = false
}

// handle applies one drained event. Runs on the loop goroutine.
func (co *Coordinator) handle(e Event) {
	switch e.Kind {
	case EventFocus:
		co.ctrl.Focus(e.Field)
	case EventBlur:
		co.ctrl.Blur(e.Field)
	case EventValidity:
		co.ctrl.SetValidity(e.Field, e.Valid)
	case EventSubmit:
		if co.ctrl.Submit() {
			go co.processPayment()
		}
	case EventSuccess:
		co.ctrl.Succeed(e.TxID)
	case EventError:
		co.ctrl.Fail(e.Message)
	case EventResize:
		co.stage.Resize(e.Width, e.Height)
		// Synchronous alignment pass: the very next layout any consumer sees
		// uses the new viewport, no stale frame in between.
		co.applyLayout()
	case EventTheme:
		co.fx.Apply(e.Theme)
	}
}

// processPayment runs tokenize→charge off the loop goroutine and publishes
// the outcome back onto the bus, where the next drain applies it atomically
// with respect to the frame.
func (co *Coordinator) processPayment() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nonce, err := co.gateway.Tokenize(ctx)
	if err != nil {
		co.log.Warn().Err(err).Msg("tokenization failed")
		co.bus.Publish(Event{Kind: EventError, Message: userMessage(err)})
		return
	}

	tx, err := co.gateway.Charge(ctx, nonce, co.cfg.Amount)
	if err != nil {
		co.log.Warn().Err(err).Msg("charge failed")
		co.bus.Publish(Event{Kind: EventError, Message: userMessage(err)})
		return
	}

	co.log.Info().Str("tx", tx.ID).Str("amount", tx.Amount).Msg("charge settled")
	co.bus.Publish(Event{Kind: EventSuccess, TxID: tx.ID})
}

// userMessage maps gateway failures to the human-readable text surfaced to
// the caller. Internals stay in the logs.
func userMessage(err error) string {
	switch {
	case errors.Is(err, payment.ErrTokenization):
		return "We couldn't verify your card details. Please check them and try again."
	case errors.Is(err, payment.ErrService):
		return "Payment was declined. Please try another card."
	default:
		return "Something went wrong processing your payment. Please try again."
	}
}
