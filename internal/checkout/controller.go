package checkout

import (
	"time"

	"github.com/rs/zerolog"

	"checkout3d/internal/mathx"
	"checkout3d/internal/scene"
	"checkout3d/internal/theme"
)

// State is the animation state machine's single mode.
type State int

const (
	StateIdle State = iota
	StateFocused
	StateFlipped
	StateProcessing
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateFlipped:
		return "flipped"
	case StateProcessing:
		return "processing"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Config holds the controller's animation timings.
type Config struct {
	FlipDuration  time.Duration // card flip tween
	GlowDuration  time.Duration // glow fade in/out
	BounceHeight  float64       // success bounce peak, world units
	BounceTime    time.Duration // success bounce tween
	BurstDuration time.Duration // particle burst visibility window
	SuccessHold   time.Duration // delay between Success and the full reset
}

// DefaultConfig returns the timings the demo ships with.
func DefaultConfig() Config {
	return Config{
		FlipDuration:  600 * time.Millisecond,
		GlowDuration:  250 * time.Millisecond,
		BounceHeight:  0.35,
		BounceTime:    900 * time.Millisecond,
		BurstDuration: 1200 * time.Millisecond,
		SuccessHold:   2500 * time.Millisecond,
	}
}

// Controller is the finite state machine reacting to opaque field events. It
// is the sole writer of transform targets on the stage, which is what keeps a
// flip-to-back and a flip-to-front from racing: the later call wins per
// property inside the tween scheduler.
//
// All methods must be called from the frame loop goroutine; external events
// reach the controller only through the coordinator's bus drain.
type Controller struct {
	cfg   Config
	log   zerolog.Logger
	stage *scene.Stage
	fx    *theme.Effects

	state   State
	focused string
	glow    string
	lastErr string
	fields  map[string]*FieldState

	// Frame-driven countdowns. A focus arriving during the success hold does
	// not cancel the reset: it fires and clears the new focus too. A resubmit
	// does cancel it — see Submit — so a fresh charge never gets reset out
	// from under it.
	resetIn time.Duration
	burstIn time.Duration
}

// New builds a controller over the stage and effects layer.
func New(stage *scene.Stage, fx *theme.Effects, cfg Config, log zerolog.Logger) *Controller {
	return &Controller{
		cfg:    cfg,
		log:    log.With().Str("component", "checkout").Logger(),
		stage:  stage,
		fx:     fx,
		fields: newFieldStates(),
	}
}

// State returns the current machine state.
func (c *Controller) State() State { return c.state }

// FocusedField returns the field holding focus, or "".
func (c *Controller) FocusedField() string { return c.focused }

// GlowRegion returns the region the glow highlight is on, or "".
func (c *Controller) GlowRegion() string { return c.glow }

// LastError returns the most recent caller-visible failure message.
func (c *Controller) LastError() string { return c.lastErr }

// Fields returns a copy of the per-field states.
func (c *Controller) Fields() map[string]FieldState {
	out := make(map[string]FieldState, len(c.fields))
	for k, v := range c.fields {
		out[k] = *v
	}
	return out
}

// Eligible reports whether every required field is valid — the sole
// precondition for submission.
func (c *Controller) Eligible() bool {
	for _, f := range RequiredFields {
		if !c.fields[f].Valid {
			return false
		}
	}
	return true
}

// Focus handles focus(field) from the opaque input layer.
//
// cvv flips the card to the back; everything else ensures the front. Focus of
// the already-focused field is an idempotent no-op, and any focus arriving
// while Processing is ignored outright — no state change mid-submission.
func (c *Controller) Focus(field string) {
	if c.state == StateProcessing {
		c.log.Debug().Str("field", field).Msg("focus ignored while processing")
		return
	}
	if _, known := c.fields[field]; !known {
		return
	}
	if c.focused == field {
		return
	}

	for _, fs := range c.fields {
		fs.Focused = false
	}
	c.fields[field].Focused = true
	c.focused = field
	c.glow = field
	c.stage.GlowTo(1, c.cfg.GlowDuration)

	if field == "cvv" {
		c.setState(StateFlipped)
		c.stage.FlipTo(mathx.Back, c.cfg.FlipDuration)
	} else {
		c.setState(StateFocused)
		c.stage.FlipTo(mathx.Front, c.cfg.FlipDuration)
	}
}

// Blur handles blur(field). Orientation is sticky: it only changes on the
// next focus, never on blur, so tabbing off the cvv leaves the card showing
// its back until another field takes focus.
func (c *Controller) Blur(field string) {
	fs, known := c.fields[field]
	if !known {
		return
	}
	fs.Focused = false

	if c.state == StateProcessing || c.focused != field {
		return
	}
	c.focused = ""
	c.glow = ""
	c.stage.GlowTo(0, c.cfg.GlowDuration)
	c.setState(StateIdle)
}

// SetValidity records a validity-changed event. Validity is owned by the
// opaque input layer; the 3D side only ever reads it.
func (c *Controller) SetValidity(field string, valid bool) {
	if fs, known := c.fields[field]; known {
		fs.Valid = valid
	}
}

// Submit attempts the Processing transition. Submitting while any field is
// invalid, or while already Processing, is rejected silently at the boundary;
// the return value tells the coordinator whether to start the payment flow.
func (c *Controller) Submit() bool {
	if c.state == StateProcessing {
		return false
	}
	if !c.Eligible() {
		c.log.Debug().Msg("submit ignored: fields invalid")
		return false
	}
	c.lastErr = ""
	c.glow = ""
	// A resubmit during the post-success hold starts a fresh charge; the
	// previous success's countdowns must not fire mid-Processing and reset
	// the machine out from under it.
	c.resetIn = 0
	c.burstIn = 0
	c.fx.SetParticlesVisible(false)
	c.stage.GlowTo(0, c.cfg.GlowDuration)
	c.setState(StateProcessing)
	return true
}

// Succeed handles the external success(transactionID) outcome: bounce, radial
// glow, timed particle burst, then the fixed hold before the full form reset.
func (c *Controller) Succeed(txID string) {
	if c.state != StateProcessing {
		return
	}
	c.log.Info().Str("tx", txID).Msg("payment settled")
	c.setState(StateSuccess)
	c.stage.Bounce(c.cfg.BounceHeight, c.cfg.BounceTime)
	c.stage.GlowTo(1, c.cfg.GlowDuration)
	c.fx.SetParticlesVisible(true)
	c.burstIn = c.cfg.BurstDuration
	c.resetIn = c.cfg.SuccessHold
}

// Fail handles the external error(message) outcome. No failure animation is
// mandated; the message is surfaced and the next focus or submit proceeds as
// if from Idle.
func (c *Controller) Fail(msg string) {
	if c.state != StateProcessing {
		return
	}
	c.log.Warn().Str("reason", msg).Msg("payment failed")
	c.lastErr = msg
	c.setState(StateError)
}

// Tick advances the frame-driven countdowns. The post-success hold is wall
// clock in production because the loop feeds real frame deltas; tests feed
// synthetic ones.
func (c *Controller) Tick(dt time.Duration) {
	if c.burstIn > 0 {
		c.burstIn -= dt
		if c.burstIn <= 0 {
			c.fx.SetParticlesVisible(false)
		}
	}
	if c.resetIn > 0 {
		c.resetIn -= dt
		if c.resetIn <= 0 {
			c.reset()
		}
	}
}

// reset clears every FieldState, the glow, any error, and returns the card to
// the front face. Runs unconditionally when the hold expires.
func (c *Controller) reset() {
	for _, fs := range c.fields {
		fs.Valid = false
		fs.Focused = false
	}
	c.focused = ""
	c.glow = ""
	c.lastErr = ""
	c.fx.SetParticlesVisible(false)
	c.stage.GlowTo(0, c.cfg.GlowDuration)
	c.stage.FlipTo(mathx.Front, c.cfg.FlipDuration)
	c.setState(StateIdle)
	c.log.Debug().Msg("form reset")
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.log.Debug().Stringer("from", c.state).Stringer("to", s).Msg("state transition")
	c.state = s
}
