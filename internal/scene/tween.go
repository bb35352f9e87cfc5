package scene

import (
	"sort"
	"time"
)

// Easing maps normalized time in [0,1] to progress in [0,1].
type Easing func(float64) float64

// Tween is a value descriptor for one scalar interpolation. Descriptors are
// handed to the Scheduler; there is no fluent chaining, completion work goes
// in OnComplete.
type Tween struct {
	From       float64
	To         float64
	Duration   time.Duration
	Easing     Easing
	OnComplete func()
}

type activeTween struct {
	Tween
	apply   func(float64)
	elapsed time.Duration
}

// Scheduler advances all active tweens once per tick. Tweens are keyed by the
// property they drive; starting a tween on a key that is already animating
// replaces the in-flight one (last-call-wins, the old OnComplete never fires).
type Scheduler struct {
	active map[string]*activeTween
}

func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[string]*activeTween)}
}

// Start registers tw to drive the property named key via apply. A zero or
// negative duration applies the final value on the next Advance.
func (s *Scheduler) Start(key string, tw Tween, apply func(float64)) {
	if tw.Easing == nil {
		tw.Easing = func(t float64) float64 { return t }
	}
	s.active[key] = &activeTween{Tween: tw, apply: apply}
}

// Stop drops the tween on key without applying anything further.
func (s *Scheduler) Stop(key string) {
	delete(s.active, key)
}

// Active reports whether key has an in-flight tween.
func (s *Scheduler) Active(key string) bool {
	_, ok := s.active[key]
	return ok
}

// AnyActive reports whether any tween is in flight.
func (s *Scheduler) AnyActive() bool {
	return len(s.active) > 0
}

// Advance moves every active tween forward by dt, applies the interpolated
// values, and fires OnComplete for tweens that finished this tick. Completion
// callbacks run after all values are applied so they may start new tweens.
func (s *Scheduler) Advance(dt time.Duration) {
	keys := make([]string, 0, len(s.active))
	for k := range s.active {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var completed []func()
	for _, k := range keys {
		at := s.active[k]
		at.elapsed += dt

		if at.Duration <= 0 || at.elapsed >= at.Duration {
			at.apply(at.To)
			delete(s.active, k)
			if at.OnComplete != nil {
				completed = append(completed, at.OnComplete)
			}
			continue
		}

		t := float64(at.elapsed) / float64(at.Duration)
		at.apply(at.From + (at.To-at.From)*at.Easing(t))
	}

	for _, fn := range completed {
		fn()
	}
}
