package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_AdvancesAndCompletes(t *testing.T) {
	s := NewScheduler()
	var v float64
	done := 0

	s.Start("x", Tween{
		From:       0,
		To:         10,
		Duration:   100 * time.Millisecond,
		OnComplete: func() { done++ },
	}, func(val float64) { v = val })

	s.Advance(50 * time.Millisecond)
	assert.InDelta(t, 5, v, 1e-9, "linear easing at the midpoint")
	assert.True(t, s.Active("x"))
	assert.Equal(t, 0, done)

	s.Advance(50 * time.Millisecond)
	assert.InDelta(t, 10, v, 1e-9)
	assert.False(t, s.Active("x"))
	assert.Equal(t, 1, done)

	// Nothing further fires.
	s.Advance(time.Second)
	assert.Equal(t, 1, done)
}

func TestScheduler_LastCallWins(t *testing.T) {
	s := NewScheduler()
	var v float64
	firstCompleted := false

	s.Start("x", Tween{
		From:       0,
		To:         100,
		Duration:   time.Second,
		OnComplete: func() { firstCompleted = true },
	}, func(val float64) { v = val })
	s.Advance(100 * time.Millisecond)

	// Replacing the in-flight tween drops it without firing its completion.
	s.Start("x", Tween{From: v, To: -50, Duration: 100 * time.Millisecond}, func(val float64) { v = val })
	s.Advance(200 * time.Millisecond)

	assert.InDelta(t, -50, v, 1e-9)
	assert.False(t, firstCompleted)
	assert.False(t, s.AnyActive())
}

func TestScheduler_ZeroDurationAppliesImmediately(t *testing.T) {
	s := NewScheduler()
	var v float64

	s.Start("x", Tween{From: 0, To: 7}, func(val float64) { v = val })
	s.Advance(time.Millisecond)

	assert.InDelta(t, 7, v, 1e-9)
	assert.False(t, s.AnyActive())
}

func TestScheduler_CompletionMayStartNewTween(t *testing.T) {
	s := NewScheduler()
	var v float64

	s.Start("x", Tween{
		From:     0,
		To:       1,
		Duration: 10 * time.Millisecond,
		OnComplete: func() {
			s.Start("x", Tween{From: 1, To: 2, Duration: 10 * time.Millisecond}, func(val float64) { v = val })
		},
	}, func(val float64) { v = val })

	s.Advance(10 * time.Millisecond)
	assert.True(t, s.Active("x"), "chained tween registered by OnComplete")

	s.Advance(10 * time.Millisecond)
	assert.InDelta(t, 2, v, 1e-9)
}

func TestScheduler_IndependentKeys(t *testing.T) {
	s := NewScheduler()
	var a, b float64

	s.Start("a", Tween{From: 0, To: 1, Duration: 100 * time.Millisecond}, func(v float64) { a = v })
	s.Start("b", Tween{From: 0, To: 2, Duration: 200 * time.Millisecond}, func(v float64) { b = v })

	s.Advance(100 * time.Millisecond)
	assert.InDelta(t, 1, a, 1e-9)
	assert.InDelta(t, 1, b, 1e-9)
	assert.False(t, s.Active("a"))
	assert.True(t, s.Active("b"))
}
