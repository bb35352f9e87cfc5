package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAngle(t *testing.T) {
	tcs := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi, math.Pi},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, tc := range tcs {
		assert.InDelta(t, tc.want, WrapAngle(tc.in), 1e-12, "WrapAngle(%v)", tc.in)
	}
}

func TestOrientationOf(t *testing.T) {
	tcs := []struct {
		rotY float64
		want Orientation
	}{
		{0, Front},
		{math.Pi / 4, Front},
		{-math.Pi / 4, Front},
		{math.Pi / 2, Back},
		{math.Pi, Back},
		{3 * math.Pi / 2, Back},
		{2 * math.Pi, Front},
		{-math.Pi, Back},
		{7 * math.Pi, Back},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.want, OrientationOf(tc.rotY), "OrientationOf(%v)", tc.rotY)
	}
}

func TestFlipTarget_ShortestArc(t *testing.T) {
	tcs := []struct {
		current float64
		want    Orientation
	}{
		{0, Back},
		{0.3, Back},
		{-0.3, Back},
		{math.Pi, Front},
		{math.Pi + 0.2, Front},
		{4 * math.Pi, Back},
		{-math.Pi - 0.1, Front},
	}
	for _, tc := range tcs {
		target := FlipTarget(tc.current, tc.want)

		assert.Equal(t, tc.want, OrientationOf(target), "target facing for current=%v", tc.current)
		assert.LessOrEqual(t, math.Abs(target-tc.current), math.Pi+1e-9,
			"flip from %v to %v should take the shortest arc", tc.current, target)
	}
}

func TestFlipTarget_AlreadyFacing(t *testing.T) {
	assert.InDelta(t, 0, FlipTarget(0.2, Front), 1e-12)
	assert.InDelta(t, 2*math.Pi, FlipTarget(2*math.Pi-0.2, Front), 1e-12)
}
