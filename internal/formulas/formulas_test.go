package formulas_test

import (
	"testing"

	"github.com/cxd309/rss-intersection-kernel/internal/formulas"
	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
	"github.com/stretchr/testify/require"
)

func TestStoppingDistance(t *testing.T) {
	d, ok := formulas.StoppingDistance(10, 5)
	require.True(t, ok)
	require.InDelta(t, 10.0, float64(d), 1e-9)

	_, ok = formulas.StoppingDistance(10, 0)
	require.False(t, ok)

	_, ok = formulas.StoppingDistance(10, -1)
	require.False(t, ok)
}

func TestTimeToCoverDistanceWithinResponsePhase(t *testing.T) {
	// 0.5*2*2^2 = 4, exactly at the response-phase boundary.
	d, ok := formulas.TimeToCoverDistance(0, 2, 2, -1, 4)
	require.True(t, ok)
	require.InDelta(t, 2.0, float64(d), 1e-9)
}

func TestTimeToCoverDistancePostResponsePhase(t *testing.T) {
	// 4 m covered during response (speed 4, no acceleration), then braking at
	// 2 m/s^2 covers another 4 m before stopping: total reachable is 8 m.
	d, ok := formulas.TimeToCoverDistance(4, 1, 0, -2, 8)
	require.True(t, ok)
	require.InDelta(t, 3.0, float64(d), 1e-9)
}

func TestTimeToCoverDistanceUnreachable(t *testing.T) {
	d, ok := formulas.TimeToCoverDistance(4, 1, 0, -2, 10)
	require.True(t, ok)
	require.Equal(t, quantity.DurationMax, d)
}

func TestStoppingDistanceWithResponse(t *testing.T) {
	d, ok := formulas.StoppingDistanceWithResponse(4, 1, 0, 2)
	require.True(t, ok)
	require.InDelta(t, 8.0, float64(d), 1e-9)

	_, ok = formulas.StoppingDistanceWithResponse(4, 1, 0, 0)
	require.False(t, ok)
}

func TestSafeLongitudinalDistanceSameDirection(t *testing.T) {
	d, ok := formulas.SafeLongitudinalDistanceSameDirection(2, 4, 1, 0, 2, 2)
	require.True(t, ok)
	require.InDelta(t, 7.0, float64(d), 1e-9)
}

func TestSafeLongitudinalDistanceSameDirectionClampsToZero(t *testing.T) {
	d, ok := formulas.SafeLongitudinalDistanceSameDirection(10, 4, 1, 0, 2, 1)
	require.True(t, ok)
	require.Equal(t, quantity.Distance(0), d)
}

func TestSafeLongitudinalDistanceSameDirectionUndecidable(t *testing.T) {
	_, ok := formulas.SafeLongitudinalDistanceSameDirection(2, 4, 1, 0, 0, 2)
	require.False(t, ok)

	_, ok = formulas.SafeLongitudinalDistanceSameDirection(2, 4, 1, 0, 2, 0)
	require.False(t, ok)
}

func TestSafeLongitudinalDistanceOppositeDirection(t *testing.T) {
	d, ok := formulas.SafeLongitudinalDistanceOppositeDirection(4, 1, 0, 2, 4, 1, 0, 2)
	require.True(t, ok)
	require.InDelta(t, 16.0, float64(d), 1e-9)
}

func TestSafeLateralDistance(t *testing.T) {
	d, ok := formulas.SafeLateralDistance(4, 0, 2, 4, 0, 2, 1, 0.5, 0.5)
	require.True(t, ok)
	require.InDelta(t, 17.0, float64(d), 1e-9)
}
