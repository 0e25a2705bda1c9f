package quantity_test

import (
	"math"
	"testing"

	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
	"github.com/stretchr/testify/require"
)

func TestValidDuration(t *testing.T) {
	require.True(t, quantity.ValidDuration(0))
	require.True(t, quantity.ValidDuration(100))
	require.False(t, quantity.ValidDuration(-1))
	require.False(t, quantity.ValidDuration(100.0001))
	require.False(t, quantity.ValidDuration(quantity.Duration(math.NaN())))
}

func TestValidSpeed(t *testing.T) {
	require.True(t, quantity.ValidSpeed(-100))
	require.True(t, quantity.ValidSpeed(100))
	require.False(t, quantity.ValidSpeed(-100.1))
	require.False(t, quantity.ValidSpeed(100.1))
	require.False(t, quantity.ValidSpeed(quantity.Speed(math.NaN())))
}

func TestValidAcceleration(t *testing.T) {
	require.True(t, quantity.ValidAcceleration(-1000))
	require.True(t, quantity.ValidAcceleration(1000))
	require.False(t, quantity.ValidAcceleration(-1000.1))
	require.False(t, quantity.ValidAcceleration(1000.1))
}

func TestValidDistance(t *testing.T) {
	require.True(t, quantity.ValidDistance(0))
	require.True(t, quantity.ValidDistance(1e6))
	require.False(t, quantity.ValidDistance(-1))
	require.False(t, quantity.ValidDistance(1e6+1))
}

func TestValidTimeIndex(t *testing.T) {
	require.False(t, quantity.ValidTimeIndex(0))
	require.True(t, quantity.ValidTimeIndex(1))
	require.True(t, quantity.ValidTimeIndex(quantity.TimeIndexMax))
}

func TestSpeedRangeValid(t *testing.T) {
	require.True(t, quantity.SpeedRange{Minimum: -5, Maximum: 5}.Valid())
	require.True(t, quantity.SpeedRange{Minimum: 5, Maximum: 5}.Valid())
	require.False(t, quantity.SpeedRange{Minimum: 5, Maximum: -5}.Valid())
	require.False(t, quantity.SpeedRange{Minimum: -200, Maximum: 5}.Valid())
}
