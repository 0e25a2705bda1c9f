package rss_test

import (
	"testing"

	"github.com/cxd309/rss-intersection-kernel/rss"
	"github.com/stretchr/testify/require"
)

func validRestriction() rss.AccelerationRestriction {
	return rss.AccelerationRestriction{
		AccelMax:        2,
		BrakeMax:        4,
		BrakeMin:        2,
		BrakeMinCorrect: 1,
	}
}

func TestValidateAccelerationRestriction(t *testing.T) {
	require.NoError(t, rss.ValidateAccelerationRestriction(validRestriction()))

	bad := validRestriction()
	bad.BrakeMinCorrect = 0
	require.ErrorIs(t, rss.ValidateAccelerationRestriction(bad), rss.ErrInconsistentInput)

	outOfRange := validRestriction()
	outOfRange.AccelMax = 5000
	require.ErrorIs(t, rss.ValidateAccelerationRestriction(outOfRange), rss.ErrInconsistentInput)
}

func TestValidateVehicleState(t *testing.T) {
	valid := vehicleState(4, 4, 1, 0, 2, 2, 10, 10)
	require.NoError(t, rss.ValidateVehicleState(valid))

	inverted := vehicleState(4, 4, 1, 0, 2, 2, 10, 5)
	require.ErrorIs(t, rss.ValidateVehicleState(inverted), rss.ErrInconsistentInput)
}

func TestValidateSituation(t *testing.T) {
	situation := rss.Situation{
		EgoVehicleState:   vehicleState(4, 4, 1, 0, 2, 2, 10, 10),
		OtherVehicleState: vehicleState(4, 4, 1, 0, 2, 2, 10, 10),
		RelativePosition: rss.RelativePosition{
			LongitudinalPosition: rss.LongitudinalInFront,
			LongitudinalDistance: 5,
		},
	}
	require.NoError(t, rss.ValidateSituation(situation))

	situation.OtherVehicleState.DistanceToLeaveIntersection = 1
	require.ErrorIs(t, rss.ValidateSituation(situation), rss.ErrInconsistentInput)
}
