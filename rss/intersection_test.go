package rss_test

import (
	"testing"

	"github.com/cxd309/rss-intersection-kernel/rss"
	"github.com/stretchr/testify/require"
)

func TestIntersectionSafeNonPriorityAbleToStop(t *testing.T) {
	ego := vehicleState(4, 4, 1, 0, 2, 2, 10, 10)
	other := vehicleState(4, 4, 1, 0, 2, 2, 10, 10)
	other.HasPriority = true

	situation := rss.Situation{
		EgoVehicleState:   ego,
		OtherVehicleState: other,
		RelativePosition: rss.RelativePosition{
			LongitudinalPosition: rss.LongitudinalInFront,
			LongitudinalDistance: 20,
		},
	}

	isSafe, state, info, err := rss.IntersectionSafe(situation)
	require.NoError(t, err)
	require.True(t, isSafe)
	require.Equal(t, rss.IntersectionStateNonPrioAbleToBreak, state)
	require.Equal(t, rss.EvaluatorIntersectionOtherPriorityEgoAbleToStop, info.Evaluator)
}

func TestIntersectionSafeSameDirectionTier(t *testing.T) {
	leader := vehicleState(0, 2, 1, 0, 2, 2, 2, 2)
	leader.HasPriority = true
	follower := vehicleState(4, 0, 1, 0, 2, 2, 2, 2)
	follower.HasPriority = true

	situation := rss.Situation{
		EgoVehicleState:   follower,
		OtherVehicleState: leader,
		RelativePosition: rss.RelativePosition{
			LongitudinalPosition: rss.LongitudinalAtBack,
			LongitudinalDistance: 8,
		},
	}

	isSafe, state, info, err := rss.IntersectionSafe(situation)
	require.NoError(t, err)
	require.True(t, isSafe)
	require.Equal(t, rss.IntersectionStateSafeLongitudinalDistance, state)
	require.Equal(t, rss.EvaluatorIntersectionOtherInFront, info.Evaluator)
}

func TestIntersectionSafeNoTimeOverlapTier(t *testing.T) {
	ego := vehicleState(10, 2, 0, 0, 2, 2, 16, 24)
	ego.HasPriority = true
	other := vehicleState(2, 1, 0, 0, 2, 1, 3, 10)
	other.HasPriority = true

	situation := rss.Situation{
		EgoVehicleState:   ego,
		OtherVehicleState: other,
		RelativePosition: rss.RelativePosition{
			LongitudinalPosition: rss.LongitudinalOverlap,
			LongitudinalDistance: 0,
		},
	}

	isSafe, state, info, err := rss.IntersectionSafe(situation)
	require.NoError(t, err)
	require.True(t, isSafe)
	require.Equal(t, rss.IntersectionStateNoTimeOverlap, state)
	require.Equal(t, rss.EvaluatorIntersectionOverlap, info.Evaluator)
}

func TestIntersectionSafeUnsafe(t *testing.T) {
	ego := vehicleState(10, 2, 0, 0, 2, 2, 16, 24)
	ego.HasPriority = true
	other := vehicleState(10, 2, 0, 0, 2, 2, 16, 24)
	other.HasPriority = true

	situation := rss.Situation{
		EgoVehicleState:   ego,
		OtherVehicleState: other,
		RelativePosition: rss.RelativePosition{
			LongitudinalPosition: rss.LongitudinalOverlap,
			LongitudinalDistance: 0,
		},
	}

	isSafe, _, _, err := rss.IntersectionSafe(situation)
	require.NoError(t, err)
	require.False(t, isSafe)
}

func TestIntersectionSafeInconsistentDistances(t *testing.T) {
	ego := vehicleState(4, 4, 1, 0, 2, 2, 10, 5)
	other := vehicleState(4, 4, 1, 0, 2, 2, 10, 10)

	situation := rss.Situation{
		EgoVehicleState:   ego,
		OtherVehicleState: other,
	}

	_, _, _, err := rss.IntersectionSafe(situation)
	require.ErrorIs(t, err, rss.ErrInconsistentInput)
}
