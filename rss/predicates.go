package rss

import (
	"github.com/cxd309/rss-intersection-kernel/internal/formulas"
	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
)

// StopInFrontIntersection computes the stopping distance for vehicle under
// its own responseTime/accelMax/brakeMin and reports whether that distance
// is strictly less than its distanceToEnterIntersection. The vehicle's
// speedLon.Maximum is used, since the worst case for "can it stop in time"
// is the vehicle travelling as fast as it is permitted to. ok is false only
// when the underlying formula is undecidable (brakeMin <= 0).
func StopInFrontIntersection(vehicle VehicleState) (safeDistance quantity.Distance, isSafe bool, ok bool) {
	d, ok := formulas.StoppingDistanceWithResponse(
		vehicle.Velocity.SpeedLon.Maximum,
		vehicle.Dynamics.ResponseTime,
		vehicle.Dynamics.AlphaLon.AccelMax,
		vehicle.Dynamics.AlphaLon.BrakeMin,
	)
	if !ok {
		return 0, false, false
	}
	return d, d < vehicle.DistanceToEnterIntersection, true
}

// SafeLongitudinalDistanceSameDirection applies the same-direction RSS
// formula to leader/follower, comparing the result against currentDistance.
// The follower's speedLon.Maximum (fastest possible approach) and the
// leader's speedLon.Minimum (slowest possible escape) are used, mirroring
// the conservative min/max choice the lateral time-overlap check makes for
// "time to reach" versus "time to leave".
func SafeLongitudinalDistanceSameDirection(leader, follower VehicleState, currentDistance quantity.Distance) (safeDistance quantity.Distance, isSafe bool, ok bool) {
	d, ok := formulas.SafeLongitudinalDistanceSameDirection(
		leader.Velocity.SpeedLon.Minimum,
		follower.Velocity.SpeedLon.Maximum,
		follower.Dynamics.ResponseTime,
		follower.Dynamics.AlphaLon.AccelMax,
		follower.Dynamics.AlphaLon.BrakeMin,
		leader.Dynamics.AlphaLon.BrakeMax,
	)
	if !ok {
		return 0, false, false
	}
	return d, currentDistance > d, true
}

// LateralIntersect reports whether one vehicle is guaranteed to leave the
// intersection before the other ever reaches it, using four worst-case
// arrival/departure times. Lateral overlap is always assumed whenever both
// vehicles are within the intersection window, a conservative
// simplification rather than an actual lateral distance computation.
func LateralIntersect(situation Situation) (isSafe bool, ok bool) {
	ego := situation.EgoVehicleState
	other := situation.OtherVehicleState

	tReachEgo, ok := formulas.TimeToCoverDistance(
		ego.Velocity.SpeedLon.Maximum,
		ego.Dynamics.ResponseTime,
		ego.Dynamics.AlphaLon.AccelMax,
		-ego.Dynamics.AlphaLon.BrakeMin,
		ego.DistanceToEnterIntersection,
	)
	if !ok {
		return false, false
	}

	tReachOther, ok := formulas.TimeToCoverDistance(
		other.Velocity.SpeedLon.Maximum,
		other.Dynamics.ResponseTime,
		other.Dynamics.AlphaLon.AccelMax,
		-other.Dynamics.AlphaLon.BrakeMin,
		other.DistanceToEnterIntersection,
	)
	if !ok {
		return false, false
	}

	tLeaveEgo, ok := formulas.TimeToCoverDistance(
		ego.Velocity.SpeedLon.Minimum,
		ego.Dynamics.ResponseTime,
		-ego.Dynamics.AlphaLon.BrakeMax,
		ego.Dynamics.AlphaLon.BrakeMax,
		ego.DistanceToLeaveIntersection,
	)
	if !ok {
		return false, false
	}

	tLeaveOther, ok := formulas.TimeToCoverDistance(
		other.Velocity.SpeedLon.Minimum,
		other.Dynamics.ResponseTime,
		-other.Dynamics.AlphaLon.BrakeMax,
		other.Dynamics.AlphaLon.BrakeMax,
		other.DistanceToLeaveIntersection,
	)
	if !ok {
		return false, false
	}

	safe := tReachEgo > tLeaveOther ||
		tReachOther > tLeaveEgo ||
		(tReachEgo == quantity.DurationMax && tReachOther == quantity.DurationMax)
	return safe, true
}
