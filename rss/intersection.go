package rss

import "fmt"

// IntersectionSafe runs the three-tier intersection safety cascade,
// short-circuiting on the first tier that declares safety:
//
//  1. Non-priority stop tier: a vehicle lacking priority may be safe simply
//     because it can stop before the intersection.
//  2. Safe longitudinal distance tier: neither vehicle can stop, but they
//     have a safe following distance as same-direction traffic.
//  3. No time overlap tier: neither of the above, but the vehicles never
//     occupy the intersection at the same time.
//
// It returns an error (wrapping ErrInconsistentInput or ErrUndecidable) when
// any attempted tier cannot be evaluated; the returned isSafe, state, and
// info are only meaningful when err is nil.
func IntersectionSafe(situation Situation) (isSafe bool, state IntersectionState, info RssStateInformation, err error) {
	ego := situation.EgoVehicleState
	other := situation.OtherVehicleState

	if ego.DistanceToLeaveIntersection < ego.DistanceToEnterIntersection ||
		other.DistanceToLeaveIntersection < other.DistanceToEnterIntersection {
		return false, state, info, fmt.Errorf("vehicle distanceToLeave < distanceToEnter: %w", ErrInconsistentInput)
	}

	// Tier 1: can a non-priority vehicle stop in front of the intersection?
	if !ego.HasPriority {
		info.Evaluator = EvaluatorIntersectionOtherPriorityEgoAbleToStop
		info.CurrentDistance = ego.DistanceToEnterIntersection
		safeDist, safe, ok := StopInFrontIntersection(ego)
		if !ok {
			return false, state, info, fmt.Errorf("checking ego stop-in-front distance: %w", ErrUndecidable)
		}
		info.SafeDistance = safeDist
		isSafe = safe
	}
	if !isSafe && !other.HasPriority {
		info.Evaluator = EvaluatorIntersectionEgoPriorityOtherAbleToStop
		info.CurrentDistance = other.DistanceToEnterIntersection
		safeDist, safe, ok := StopInFrontIntersection(other)
		if !ok {
			return false, state, info, fmt.Errorf("checking other stop-in-front distance: %w", ErrUndecidable)
		}
		info.SafeDistance = safeDist
		isSafe = safe
	}
	if isSafe {
		return true, IntersectionStateNonPrioAbleToBreak, info, nil
	}

	// Tier 2: safe longitudinal distance between the vehicles as
	// same-direction traffic. The Overlap longitudinal position falls into
	// the else branch, treated as "other in front".
	info.CurrentDistance = situation.RelativePosition.LongitudinalDistance
	var leader, follower VehicleState
	if situation.RelativePosition.LongitudinalPosition == LongitudinalInFront {
		info.Evaluator = EvaluatorIntersectionEgoInFront
		leader, follower = ego, other
	} else {
		info.Evaluator = EvaluatorIntersectionOtherInFront
		leader, follower = other, ego
	}
	safeDist, safe, ok := SafeLongitudinalDistanceSameDirection(leader, follower, situation.RelativePosition.LongitudinalDistance)
	if !ok {
		return false, state, info, fmt.Errorf("checking same-direction safe distance: %w", ErrUndecidable)
	}
	info.SafeDistance = safeDist
	isSafe = safe
	if isSafe {
		return true, IntersectionStateSafeLongitudinalDistance, info, nil
	}

	// Tier 3: no time overlap.
	info.Evaluator = EvaluatorIntersectionOverlap
	info.CurrentDistance = 0
	info.SafeDistance = 0
	safe, ok = LateralIntersect(situation)
	if !ok {
		return false, state, info, fmt.Errorf("checking lateral time overlap: %w", ErrUndecidable)
	}
	if safe {
		return true, IntersectionStateNoTimeOverlap, info, nil
	}
	return false, state, info, nil
}
