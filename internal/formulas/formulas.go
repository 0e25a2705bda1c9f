// Package formulas implements the closed-form RSS kinematic predicates: time
// to cover a distance under "accelerate during response time, then brake",
// minimum safe longitudinal distance (same and opposite direction), minimum
// safe lateral distance, and stopping distance after a response delay.
//
// Every function here is a deterministic pure function over quantity types.
// A false second return value (or an error, where the signature carries one)
// means the input was physically contradictory and the caller must treat the
// whole situation as undecidable; it is never used to signal "no finite
// result exists"; that case returns quantity.DurationMax explicitly instead,
// used only for a genuinely unbounded input, never as an error signal.
package formulas

import (
	"math"

	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
)

// StoppingDistance returns the distance needed to stop from currentSpeed
// under constant deceleration. Fails (ok=false) when deceleration is not
// strictly positive, since braking cannot be applied. Negative speeds are
// squared, so a reversing vehicle's stopping distance is still positive.
func StoppingDistance(currentSpeed quantity.Speed, deceleration quantity.Acceleration) (quantity.Distance, bool) {
	if deceleration <= 0 {
		return 0, false
	}
	v := float64(currentSpeed)
	d := (v * v) / (2 * float64(deceleration))
	if d < 0 {
		d = 0
	}
	return quantity.Distance(d), true
}

// solveQuadraticSmallestNonNegRoot finds the smallest t >= 0 satisfying
// 0.5*a*t^2 + v*t - target = 0. ok is false when no non-negative real root
// exists.
func solveQuadraticSmallestNonNegRoot(v, a, target float64) (float64, bool) {
	if a == 0 {
		if v == 0 {
			if target == 0 {
				return 0, true
			}
			return 0, false
		}
		t := target / v
		if t < 0 {
			return 0, false
		}
		return t, true
	}

	A := 0.5 * a
	B := v
	C := -target
	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-B + sq) / (2 * A)
	t2 := (-B - sq) / (2 * A)
	lo, hi := math.Min(t1, t2), math.Max(t1, t2)
	if lo >= 0 {
		return lo, true
	}
	if hi >= 0 {
		return hi, true
	}
	return 0, false
}

// solveQuadraticSmallestRootInRange is the same search restricted to
// [0, tMax], used for the response-phase segment of TimeToCoverDistance
// where the distance-covered curve need not be monotonic (e.g. a negative
// aDuringResponse).
func solveQuadraticSmallestRootInRange(v, a, target, tMax float64) (float64, bool) {
	inRange := func(t float64) bool { return t >= 0 && t <= tMax }

	if a == 0 {
		if v == 0 {
			if target == 0 {
				return 0, true
			}
			return 0, false
		}
		t := target / v
		if inRange(t) {
			return t, true
		}
		return 0, false
	}

	A := 0.5 * a
	B := v
	C := -target
	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-B + sq) / (2 * A)
	t2 := (-B - sq) / (2 * A)
	lo, hi := math.Min(t1, t2), math.Max(t1, t2)
	if inRange(lo) {
		return lo, true
	}
	if inRange(hi) {
		return hi, true
	}
	return 0, false
}

// TimeToCoverDistance computes the time needed to cover distance under
// two-phase motion: during [0, responseTime] the body accelerates at
// aDuringResponse; thereafter at aAfterResponse (typically a brake,
// negative). If distance is already covered within the response phase, the
// result is the root of that phase's quadratic; otherwise the remainder is
// solved in the post-response phase. If the post-response phase can never
// reach distance (the body's post-response speed reaches zero before doing
// so, with aAfterResponse <= 0), quantity.DurationMax is returned with
// ok=true. ok=false only when the response-phase quadratic has no real root
// in range, which should not happen for physically consistent input.
func TimeToCoverDistance(
	currentSpeed quantity.Speed,
	responseTime quantity.Duration,
	aDuringResponse quantity.Acceleration,
	aAfterResponse quantity.Acceleration,
	distance quantity.Distance,
) (quantity.Duration, bool) {
	v0 := float64(currentSpeed)
	rt := float64(responseTime)
	a1 := float64(aDuringResponse)
	a2 := float64(aAfterResponse)
	d := float64(distance)

	speedAtResponse := v0 + a1*rt
	distAtResponse := v0*rt + 0.5*a1*rt*rt

	if d <= distAtResponse {
		t, ok := solveQuadraticSmallestRootInRange(v0, a1, d, rt)
		if !ok {
			return 0, false
		}
		return quantity.Duration(t), true
	}

	remaining := d - distAtResponse
	t2, ok := solveQuadraticSmallestNonNegRoot(speedAtResponse, a2, remaining)
	if !ok {
		if a2 <= 0 {
			// Post-response speed reaches (or starts at) zero before
			// covering the remaining distance: no finite stopping time.
			return quantity.DurationMax, true
		}
		return 0, false
	}
	return quantity.Duration(rt + t2), true
}

// worstCaseApproach is the distance a vehicle covers in the worst case RSS
// envelope: accelerate at accelMax for responseTime, then brake at brakeMin
// until stopped. Shared by the same-direction and opposite-direction
// longitudinal formulas, and (with left/right roles) by the lateral formula.
func worstCaseApproach(speed quantity.Speed, responseTime quantity.Duration, accelMax, brakeMin quantity.Acceleration) (float64, bool) {
	if brakeMin <= 0 {
		return 0, false
	}
	v := float64(speed)
	rt := float64(responseTime)
	a := float64(accelMax)
	b := float64(brakeMin)

	distDuringResponse := v*rt + 0.5*a*rt*rt
	speedAtResponse := v + a*rt
	brakingDist := (speedAtResponse * speedAtResponse) / (2 * b)
	return distDuringResponse + brakingDist, true
}

// StoppingDistanceWithResponse returns the distance covered while
// accelerating at accelMax for responseTime and then braking at brakeMin
// until stopped. Used by the intersection predicate that checks whether a
// vehicle can stop before entering the intersection.
func StoppingDistanceWithResponse(currentSpeed quantity.Speed, responseTime quantity.Duration, accelMax, brakeMin quantity.Acceleration) (quantity.Distance, bool) {
	d, ok := worstCaseApproach(currentSpeed, responseTime, accelMax, brakeMin)
	if !ok {
		return 0, false
	}
	return quantity.Distance(d), true
}

// SafeLongitudinalDistanceSameDirection implements the RSS same-direction
// formula: the follower may accelerate at accelMax during its response time
// and then brake at brakeMin; the leader may brake at brakeMax. Fails if
// either brakeMin or brakeMax is not strictly positive.
func SafeLongitudinalDistanceSameDirection(
	leaderSpeed quantity.Speed,
	followerSpeed quantity.Speed,
	followerResponseTime quantity.Duration,
	followerAccelMax quantity.Acceleration,
	followerBrakeMin quantity.Acceleration,
	leaderBrakeMax quantity.Acceleration,
) (quantity.Distance, bool) {
	followerWorstCase, ok := worstCaseApproach(followerSpeed, followerResponseTime, followerAccelMax, followerBrakeMin)
	if !ok {
		return 0, false
	}
	if leaderBrakeMax <= 0 {
		return 0, false
	}
	vLeader := float64(leaderSpeed)
	leaderStop := (vLeader * vLeader) / (2 * float64(leaderBrakeMax))

	d := followerWorstCase - leaderStop
	if d < 0 {
		d = 0
	}
	return quantity.Distance(d), true
}

// SafeLongitudinalDistanceOppositeDirection implements the RSS
// opposite-direction formula: both vehicles are assumed to accelerate toward
// each other during their own response time, then brake. egoBrakeMin should
// be the ego's brakeMinCorrect when the ego is in its correct lane, and
// brakeMin otherwise (the caller selects which to pass).
func SafeLongitudinalDistanceOppositeDirection(
	egoSpeed quantity.Speed,
	egoResponseTime quantity.Duration,
	egoAccelMax quantity.Acceleration,
	egoBrakeMin quantity.Acceleration,
	otherSpeed quantity.Speed,
	otherResponseTime quantity.Duration,
	otherAccelMax quantity.Acceleration,
	otherBrakeMin quantity.Acceleration,
) (quantity.Distance, bool) {
	egoWorstCase, ok := worstCaseApproach(egoSpeed, egoResponseTime, egoAccelMax, egoBrakeMin)
	if !ok {
		return 0, false
	}
	otherWorstCase, ok := worstCaseApproach(otherSpeed, otherResponseTime, otherAccelMax, otherBrakeMin)
	if !ok {
		return 0, false
	}
	d := egoWorstCase + otherWorstCase
	if d < 0 {
		d = 0
	}
	return quantity.Distance(d), true
}

// SafeLateralDistance implements the RSS lateral formula: both sides are
// assumed to accelerate toward each other during the shared response time,
// then brake at their own brakeMin; leftMargin and rightMargin are each
// side's lateralFluctuationMargin, added on top of the worst-case approach.
func SafeLateralDistance(
	leftSpeed quantity.Speed,
	leftAccelMax quantity.Acceleration,
	leftBrakeMin quantity.Acceleration,
	rightSpeed quantity.Speed,
	rightAccelMax quantity.Acceleration,
	rightBrakeMin quantity.Acceleration,
	responseTime quantity.Duration,
	leftMargin quantity.Distance,
	rightMargin quantity.Distance,
) (quantity.Distance, bool) {
	leftWorstCase, ok := worstCaseApproach(leftSpeed, responseTime, leftAccelMax, leftBrakeMin)
	if !ok {
		return 0, false
	}
	rightWorstCase, ok := worstCaseApproach(rightSpeed, responseTime, rightAccelMax, rightBrakeMin)
	if !ok {
		return 0, false
	}
	d := leftWorstCase + rightWorstCase + float64(leftMargin) + float64(rightMargin)
	if d < 0 {
		d = 0
	}
	return quantity.Distance(d), true
}
