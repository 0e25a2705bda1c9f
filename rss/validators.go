package rss

import (
	"fmt"

	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
)

// ValidateAccelerationRestriction reports whether r's four magnitudes are
// each within the Acceleration input range and respect
// accelMax >= 0, brakeMax >= brakeMin >= brakeMinCorrect > 0.
func ValidateAccelerationRestriction(r AccelerationRestriction) error {
	for _, a := range []quantity.Acceleration{r.AccelMax, r.BrakeMax, r.BrakeMin, r.BrakeMinCorrect} {
		if !quantity.ValidAcceleration(a) {
			return fmt.Errorf("acceleration %v out of range: %w", a, ErrInconsistentInput)
		}
	}
	if !r.Valid() {
		return fmt.Errorf("acceleration restriction invariant violated: %w", ErrInconsistentInput)
	}
	return nil
}

// ValidateVehicleDynamics reports whether d's fields are each within their
// declared input ranges.
func ValidateVehicleDynamics(d VehicleDynamics) error {
	if !quantity.ValidDuration(d.ResponseTime) {
		return fmt.Errorf("responseTime %v out of range: %w", d.ResponseTime, ErrInconsistentInput)
	}
	if err := ValidateAccelerationRestriction(d.AlphaLon); err != nil {
		return fmt.Errorf("alphaLon: %w", err)
	}
	if err := ValidateAccelerationRestriction(d.AlphaLat); err != nil {
		return fmt.Errorf("alphaLat: %w", err)
	}
	if !quantity.ValidDistance(d.LateralFluctuationMargin) {
		return fmt.Errorf("lateralFluctuationMargin %v out of range: %w", d.LateralFluctuationMargin, ErrInconsistentInput)
	}
	return nil
}

// ValidateVehicleState reports whether vehicle's quantities are each within
// their declared input ranges and respect
// distanceToEnterIntersection <= distanceToLeaveIntersection.
func ValidateVehicleState(vehicle VehicleState) error {
	if err := ValidateVehicleDynamics(vehicle.Dynamics); err != nil {
		return err
	}
	if !vehicle.Velocity.SpeedLon.Valid() {
		return fmt.Errorf("speedLon range invalid: %w", ErrInconsistentInput)
	}
	if !vehicle.Velocity.SpeedLat.Valid() {
		return fmt.Errorf("speedLat range invalid: %w", ErrInconsistentInput)
	}
	if !quantity.ValidDistance(vehicle.DistanceToEnterIntersection) {
		return fmt.Errorf("distanceToEnterIntersection %v out of range: %w", vehicle.DistanceToEnterIntersection, ErrInconsistentInput)
	}
	if !quantity.ValidDistance(vehicle.DistanceToLeaveIntersection) {
		return fmt.Errorf("distanceToLeaveIntersection %v out of range: %w", vehicle.DistanceToLeaveIntersection, ErrInconsistentInput)
	}
	if vehicle.DistanceToLeaveIntersection < vehicle.DistanceToEnterIntersection {
		return fmt.Errorf("distanceToLeaveIntersection < distanceToEnterIntersection: %w", ErrInconsistentInput)
	}
	return nil
}

// ValidateRelativePosition reports whether pos's distances are within their
// declared input range.
func ValidateRelativePosition(pos RelativePosition) error {
	if !quantity.ValidDistance(pos.LongitudinalDistance) {
		return fmt.Errorf("longitudinalDistance %v out of range: %w", pos.LongitudinalDistance, ErrInconsistentInput)
	}
	if !quantity.ValidDistance(pos.LateralDistance) {
		return fmt.Errorf("lateralDistance %v out of range: %w", pos.LateralDistance, ErrInconsistentInput)
	}
	return nil
}

// ValidateSituation validates every typed quantity reachable from situation
// against its declared input range, as the kernel's ingress contract
// requires callers to do before handing a Situation to a checker. The
// kernel itself does not call this on the hot path; it is exposed for
// callers that want to validate once at the boundary of the surrounding
// system.
func ValidateSituation(situation Situation) error {
	if err := ValidateVehicleState(situation.EgoVehicleState); err != nil {
		return fmt.Errorf("egoVehicleState: %w", err)
	}
	if err := ValidateVehicleState(situation.OtherVehicleState); err != nil {
		return fmt.Errorf("otherVehicleState: %w", err)
	}
	if err := ValidateRelativePosition(situation.RelativePosition); err != nil {
		return fmt.Errorf("relativePosition: %w", err)
	}
	return nil
}
