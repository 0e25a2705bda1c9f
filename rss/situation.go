package rss

import "github.com/cxd309/rss-intersection-kernel/internal/quantity"

// AccelerationRestriction bounds one axis (longitudinal or lateral) of a
// vehicle's acceleration envelope. All four fields are magnitudes; sign is
// supplied by the formulas that consume them.
type AccelerationRestriction struct {
	// AccelMax is the worst acceleration one must assume the vehicle applies.
	AccelMax quantity.Acceleration `json:"accel_max"`
	// BrakeMax is the maximum braking the other vehicle might apply.
	BrakeMax quantity.Acceleration `json:"brake_max"`
	// BrakeMin is the minimum braking this vehicle promises to apply.
	BrakeMin quantity.Acceleration `json:"brake_min"`
	// BrakeMinCorrect is the minimum braking promised when the vehicle is in
	// its correct lane.
	BrakeMinCorrect quantity.Acceleration `json:"brake_min_correct"`
}

// Valid reports whether the restriction respects
// accelMax >= 0 and brakeMax >= brakeMin >= brakeMinCorrect > 0.
func (r AccelerationRestriction) Valid() bool {
	return r.AccelMax >= 0 &&
		r.BrakeMax >= r.BrakeMin &&
		r.BrakeMin >= r.BrakeMinCorrect &&
		r.BrakeMinCorrect > 0
}

// VehicleDynamics is the full acceleration envelope and response delay of a
// vehicle.
type VehicleDynamics struct {
	// ResponseTime is the worst-case delay before the vehicle's controller
	// begins the intended braking maneuver.
	ResponseTime quantity.Duration       `json:"response_time"`
	AlphaLon     AccelerationRestriction `json:"alpha_lon"`
	AlphaLat     AccelerationRestriction `json:"alpha_lat"`
	// LateralFluctuationMargin is added to the lateral safe-distance formula
	// to absorb lane-keeping noise.
	LateralFluctuationMargin quantity.Distance `json:"lateral_fluctuation_margin"`
}

// Velocity is a vehicle's longitudinal and lateral speed ranges.
type Velocity struct {
	SpeedLon quantity.SpeedRange `json:"speed_lon"`
	SpeedLat quantity.SpeedRange `json:"speed_lat"`
}

// VehicleState is one vehicle's kinematics and geometric relation to an
// intersection at the current tick.
type VehicleState struct {
	Dynamics VehicleDynamics `json:"dynamics"`
	Velocity Velocity        `json:"velocity"`

	DistanceToEnterIntersection quantity.Distance `json:"distance_to_enter_intersection"`
	DistanceToLeaveIntersection quantity.Distance `json:"distance_to_leave_intersection"`

	HasPriority     bool `json:"has_priority"`
	IsInCorrectLane bool `json:"is_in_correct_lane"`
}

// LongitudinalRelativePosition classifies the ego's longitudinal position
// relative to the other vehicle.
type LongitudinalRelativePosition string

const (
	LongitudinalInFront LongitudinalRelativePosition = "InFront"
	LongitudinalAtBack  LongitudinalRelativePosition = "AtBack"
	LongitudinalOverlap LongitudinalRelativePosition = "Overlap"
)

// LateralRelativePosition classifies the ego's lateral position relative to
// the other vehicle.
type LateralRelativePosition string

const (
	LateralOverlapLeft  LateralRelativePosition = "OverlapLeft"
	LateralAtLeft       LateralRelativePosition = "AtLeft"
	LateralOverlap      LateralRelativePosition = "Overlap"
	LateralAtRight      LateralRelativePosition = "AtRight"
	LateralOverlapRight LateralRelativePosition = "OverlapRight"
)

// RelativePosition is the ego-versus-other geometric relation at the
// current tick.
type RelativePosition struct {
	LongitudinalPosition LongitudinalRelativePosition `json:"longitudinal_position"`
	LongitudinalDistance quantity.Distance            `json:"longitudinal_distance"`
	LateralPosition      LateralRelativePosition      `json:"lateral_position"`
	LateralDistance      quantity.Distance            `json:"lateral_distance"`
}

// SituationType classifies the kind of pairwise evaluation context. Only the
// three Intersection* values are handled by this kernel; the others are
// listed for data-model completeness and are the concern of same-direction
// and opposite-direction RSS checks this kernel does not implement.
type SituationType string

const (
	SituationSameDirection                 SituationType = "SameDirection"
	SituationOppositeDirection             SituationType = "OppositeDirection"
	SituationIntersectionEgoHasPriority    SituationType = "IntersectionEgoHasPriority"
	SituationIntersectionObjectHasPriority SituationType = "IntersectionObjectHasPriority"
	SituationIntersectionSamePriority      SituationType = "IntersectionSamePriority"
	SituationNotRelevant                   SituationType = "NotRelevant"
)

// Situation is a single pairwise ego-versus-other evaluation context at one
// tick. Situations live only for the duration of one evaluation call; the
// checker retains only the situationId-keyed IntersectionState derived from
// them, never the Situation itself.
type Situation struct {
	SituationID       quantity.ObjectId `json:"situation_id"`
	SituationType     SituationType     `json:"situation_type"`
	EgoVehicleState   VehicleState      `json:"ego_vehicle_state"`
	OtherVehicleState VehicleState      `json:"other_vehicle_state"`
	RelativePosition  RelativePosition  `json:"relative_position"`
}
