package actuator

import (
	"math"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// Stepper parameter names.
const (
	ParamStepsPerRev  = "steps_per_rev"
	ParamMicrosteps   = "microsteps"
	ParamMaxSpeed     = "max_speed"
	ParamAcceleration = "acceleration"
)

// Stepper is a stepper motor with trapezoidal velocity control: the
// velocity ramps toward the signed maximum by at most acceleration*dt
// per tick and whole steps are integrated from velocity*dt.
//
// The fractional part of velocity*dt below one step is discarded each
// tick, matching the real controller this models; position converges
// because the motor snaps once within one step of the target.
type Stepper struct {
	*device.Base

	position       int64
	targetPosition int64
	velocity       float64
	totalSteps     int64
}

// NewStepper creates a stepper with NEMA 17 class defaults.
func NewStepper(name string) *Stepper {
	s := &Stepper{Base: device.NewBase(name, device.CategoryActuator)}
	s.AddParam(param.Bounded(ParamStepsPerRev, 200, 4, 1600, "steps", "full steps per revolution"))
	s.AddParam(param.Bounded(ParamMicrosteps, 1, 1, 256, "", "microstep divisor"))
	s.AddParam(param.Bounded(ParamMaxSpeed, 1000, 1, 100000, "steps/s", "top speed"))
	s.AddParam(param.Bounded(ParamAcceleration, 500, 1, 100000, "steps/s^2", "ramp rate"))
	return s
}

// Position returns the current position in steps.
func (s *Stepper) Position() int64 {
	return s.position
}

// TargetPosition returns the commanded position in steps.
func (s *Stepper) TargetPosition() int64 {
	return s.targetPosition
}

// Velocity returns the instantaneous velocity in steps/s.
func (s *Stepper) Velocity() float64 {
	return s.velocity
}

// TotalSteps returns the cumulative step count across all moves.
func (s *Stepper) TotalSteps() int64 {
	return s.totalSteps
}

// MoveTo commands an absolute position in steps.
func (s *Stepper) MoveTo(steps int64) {
	s.targetPosition = steps
}

// Move commands a move relative to the current target.
func (s *Stepper) Move(steps int64) {
	s.targetPosition += steps
}

// RotateDegrees commands a relative rotation, converting degrees to
// steps through the configured resolution.
func (s *Stepper) RotateDegrees(degrees float64) {
	stepsPerDegree := s.Get(ParamStepsPerRev) * s.Get(ParamMicrosteps) / 360.0
	s.Move(int64(degrees * stepsPerDegree))
}

// AtTarget reports whether the motor has settled on its target.
func (s *Stepper) AtTarget() bool {
	return s.position == s.targetPosition
}

// Update advances the trapezoidal velocity profile by one tick.
func (s *Stepper) Update(simTime, dt float64) {
	s.MarkUpdated(simTime)

	remaining := s.targetPosition - s.position
	if remaining == 0 {
		s.velocity = 0
		return
	}

	// Snap when within one step of the target.
	if remaining == 1 || remaining == -1 {
		s.position = s.targetPosition
		s.totalSteps++
		s.velocity = 0
		return
	}

	direction := 1.0
	if remaining < 0 {
		direction = -1.0
	}

	desired := direction * s.Get(ParamMaxSpeed)
	maxDelta := s.Get(ParamAcceleration) * dt
	if diff := desired - s.velocity; math.Abs(diff) <= maxDelta {
		s.velocity = desired
	} else if diff > 0 {
		s.velocity += maxDelta
	} else {
		s.velocity -= maxDelta
	}

	stepIncrement := s.velocity * dt
	if math.Abs(stepIncrement) >= 1 {
		whole := int64(stepIncrement) // truncation loses the remainder
		s.position += whole
		if whole < 0 {
			s.totalSteps -= whole
		} else {
			s.totalSteps += whole
		}

		// Do not run past the target within a tick.
		if (direction > 0 && s.position >= s.targetPosition) ||
			(direction < 0 && s.position <= s.targetPosition) {
			s.position = s.targetPosition
			s.velocity = 0
		}
	}
}

// Reset restores the power-on state: position zeroed, no motion.
func (s *Stepper) Reset() {
	s.ResetParams()
	s.position = 0
	s.targetPosition = 0
	s.velocity = 0
	s.totalSteps = 0
}
