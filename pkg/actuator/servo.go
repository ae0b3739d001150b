package actuator

import (
	"math"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// Servo parameter names.
const (
	ParamSpeed     = "speed"
	ParamMinPulse  = "min_pulse"
	ParamMaxPulse  = "max_pulse"
	ParamFrequency = "frequency"
)

// historyCap bounds the servo position history.
const historyCap = 1000

// settleThreshold is the deadband below which the servo is considered
// at its target.
const settleThreshold = 0.1

// PositionSample is one (time, angle) pair from the servo history.
type PositionSample struct {
	Time  float64
	Angle float64
}

// Servo is a hobby servo with rate-limited slew between 0 and 180
// degrees. It retains a bounded history of its motion for inspection.
type Servo struct {
	*device.Base

	targetAngle  float64
	currentAngle float64
	moving       bool

	// Fixed-capacity ring; head is the next write slot.
	history [historyCap]PositionSample
	head    int
	count   int
}

// NewServo creates a servo with SG90-style defaults.
func NewServo(name string) *Servo {
	s := &Servo{Base: device.NewBase(name, device.CategoryActuator)}
	s.AddParam(param.Bounded(ParamSpeed, 60, 1, 600, "deg/s", "slew rate"))
	s.AddParam(param.Bounded(ParamMinPulse, 1.0, 0.5, 1.5, "ms", "pulse width at 0 deg"))
	s.AddParam(param.Bounded(ParamMaxPulse, 2.0, 1.5, 2.5, "ms", "pulse width at 180 deg"))
	s.AddParam(param.Bounded(ParamFrequency, 50, 40, 400, "Hz", "PWM frequency"))
	return s
}

// SetAngle commands a new target angle, clamped to [0, 180].
func (s *Servo) SetAngle(angle float64) {
	if angle < 0 {
		angle = 0
	}
	if angle > 180 {
		angle = 180
	}
	s.targetAngle = angle
	s.moving = math.Abs(s.currentAngle-s.targetAngle) > settleThreshold
}

// Angle returns the current shaft angle in degrees.
func (s *Servo) Angle() float64 {
	return s.currentAngle
}

// TargetAngle returns the commanded angle in degrees.
func (s *Servo) TargetAngle() float64 {
	return s.targetAngle
}

// Moving reports whether the shaft is still slewing toward the target.
func (s *Servo) Moving() bool {
	return s.moving
}

// PulseWidth returns the PWM pulse width in ms for the current angle.
func (s *Servo) PulseWidth() float64 {
	minPulse := s.Get(ParamMinPulse)
	maxPulse := s.Get(ParamMaxPulse)
	return minPulse + (maxPulse-minPulse)*s.currentAngle/180.0
}

// DutyCycle returns the PWM duty cycle fraction for the current angle.
func (s *Servo) DutyCycle() float64 {
	period := 1000.0 / s.Get(ParamFrequency)
	return s.PulseWidth() / period
}

// Update slews the shaft toward the target by at most speed*dt degrees,
// snapping to the target once within that step.
func (s *Servo) Update(simTime, dt float64) {
	s.MarkUpdated(simTime)

	if s.moving {
		maxStep := s.Get(ParamSpeed) * dt
		delta := s.targetAngle - s.currentAngle
		if math.Abs(delta) <= maxStep {
			s.currentAngle = s.targetAngle
			s.moving = false
		} else if delta > 0 {
			s.currentAngle += maxStep
		} else {
			s.currentAngle -= maxStep
		}
	}

	s.recordPosition(simTime)
}

func (s *Servo) recordPosition(simTime float64) {
	s.history[s.head] = PositionSample{Time: simTime, Angle: s.currentAngle}
	s.head = (s.head + 1) % historyCap
	if s.count < historyCap {
		s.count++
	}
}

// History returns the recorded samples, oldest first. At most the last
// 1000 samples are retained.
func (s *Servo) History() []PositionSample {
	result := make([]PositionSample, 0, s.count)
	start := s.head - s.count
	if start < 0 {
		start += historyCap
	}
	for i := 0; i < s.count; i++ {
		result = append(result, s.history[(start+i)%historyCap])
	}
	return result
}

// Reset restores the power-on state: angle 0, not moving, history
// cleared.
func (s *Servo) Reset() {
	s.ResetParams()
	s.targetAngle = 0
	s.currentAngle = 0
	s.moving = false
	s.head = 0
	s.count = 0
}
