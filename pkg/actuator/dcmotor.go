package actuator

import (
	"math"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// DC motor parameter names.
const (
	ParamMotorSpeed = "speed"
	ParamMaxRPM     = "max_rpm"
	ParamInertia    = "inertia"
	ParamFriction   = "friction"
)

// motorKp is the proportional control constant driving the angular
// velocity toward its target.
const motorKp = 2.0

// brakeGain is the decay constant applied while the brake is engaged.
const brakeGain = -10.0

// DCMotor is a brushed DC motor modeled by torque integration against
// inertia and viscous friction.
type DCMotor struct {
	*device.Base

	angularVelocity float64 // rad/s
	brakeActive     bool
}

// NewDCMotor creates a DC motor with small hobby-gearmotor defaults.
func NewDCMotor(name string) *DCMotor {
	m := &DCMotor{Base: device.NewBase(name, device.CategoryActuator)}
	m.AddParam(param.Bounded(ParamMotorSpeed, 0, -100, 100, "%", "commanded speed"))
	m.AddParam(param.Bounded(ParamMaxRPM, 3000, 100, 20000, "rpm", "no-load speed"))
	m.AddParam(param.Bounded(ParamInertia, 0.1, 0.001, 10, "kg*m^2", "rotor inertia"))
	m.AddParam(param.Bounded(ParamFriction, 0.05, 0, 1, "", "viscous friction coefficient"))
	return m
}

// SetSpeed commands a speed percentage in [-100, 100]; the sign selects
// the direction. Setting a speed releases the brake.
func (m *DCMotor) SetSpeed(percent float64) {
	m.Set(ParamMotorSpeed, percent)
	m.brakeActive = false
}

// Brake engages or releases the brake.
func (m *DCMotor) Brake(active bool) {
	m.brakeActive = active
}

// Braking reports whether the brake is engaged.
func (m *DCMotor) Braking() bool {
	return m.brakeActive
}

// AngularVelocity returns the shaft speed in rad/s.
func (m *DCMotor) AngularVelocity() float64 {
	return m.angularVelocity
}

// RPM returns the shaft speed in revolutions per minute.
func (m *DCMotor) RPM() float64 {
	return m.angularVelocity * 60.0 / (2.0 * math.Pi)
}

// Direction returns -1, 0 or 1. Speeds below 1 rpm read as stopped.
func (m *DCMotor) Direction() int {
	rpm := m.RPM()
	if math.Abs(rpm) < 1 {
		return 0
	}
	if rpm < 0 {
		return -1
	}
	return 1
}

// Update integrates the motor torque balance over one tick.
func (m *DCMotor) Update(simTime, dt float64) {
	m.MarkUpdated(simTime)

	inertia := m.Get(ParamInertia)
	frictionTorque := m.Get(ParamFriction) * m.angularVelocity

	if m.brakeActive {
		m.angularVelocity += (brakeGain * m.angularVelocity) * dt / inertia
		return
	}

	target := m.Get(ParamMotorSpeed) / 100.0 * m.Get(ParamMaxRPM) * 2.0 * math.Pi / 60.0
	motorTorque := (target - m.angularVelocity) * motorKp
	m.angularVelocity += (motorTorque - frictionTorque) * dt / inertia
}

// Reset restores the power-on state: stopped, brake released.
func (m *DCMotor) Reset() {
	m.ResetParams()
	m.angularVelocity = 0
	m.brakeActive = false
}
