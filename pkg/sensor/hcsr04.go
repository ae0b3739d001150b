package sensor

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// HC-SR04 parameter names.
const (
	ParamDistance   = "distance"
	ParamRangerTemp = "temperature"
)

// HCSR04 is an ultrasonic ranger. Triggering a measurement returns the
// round-trip echo duration for the configured target distance, with the
// speed of sound corrected for air temperature.
type HCSR04 struct {
	*device.Base
}

// NewHCSR04 creates a ranger with a target 1 m away at 20 degC.
func NewHCSR04(name string) *HCSR04 {
	h := &HCSR04{Base: device.NewBase(name, device.CategorySensor)}
	h.AddParam(param.Bounded(ParamDistance, 100, 2, 400, "cm", "target distance"))
	h.AddParam(param.Bounded(ParamRangerTemp, 20, -20, 60, "degC", "air temperature"))
	return h
}

// TriggerMeasurement fires the transducer and returns the echo duration
// in seconds. An injected no_echo fault returns 0.0 (no pulse seen); a
// false_echo fault returns a random duration in [0.001, 0.02].
func (h *HCSR04) TriggerMeasurement(simTime float64) float64 {
	if kind, faulted := h.FaultActive(); faulted {
		switch kind {
		case device.FaultNoEcho:
			return 0.0
		case device.FaultFalseEcho:
			return 0.001 + h.Rand().Float64()*(0.02-0.001)
		}
	}

	soundSpeed := 331.3 + 0.606*h.Get(ParamRangerTemp) // m/s
	return 2.0 * (h.Get(ParamDistance) / 100.0) / soundSpeed
}

// Update records the tick. The target only moves when told to.
func (h *HCSR04) Update(simTime, dt float64) {
	h.MarkUpdated(simTime)
}

// Reset restores the power-on state.
func (h *HCSR04) Reset() {
	h.ResetParams()
}
