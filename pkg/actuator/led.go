package actuator

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// LED parameter names.
const (
	ParamBrightness     = "brightness"
	ParamMaxCurrent     = "max_current"
	ParamForwardVoltage = "forward_voltage"
)

// LED is a single-color LED driven by an 8-bit brightness value.
type LED struct {
	*device.Base
}

// NewLED creates an LED with typical 5mm part defaults.
func NewLED(name string) *LED {
	l := &LED{Base: device.NewBase(name, device.CategoryActuator)}
	l.AddParam(param.Bounded(ParamBrightness, 0, 0, 255, "", "PWM brightness"))
	l.AddParam(param.Bounded(ParamMaxCurrent, 20, 1, 100, "mA", "current at full brightness"))
	l.AddParam(param.Bounded(ParamForwardVoltage, 2.0, 1.2, 4.0, "V", "forward voltage drop"))
	return l
}

// SetBrightness sets the 8-bit brightness, clamped to [0, 255].
func (l *LED) SetBrightness(value float64) {
	l.Set(ParamBrightness, value)
}

// Brightness returns the current brightness value.
func (l *LED) Brightness() float64 {
	return l.Get(ParamBrightness)
}

// IsOn reports whether any current flows.
func (l *LED) IsOn() bool {
	return l.Get(ParamBrightness) > 0
}

// Current returns the instantaneous current draw in mA.
func (l *LED) Current() float64 {
	return l.Get(ParamBrightness) / 255.0 * l.Get(ParamMaxCurrent)
}

// PowerConsumption returns the instantaneous power draw in mW.
func (l *LED) PowerConsumption() float64 {
	return l.Current() * l.Get(ParamForwardVoltage)
}

// Update records the tick. The LED has no internal dynamics.
func (l *LED) Update(simTime, dt float64) {
	l.MarkUpdated(simTime)
}

// Reset restores the power-on state (off).
func (l *LED) Reset() {
	l.ResetParams()
}
