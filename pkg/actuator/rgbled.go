package actuator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// RGB LED parameter names.
const (
	ParamRed           = "red"
	ParamGreen         = "green"
	ParamBlue          = "blue"
	ParamRGBBrightness = "brightness"
)

// RGBLED is a three-channel LED with a global brightness percentage.
type RGBLED struct {
	*device.Base
}

// NewRGBLED creates an RGB LED, off, at full brightness.
func NewRGBLED(name string) *RGBLED {
	l := &RGBLED{Base: device.NewBase(name, device.CategoryActuator)}
	l.AddParam(param.Bounded(ParamRed, 0, 0, 255, "", "red channel"))
	l.AddParam(param.Bounded(ParamGreen, 0, 0, 255, "", "green channel"))
	l.AddParam(param.Bounded(ParamBlue, 0, 0, 255, "", "blue channel"))
	l.AddParam(param.Bounded(ParamRGBBrightness, 100, 0, 100, "%", "global brightness"))
	return l
}

// SetColor sets the three channels, each clamped to [0, 255].
func (l *RGBLED) SetColor(r, g, b float64) {
	l.Set(ParamRed, r)
	l.Set(ParamGreen, g)
	l.Set(ParamBlue, b)
}

// SetBrightness sets the global brightness percentage.
func (l *RGBLED) SetBrightness(percent float64) {
	l.Set(ParamRGBBrightness, percent)
}

// SetHSV sets the color from hue/saturation/value. Hue is in [0, 1)
// (wrapped), saturation and value in [0, 1] (clamped).
func (l *RGBLED) SetHSV(h, s, v float64) {
	r, g, b := hsvToRGB(h, s, v)
	l.SetColor(float64(r), float64(g), float64(b))
}

// SetHex sets the color from a "#RRGGBB" string.
func (l *RGBLED) SetHex(hex string) error {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid hex color %q: want #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	l.SetColor(float64(v>>16&0xFF), float64(v>>8&0xFF), float64(v&0xFF))
	return nil
}

// RGB returns the channel values scaled by the global brightness.
func (l *RGBLED) RGB() (r, g, b uint8) {
	scale := l.Get(ParamRGBBrightness) / 100.0
	r = uint8(l.Get(ParamRed) * scale)
	g = uint8(l.Get(ParamGreen) * scale)
	b = uint8(l.Get(ParamBlue) * scale)
	return r, g, b
}

// Update records the tick. The RGB LED has no internal dynamics.
func (l *RGBLED) Update(simTime, dt float64) {
	l.MarkUpdated(simTime)
}

// Reset restores the power-on state.
func (l *RGBLED) Reset() {
	l.ResetParams()
}

// hsvToRGB converts hue/saturation/value to 8-bit RGB using the
// standard sector algorithm. Hue wraps into [0, 1).
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = h - math.Floor(h)
	s = math.Min(math.Max(s, 0), 1)
	v = math.Min(math.Max(v, 0), 1)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return uint8(math.Round(r * 255)), uint8(math.Round(g * 255)), uint8(math.Round(b * 255))
}
