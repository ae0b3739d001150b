package display

import (
	"math"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// LED strip parameter names.
const (
	ParamAnimationSpeed = "animation_speed"
)

// Animation selects one of the built-in strip effects.
type Animation uint8

const (
	AnimationNone Animation = iota
	AnimationRainbow
	AnimationChase
	AnimationBreathe
)

// String returns the animation name.
func (a Animation) String() string {
	switch a {
	case AnimationNone:
		return "none"
	case AnimationRainbow:
		return "rainbow"
	case AnimationChase:
		return "chase"
	case AnimationBreathe:
		return "breathe"
	default:
		return "unknown"
	}
}

// Pixel is one RGB triple on the strip.
type Pixel struct {
	R, G, B uint8
}

// LEDStrip is an addressable (WS2812-style) RGB strip. The built-in
// animations are pure functions of the accumulated animation time, so a
// replayed tick sequence renders the exact same frames; no random
// source is involved.
type LEDStrip struct {
	*device.Base

	pixels        []Pixel
	animation     Animation
	animationTime float64
	baseColor     Pixel
}

// NewLEDStrip creates a strip of n pixels, dark, with no animation.
func NewLEDStrip(name string, n int) *LEDStrip {
	if n < 1 {
		n = 1
	}
	s := &LEDStrip{
		Base:      device.NewBase(name, device.CategoryDisplay),
		pixels:    make([]Pixel, n),
		baseColor: Pixel{R: 255, G: 255, B: 255},
	}
	s.AddParam(param.Bounded(ParamAnimationSpeed, 1.0, 0.01, 100, "", "animation rate multiplier"))
	return s
}

// Len returns the number of pixels.
func (s *LEDStrip) Len() int {
	return len(s.pixels)
}

// SetPixel sets one pixel. Out-of-range indices are ignored.
func (s *LEDStrip) SetPixel(i int, r, g, b uint8) {
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = Pixel{R: r, G: g, B: b}
}

// Pixel returns one pixel. Out-of-range indices read as dark.
func (s *LEDStrip) Pixel(i int) Pixel {
	if i < 0 || i >= len(s.pixels) {
		return Pixel{}
	}
	return s.pixels[i]
}

// Pixels returns a copy of the whole strip.
func (s *LEDStrip) Pixels() []Pixel {
	return append([]Pixel(nil), s.pixels...)
}

// Fill sets every pixel to one color and remembers it as the base color
// for the breathe animation.
func (s *LEDStrip) Fill(r, g, b uint8) {
	s.baseColor = Pixel{R: r, G: g, B: b}
	for i := range s.pixels {
		s.pixels[i] = s.baseColor
	}
}

// Clear darkens the strip and stops the animation.
func (s *LEDStrip) Clear() {
	s.animation = AnimationNone
	for i := range s.pixels {
		s.pixels[i] = Pixel{}
	}
}

// SetAnimation selects an animation and restarts its phase.
func (s *LEDStrip) SetAnimation(a Animation) {
	s.animation = a
	s.animationTime = 0
}

// CurrentAnimation returns the selected animation.
func (s *LEDStrip) CurrentAnimation() Animation {
	return s.animation
}

// Update accumulates animation time and re-renders the whole strip.
func (s *LEDStrip) Update(simTime, dt float64) {
	s.MarkUpdated(simTime)

	if s.animation == AnimationNone {
		return
	}
	s.animationTime += dt
	phase := s.animationTime * s.Get(ParamAnimationSpeed)

	switch s.animation {
	case AnimationRainbow:
		s.renderRainbow(phase)
	case AnimationChase:
		s.renderChase(phase)
	case AnimationBreathe:
		s.renderBreathe(phase)
	}
}

func (s *LEDStrip) renderRainbow(phase float64) {
	n := float64(len(s.pixels))
	for i := range s.pixels {
		hue := float64(i)/n + phase
		r, g, b := hsvToRGB(hue, 1, 1)
		s.pixels[i] = Pixel{R: r, G: g, B: b}
	}
}

func (s *LEDStrip) renderChase(phase float64) {
	pos := int(phase*float64(len(s.pixels))) % len(s.pixels)
	if pos < 0 {
		pos += len(s.pixels)
	}
	for i := range s.pixels {
		if i == pos {
			s.pixels[i] = s.baseColor
		} else {
			s.pixels[i] = Pixel{}
		}
	}
}

func (s *LEDStrip) renderBreathe(phase float64) {
	level := (math.Sin(2*math.Pi*phase) + 1) / 2
	for i := range s.pixels {
		s.pixels[i] = Pixel{
			R: uint8(math.Round(float64(s.baseColor.R) * level)),
			G: uint8(math.Round(float64(s.baseColor.G) * level)),
			B: uint8(math.Round(float64(s.baseColor.B) * level)),
		}
	}
}

// Reset restores the power-on state: dark, no animation.
func (s *LEDStrip) Reset() {
	s.ResetParams()
	s.animation = AnimationNone
	s.animationTime = 0
	s.baseColor = Pixel{R: 255, G: 255, B: 255}
	for i := range s.pixels {
		s.pixels[i] = Pixel{}
	}
}
