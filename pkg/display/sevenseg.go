package display

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// Segment indices: a..g are the seven bars, dp is the decimal point.
const (
	SegA = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// digitSegments maps values 0-15 to segment bitmasks (bit 0 = a).
var digitSegments = [16]byte{
	0x3F, // 0
	0x06, // 1
	0x5B, // 2
	0x4F, // 3
	0x66, // 4
	0x6D, // 5
	0x7D, // 6
	0x07, // 7
	0x7F, // 8
	0x6F, // 9
	0x77, // A
	0x7C, // b
	0x39, // C
	0x5E, // d
	0x79, // E
	0x71, // F
}

// SevenSegment is a single 7-segment digit with decimal point. For
// common-anode modules the electrical pin states are the inverse of the
// lit segments.
type SevenSegment struct {
	*device.Base

	segments    [8]bool
	commonAnode bool
}

// NewSevenSegment creates a blank digit.
func NewSevenSegment(name string, commonAnode bool) *SevenSegment {
	return &SevenSegment{
		Base:        device.NewBase(name, device.CategoryDisplay),
		commonAnode: commonAnode,
	}
}

// SetDigit lights the segments for a hex digit 0-15. Out-of-range
// values are ignored.
func (s *SevenSegment) SetDigit(value int) {
	if value < 0 || value > 15 {
		return
	}
	mask := digitSegments[value]
	for i := 0; i < 7; i++ {
		s.segments[i] = mask&(1<<i) != 0
	}
}

// SetSegment drives one segment directly.
func (s *SevenSegment) SetSegment(seg int, on bool) {
	if seg < 0 || seg > SegDP {
		return
	}
	s.segments[seg] = on
}

// SetDecimalPoint drives the decimal point independently.
func (s *SevenSegment) SetDecimalPoint(on bool) {
	s.segments[SegDP] = on
}

// Segments returns the lit state of all eight segments.
func (s *SevenSegment) Segments() [8]bool {
	return s.segments
}

// PinStates returns the electrical levels on the segment pins: for
// common-anode wiring a lit segment reads low.
func (s *SevenSegment) PinStates() [8]bool {
	if !s.commonAnode {
		return s.segments
	}
	var pins [8]bool
	for i, lit := range s.segments {
		pins[i] = !lit
	}
	return pins
}

// Clear blanks the digit including the decimal point.
func (s *SevenSegment) Clear() {
	s.segments = [8]bool{}
}

// Update records the tick.
func (s *SevenSegment) Update(simTime, dt float64) {
	s.MarkUpdated(simTime)
}

// Reset restores the power-on state: blank.
func (s *SevenSegment) Reset() {
	s.ResetParams()
	s.Clear()
}
