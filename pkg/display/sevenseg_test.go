package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSevenSegmentDigits(t *testing.T) {
	s := NewSevenSegment("seg-1", false)

	t.Run("Eight", func(t *testing.T) {
		s.SetDigit(8)
		segs := s.Segments()
		for i := SegA; i <= SegG; i++ {
			assert.True(t, segs[i], "8 lights every bar")
		}
		assert.False(t, segs[SegDP])
	})

	t.Run("One", func(t *testing.T) {
		s.SetDigit(1)
		segs := s.Segments()
		assert.False(t, segs[SegA])
		assert.True(t, segs[SegB])
		assert.True(t, segs[SegC])
		assert.False(t, segs[SegD])
	})

	t.Run("HexF", func(t *testing.T) {
		s.SetDigit(15)
		segs := s.Segments()
		assert.True(t, segs[SegA])
		assert.True(t, segs[SegE])
		assert.True(t, segs[SegF])
		assert.True(t, segs[SegG])
		assert.False(t, segs[SegB])
		assert.False(t, segs[SegC])
		assert.False(t, segs[SegD])
	})

	t.Run("OutOfRangeIgnored", func(t *testing.T) {
		s.SetDigit(5)
		before := s.Segments()
		s.SetDigit(16)
		s.SetDigit(-1)
		assert.Equal(t, before, s.Segments())
	})
}

func TestSevenSegmentDecimalPoint(t *testing.T) {
	s := NewSevenSegment("seg-1", false)

	s.SetDigit(3)
	s.SetDecimalPoint(true)
	assert.True(t, s.Segments()[SegDP])

	// Changing the digit leaves the decimal point alone.
	s.SetDigit(7)
	assert.True(t, s.Segments()[SegDP])
}

func TestSevenSegmentCommonAnode(t *testing.T) {
	lit := NewSevenSegment("ca", true)
	lit.SetDigit(1)

	pins := lit.PinStates()
	segs := lit.Segments()
	for i := range segs {
		assert.Equal(t, !segs[i], pins[i], "common-anode pins invert the lit state")
	}

	cathode := NewSevenSegment("cc", false)
	cathode.SetDigit(1)
	assert.Equal(t, cathode.Segments(), cathode.PinStates())
}

func TestSevenSegmentReset(t *testing.T) {
	s := NewSevenSegment("seg-1", false)
	s.SetDigit(8)
	s.SetDecimalPoint(true)

	s.Reset()
	assert.Equal(t, [8]bool{}, s.Segments())
}
