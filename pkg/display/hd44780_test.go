package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lcdSend encodes one full byte as the two enable-latched nibble writes
// the firmware would issue.
func lcdSend(l *HD44780, value byte, rs bool) {
	var ctrl byte = lcdBitEN
	if rs {
		ctrl |= lcdBitRS
	}
	l.Write([]byte{value&0xF0 | ctrl, value<<4 | ctrl})
}

func TestHD44780WriteText(t *testing.T) {
	l := NewHD44780("lcd-1")

	for _, ch := range []byte("Hi") {
		lcdSend(l, ch, true)
	}

	assert.Equal(t, "Hi              ", l.Line(0))
	row, col := l.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
}

func TestHD44780EnableBitRequired(t *testing.T) {
	l := NewHD44780("lcd-1")

	// Nibbles without the enable bit must not latch.
	l.Write([]byte{0x40, 0x80})
	assert.Equal(t, "                ", l.Line(0))
}

func TestHD44780ClearAndHome(t *testing.T) {
	l := NewHD44780("lcd-1")
	for _, ch := range []byte("junk") {
		lcdSend(l, ch, true)
	}

	lcdSend(l, lcdCmdClear, false)
	assert.Equal(t, "                ", l.Line(0))
	row, col := l.Cursor()
	assert.Zero(t, row)
	assert.Zero(t, col)

	for _, ch := range []byte("ab") {
		lcdSend(l, ch, true)
	}
	lcdSend(l, lcdCmdHome, false)
	row, col = l.Cursor()
	assert.Zero(t, row)
	assert.Zero(t, col)
	assert.Equal(t, "ab              ", l.Line(0), "home moves the cursor without clearing")
}

func TestHD44780SetDDRAMAddress(t *testing.T) {
	l := NewHD44780("lcd-1")

	// 0x40 is the first cell of row 1.
	lcdSend(l, 0x80|0x40, false)
	lcdSend(l, 'X', true)
	assert.Equal(t, "X               ", l.Line(1))

	// 0x05 addresses row 0, column 5.
	lcdSend(l, 0x80|0x05, false)
	lcdSend(l, 'Y', true)
	assert.Equal(t, "     Y          ", l.Line(0))
}

func TestHD44780RowWrap(t *testing.T) {
	l := NewHD44780("lcd-1")

	for _, ch := range []byte("0123456789ABCDEFgh") {
		lcdSend(l, ch, true)
	}

	assert.Equal(t, "0123456789ABCDEF", l.Line(0))
	assert.Equal(t, "gh              ", l.Line(1))
	row, col := l.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}

func TestHD44780UnrecognizedCommandIgnored(t *testing.T) {
	l := NewHD44780("lcd-1")
	for _, ch := range []byte("ok") {
		lcdSend(l, ch, true)
	}

	// Entry-mode set (0x06): accepted as a no-op, state untouched.
	lcdSend(l, 0x06, false)
	assert.Equal(t, "ok              ", l.Line(0))
	_, col := l.Cursor()
	assert.Equal(t, 2, col)
}

func TestHD44780EmptyWrite(t *testing.T) {
	l := NewHD44780("lcd-1")
	assert.False(t, l.Write(nil))
}

func TestHD44780Reset(t *testing.T) {
	l := NewHD44780("lcd-1")
	for _, ch := range []byte("text") {
		lcdSend(l, ch, true)
	}

	l.Reset()
	assert.Equal(t, "                ", l.Line(0))
	row, col := l.Cursor()
	assert.Zero(t, row)
	assert.Zero(t, col)
}
