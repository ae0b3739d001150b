package display

import (
	"strings"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// LCD geometry (the ubiquitous 1602 module).
const (
	lcdRows = 2
	lcdCols = 16
)

// Control bits of the incoming byte (PCF8574 backpack wiring:
// data nibble on the high bits, RS/RW/EN on the low bits).
const (
	lcdBitRS = 0x01
	lcdBitEN = 0x04
)

// HD44780 commands recognized by the decoder.
const (
	lcdCmdClear    = 0x01
	lcdCmdHome     = 0x02
	lcdCmdSetDDRAM = 0x80
)

// HD44780 is a 2x16 character LCD driven in 4-bit (nibble) mode. Each
// bus byte carries one data nibble plus control bits; a byte is latched
// only when the enable bit is set, and two latched nibbles (high, then
// low) form one command or character.
type HD44780 struct {
	*device.Base

	grid   [lcdRows][lcdCols]byte
	row    int
	col    int
	hasHi  bool
	hiBits byte
	hiRS   bool
}

// NewHD44780 creates a cleared LCD with the cursor at the origin.
func NewHD44780(name string) *HD44780 {
	l := &HD44780{Base: device.NewBase(name, device.CategoryDisplay)}
	l.clear()
	return l
}

func (l *HD44780) clear() {
	for r := 0; r < lcdRows; r++ {
		for c := 0; c < lcdCols; c++ {
			l.grid[r][c] = ' '
		}
	}
	l.row, l.col = 0, 0
	l.hasHi = false
}

// Write decodes a stream of nibble-mode bytes. Bytes without the enable
// bit are ignored (the firmware toggles enable to latch each nibble).
func (l *HD44780) Write(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		if b&lcdBitEN == 0 {
			continue
		}
		l.latchNibble(b>>4, b&lcdBitRS != 0)
	}
	return true
}

func (l *HD44780) latchNibble(nibble byte, rs bool) {
	if !l.hasHi {
		l.hiBits = nibble
		l.hiRS = rs
		l.hasHi = true
		return
	}

	// An RS change mid-byte restarts the sequence with this nibble.
	if rs != l.hiRS {
		l.hiBits = nibble
		l.hiRS = rs
		return
	}

	full := l.hiBits<<4 | nibble
	l.hasHi = false
	if rs {
		l.writeChar(full)
	} else {
		l.command(full)
	}
}

func (l *HD44780) command(cmd byte) {
	switch {
	case cmd == lcdCmdClear:
		l.clear()
	case cmd == lcdCmdHome || cmd == lcdCmdHome|0x01:
		l.row, l.col = 0, 0
	case cmd&lcdCmdSetDDRAM != 0:
		addr := cmd & 0x7F
		if addr < 0x40 {
			l.row = 0
			l.col = int(addr)
		} else {
			l.row = 1
			l.col = int(addr % 0x40)
		}
		if l.col >= lcdCols {
			l.col = lcdCols - 1
		}
	default:
		// Function set, display control, entry mode: accepted, no
		// visible effect in this model.
	}
}

func (l *HD44780) writeChar(ch byte) {
	l.grid[l.row][l.col] = ch
	l.col++
	if l.col >= lcdCols {
		l.col = 0
		l.row = (l.row + 1) % lcdRows
	}
}

// Read returns nothing; the 1602 backpack is effectively write-only.
func (l *HD44780) Read(n int) []byte {
	return nil
}

// Cursor returns the current cursor position.
func (l *HD44780) Cursor() (row, col int) {
	return l.row, l.col
}

// Line returns the visible text of one row.
func (l *HD44780) Line(row int) string {
	if row < 0 || row >= lcdRows {
		return ""
	}
	return string(l.grid[row][:])
}

// Lines returns both rows joined for inspection.
func (l *HD44780) Lines() []string {
	return []string{l.Line(0), l.Line(1)}
}

// String renders the display for the interactive console.
func (l *HD44780) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Update records the tick. The LCD changes only through bus writes.
func (l *HD44780) Update(simTime, dt float64) {
	l.MarkUpdated(simTime)
}

// Reset restores the power-on state: cleared, cursor home.
func (l *HD44780) Reset() {
	l.ResetParams()
	l.clear()
}
