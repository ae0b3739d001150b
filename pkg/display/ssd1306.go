package display

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// OLED geometry (the common 0.96" module).
const (
	oledWidth  = 128
	oledHeight = 64
	oledPages  = oledHeight / 8
)

// SSD1306 control bytes.
const (
	oledCtrlCommand = 0x00
	oledCtrlData    = 0x40
)

// SSD1306 commands recognized by the decoder.
const (
	oledCmdDisplayOff = 0xAE
	oledCmdDisplayOn  = 0xAF
	oledCmdPageBase   = 0xB0 // 0xB0..0xB7
	oledCmdColLowBase = 0x00 // 0x00..0x0F
	oledCmdColHiBase  = 0x10 // 0x10..0x1F
)

// SSD1306 is a 128x64 monochrome OLED with a page-organized
// framebuffer: each byte covers 8 vertical pixels of one column. A
// transaction's leading control byte selects command decoding (0x00) or
// a data stream (0x40) filling the buffer at the current page/column.
type SSD1306 struct {
	*device.Base

	buffer    [oledWidth * oledPages]byte
	page      int
	column    int
	displayOn bool
}

// NewSSD1306 creates an OLED, blank and off, as the real part powers
// on.
func NewSSD1306(name string) *SSD1306 {
	return &SSD1306{Base: device.NewBase(name, device.CategoryDisplay)}
}

// Write decodes one bus transaction. The first byte is the control
// byte; unrecognized control bytes drop the whole frame.
func (o *SSD1306) Write(data []byte) bool {
	if len(data) < 2 {
		return false
	}

	switch data[0] {
	case oledCtrlCommand:
		for _, b := range data[1:] {
			o.command(b)
		}
	case oledCtrlData:
		for _, b := range data[1:] {
			o.buffer[o.page*oledWidth+o.column] = b
			o.column++
			if o.column >= oledWidth {
				o.column = 0
			}
		}
	default:
		return false
	}
	return true
}

func (o *SSD1306) command(cmd byte) {
	switch {
	case cmd == oledCmdDisplayOff:
		o.displayOn = false
	case cmd == oledCmdDisplayOn:
		o.displayOn = true
	case cmd >= oledCmdPageBase && cmd <= oledCmdPageBase|0x07:
		o.page = int(cmd & 0x07)
	case cmd >= oledCmdColHiBase && cmd <= oledCmdColHiBase|0x0F:
		o.column = (o.column & 0x0F) | int(cmd&0x0F)<<4
		if o.column >= oledWidth {
			o.column = oledWidth - 1
		}
	case cmd <= oledCmdColLowBase|0x0F:
		o.column = (o.column &^ 0x0F) | int(cmd&0x0F)
	default:
		// Contrast, addressing mode, charge pump etc.: ignored.
	}
}

// Read returns nothing; the module's read path is unused in practice.
func (o *SSD1306) Read(n int) []byte {
	return nil
}

// DisplayOn reports whether the panel is lit.
func (o *SSD1306) DisplayOn() bool {
	return o.displayOn
}

// Position returns the current page and column.
func (o *SSD1306) Position() (page, column int) {
	return o.page, o.column
}

// Byte returns the framebuffer byte at the given page and column.
func (o *SSD1306) Byte(page, column int) byte {
	if page < 0 || page >= oledPages || column < 0 || column >= oledWidth {
		return 0
	}
	return o.buffer[page*oledWidth+column]
}

// SetPixel sets or clears one pixel, addressing the bit inside the
// page-organized buffer.
func (o *SSD1306) SetPixel(x, y int, on bool) {
	if x < 0 || x >= oledWidth || y < 0 || y >= oledHeight {
		return
	}
	idx := (y/8)*oledWidth + x
	bit := byte(1) << (y % 8)
	if on {
		o.buffer[idx] |= bit
	} else {
		o.buffer[idx] &^= bit
	}
}

// GetPixel returns the state of one pixel. Out-of-range coordinates
// read as off.
func (o *SSD1306) GetPixel(x, y int) bool {
	if x < 0 || x >= oledWidth || y < 0 || y >= oledHeight {
		return false
	}
	return o.buffer[(y/8)*oledWidth+x]&(1<<(y%8)) != 0
}

// Clear blanks the framebuffer without touching the cursor.
func (o *SSD1306) Clear() {
	o.buffer = [oledWidth * oledPages]byte{}
}

// Update records the tick. The OLED changes only through bus writes.
func (o *SSD1306) Update(simTime, dt float64) {
	o.MarkUpdated(simTime)
}

// Reset restores the power-on state: blank, off, cursor at the origin.
func (o *SSD1306) Reset() {
	o.ResetParams()
	o.buffer = [oledWidth * oledPages]byte{}
	o.page = 0
	o.column = 0
	o.displayOn = false
}
