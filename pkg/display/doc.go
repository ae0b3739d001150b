// Package display implements the virtual display devices: an HD44780
// character LCD, an SSD1306 monochrome OLED, a 7-segment digit and an
// addressable RGB LED strip.
//
// The LCD and OLED are driven exclusively through their bus protocols:
// the decoders accept the exact byte framing of the real controllers
// (nibble-mode enable/RS latching for the HD44780, control-byte
// command/data streams for the SSD1306) and update an inspectable
// character grid or page-organized framebuffer. Unrecognized opcodes are
// dropped without touching device state.
//
// The LED strip's animations are pure functions of accumulated
// animation time, so identical tick sequences always render identical
// frames.
package display
