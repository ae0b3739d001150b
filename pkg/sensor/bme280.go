package sensor

import (
	"encoding/binary"
	"math"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// BME280 parameter names.
const (
	ParamAltitude    = "altitude"
	ParamPressure    = "pressure"
	ParamEnvTemp     = "temperature"
	ParamEnvHumidity = "humidity"
)

// BME280 register addresses.
const (
	bme280RegChipID   = 0xD0
	bme280RegReset    = 0xE0
	bme280RegCtrlHum  = 0xF2
	bme280RegCtrlMeas = 0xF4
	bme280RegConfig   = 0xF5
)

// bme280ChipID identifies the part.
const bme280ChipID = 0x60

// seaLevelPressure is the standard atmosphere at sea level in hPa.
const seaLevelPressure = 1013.25

// BME280 is a register-addressed environmental sensor. Pressure is
// derived from the configured altitude through the barometric formula;
// measurements read back as three big-endian scaled 16-bit values.
type BME280 struct {
	*device.Base

	regs *device.RegisterMap
}

// NewBME280 creates an environmental sensor at sea level.
func NewBME280(name string) *BME280 {
	b := &BME280{
		Base: device.NewBase(name, device.CategorySensor),
		regs: device.NewRegisterMap(),
	}
	b.AddParam(param.Bounded(ParamAltitude, 0, -500, 9000, "m", "configured altitude"))
	b.AddParam(param.Bounded(ParamPressure, seaLevelPressure, 300, 1100, "hPa", "derived pressure"))
	b.AddParam(param.Bounded(ParamEnvTemp, 25, -40, 85, "degC", "ambient temperature"))
	b.AddParam(param.Bounded(ParamEnvHumidity, 40, 0, 100, "%RH", "relative humidity"))

	b.regs.DefineRO(bme280RegChipID, bme280ChipID)
	b.regs.Define(bme280RegReset, 0x00)
	b.regs.Define(bme280RegCtrlHum, 0x00)
	b.regs.Define(bme280RegCtrlMeas, 0x00)
	b.regs.Define(bme280RegConfig, 0x00)
	return b
}

// Registers exposes the register map for inspection.
func (b *BME280) Registers() *device.RegisterMap {
	return b.regs
}

// Update derives pressure from altitude using the barometric formula.
func (b *BME280) Update(simTime, dt float64) {
	b.MarkUpdated(simTime)

	altitude := b.Get(ParamAltitude)
	pressure := seaLevelPressure * math.Pow(1-0.0065*altitude/288.15, 5.255)
	b.Set(ParamPressure, pressure)
}

// Write handles [register, value] frames. Anything else is dropped.
func (b *BME280) Write(data []byte) bool {
	if len(data) != 2 {
		return false
	}
	return b.regs.Write(data[0], data[1])
}

// Read packs pressure (hPa x10), temperature (degC x100) and humidity
// (%RH x100) as big-endian 16-bit values and returns up to n bytes.
func (b *BME280) Read(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], uint16(b.Get(ParamPressure)*10))
	binary.BigEndian.PutUint16(buf[2:4], uint16(int16(b.Get(ParamEnvTemp)*100)))
	binary.BigEndian.PutUint16(buf[4:6], uint16(int16(b.Get(ParamEnvHumidity)*100)))

	if n < len(buf) {
		return buf[:n]
	}
	return buf
}

// Reset restores the power-on state, including control registers.
func (b *BME280) Reset() {
	b.ResetParams()
	b.regs.Reset()
}
