package sensor

import (
	"encoding/binary"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// MPU-6050 parameter names.
const (
	ParamAccelX     = "accel_x"
	ParamAccelY     = "accel_y"
	ParamAccelZ     = "accel_z"
	ParamGyroX      = "gyro_x"
	ParamGyroY      = "gyro_y"
	ParamGyroZ      = "gyro_z"
	ParamIMUTemp    = "temperature"
	ParamAccelNoise = "accel_noise"
	ParamGyroNoise  = "gyro_noise"
)

// MPU-6050 register addresses.
const (
	mpuRegSampleRate = 0x19
	mpuRegConfig     = 0x1A
	mpuRegGyroCfg    = 0x1B
	mpuRegAccelCfg   = 0x1C
	mpuRegPwrMgmt1   = 0x6B
	mpuRegWhoAmI     = 0x75
)

// mpuWhoAmI identifies the part.
const mpuWhoAmI = 0x68

// Scale factors for the packed sensor words.
const (
	mpuAccelScale = 2048.0 // LSB per g at +/-16 g
	mpuGyroScale  = 131.0  // LSB per deg/s at +/-250 deg/s
)

// MPU6050 is a six-axis inertial sensor: three acceleration channels in
// g and three angular rates in deg/s, each perturbed by small Gaussian
// noise per tick. Read returns the burst data layout of the real part:
// accel, temperature, gyro as big-endian 16-bit words.
type MPU6050 struct {
	*device.Base

	regs     *device.RegisterMap
	measured [6]float64 // ax, ay, az, gx, gy, gz
	temp     float64
}

// NewMPU6050 creates an inertial sensor at rest, flat, 1 g on Z.
func NewMPU6050(name string) *MPU6050 {
	m := &MPU6050{
		Base: device.NewBase(name, device.CategorySensor),
		regs: device.NewRegisterMap(),
	}
	m.AddParam(param.Bounded(ParamAccelX, 0, -16, 16, "g", "X acceleration"))
	m.AddParam(param.Bounded(ParamAccelY, 0, -16, 16, "g", "Y acceleration"))
	m.AddParam(param.Bounded(ParamAccelZ, 1, -16, 16, "g", "Z acceleration"))
	m.AddParam(param.Bounded(ParamGyroX, 0, -250, 250, "deg/s", "X angular rate"))
	m.AddParam(param.Bounded(ParamGyroY, 0, -250, 250, "deg/s", "Y angular rate"))
	m.AddParam(param.Bounded(ParamGyroZ, 0, -250, 250, "deg/s", "Z angular rate"))
	m.AddParam(param.Bounded(ParamIMUTemp, 25, -40, 85, "degC", "die temperature"))
	m.AddParam(param.Bounded(ParamAccelNoise, 0.002, 0, 1, "g", "accel noise sigma"))
	m.AddParam(param.Bounded(ParamGyroNoise, 0.05, 0, 10, "deg/s", "gyro noise sigma"))

	m.regs.DefineRO(mpuRegWhoAmI, mpuWhoAmI)
	m.regs.Define(mpuRegSampleRate, 0x00)
	m.regs.Define(mpuRegConfig, 0x00)
	m.regs.Define(mpuRegGyroCfg, 0x00)
	m.regs.Define(mpuRegAccelCfg, 0x00)
	m.regs.Define(mpuRegPwrMgmt1, 0x40) // sleep at power-on, like the real part
	m.syncMeasured()
	return m
}

func (m *MPU6050) syncMeasured() {
	m.measured = [6]float64{
		m.Get(ParamAccelX), m.Get(ParamAccelY), m.Get(ParamAccelZ),
		m.Get(ParamGyroX), m.Get(ParamGyroY), m.Get(ParamGyroZ),
	}
	m.temp = m.Get(ParamIMUTemp)
}

// Registers exposes the register map for inspection.
func (m *MPU6050) Registers() *device.RegisterMap {
	return m.regs
}

// Update perturbs all six channels around their configured values.
func (m *MPU6050) Update(simTime, dt float64) {
	m.MarkUpdated(simTime)

	accelSigma := m.Get(ParamAccelNoise)
	gyroSigma := m.Get(ParamGyroNoise)

	names := [6]string{ParamAccelX, ParamAccelY, ParamAccelZ, ParamGyroX, ParamGyroY, ParamGyroZ}
	for i, name := range names {
		sigma := accelSigma
		if i >= 3 {
			sigma = gyroSigma
		}
		p, _ := m.Param(name)
		m.measured[i] = p.Clamp(p.Get() + m.Gaussian(sigma))
	}
	m.temp = m.Get(ParamIMUTemp)
}

// Write handles [register, value] frames. Anything else is dropped.
func (m *MPU6050) Write(data []byte) bool {
	if len(data) != 2 {
		return false
	}
	return m.regs.Write(data[0], data[1])
}

// Read returns the 14-byte burst layout of the real part (accel XYZ,
// temperature, gyro XYZ), truncated to n bytes.
func (m *MPU6050) Read(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, 14)
	for i := 0; i < 3; i++ {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(int16(m.measured[i]*mpuAccelScale)))
	}
	// MPU temperature scaling: raw = (degC - 36.53) * 340.
	binary.BigEndian.PutUint16(buf[6:], uint16(int16((m.temp-36.53)*340)))
	for i := 0; i < 3; i++ {
		binary.BigEndian.PutUint16(buf[8+i*2:], uint16(int16(m.measured[3+i]*mpuGyroScale)))
	}

	if n < len(buf) {
		return buf[:n]
	}
	return buf
}

// Reset restores the power-on state, including the sleep bit.
func (m *MPU6050) Reset() {
	m.ResetParams()
	m.regs.Reset()
	m.syncMeasured()
}
