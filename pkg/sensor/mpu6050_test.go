package sensor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPU6050ReadPacking(t *testing.T) {
	m := NewMPU6050("imu-1")
	m.Set(ParamAccelNoise, 0)
	m.Set(ParamGyroNoise, 0)
	m.Set(ParamAccelX, 1)
	m.Set(ParamGyroZ, 100)
	m.Set(ParamIMUTemp, 36.53)
	m.Update(0.1, 0.1)

	data := m.Read(14)
	require.Len(t, data, 14)

	ax := int16(binary.BigEndian.Uint16(data[0:2]))
	az := int16(binary.BigEndian.Uint16(data[4:6]))
	temp := int16(binary.BigEndian.Uint16(data[6:8]))
	gz := int16(binary.BigEndian.Uint16(data[12:14]))

	assert.Equal(t, int16(2048), ax, "1 g at 2048 LSB/g")
	assert.Equal(t, int16(2048), az, "gravity on Z")
	assert.Equal(t, int16(0), temp, "36.53 degC is the raw zero point")
	assert.Equal(t, int16(13100), gz, "100 deg/s at 131 LSB/(deg/s)")
}

func TestMPU6050TemperatureScaling(t *testing.T) {
	m := NewMPU6050("imu-1")
	m.Set(ParamAccelNoise, 0)
	m.Set(ParamGyroNoise, 0)
	m.Set(ParamIMUTemp, 25)
	m.Update(0.1, 0.1)

	data := m.Read(14)
	temp := int16(binary.BigEndian.Uint16(data[6:8]))
	// (25 - 36.53) * 340 = -3920.2, truncated.
	assert.Equal(t, int16(-3920), temp)
}

func TestMPU6050Noise(t *testing.T) {
	m := NewMPU6050("imu-1")
	m.Set(ParamAccelNoise, 0.05)
	m.Set(ParamGyroNoise, 1.0)
	m.Seed(11)

	// With noise enabled, successive ticks give different samples.
	m.Update(0.01, 0.01)
	first := m.Read(14)
	m.Update(0.02, 0.01)
	second := m.Read(14)
	assert.NotEqual(t, first, second)

	// Identical seeds replay identical noise.
	n := NewMPU6050("imu-2")
	n.Set(ParamAccelNoise, 0.05)
	n.Set(ParamGyroNoise, 1.0)
	n.Seed(11)
	n.Update(0.01, 0.01)
	n.Update(0.02, 0.01)
	assert.Equal(t, second, n.Read(14))
}

func TestMPU6050Registers(t *testing.T) {
	m := NewMPU6050("imu-1")

	assert.Equal(t, byte(0x68), m.Registers().Read(0x75), "WHO_AM_I")
	assert.Equal(t, byte(0x40), m.Registers().Read(0x6B), "sleep bit at power-on")

	// Wake the part.
	assert.True(t, m.Write([]byte{0x6B, 0x00}))
	assert.Equal(t, byte(0x00), m.Registers().Read(0x6B))

	assert.False(t, m.Write([]byte{0x75, 0x00}), "WHO_AM_I is read-only")
	assert.False(t, m.Write([]byte{0x6B}), "malformed frame dropped")
}

func TestMPU6050ShortRead(t *testing.T) {
	m := NewMPU6050("imu-1")
	m.Update(0.1, 0.1)

	assert.Len(t, m.Read(6), 6)
	assert.Len(t, m.Read(64), 14)
	assert.Nil(t, m.Read(0))
}

func TestMPU6050Reset(t *testing.T) {
	m := NewMPU6050("imu-1")
	require.True(t, m.Write([]byte{0x6B, 0x00}))
	m.Set(ParamAccelX, 5)
	m.Update(0.1, 0.1)

	m.Reset()
	assert.Equal(t, byte(0x40), m.Registers().Read(0x6B), "sleep bit restored")
	assert.Equal(t, 0.0, m.Get(ParamAccelX))
	assert.Equal(t, 1.0, m.Get(ParamAccelZ))
}
