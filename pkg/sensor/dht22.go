package sensor

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// DHT22 parameter names.
const (
	ParamTemperature = "temperature"
	ParamHumidity    = "humidity"
	ParamNoiseLevel  = "noise_level"
)

// dht22MinInterval is the minimum sampling interval of the real part.
const dht22MinInterval = 2.0

// Reading is one temperature/humidity sample.
type Reading struct {
	Temperature float64
	Humidity    float64
}

// DHT22 is a combined humidity/temperature probe. The real part cannot
// be polled faster than once every two seconds; reads inside that
// window return nil, which is not a fault.
type DHT22 struct {
	*device.Base

	lastReadingTime float64
	measured        Reading
}

// NewDHT22 creates a probe at room conditions.
func NewDHT22(name string) *DHT22 {
	d := &DHT22{Base: device.NewBase(name, device.CategorySensor)}
	d.AddParam(param.Bounded(ParamTemperature, 25, -40, 80, "degC", "ambient temperature"))
	d.AddParam(param.Bounded(ParamHumidity, 50, 0, 100, "%RH", "relative humidity"))
	d.AddParam(param.Bounded(ParamNoiseLevel, 0.2, 0, 5, "", "gaussian noise sigma"))
	d.lastReadingTime = -dht22MinInterval
	d.measured = Reading{Temperature: 25, Humidity: 50}
	return d
}

// Update perturbs the measured values around the configured ambient
// parameters, clamped to the sensor range.
func (d *DHT22) Update(simTime, dt float64) {
	d.MarkUpdated(simTime)

	sigma := d.Get(ParamNoiseLevel)
	tp, _ := d.Param(ParamTemperature)
	hp, _ := d.Param(ParamHumidity)
	d.measured.Temperature = tp.Clamp(tp.Get() + d.Gaussian(sigma))
	d.measured.Humidity = hp.Clamp(hp.Get() + d.Gaussian(sigma))
}

// ReadData samples the probe. It returns nil when called again within
// the two-second minimum interval, or when an injected fault (timeout,
// bad checksum) fires; a successful read arms the interval gate.
func (d *DHT22) ReadData(simTime float64) *Reading {
	if _, faulted := d.FaultActive(); faulted {
		return nil
	}
	if simTime-d.lastReadingTime < dht22MinInterval {
		return nil
	}
	d.lastReadingTime = simTime

	r := d.measured
	return &r
}

// Reset restores the power-on state and re-arms the sampling gate.
func (d *DHT22) Reset() {
	d.ResetParams()
	d.lastReadingTime = -dht22MinInterval
	d.measured = Reading{Temperature: d.Get(ParamTemperature), Humidity: d.Get(ParamHumidity)}
}
