package config

import (
	"fmt"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/actuator"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/display"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/sensor"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/sim"
)

// seeder is satisfied by every device through its embedded base.
type seeder interface {
	Seed(seed int64)
}

// paramSetter is satisfied by every device through its embedded base.
type paramSetter interface {
	Set(name string, value float64)
}

// Build constructs the registry and bus described by the project.
// clock supplies the current simulated time for bus tracing; nil is
// allowed and freezes trace timestamps at zero.
func (p *Project) Build(clock func() float64) (*sim.Registry, *sim.Bus, error) {
	registry := sim.NewRegistry()
	bus := sim.NewBus(clock)

	for _, entry := range p.Devices {
		dev, err := newDevice(entry)
		if err != nil {
			return nil, nil, err
		}

		if entry.Seed != nil {
			if s, ok := dev.(seeder); ok {
				s.Seed(*entry.Seed)
			}
		}
		for name, value := range entry.Params {
			if ps, ok := dev.(paramSetter); ok {
				ps.Set(name, value)
			}
		}

		if err := registry.Add(dev); err != nil {
			return nil, nil, fmt.Errorf("device %q: %w", entry.Name, err)
		}

		if entry.Address != nil {
			bd, ok := dev.(device.BusDevice)
			if !ok {
				return nil, nil, fmt.Errorf("device %q: %w", entry.Name, ErrNotBusCapable)
			}
			if err := bus.Register(*entry.Address, entry.Name, bd); err != nil {
				return nil, nil, fmt.Errorf("device %q: %w", entry.Name, err)
			}
		}
	}

	return registry, bus, nil
}

func newDevice(entry Device) (device.Device, error) {
	switch entry.Type {
	case "led":
		return actuator.NewLED(entry.Name), nil
	case "rgb_led":
		return actuator.NewRGBLED(entry.Name), nil
	case "servo":
		return actuator.NewServo(entry.Name), nil
	case "stepper":
		return actuator.NewStepper(entry.Name), nil
	case "dc_motor":
		return actuator.NewDCMotor(entry.Name), nil
	case "buzzer":
		return actuator.NewBuzzer(entry.Name), nil
	case "relay":
		return actuator.NewRelay(entry.Name), nil
	case "dht22":
		return sensor.NewDHT22(entry.Name), nil
	case "bme280":
		return sensor.NewBME280(entry.Name), nil
	case "hcsr04":
		return sensor.NewHCSR04(entry.Name), nil
	case "mpu6050":
		return sensor.NewMPU6050(entry.Name), nil
	case "hd44780":
		return display.NewHD44780(entry.Name), nil
	case "ssd1306":
		return display.NewSSD1306(entry.Name), nil
	case "seven_segment":
		return display.NewSevenSegment(entry.Name, entry.CommonAnode), nil
	case "led_strip":
		return display.NewLEDStrip(entry.Name, entry.Pixels), nil
	default:
		return nil, fmt.Errorf("device %q: %w: %q", entry.Name, ErrUnknownDeviceType, entry.Type)
	}
}
