package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingName indicates a device entry without a name.
	ErrMissingName = errors.New("device entry is missing a name")
	// ErrDuplicateName indicates two device entries sharing a name.
	ErrDuplicateName = errors.New("duplicate device name")
	// ErrUnknownDeviceType indicates an unrecognized type field.
	ErrUnknownDeviceType = errors.New("unknown device type")
	// ErrNotBusCapable indicates an address assigned to a device
	// that has no register interface.
	ErrNotBusCapable = errors.New("device type has no bus interface")
	// ErrInvalidPixelCount indicates a led_strip with pixels < 1.
	ErrInvalidPixelCount = errors.New("led_strip requires at least one pixel")
)

// Simulation holds the scheduler settings for a project.
type Simulation struct {
	// DT is the fixed timestep in simulated seconds.
	DT float64 `yaml:"dt"`
	// TimeFactor scales wall-clock playback speed.
	TimeFactor float64 `yaml:"time_factor"`
}

// Device describes one virtual device entry.
type Device struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Address assigns the device a bus address. Only register-mapped
	// types (bme280, mpu6050, hd44780, ssd1306) accept one.
	Address *uint8 `yaml:"address"`

	// Seed fixes the device's noise generator for reproducible runs.
	Seed *int64 `yaml:"seed"`

	// Params overrides parameter defaults by name.
	Params map[string]float64 `yaml:"params"`

	// Pixels sets the strip length for led_strip devices.
	Pixels int `yaml:"pixels"`

	// CommonAnode selects the wiring polarity for seven_segment devices.
	CommonAnode bool `yaml:"common_anode"`
}

// Project is a parsed simulator project file.
type Project struct {
	Simulation Simulation `yaml:"simulation"`
	Devices    []Device   `yaml:"devices"`
}

// deviceTypes lists every recognized type string.
var deviceTypes = map[string]bool{
	"led":           true,
	"rgb_led":       true,
	"servo":         true,
	"stepper":       true,
	"dc_motor":      true,
	"buzzer":        true,
	"relay":         true,
	"dht22":         true,
	"bme280":        true,
	"hcsr04":        true,
	"mpu6050":       true,
	"hd44780":       true,
	"ssd1306":       true,
	"seven_segment": true,
	"led_strip":     true,
}

// busCapableTypes lists the types that expose a register interface.
var busCapableTypes = map[string]bool{
	"bme280":  true,
	"mpu6050": true,
	"hd44780": true,
	"ssd1306": true,
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates project YAML.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the project for structural errors. Parameter values
// are not range-checked here; devices clamp them on assignment.
func (p *Project) Validate() error {
	seen := make(map[string]bool, len(p.Devices))
	for i, d := range p.Devices {
		if d.Name == "" {
			return fmt.Errorf("device %d: %w", i, ErrMissingName)
		}
		if seen[d.Name] {
			return fmt.Errorf("device %q: %w", d.Name, ErrDuplicateName)
		}
		seen[d.Name] = true

		if !deviceTypes[d.Type] {
			return fmt.Errorf("device %q: %w: %q", d.Name, ErrUnknownDeviceType, d.Type)
		}
		if d.Address != nil && !busCapableTypes[d.Type] {
			return fmt.Errorf("device %q: %w: %q", d.Name, ErrNotBusCapable, d.Type)
		}
		if d.Type == "led_strip" && d.Pixels < 1 {
			return fmt.Errorf("device %q: %w", d.Name, ErrInvalidPixelCount)
		}
	}
	return nil
}
