package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// Registry errors.
var (
	ErrDuplicateDevice = errors.New("duplicate device name")
	ErrDeviceNotFound  = errors.New("device not found")
)

// Registry holds the named devices of one simulated board. It is the
// exclusive owner of its devices; removal discards them.
type Registry struct {
	id      string
	devices map[string]device.Device
	order   []string
}

// NewRegistry creates an empty registry with a fresh run identifier.
func NewRegistry() *Registry {
	return &Registry{
		id:      uuid.NewString(),
		devices: make(map[string]device.Device),
	}
}

// ID returns the unique identifier of this registry instance. Trace
// files carry it so replays can be matched to their run.
func (r *Registry) ID() string {
	return r.id
}

// Add registers a device under its name.
func (r *Registry) Add(d device.Device) error {
	if _, exists := r.devices[d.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDevice, d.Name())
	}
	r.devices[d.Name()] = d
	r.order = append(r.order, d.Name())
	return nil
}

// Remove unregisters a device by name.
func (r *Registry) Remove(name string) error {
	if _, exists := r.devices[name]; !exists {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, name)
	}
	delete(r.devices, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a device by name.
func (r *Registry) Get(name string) (device.Device, bool) {
	d, ok := r.devices[name]
	return d, ok
}

// List returns all devices in registration order.
func (r *Registry) List() []device.Device {
	result := make([]device.Device, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.devices[name])
	}
	return result
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.devices)
}

// UpdateAll ticks every enabled device once.
func (r *Registry) UpdateAll(simTime, dt float64) {
	for _, name := range r.order {
		d := r.devices[name]
		if d.Enabled() {
			d.Update(simTime, dt)
		}
	}
}

// ResetAll restores every device to its power-on state.
func (r *Registry) ResetAll() {
	for _, d := range r.devices {
		d.Reset()
	}
}
