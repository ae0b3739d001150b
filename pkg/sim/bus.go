package sim

import (
	"errors"
	"fmt"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
)

// Bus errors.
var (
	ErrAddressInUse = errors.New("bus address already in use")
)

// Tracer observes bus transactions. Implementations must not call back
// into the bus.
type Tracer interface {
	// TraceWrite is called after a write transaction completes.
	TraceWrite(simTime float64, addr uint8, data []byte, ok bool)

	// TraceRead is called after a read transaction completes.
	TraceRead(simTime float64, addr uint8, data []byte)
}

// Bus routes byte transactions to devices by address, emulating the
// board's I2C fabric. Transactions against unknown addresses are
// absorbed: writes report failure, reads return nothing, neither
// raises. All access is serialized by the caller.
type Bus struct {
	devices map[uint8]device.BusDevice
	names   map[uint8]string
	tracer  Tracer
	clock   func() float64
}

// NewBus creates an empty bus. The clock callback supplies the current
// simulation time for trace records; nil means traces carry time zero.
func NewBus(clock func() float64) *Bus {
	if clock == nil {
		clock = func() float64 { return 0 }
	}
	return &Bus{
		devices: make(map[uint8]device.BusDevice),
		names:   make(map[uint8]string),
		clock:   clock,
	}
}

// SetTracer installs a transaction observer. Passing nil removes it.
func (b *Bus) SetTracer(t Tracer) {
	b.tracer = t
}

// Register attaches a device at a bus address.
func (b *Bus) Register(addr uint8, name string, dev device.BusDevice) error {
	if existing, used := b.names[addr]; used {
		return fmt.Errorf("%w: %#02x held by %s", ErrAddressInUse, addr, existing)
	}
	b.devices[addr] = dev
	b.names[addr] = name
	return nil
}

// Deregister detaches whatever device holds the address.
func (b *Bus) Deregister(addr uint8) {
	delete(b.devices, addr)
	delete(b.names, addr)
}

// DeviceAt returns the name of the device at an address.
func (b *Bus) DeviceAt(addr uint8) (string, bool) {
	name, ok := b.names[addr]
	return name, ok
}

// Addresses returns all occupied addresses.
func (b *Bus) Addresses() []uint8 {
	result := make([]uint8, 0, len(b.devices))
	for addr := range b.devices {
		result = append(result, addr)
	}
	return result
}

// Write routes a write transaction to the addressed device. Unknown
// addresses report failure without side effects.
func (b *Bus) Write(addr uint8, data []byte) bool {
	dev, ok := b.devices[addr]
	var accepted bool
	if ok {
		accepted = dev.Write(data)
	}
	if b.tracer != nil {
		b.tracer.TraceWrite(b.clock(), addr, data, accepted)
	}
	return accepted
}

// Read routes a read transaction to the addressed device. Unknown
// addresses return nil.
func (b *Bus) Read(addr uint8, n int) []byte {
	dev, ok := b.devices[addr]
	var data []byte
	if ok {
		data = dev.Read(n)
	}
	if b.tracer != nil {
		b.tracer.TraceRead(b.clock(), addr, data)
	}
	return data
}
