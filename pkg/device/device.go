package device

// Category classifies a device by its role on the virtual board.
type Category uint8

const (
	CategoryActuator Category = iota
	CategorySensor
	CategoryDisplay
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryActuator:
		return "actuator"
	case CategorySensor:
		return "sensor"
	case CategoryDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// Updatable is the capability driven by the simulation scheduler.
// Update is called once per device per tick; it never fails and all
// passage of time is expressed through dt. Reset restores the power-on
// state and is safe to call at any point, including mid-transaction.
type Updatable interface {
	Update(simTime, dt float64)
	Reset()
}

// BusDevice is the capability invoked by the bus controller when
// simulated firmware performs a transaction. Write returns false for
// malformed or unrecognized frames, which are otherwise ignored. Read
// returns up to n bytes; shorter reads are not errors.
type BusDevice interface {
	Write(data []byte) bool
	Read(n int) []byte
}

// Device is the full device contract: identity plus tick updates.
type Device interface {
	Updatable

	Name() string
	Category() Category
	Enabled() bool
	SetEnabled(enabled bool)
}
