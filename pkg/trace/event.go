package trace

import "time"

// Event is a single captured bus transaction.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was captured (wall clock).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SimTime is the simulated time of the transaction in seconds.
	SimTime float64 `cbor:"2,keyasint"`

	// Kind distinguishes writes from reads.
	Kind Kind `cbor:"3,keyasint"`

	// Addr is the bus address the transaction targeted.
	Addr uint8 `cbor:"4,keyasint"`

	// Data is the frame payload. For writes this is what the host
	// sent; for reads, what the device returned.
	Data []byte `cbor:"5,keyasint,omitempty"`

	// OK reports whether a write was accepted. Always false for
	// frames absorbed by an empty address.
	OK bool `cbor:"6,keyasint,omitempty"`

	// Ticks is the scheduler tick count, set on tick summary events.
	Ticks uint64 `cbor:"7,keyasint,omitempty"`
}

// Kind distinguishes the transaction direction.
type Kind uint8

const (
	// KindWrite is a host-to-device frame.
	KindWrite Kind = 0
	// KindRead is a device-to-host frame.
	KindRead Kind = 1
	// KindTick is a scheduler tick summary.
	KindTick Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "WRITE"
	case KindRead:
		return "READ"
	case KindTick:
		return "TICK"
	default:
		return "UNKNOWN"
	}
}
