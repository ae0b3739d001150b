package device

// FaultKind tags the failure mode a device should exhibit.
type FaultKind string

// Fault kinds recognized by the built-in devices. Devices ignore kinds
// they do not model.
const (
	FaultTimeout     FaultKind = "timeout"
	FaultBadChecksum FaultKind = "bad_checksum"
	FaultNoEcho      FaultKind = "no_echo"
	FaultFalseEcho   FaultKind = "false_echo"
)

// Fault is the per-device fault-injection state. It is consulted only by
// read-style operations (sensor sampling, measurement triggers); tick
// updates and actuation are never faulted.
type Fault struct {
	// Enabled gates fault injection entirely.
	Enabled bool

	// Kind selects the failure mode.
	Kind FaultKind

	// Probability is the per-read trigger chance in [0, 1].
	Probability float64
}

// InjectFault enables fault injection with the given kind and trigger
// probability. The probability is clamped to [0, 1].
func (b *Base) InjectFault(kind FaultKind, probability float64) {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	b.fault = Fault{Enabled: true, Kind: kind, Probability: probability}
}

// ClearFault disables fault injection.
func (b *Base) ClearFault() {
	b.fault = Fault{}
}

// FaultState returns the current fault-injection state.
func (b *Base) FaultState() Fault {
	return b.fault
}

// FaultActive rolls the device's random source against the configured
// probability. It returns the triggered fault kind, or ok=false when no
// fault fires. With probability 1.0 a fault fires on every call.
func (b *Base) FaultActive() (FaultKind, bool) {
	if !b.fault.Enabled {
		return "", false
	}
	if b.fault.Probability >= 1 || b.rng.Float64() < b.fault.Probability {
		return b.fault.Kind, true
	}
	return "", false
}
