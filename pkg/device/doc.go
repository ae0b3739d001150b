// Package device implements the base capability shared by all simulated
// peripherals.
//
// # Device Model
//
// Every peripheral is built on Base, which carries identity, a category
// (actuator, sensor or display), an enabled flag, a map of bounded
// parameters and a fault-injection state. Concrete devices embed Base and
// add their physical dynamics and, where applicable, a bus protocol.
//
// # Capabilities
//
// Cross-cutting behavior is expressed as two small interfaces rather than
// an inheritance hierarchy:
//
//   - Updatable: driven by the external scheduler once per tick via
//     Update(simTime, dt); Reset restores power-on defaults.
//   - BusDevice: byte-level Write/Read for register-addressed or
//     frame-decoding parts, invoked by the external bus controller.
//
// # Determinism
//
// Each device owns an explicit *rand.Rand seeded deterministically at
// construction. Noise and fault-injection decisions draw only from that
// source, so simulation runs are reproducible; tests and replay tooling
// may swap the source with SetRand.
//
// # Failure Model
//
// Nothing in this package raises: parameter writes clamp, unknown
// parameter reads return a zero value with ok=false, malformed bus frames
// are dropped, and injected faults surface as sentinel data (nil
// readings, zero durations) from read-style operations.
package device
