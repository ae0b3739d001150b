// Package trace provides binary bus-traffic capture for the simulator.
//
// Events are recorded for every bus transaction and encoded as CBOR
// with integer keys for compactness. Trace files use the .strace
// extension and can be replayed or filtered with Reader.
//
// The FileLogger satisfies sim.Tracer, so wiring capture into a
// running simulation is a single call:
//
//	tracer, _ := trace.NewFileLogger("run.strace")
//	defer tracer.Close()
//	bus.SetTracer(tracer)
package trace
