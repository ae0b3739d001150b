// Package sim provides the simulation engine around the virtual
// devices: a registry of named devices, a bus controller routing byte
// transactions by address, and a fixed-timestep scheduler driving
// Update on every registered device.
//
// The scheduler owns simulated time: it accumulates simTime in fixed dt
// increments regardless of wall-clock jitter, and a time factor scales
// how fast the wall clock replays those increments. Devices themselves
// never block or sleep.
package sim
