// Package actuator implements the output-side virtual devices: LEDs,
// servos, motors, buzzers and relays.
//
// Each device embeds device.Base and adds physically plausible dynamics
// on top: rate-limited servo slew, trapezoidal stepper ramps, torque
// integration for DC motors, timed relay contact transitions. All motion
// is integrated against the dt passed to Update; no device keeps its own
// clock.
package actuator
