// Package sensor implements the input-side virtual devices: a DHT22
// humidity/temperature probe, a BME280-style environmental sensor, an
// HC-SR04 ultrasonic ranger and an MPU-6050-style inertial unit.
//
// Sensors read their "true" values from bounded parameters, perturb them
// each tick with Gaussian noise drawn from the device's own random
// source, and expose the results either through typed read methods or as
// byte-exact register reads matching the real parts' data layouts.
//
// Read-style operations consult the device's fault-injection state and
// return sentinel results (nil readings, zero echo) when a fault fires.
package sensor
