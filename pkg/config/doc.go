// Package config loads simulator projects from YAML files.
//
// A project describes the simulation timestep and the set of virtual
// devices to create, with optional per-device parameter overrides, a
// deterministic noise seed, and a bus address for register-mapped
// peripherals:
//
//	simulation:
//	  dt: 0.01
//	  time_factor: 1.0
//	devices:
//	  - name: cabin-temp
//	    type: bme280
//	    address: 0x76
//	    seed: 42
//	    params:
//	      altitude: 350
//	  - name: strip
//	    type: led_strip
//	    pixels: 16
//
// Load parses and validates a project file; Project.Build constructs
// the device registry and bus it describes.
package config
