// Package param implements the bounded parameter type shared by all
// simulated devices.
//
// A Param is a named value with optional inclusive bounds, a unit and a
// description. Assignment is total: values outside the bounds are clamped,
// never rejected. This keeps the fixed-tick simulation loop free of error
// paths originating from parameter writes.
package param

// Metadata describes a parameter's identity and constraints.
type Metadata struct {
	// Name is the parameter identifier within the device.
	Name string

	// Unit is the unit of measurement (e.g., "degC", "hPa", "rpm").
	Unit string

	// Description is a human-readable description.
	Description string

	// Min is the inclusive lower bound, or nil if unbounded below.
	Min *float64

	// Max is the inclusive upper bound, or nil if unbounded above.
	Max *float64

	// Default is the power-on value.
	Default float64
}

// Param is a parameter instance with its current value.
type Param struct {
	meta  *Metadata
	value float64
}

// New creates a parameter initialized to its default value.
func New(meta *Metadata) *Param {
	return &Param{
		meta:  meta,
		value: meta.Default,
	}
}

// Bounded creates a parameter with both bounds set.
func Bounded(name string, def, min, max float64, unit, description string) *Param {
	return New(&Metadata{
		Name:        name,
		Unit:        unit,
		Description: description,
		Min:         &min,
		Max:         &max,
		Default:     def,
	})
}

// Unbounded creates a parameter without bounds.
func Unbounded(name string, def float64, unit, description string) *Param {
	return New(&Metadata{
		Name:        name,
		Unit:        unit,
		Description: description,
		Default:     def,
	})
}

// Name returns the parameter name.
func (p *Param) Name() string {
	return p.meta.Name
}

// Metadata returns the parameter metadata.
func (p *Param) Metadata() *Metadata {
	return p.meta
}

// Get returns the current value.
func (p *Param) Get() float64 {
	return p.value
}

// Set stores the value, clamping it to [Min, Max] when both bounds are
// present. Clamping is silent; Set never fails.
func (p *Param) Set(value float64) {
	p.value = p.Clamp(value)
}

// Clamp returns value constrained to the parameter's bounds without
// storing it.
func (p *Param) Clamp(value float64) float64 {
	if p.meta.Min != nil && p.meta.Max != nil {
		if value < *p.meta.Min {
			return *p.meta.Min
		}
		if value > *p.meta.Max {
			return *p.meta.Max
		}
	}
	return value
}

// Bounds returns the bounds and whether both are present.
func (p *Param) Bounds() (min, max float64, ok bool) {
	if p.meta.Min == nil || p.meta.Max == nil {
		return 0, 0, false
	}
	return *p.meta.Min, *p.meta.Max, true
}

// Reset restores the power-on default value.
func (p *Param) Reset() {
	p.value = p.meta.Default
}
