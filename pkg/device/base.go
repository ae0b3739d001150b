package device

import (
	"math/rand"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// defaultSeed seeds every device's random source at construction.
// Runs are reproducible unless a caller injects its own source.
const defaultSeed int64 = 0x52506953 // "RPiS"

// Base carries the state common to all simulated devices. Concrete
// devices embed it and layer their dynamics and protocol on top.
//
// Base is not safe for concurrent use; the scheduler and bus controller
// serialize all access externally.
type Base struct {
	name       string
	category   Category
	enabled    bool
	params     map[string]*param.Param
	order      []string
	lastUpdate float64
	fault      Fault
	rng        *rand.Rand
}

// NewBase creates a device base with the given identity.
func NewBase(name string, category Category) *Base {
	return &Base{
		name:     name,
		category: category,
		enabled:  true,
		params:   make(map[string]*param.Param),
		rng:      rand.New(rand.NewSource(defaultSeed)),
	}
}

// Name returns the device name.
func (b *Base) Name() string {
	return b.name
}

// Category returns the device category.
func (b *Base) Category() Category {
	return b.category
}

// Enabled reports whether the device participates in the simulation.
func (b *Base) Enabled() bool {
	return b.enabled
}

// SetEnabled enables or disables the device.
func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// AddParam registers a parameter. A parameter with the same name
// replaces the previous one but keeps its listing position.
func (b *Base) AddParam(p *param.Param) {
	if _, exists := b.params[p.Name()]; !exists {
		b.order = append(b.order, p.Name())
	}
	b.params[p.Name()] = p
}

// Param returns a parameter by name.
func (b *Base) Param(name string) (*param.Param, bool) {
	p, ok := b.params[name]
	return p, ok
}

// Get returns the value of the named parameter, or 0 if the name is
// unknown. Unknown names never raise so a misconfigured harness cannot
// halt the tick loop.
func (b *Base) Get(name string) float64 {
	p, ok := b.params[name]
	if !ok {
		return 0
	}
	return p.Get()
}

// GetOK returns the value of the named parameter and whether it exists.
func (b *Base) GetOK(name string) (float64, bool) {
	p, ok := b.params[name]
	if !ok {
		return 0, false
	}
	return p.Get(), true
}

// Set assigns the named parameter, clamping to its bounds. Unknown
// names are a no-op.
func (b *Base) Set(name string, value float64) {
	if p, ok := b.params[name]; ok {
		p.Set(value)
	}
}

// Params returns all parameters in registration order.
func (b *Base) Params() []*param.Param {
	result := make([]*param.Param, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, b.params[name])
	}
	return result
}

// ResetParams restores every parameter to its power-on default.
func (b *Base) ResetParams() {
	for _, p := range b.params {
		p.Reset()
	}
	b.lastUpdate = 0
}

// MarkUpdated records the simulation time of the current tick.
func (b *Base) MarkUpdated(simTime float64) {
	b.lastUpdate = simTime
}

// LastUpdate returns the simulation time of the most recent tick.
func (b *Base) LastUpdate() float64 {
	return b.lastUpdate
}

// Rand returns the device's random source.
func (b *Base) Rand() *rand.Rand {
	return b.rng
}

// SetRand replaces the device's random source. Passing a source seeded
// from a known value makes noise and fault decisions replayable.
func (b *Base) SetRand(rng *rand.Rand) {
	if rng != nil {
		b.rng = rng
	}
}

// Seed reseeds the device's random source.
func (b *Base) Seed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// Gaussian returns a normally distributed sample with the given
// standard deviation, drawn from the device's random source.
func (b *Base) Gaussian(sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	return b.rng.NormFloat64() * sigma
}
