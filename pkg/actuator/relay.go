package actuator

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// Relay parameter names.
const (
	ParamEnergized     = "energized"
	ParamSwitchingTime = "switching_time"
)

// Relay is an electromechanical relay. Contact transitions take
// switching_time seconds of simulated time; while the armature travels
// the relay is in a transitional state and the contact outputs still
// reflect the previous settled position.
type Relay struct {
	*device.Base

	contactsClosed bool
	switching      bool
	switchStart    float64
}

// NewRelay creates a relay with a 5 ms switching time, de-energized.
func NewRelay(name string) *Relay {
	r := &Relay{Base: device.NewBase(name, device.CategoryActuator)}
	r.AddParam(param.Bounded(ParamEnergized, 0, 0, 1, "", "coil energized"))
	r.AddParam(param.Bounded(ParamSwitchingTime, 0.005, 0.001, 0.1, "s", "contact travel time"))
	return r
}

// Energize drives the coil. If the contacts do not match, the armature
// starts traveling.
func (r *Relay) Energize() {
	r.Set(ParamEnergized, 1)
	r.checkTransition()
}

// DeEnergize releases the coil.
func (r *Relay) DeEnergize() {
	r.Set(ParamEnergized, 0)
	r.checkTransition()
}

func (r *Relay) checkTransition() {
	energized := r.Get(ParamEnergized) > 0
	if r.contactsClosed != energized && !r.switching {
		r.switching = true
		r.switchStart = r.LastUpdate()
	}
}

// Energized reports the coil state.
func (r *Relay) Energized() bool {
	return r.Get(ParamEnergized) > 0
}

// IsSwitching reports whether the armature is mid-travel.
func (r *Relay) IsSwitching() bool {
	return r.switching
}

// ContactsClosed reports the settled contact state.
func (r *Relay) ContactsClosed() bool {
	return r.contactsClosed
}

// NormallyOpen returns the NO contact: closed only when the relay has
// settled energized.
func (r *Relay) NormallyOpen() bool {
	return r.contactsClosed
}

// NormallyClosed returns the NC contact: closed only when the relay has
// settled de-energized.
func (r *Relay) NormallyClosed() bool {
	return !r.contactsClosed
}

// Common reports whether the common terminal is connected to NO (true)
// or NC (false), reflecting only the settled state.
func (r *Relay) Common() bool {
	return r.contactsClosed
}

// Update settles the contacts once the switching time has elapsed.
func (r *Relay) Update(simTime, dt float64) {
	r.MarkUpdated(simTime)

	if !r.switching {
		// Catch coil changes made through the raw parameter surface.
		if r.contactsClosed != (r.Get(ParamEnergized) > 0) {
			r.switching = true
			r.switchStart = simTime
		}
		return
	}
	if simTime-r.switchStart >= r.Get(ParamSwitchingTime) {
		r.contactsClosed = r.Get(ParamEnergized) > 0
		r.switching = false
	}
}

// Reset restores the power-on state: de-energized, contacts open.
func (r *Relay) Reset() {
	r.ResetParams()
	r.contactsClosed = false
	r.switching = false
	r.switchStart = 0
}
