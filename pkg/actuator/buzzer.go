package actuator

import (
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
)

// Buzzer parameter names.
const (
	ParamBuzzerFrequency = "frequency"
	ParamBuzzerActive    = "active"
)

// noteFrequencies maps note names to their frequencies in Hz
// (equal temperament, A4 = 440 Hz).
var noteFrequencies = map[string]float64{
	"C3": 130.81, "D3": 146.83, "E3": 164.81, "F3": 174.61,
	"G3": 196.00, "A3": 220.00, "B3": 246.94,
	"C4": 261.63, "D4": 293.66, "E4": 329.63, "F4": 349.23,
	"G4": 392.00, "A4": 440.00, "B4": 493.88,
	"C5": 523.25, "D5": 587.33, "E5": 659.25, "F5": 698.46,
	"G5": 783.99, "A5": 880.00, "B5": 987.77,
	"C6": 1046.50,
}

// Note is one entry of a melody.
type Note struct {
	// Name is the note name (e.g., "A4"); an empty name is a rest.
	Name string

	// Duration is the nominal length in seconds. The buzzer stores it
	// for the caller; it does not schedule the stop itself.
	Duration float64
}

// Buzzer is a piezo buzzer. It only models tone state: starting and
// stopping tones on time is the caller's (scheduler's) responsibility.
type Buzzer struct {
	*device.Base

	melody   []Note
	position int
}

// NewBuzzer creates a buzzer, silent.
func NewBuzzer(name string) *Buzzer {
	b := &Buzzer{Base: device.NewBase(name, device.CategoryActuator)}
	b.AddParam(param.Bounded(ParamBuzzerFrequency, 0, 0, 20000, "Hz", "tone frequency"))
	b.AddParam(param.Bounded(ParamBuzzerActive, 0, 0, 1, "", "tone playing"))
	return b
}

// Beep starts a tone at the given frequency. The duration is accepted
// for the caller's bookkeeping; the tone plays until Stop.
func (b *Buzzer) Beep(frequency, duration float64) {
	b.Set(ParamBuzzerFrequency, frequency)
	b.Set(ParamBuzzerActive, 1)
}

// PlayNote starts a tone for a named note. Unknown note names are
// ignored and reported via the return value.
func (b *Buzzer) PlayNote(name string, duration float64) bool {
	freq, ok := noteFrequencies[name]
	if !ok {
		return false
	}
	b.Beep(freq, duration)
	return true
}

// PlayMelody loads a melody and starts its first note. The caller
// advances through it with NextNote at the pace it chooses.
func (b *Buzzer) PlayMelody(notes []Note) {
	b.melody = append([]Note(nil), notes...)
	b.position = 0
	b.startCurrent()
}

// NextNote advances to the next note of the loaded melody. It returns
// false once the melody is exhausted, leaving the buzzer silent.
func (b *Buzzer) NextNote() bool {
	if b.position+1 >= len(b.melody) {
		b.melody = nil
		b.position = 0
		b.Stop()
		return false
	}
	b.position++
	b.startCurrent()
	return true
}

func (b *Buzzer) startCurrent() {
	if b.position >= len(b.melody) {
		return
	}
	note := b.melody[b.position]
	if note.Name == "" {
		b.Stop()
		return
	}
	b.PlayNote(note.Name, note.Duration)
}

// Stop silences the buzzer.
func (b *Buzzer) Stop() {
	b.Set(ParamBuzzerActive, 0)
}

// Active reports whether a tone is playing.
func (b *Buzzer) Active() bool {
	return b.Get(ParamBuzzerActive) > 0
}

// Frequency returns the current tone frequency in Hz.
func (b *Buzzer) Frequency() float64 {
	return b.Get(ParamBuzzerFrequency)
}

// Update records the tick. Tone timing is external.
func (b *Buzzer) Update(simTime, dt float64) {
	b.MarkUpdated(simTime)
}

// Reset restores the power-on state: silent, no melody loaded.
func (b *Buzzer) Reset() {
	b.ResetParams()
	b.melody = nil
	b.position = 0
}
