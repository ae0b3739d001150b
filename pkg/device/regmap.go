package device

// RegisterMap emulates a real part's addressable control/status
// registers. Writes to read-only registers (chip IDs, status) are
// silently dropped, matching how the real silicon ignores them.
type RegisterMap struct {
	regs     map[uint8]byte
	readOnly map[uint8]bool
	defaults map[uint8]byte
}

// NewRegisterMap creates an empty register map.
func NewRegisterMap() *RegisterMap {
	return &RegisterMap{
		regs:     make(map[uint8]byte),
		readOnly: make(map[uint8]bool),
		defaults: make(map[uint8]byte),
	}
}

// Define declares a writable register with its power-on value.
func (m *RegisterMap) Define(addr uint8, def byte) {
	m.regs[addr] = def
	m.defaults[addr] = def
}

// DefineRO declares a read-only register with its fixed value.
func (m *RegisterMap) DefineRO(addr uint8, value byte) {
	m.regs[addr] = value
	m.defaults[addr] = value
	m.readOnly[addr] = true
}

// Write stores a value at addr. Unknown addresses and read-only
// registers are ignored; the return value reports whether the write
// took effect.
func (m *RegisterMap) Write(addr uint8, value byte) bool {
	if _, known := m.regs[addr]; !known || m.readOnly[addr] {
		return false
	}
	m.regs[addr] = value
	return true
}

// Set stores a value at addr regardless of access, creating the
// register if needed. Devices use it to publish measurement results.
func (m *RegisterMap) Set(addr uint8, value byte) {
	m.regs[addr] = value
}

// Read returns the value at addr, or 0 for unknown addresses.
func (m *RegisterMap) Read(addr uint8) byte {
	return m.regs[addr]
}

// Known reports whether addr is a defined register.
func (m *RegisterMap) Known(addr uint8) bool {
	_, ok := m.regs[addr]
	return ok
}

// Reset restores every defined register to its power-on value.
func (m *RegisterMap) Reset() {
	for addr, def := range m.defaults {
		m.regs[addr] = def
	}
	// Drop measurement registers created via Set.
	for addr := range m.regs {
		if _, ok := m.defaults[addr]; !ok {
			delete(m.regs, addr)
		}
	}
}
