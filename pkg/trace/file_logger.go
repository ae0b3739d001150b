package trace

import (
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/sim"
)

// FileLogger writes bus transactions to a file in CBOR format.
// It satisfies sim.Tracer and is safe for concurrent use.
type FileLogger struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewFileLogger creates a FileLogger that writes to the specified path.
// If the file exists, new events are appended. The file is created with
// permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Log writes an event to the trace file.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Ignore encoding errors; tracing must not disrupt the simulation.
	_ = l.encoder.Encode(event)
}

// TraceWrite records a host-to-device frame.
func (l *FileLogger) TraceWrite(simTime float64, addr uint8, data []byte, ok bool) {
	l.Log(Event{
		Timestamp: time.Now(),
		SimTime:   simTime,
		Kind:      KindWrite,
		Addr:      addr,
		Data:      append([]byte(nil), data...),
		OK:        ok,
	})
}

// TraceRead records a device-to-host frame.
func (l *FileLogger) TraceRead(simTime float64, addr uint8, data []byte) {
	l.Log(Event{
		Timestamp: time.Now(),
		SimTime:   simTime,
		Kind:      KindRead,
		Addr:      addr,
		Data:      append([]byte(nil), data...),
	})
}

// TraceTick records a scheduler tick summary.
func (l *FileLogger) TraceTick(simTime float64, ticks uint64) {
	l.Log(Event{
		Timestamp: time.Now(),
		SimTime:   simTime,
		Kind:      KindTick,
		Ticks:     ticks,
	})
}

// Close closes the trace file. It is safe to call Close multiple times.
// After Close is called, subsequent events are silently dropped.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ sim.Tracer = (*FileLogger)(nil)
