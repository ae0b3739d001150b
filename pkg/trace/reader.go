package trace

import (
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering trace events.
// Nil fields match all events for that criterion.
type Filter struct {
	// Kind filters by transaction direction.
	Kind *Kind

	// Addr filters by bus address.
	Addr *uint8

	// SimStart filters events at or after this simulated time.
	SimStart *float64

	// SimEnd filters events before this simulated time.
	SimEnd *float64
}

// matches returns true if the event matches all filter criteria.
func (f *Filter) matches(event Event) bool {
	if f.Kind != nil && event.Kind != *f.Kind {
		return false
	}
	if f.Addr != nil && event.Addr != *f.Addr {
		return false
	}
	if f.SimStart != nil && event.SimTime < *f.SimStart {
		return false
	}
	if f.SimEnd != nil && event.SimTime >= *f.SimEnd {
		return false
	}
	return true
}

// Reader reads trace events from a CBOR-encoded file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all events from the specified file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads events matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
