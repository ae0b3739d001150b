package trace

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	want := Event{
		Timestamp: time.Now().Truncate(time.Microsecond),
		SimTime:   1.25,
		Kind:      KindWrite,
		Addr:      0x76,
		Data:      []byte{0xF4, 0x27},
		OK:        true,
	}

	data, err := EncodeEvent(want)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if got.SimTime != want.SimTime || got.Kind != want.Kind || got.Addr != want.Addr || got.OK != want.OK {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
	if !bytes.Equal(got.Data, want.Data) {
		t.Errorf("data mismatch: got %v, want %v", got.Data, want.Data)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp mismatch: got %v, want %v", got.Timestamp, want.Timestamp)
	}
}

func TestKindString(t *testing.T) {
	if KindWrite.String() != "WRITE" || KindRead.String() != "READ" || KindTick.String() != "TICK" {
		t.Error("unexpected kind names")
	}
	if Kind(9).String() != "UNKNOWN" {
		t.Error("expected UNKNOWN for out-of-range kind")
	}
}

func TestTickSummaryRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.strace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.TraceTick(1.0, 100)
	logger.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if ev.Kind != KindTick || ev.SimTime != 1.0 || ev.Ticks != 100 {
		t.Errorf("unexpected tick event %+v", ev)
	}
}

func TestFileLoggerWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.strace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.TraceWrite(0.5, 0x27, []byte{0x04, 0x84}, true)
	logger.TraceRead(0.6, 0x68, []byte{0x08, 0x00})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatal("expected non-empty trace file")
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if first.Kind != KindWrite || first.Addr != 0x27 || !first.OK {
		t.Errorf("unexpected first event %+v", first)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if second.Kind != KindRead || second.Addr != 0x68 || second.SimTime != 0.6 {
		t.Errorf("unexpected second event %+v", second)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestFileLoggerClosedDropsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.strace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Double close is a no-op.
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	logger.TraceWrite(1.0, 0x10, []byte{0x01}, true)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Error("expected events after Close to be dropped")
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.strace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.TraceWrite(0.1, 0x27, []byte{0x01}, true)
	logger.TraceRead(0.2, 0x76, []byte{0x02})
	logger.TraceWrite(0.3, 0x76, []byte{0x03}, true)
	logger.TraceWrite(5.0, 0x27, []byte{0x04}, false)
	logger.Close()

	t.Run("by address", func(t *testing.T) {
		addr := uint8(0x76)
		r, err := NewFilteredReader(path, Filter{Addr: &addr})
		if err != nil {
			t.Fatal(err)
		}
		defer r.Close()

		var count int
		for {
			ev, err := r.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
			if ev.Addr != 0x76 {
				t.Errorf("filter leaked address 0x%02X", ev.Addr)
			}
			count++
		}
		if count != 2 {
			t.Errorf("expected 2 events at 0x76, got %d", count)
		}
	})

	t.Run("by kind and time window", func(t *testing.T) {
		kind := KindWrite
		start, end := 0.0, 1.0
		r, err := NewFilteredReader(path, Filter{Kind: &kind, SimStart: &start, SimEnd: &end})
		if err != nil {
			t.Fatal(err)
		}
		defer r.Close()

		var count int
		for {
			ev, err := r.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
			if ev.Kind != KindWrite || ev.SimTime >= 1.0 {
				t.Errorf("filter leaked event %+v", ev)
			}
			count++
		}
		if count != 2 {
			t.Errorf("expected 2 writes before t=1.0, got %d", count)
		}
	})
}
