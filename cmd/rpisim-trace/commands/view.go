// Package commands implements the rpisim-trace CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

// ParseKindFlag converts a -kind flag value to a trace.Kind.
func ParseKindFlag(s string) (trace.Kind, error) {
	switch s {
	case "write":
		return trace.KindWrite, nil
	case "read":
		return trace.KindRead, nil
	case "tick":
		return trace.KindTick, nil
	default:
		return 0, fmt.Errorf("unknown kind: %s (supported: write, read, tick)", s)
	}
}

// RunView prints the trace file in human-readable form.
func RunView(path string, filter trace.Filter, w io.Writer) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	if event.Kind == trace.KindTick {
		fmt.Fprintf(w, "%s t=%.4fs TICK  #%d\n\n", ts, event.SimTime, event.Ticks)
		return
	}

	status := ""
	if event.Kind == trace.KindWrite && !event.OK {
		status = " DROPPED"
	}

	fmt.Fprintf(w, "%s t=%.4fs %-5s 0x%02X%s\n", ts, event.SimTime, event.Kind, event.Addr, status)
	if len(event.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s (%d bytes)\n", hex.EncodeToString(event.Data), len(event.Data))
	}
	fmt.Fprintln(w)
}
