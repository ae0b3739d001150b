package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSON shape of a trace event. Data is hex-encoded so
// exported lines stay greppable.
type jsonEvent struct {
	Timestamp string  `json:"timestamp"`
	SimTime   float64 `json:"sim_time"`
	Kind      string  `json:"kind"`
	Addr      string  `json:"addr"`
	Data      string  `json:"data,omitempty"`
	OK        bool    `json:"ok"`
}

func toJSONEvent(event trace.Event) jsonEvent {
	return jsonEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		SimTime:   event.SimTime,
		Kind:      event.Kind.String(),
		Addr:      fmt.Sprintf("0x%02X", event.Addr),
		Data:      hex.EncodeToString(event.Data),
		OK:        event.OK || event.Kind == trace.KindRead,
	}
}

func exportJSONL(reader *trace.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *trace.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "sim_time", "kind", "addr", "data", "ok"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := toJSONEvent(event)
		row := []string{
			je.Timestamp,
			fmt.Sprintf("%.6f", je.SimTime),
			je.Kind,
			je.Addr,
			je.Data,
			fmt.Sprintf("%t", je.OK),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
