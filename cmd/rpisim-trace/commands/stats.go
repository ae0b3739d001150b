package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents   int
	EventsByKind  map[trace.Kind]int
	ByAddr        map[uint8]*AddrStats
	DroppedWrites int
	SimTimeRange  struct {
		Start float64
		End   float64
	}
}

// AddrStats holds statistics for a single bus address.
type AddrStats struct {
	Writes    int
	Reads     int
	BytesOut  int
	BytesIn   int
	FirstSeen float64
	LastSeen  float64
}

// Collect reads the whole trace file and aggregates statistics.
func Collect(path string) (*Stats, error) {
	reader, err := trace.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[trace.Kind]int),
		ByAddr:       make(map[uint8]*AddrStats),
	}

	first := true
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if first || event.SimTime < stats.SimTimeRange.Start {
			stats.SimTimeRange.Start = event.SimTime
		}
		if first || event.SimTime > stats.SimTimeRange.End {
			stats.SimTimeRange.End = event.SimTime
		}
		first = false

		// Tick summaries carry no address.
		if event.Kind == trace.KindTick {
			continue
		}

		as, ok := stats.ByAddr[event.Addr]
		if !ok {
			as = &AddrStats{FirstSeen: event.SimTime, LastSeen: event.SimTime}
			stats.ByAddr[event.Addr] = as
		}
		if event.SimTime < as.FirstSeen {
			as.FirstSeen = event.SimTime
		}
		if event.SimTime > as.LastSeen {
			as.LastSeen = event.SimTime
		}

		switch event.Kind {
		case trace.KindWrite:
			as.Writes++
			as.BytesOut += len(event.Data)
			if !event.OK {
				stats.DroppedWrites++
			}
		case trace.KindRead:
			as.Reads++
			as.BytesIn += len(event.Data)
		}
	}

	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Events:   %d (%d writes, %d reads, %d dropped)\n",
		stats.TotalEvents,
		stats.EventsByKind[trace.KindWrite],
		stats.EventsByKind[trace.KindRead],
		stats.DroppedWrites)
	fmt.Fprintf(w, "Sim time: %.4fs .. %.4fs\n", stats.SimTimeRange.Start, stats.SimTimeRange.End)

	addrs := make([]uint8, 0, len(stats.ByAddr))
	for a := range stats.ByAddr {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	for _, a := range addrs {
		as := stats.ByAddr[a]
		fmt.Fprintf(w, "0x%02X: %d writes (%d B out), %d reads (%d B in), active %.4fs..%.4fs\n",
			a, as.Writes, as.BytesOut, as.Reads, as.BytesIn, as.FirstSeen, as.LastSeen)
	}
	return nil
}
