package commands

import (
	"fmt"
	"io"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

// RunFilter copies events matching the filter into a new trace file.
func RunFilter(path string, filter trace.Filter, output string) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := trace.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer logger.Close()

	var count int
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}

	fmt.Printf("Wrote %d events to %s\n", count, output)
	return nil
}
