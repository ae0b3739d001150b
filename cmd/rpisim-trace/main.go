// Command rpisim-trace is a tool for viewing and analyzing simulator
// bus trace files.
//
// Trace files are created by running rpisim with the -trace flag.
//
// Usage:
//
//	rpisim-trace <command> [flags] <file.strace>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	rpisim-trace view run.strace
//
//	# View only writes to the LCD
//	rpisim-trace view -kind write -addr 0x27 run.strace
//
//	# Export to JSONL
//	rpisim-trace export -format jsonl run.strace
//
//	# Keep only the first simulated second
//	rpisim-trace filter -until 1.0 -o warmup.strace run.strace
//
//	# Show statistics
//	rpisim-trace stats run.strace
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/cmd/rpisim-trace/commands"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

const usage = `rpisim-trace - Simulator Bus Trace Analyzer

Usage:
  rpisim-trace <command> [flags] <file.strace>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "rpisim-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the shared filter flags on fs and returns a
// builder that resolves them into a trace.Filter after parsing.
func filterFlags(fs *flag.FlagSet) func() (trace.Filter, error) {
	kind := fs.String("kind", "", "Filter by kind (write, read)")
	addr := fs.String("addr", "", "Filter by bus address (hex, e.g. 0x76)")
	since := fs.Float64("since", -1, "Keep events at or after this simulated time")
	until := fs.Float64("until", -1, "Keep events before this simulated time")

	return func() (trace.Filter, error) {
		var filter trace.Filter
		if *kind != "" {
			k, err := commands.ParseKindFlag(*kind)
			if err != nil {
				return filter, err
			}
			filter.Kind = &k
		}
		if *addr != "" {
			v, err := strconv.ParseUint(strings.TrimPrefix(*addr, "0x"), 16, 8)
			if err != nil {
				return filter, fmt.Errorf("invalid address: %s", *addr)
			}
			a := uint8(v)
			filter.Addr = &a
		}
		if *since >= 0 {
			filter.SimStart = since
		}
		if *until >= 0 {
			filter.SimEnd = until
		}
		return filter, nil
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	build := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	filter, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	build := filterFlags(fs)
	output := fs.String("o", "", "Output file (required)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: trace file path and -o output required")
		os.Exit(1)
	}

	filter, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunFilter(fs.Arg(0), filter, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
