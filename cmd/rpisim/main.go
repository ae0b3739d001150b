// Command rpisim runs a virtual peripheral simulator.
//
// It builds a set of simulated devices (actuators, sensors, displays)
// from a YAML project file, drives them on a fixed-timestep clock, and
// exposes an interactive console for poking at parameters and bus
// registers while the simulation runs.
//
// Usage:
//
//	rpisim [flags]
//
// Flags:
//
//	-config string       Project file path (YAML)
//	-dt float            Fixed timestep in simulated seconds (default 0.01)
//	-time-factor float   Playback speed relative to real time (default 1.0)
//	-trace string        Write bus traffic to a CBOR trace file
//	-log-level string    Log level: debug, info, warn, error (default "info")
//	-interactive         Start the interactive console (default true)
//
// Examples:
//
//	# Run the built-in demo project
//	rpisim
//
//	# Run a project at 10x speed with bus tracing
//	rpisim -config bench.yaml -time-factor 10 -trace run.strace
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/config"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/sim"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/trace"
)

var flags struct {
	configFile  string
	dt          float64
	timeFactor  float64
	traceFile   string
	logLevel    string
	interactive bool
}

func init() {
	flag.StringVar(&flags.configFile, "config", "", "Project file path (YAML)")
	flag.Float64Var(&flags.dt, "dt", 0.01, "Fixed timestep in simulated seconds")
	flag.Float64Var(&flags.timeFactor, "time-factor", 1.0, "Playback speed relative to real time")
	flag.StringVar(&flags.traceFile, "trace", "", "Write bus traffic to a CBOR trace file")
	flag.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&flags.interactive, "interactive", true, "Start the interactive console")
}

// defaultProject is used when no -config is given. It covers one
// device of each kind so the console has something to show.
const defaultProject = `
simulation:
  dt: 0.01
  time_factor: 1.0
devices:
  - name: led
    type: led
  - name: servo
    type: servo
  - name: env
    type: bme280
    address: 0x76
  - name: imu
    type: mpu6050
    address: 0x68
  - name: lcd
    type: hd44780
    address: 0x27
`

func newLogger(level string) zerolog.Logger {
	var lvl zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	).Level(lvl).With().Timestamp().Logger()
}

func main() {
	flag.Parse()

	logger := newLogger(flags.logLevel)

	var (
		project *config.Project
		err     error
	)
	if flags.configFile != "" {
		project, err = config.Load(flags.configFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", flags.configFile).Msg("failed to load project")
		}
	} else {
		project, err = config.Parse([]byte(defaultProject))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse built-in project")
		}
		logger.Info().Msg("no -config given, using built-in demo project")
	}

	dt := flags.dt
	if project.Simulation.DT > 0 {
		dt = project.Simulation.DT
	}
	timeFactor := flags.timeFactor
	if project.Simulation.TimeFactor > 0 {
		timeFactor = project.Simulation.TimeFactor
	}

	// The bus clock closes over the scheduler, which does not exist
	// until after Build. The indirection keeps construction ordered.
	var scheduler *sim.Scheduler
	registry, bus, err := project.Build(func() float64 {
		if scheduler == nil {
			return 0
		}
		return scheduler.SimTime()
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build project")
	}
	scheduler = sim.NewScheduler(registry, dt, timeFactor, logger)

	if flags.traceFile != "" {
		tracer, err := trace.NewFileLogger(flags.traceFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", flags.traceFile).Msg("failed to open trace file")
		}
		defer tracer.Close()
		bus.SetTracer(tracer)
		// One tick summary per simulated second keeps trace files
		// bounded at high tick rates.
		every := uint64(1.0 / dt)
		if every == 0 {
			every = 1
		}
		scheduler.OnTick(func(simTime float64, ticks uint64) {
			if ticks%every == 0 {
				tracer.TraceTick(simTime, ticks)
			}
		})
		logger.Info().Str("path", flags.traceFile).Msg("bus tracing enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info().Msg("shutting down")
		cancel()
	}()

	go scheduler.Run(ctx)

	if flags.interactive {
		console, err := newConsole(registry, bus, scheduler)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to start console")
		}
		console.Run(ctx, cancel)
	} else {
		<-ctx.Done()
	}

	fmt.Printf("simulated %.2fs in %d ticks\n", scheduler.SimTime(), scheduler.Ticks())
}
