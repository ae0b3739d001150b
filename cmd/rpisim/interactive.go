package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/device"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/param"
	"github.com/Sherin-SEF-AI/RPi-Simulator-sub000/pkg/sim"
)

// Every device satisfies these through its embedded base; the console
// only needs the slices of behavior it actually touches.
type paramLister interface {
	Params() []*param.Param
}

type paramGetter interface {
	GetOK(name string) (float64, bool)
}

type paramSetter interface {
	Set(name string, value float64)
}

type faultInjector interface {
	InjectFault(kind device.FaultKind, probability float64)
	ClearFault()
}

// console handles interactive mode for rpisim.
type console struct {
	registry  *sim.Registry
	bus       *sim.Bus
	scheduler *sim.Scheduler
	rl        *readline.Instance
}

// newConsole creates the interactive command handler.
func newConsole(registry *sim.Registry, bus *sim.Bus, scheduler *sim.Scheduler) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rpisim> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &console{
		registry:  registry,
		bus:       bus,
		scheduler: scheduler,
		rl:        rl,
	}, nil
}

// Run starts the interactive command loop.
func (c *console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "devices", "ls":
			c.cmdDevices()

		case "get", "g":
			c.cmdGet(args)

		case "set", "s":
			c.cmdSet(args)

		case "read", "r":
			c.cmdRead(args)

		case "write", "w":
			c.cmdWrite(args)

		case "fault":
			c.cmdFault(args)

		case "clear-fault":
			c.cmdClearFault(args)

		case "reset":
			c.cmdReset(args)

		case "pause":
			c.scheduler.Pause()
			fmt.Fprintln(c.rl.Stdout(), "Paused.")

		case "resume":
			c.scheduler.Resume()
			fmt.Fprintln(c.rl.Stdout(), "Running.")

		case "step":
			c.cmdStep(args)

		case "status":
			c.cmdStatus()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
rpisim Commands:
  Devices:
    devices                      - List devices and their parameters
    get <device> [param]         - Read one parameter (or all)
    set <device> <param> <value> - Write a parameter (clamped to range)
    reset [device]               - Reset one device (or all)

  Bus:
    read <addr> <n>              - Read n bytes from a bus address
    write <addr> <byte>...       - Write a frame to a bus address
                                   (addresses and bytes in hex, e.g. 0x76)

  Faults:
    fault <device> <kind> <prob> - Inject a fault (timeout, bad_checksum,
                                   no_echo, false_echo) with probability
    clear-fault <device>         - Remove the injected fault

  Clock:
    pause                        - Freeze simulated time
    resume                       - Continue ticking
    step [n]                     - Execute n single ticks (default 1)
    status                       - Show clock and device summary

  General:
    help                         - Show this help
    quit                         - Exit`)
}

func (c *console) cmdDevices() {
	for _, d := range c.registry.List() {
		state := "enabled"
		if !d.Enabled() {
			state = "disabled"
		}
		fmt.Fprintf(c.rl.Stdout(), "%s (%s, %s)\n", d.Name(), d.Category(), state)

		if pa, ok := d.(paramLister); ok {
			for _, p := range pa.Params() {
				meta := p.Metadata()
				if min, max, bounded := p.Bounds(); bounded {
					fmt.Fprintf(c.rl.Stdout(), "  %-16s %g %s [%g..%g]\n", p.Name(), p.Get(), meta.Unit, min, max)
				} else {
					fmt.Fprintf(c.rl.Stdout(), "  %-16s %g %s\n", p.Name(), p.Get(), meta.Unit)
				}
			}
		}
		if kind, _ := faultInfo(d); kind != "" {
			fmt.Fprintf(c.rl.Stdout(), "  fault: %s\n", kind)
		}
	}
}

func (c *console) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: get <device> [param]")
		return
	}

	d, ok := c.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No such device: %s\n", args[0])
		return
	}

	if len(args) == 1 {
		if pl, ok := d.(paramLister); ok {
			for _, p := range pl.Params() {
				fmt.Fprintf(c.rl.Stdout(), "%s = %g %s\n", p.Name(), p.Get(), p.Metadata().Unit)
			}
		}
		return
	}

	if pa, ok := d.(paramGetter); ok {
		if v, found := pa.GetOK(args[1]); found {
			fmt.Fprintf(c.rl.Stdout(), "%s = %g\n", args[1], v)
			return
		}
	}
	fmt.Fprintf(c.rl.Stdout(), "No such parameter: %s\n", args[1])
}

func (c *console) cmdSet(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: set <device> <param> <value>")
		return
	}

	d, ok := c.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No such device: %s\n", args[0])
		return
	}

	value, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid value: %s\n", args[2])
		return
	}

	ps, ok := d.(paramSetter)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Device has no parameters: %s\n", args[0])
		return
	}
	ps.Set(args[1], value)

	// Echo the stored value so clamping is visible.
	if pg, ok := d.(paramGetter); ok {
		if v, found := pg.GetOK(args[1]); found {
			fmt.Fprintf(c.rl.Stdout(), "%s = %g\n", args[1], v)
		}
	}
}

func (c *console) cmdRead(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: read <addr> <n>")
		return
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %s\n", args[0])
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		fmt.Fprintf(c.rl.Stdout(), "Invalid byte count: %s\n", args[1])
		return
	}

	data := c.bus.Read(addr, n)
	if data == nil {
		fmt.Fprintf(c.rl.Stdout(), "No data from 0x%02X\n", addr)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "0x%02X -> % X\n", addr, data)
}

func (c *console) cmdWrite(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: write <addr> <byte>...")
		return
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %s\n", args[0])
		return
	}

	data := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		b, err := strconv.ParseUint(strings.TrimPrefix(a, "0x"), 16, 8)
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Invalid byte: %s\n", a)
			return
		}
		data = append(data, byte(b))
	}

	if c.bus.Write(addr, data) {
		fmt.Fprintf(c.rl.Stdout(), "0x%02X <- % X\n", addr, data)
	} else {
		fmt.Fprintf(c.rl.Stdout(), "Frame dropped at 0x%02X\n", addr)
	}
}

func (c *console) cmdFault(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: fault <device> <kind> <probability>")
		return
	}

	d, ok := c.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No such device: %s\n", args[0])
		return
	}

	prob, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid probability: %s\n", args[2])
		return
	}

	fi, ok := d.(faultInjector)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Device does not support faults: %s\n", args[0])
		return
	}
	fi.InjectFault(device.FaultKind(args[1]), prob)
	fmt.Fprintf(c.rl.Stdout(), "Fault %s injected into %s\n", args[1], args[0])
}

func (c *console) cmdClearFault(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: clear-fault <device>")
		return
	}

	d, ok := c.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No such device: %s\n", args[0])
		return
	}
	if fi, ok := d.(faultInjector); ok {
		fi.ClearFault()
		fmt.Fprintf(c.rl.Stdout(), "Fault cleared on %s\n", args[0])
	}
}

func (c *console) cmdReset(args []string) {
	if len(args) == 0 {
		c.registry.ResetAll()
		fmt.Fprintln(c.rl.Stdout(), "All devices reset.")
		return
	}

	d, ok := c.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No such device: %s\n", args[0])
		return
	}
	d.Reset()
	fmt.Fprintf(c.rl.Stdout(), "%s reset.\n", args[0])
}

func (c *console) cmdStep(args []string) {
	n := 1
	if len(args) == 1 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(c.rl.Stdout(), "Invalid step count: %s\n", args[0])
			return
		}
	}

	for i := 0; i < n; i++ {
		c.scheduler.Step()
	}
	fmt.Fprintf(c.rl.Stdout(), "t=%.4fs (tick %d)\n", c.scheduler.SimTime(), c.scheduler.Ticks())
}

func (c *console) cmdStatus() {
	state := "running"
	if c.scheduler.Paused() {
		state = "paused"
	}
	fmt.Fprintf(c.rl.Stdout(), "clock: %s, t=%.4fs, %d ticks\n",
		state, c.scheduler.SimTime(), c.scheduler.Ticks())
	fmt.Fprintf(c.rl.Stdout(), "devices: %d", c.registry.Len())
	if addrs := c.bus.Addresses(); len(addrs) > 0 {
		fmt.Fprint(c.rl.Stdout(), ", bus:")
		for _, a := range addrs {
			name, _ := c.bus.DeviceAt(a)
			fmt.Fprintf(c.rl.Stdout(), " 0x%02X=%s", a, name)
		}
	}
	fmt.Fprintln(c.rl.Stdout())
}

func parseAddr(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func faultInfo(d device.Device) (device.FaultKind, float64) {
	fs, ok := d.(interface{ FaultState() device.Fault })
	if !ok {
		return "", 0
	}
	f := fs.FaultState()
	if !f.Enabled {
		return "", 0
	}
	return f.Kind, f.Probability
}
