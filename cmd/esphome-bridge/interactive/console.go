// Package interactive provides the interactive console of esphome-bridge.
// It stands in for the hub: typed commands become hub commands and hub
// events are printed as they arrive.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/igloo-home/esphome-go/pkg/bridge"
	"github.com/igloo-home/esphome-go/pkg/hub"
)

// ErrUsage is returned by ParseCommand for malformed input.
var ErrUsage = errors.New("usage")

// Bridge is the view of the bridge the console needs.
type Bridge interface {
	Devices() []bridge.DeviceStatus
}

// Console handles interactive mode for esphome-bridge.
type Console struct {
	bridge   Bridge
	commands chan<- hub.Command
	rl       *readline.Instance
}

// New creates a console that sends hub commands on commands.
func New(b Bridge, commands chan<- hub.Command) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "esphome> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{bridge: b, commands: commands, rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline prompt. Use it
// for log output so logs do not garble the input line.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run reads commands until quit, EOF or ctx ends. It calls cancel when the
// user leaves.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()
	out := c.rl.Stdout()

	printHelp(out)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		fields := strings.Fields(input)

		switch strings.ToLower(fields[0]) {
		case "help", "?":
			printHelp(out)

		case "devices", "list", "ls":
			PrintDevices(out, c.bridge.Devices())

		case "quit", "exit", "q":
			fmt.Fprintln(out, "Exiting...")
			cancel()
			return

		default:
			cmd, err := ParseCommand(fields)
			if err != nil {
				fmt.Fprintf(out, "%v (type 'help' for commands)\n", err)
				continue
			}
			select {
			case c.commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `
ESPHome Bridge Commands:
  Devices:
    add <address> [psk=<key>] [password=<pw>] [name=<name>]
                                   - Connect a new device
    created <name> <device-id>     - Assign an ID to a discovered device
    devices                        - List devices

  Control:
    write <device-id> <entity-index> <attr>...
                                   - Write attributes, e.g. switch=true dimmer=0.5

  General:
    help                           - Show this help
    quit                           - Exit bridge`)
}

// ParseCommand turns a console line, split into fields, into a hub command.
func ParseCommand(fields []string) (hub.Command, error) {
	if len(fields) == 0 {
		return hub.Command{}, fmt.Errorf("%w: empty command", ErrUsage)
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "add", "a":
		return parseAdd(args)

	case "created", "c":
		if len(args) != 2 {
			return hub.Command{}, fmt.Errorf("%w: created <name> <device-id>", ErrUsage)
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil || id == 0 {
			return hub.Command{}, fmt.Errorf("%w: device id must be a positive integer", ErrUsage)
		}
		return hub.DeviceCreated(args[0], id), nil

	case "write", "w":
		if len(args) < 3 {
			return hub.Command{}, fmt.Errorf("%w: write <device-id> <entity-index> <attr>...", ErrUsage)
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return hub.Command{}, fmt.Errorf("%w: invalid device id %q", ErrUsage, args[0])
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil || idx < 0 {
			return hub.Command{}, fmt.Errorf("%w: invalid entity index %q", ErrUsage, args[1])
		}
		attrs, err := hub.ParseAttributes(args[2:])
		if err != nil {
			return hub.Command{}, err
		}
		return hub.WriteAttributes(id, idx, attrs), nil
	}
	return hub.Command{}, fmt.Errorf("unknown command: %s", fields[0])
}

func parseAdd(args []string) (hub.Command, error) {
	if len(args) == 0 {
		return hub.Command{}, fmt.Errorf("%w: add <address> [psk=<key>] [password=<pw>] [name=<name>]", ErrUsage)
	}
	add := hub.AddDevice{Address: args[0]}
	for _, opt := range args[1:] {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return hub.Command{}, fmt.Errorf("%w: option %q needs a value", ErrUsage, opt)
		}
		switch strings.ToLower(key) {
		case "psk", "key":
			add.NoisePSK = value
		case "password":
			add.Password = value
		case "name":
			add.Name = value
		default:
			return hub.Command{}, fmt.Errorf("%w: unknown option %q", ErrUsage, key)
		}
	}
	return hub.NewAddDevice(add), nil
}

// PrintDevices writes a device table.
func PrintDevices(w io.Writer, devices []bridge.DeviceStatus) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices")
		return
	}
	fmt.Fprintf(w, "\nDevices (%d):\n", len(devices))
	fmt.Fprintln(w, "-------------------------------------------")
	for _, d := range devices {
		status := "disconnected"
		switch {
		case d.Parked:
			status = "awaiting id"
		case d.Connected:
			status = "connected"
		}
		id := "-"
		if d.ID != 0 {
			id = strconv.FormatUint(d.ID, 10)
		}
		fmt.Fprintf(w, "  ID: %s\n", id)
		if d.Name != "" {
			fmt.Fprintf(w, "      Name: %s\n", d.Name)
		}
		fmt.Fprintf(w, "      Address: %s\n", d.Address)
		fmt.Fprintf(w, "      Status: %s\n", status)
	}
}

// PrintEvent writes one hub event.
func PrintEvent(w io.Writer, ev hub.Event) {
	fmt.Fprintf(w, "[EVENT] %s\n", ev)
}
