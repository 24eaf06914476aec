// Package home assembles devices, commands and a dispatcher from
// configuration.
package home

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"

	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/control/action"
	"github.com/ja-he/homecmd/internal/control/dispatch"
	"github.com/ja-he/homecmd/internal/device"
)

// ErrInvalidBinding is wrapped by all errors caused by invalid device or slot
// configuration.
var ErrInvalidBinding = errors.New("invalid binding")

// Home is a set of named devices and a dispatcher whose slots are bound to
// commands on them.
type Home struct {
	Devices    map[string]device.Device
	Dispatcher *dispatch.Dispatcher
}

// DeviceNames returns the names of all devices in order of name.
func (h *Home) DeviceNames() []string {
	names := make([]string, 0, len(h.Devices))
	for name := range h.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThermostatArgs are the args of thermostat operations.
// Delta applies to increase and decrease, Temperature to set.
type ThermostatArgs struct {
	Delta       int  `mapstructure:"delta"`
	Temperature *int `mapstructure:"temperature"`
}

// FromConfig constructs the devices and binds the configured slots.
// The history capacity is the configured one, unless overridden by
// historyOverride > 0.
func FromConfig(cfg config.Config, historyOverride int, logger zerolog.Logger, opts ...dispatch.Option) (*Home, error) {
	h := &Home{Devices: make(map[string]device.Device)}

	for _, d := range cfg.Devices {
		if _, exists := h.Devices[d.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate device name '%s'", ErrInvalidBinding, d.Name)
		}
		dev, err := newDevice(d, logger)
		if err != nil {
			return nil, err
		}
		h.Devices[d.Name] = dev
	}

	capacity := cfg.History
	if historyOverride > 0 {
		capacity = historyOverride
	}
	h.Dispatcher = dispatch.New(capacity, logger, opts...)

	for slot, spec := range cfg.Slots {
		a, err := h.Build(spec)
		if err != nil {
			return nil, fmt.Errorf("slot '%s': %w", slot, err)
		}
		h.Dispatcher.Assign(dispatch.Slot(slot), a)
	}

	return h, nil
}

func newDevice(d config.Device, logger zerolog.Logger) (device.Device, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: device of kind '%s' has no name", ErrInvalidBinding, d.Kind)
	}
	switch d.Kind {
	case device.KindLight:
		return device.NewLight(d.Name, logger), nil
	case device.KindDoor:
		return device.NewDoor(d.Name, logger), nil
	case device.KindThermostat:
		initial := device.DefaultTemperature
		if d.Initial != nil {
			initial = *d.Initial
		}
		return device.NewThermostat(d.Name, initial, logger), nil
	case device.KindAlarm:
		return device.NewAlarm(d.Name, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown device kind '%s'", ErrInvalidBinding, d.Kind)
	}
}

// Build constructs the action described by the given spec on this home's
// devices.
func (h *Home) Build(spec config.CommandSpec) (action.Action, error) {
	if spec.IsMacro() {
		members := make([]action.Action, 0, len(spec.Macro))
		for i, step := range spec.Macro {
			member, err := h.Build(step)
			if err != nil {
				return nil, fmt.Errorf("macro step %d: %w", i, err)
			}
			members = append(members, member)
		}
		composite := action.NewComposite(spec.Name, members...)
		if spec.Rollback {
			return action.RollbackOnFailure(composite), nil
		}
		return composite, nil
	}

	dev, ok := h.Devices[spec.Device]
	if !ok {
		return nil, fmt.Errorf("%w: no device named '%s'", ErrInvalidBinding, spec.Device)
	}
	op := strings.ToLower(spec.Op)

	switch dev := dev.(type) {
	case *device.Light:
		switch op {
		case "on":
			return device.LightOn(dev), nil
		case "off":
			return device.LightOff(dev), nil
		}
	case *device.Door:
		switch op {
		case "open":
			return device.DoorOpen(dev), nil
		case "close":
			return device.DoorClose(dev), nil
		}
	case *device.Thermostat:
		args, err := decodeThermostatArgs(spec.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBinding, err.Error())
		}
		switch op {
		case "increase":
			return device.ThermostatIncrease(dev, args.Delta), nil
		case "decrease":
			return device.ThermostatDecrease(dev, args.Delta), nil
		case "set":
			if args.Temperature == nil {
				return nil, fmt.Errorf("%w: set on '%s' needs a temperature", ErrInvalidBinding, spec.Device)
			}
			return device.ThermostatSet(dev, *args.Temperature), nil
		}
	case *device.Alarm:
		switch op {
		case "arm":
			return device.AlarmArm(dev), nil
		case "disarm":
			return device.AlarmDisarm(dev), nil
		}
	}

	return nil, fmt.Errorf("%w: %s '%s' has no operation '%s'", ErrInvalidBinding, dev.Kind(), spec.Device, spec.Op)
}

func decodeThermostatArgs(raw map[string]any) (ThermostatArgs, error) {
	args := ThermostatArgs{Delta: 1}
	if len(raw) == 0 {
		return args, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &args,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return args, err
	}
	if err := decoder.Decode(raw); err != nil {
		return args, fmt.Errorf("could not decode thermostat args: %w", err)
	}
	if args.Delta < 0 {
		return args, fmt.Errorf("negative thermostat delta %d", args.Delta)
	}
	return args, nil
}
