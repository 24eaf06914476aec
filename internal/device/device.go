// Package device contains the controllable targets of a home: lights, doors,
// thermostats and alarms.
//
// Each device exposes paired forward and reverse operations, and each
// operation emits exactly one status record describing the new state.
// Devices are shared by reference between all commands that target them.
package device

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Device is the read-only view on a device, e.g. for status displays.
type Device interface {
	Kind() string
	Name() string
	Status() string
}

// Kinds of devices, as used in configuration and status records.
const (
	KindLight      = "Light"
	KindDoor       = "Door"
	KindThermostat = "Thermostat"
	KindAlarm      = "Alarm"
)

// DefaultTemperature is the temperature a thermostat starts at unless
// configured otherwise.
const DefaultTemperature = 22

// base carries what all devices share.
type base struct {
	name string
	log  zerolog.Logger
}

func newBase(kind, name string, logger zerolog.Logger) base {
	return base{
		name: name,
		log:  logger.With().Str("device", kind).Str("name", name).Logger(),
	}
}

func (b *base) Name() string { return b.name }

func (b *base) report(state string) {
	b.log.Info().Str("state", state).Msgf("%s: %s", b.name, state)
}

// Light can be switched on and off.
type Light struct {
	base
	on bool
}

// NewLight returns a new light, initially off.
func NewLight(name string, logger zerolog.Logger) *Light {
	return &Light{base: newBase(KindLight, name, logger)}
}

// On switches the light on.
func (l *Light) On() { l.on = true; l.report(l.Status()) }

// Off switches the light off.
func (l *Light) Off() { l.on = false; l.report(l.Status()) }

// IsOn reports whether the light is on.
func (l *Light) IsOn() bool { return l.on }

func (l *Light) Kind() string { return KindLight }

func (l *Light) Status() string {
	if l.on {
		return "ON"
	}
	return "OFF"
}

// Door can be opened and closed.
type Door struct {
	base
	open bool
}

// NewDoor returns a new door, initially closed.
func NewDoor(name string, logger zerolog.Logger) *Door {
	return &Door{base: newBase(KindDoor, name, logger)}
}

// Open opens the door.
func (d *Door) Open() { d.open = true; d.report(d.Status()) }

// Close closes the door.
func (d *Door) Close() { d.open = false; d.report(d.Status()) }

// IsOpen reports whether the door is open.
func (d *Door) IsOpen() bool { return d.open }

func (d *Door) Kind() string { return KindDoor }

func (d *Door) Status() string {
	if d.open {
		return "OPEN"
	}
	return "CLOSED"
}

// Thermostat holds a target temperature in degrees Celsius.
type Thermostat struct {
	base
	temperature int
}

// NewThermostat returns a new thermostat set to the given initial temperature.
func NewThermostat(name string, initial int, logger zerolog.Logger) *Thermostat {
	return &Thermostat{base: newBase(KindThermostat, name, logger), temperature: initial}
}

// Increase raises the temperature by delta.
func (t *Thermostat) Increase(delta int) { t.temperature += delta; t.report(t.Status()) }

// Decrease lowers the temperature by delta.
func (t *Thermostat) Decrease(delta int) { t.temperature -= delta; t.report(t.Status()) }

// Set sets the temperature.
// Set has no inverse, the previous temperature is lost.
func (t *Thermostat) Set(temperature int) {
	t.temperature = temperature
	t.report("set to " + t.Status())
}

// Temperature returns the current temperature.
func (t *Thermostat) Temperature() int { return t.temperature }

func (t *Thermostat) Kind() string { return KindThermostat }

func (t *Thermostat) Status() string { return fmt.Sprintf("%d°C", t.temperature) }

// Alarm can be armed and disarmed.
type Alarm struct {
	base
	armed bool
}

// NewAlarm returns a new alarm, initially disarmed.
func NewAlarm(name string, logger zerolog.Logger) *Alarm {
	return &Alarm{base: newBase(KindAlarm, name, logger)}
}

// Arm arms the alarm.
func (a *Alarm) Arm() { a.armed = true; a.report(a.Status()) }

// Disarm disarms the alarm.
func (a *Alarm) Disarm() { a.armed = false; a.report(a.Status()) }

// IsArmed reports whether the alarm is armed.
func (a *Alarm) IsArmed() bool { return a.armed }

func (a *Alarm) Kind() string { return KindAlarm }

func (a *Alarm) Status() string {
	if a.armed {
		return "ARMED"
	}
	return "DISARMED"
}
