package device

import (
	"fmt"

	"github.com/ja-he/homecmd/internal/control/action"
)

// infallible adapts a device operation, which cannot fail, to an action
// function.
func infallible(f func()) func() error {
	return func() error { f(); return nil }
}

func LightOn(l *Light) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("LightOnCommand(%s)", l.Name()), infallible(l.On), infallible(l.Off))
}

func LightOff(l *Light) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("LightOffCommand(%s)", l.Name()), infallible(l.Off), infallible(l.On))
}

func DoorOpen(d *Door) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("DoorOpenCommand(%s)", d.Name()), infallible(d.Open), infallible(d.Close))
}

func DoorClose(d *Door) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("DoorCloseCommand(%s)", d.Name()), infallible(d.Close), infallible(d.Open))
}

// ThermostatIncrease returns a command raising the temperature by delta (and
// lowering it by delta again on undo).
func ThermostatIncrease(t *Thermostat, delta int) *action.Reversible {
	return action.NewReversible(
		fmt.Sprintf("ThermostatIncreaseCommand(%s, %d)", t.Name(), delta),
		func() error { t.Increase(delta); return nil },
		func() error { t.Decrease(delta); return nil },
	)
}

// ThermostatDecrease returns a command lowering the temperature by delta (and
// raising it by delta again on undo).
func ThermostatDecrease(t *Thermostat, delta int) *action.Reversible {
	return action.NewReversible(
		fmt.Sprintf("ThermostatDecreaseCommand(%s, %d)", t.Name(), delta),
		func() error { t.Decrease(delta); return nil },
		func() error { t.Increase(delta); return nil },
	)
}

// ThermostatSet returns a command setting the temperature. It cannot be
// undone.
func ThermostatSet(t *Thermostat, temperature int) *action.Simple {
	return action.NewSimple(
		func() string { return fmt.Sprintf("ThermostatSetCommand(%s, %d)", t.Name(), temperature) },
		func() error { t.Set(temperature); return nil },
	)
}

func AlarmArm(a *Alarm) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("AlarmArmCommand(%s)", a.Name()), infallible(a.Arm), infallible(a.Disarm))
}

func AlarmDisarm(a *Alarm) *action.Reversible {
	return action.NewReversible(fmt.Sprintf("AlarmDisarmCommand(%s)", a.Name()), infallible(a.Disarm), infallible(a.Arm))
}
