package home_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/device"
	"github.com/ja-he/homecmd/internal/home"
	"github.com/ja-he/homecmd/internal/potatolog"
)

func TestFromDefaultConfig(t *testing.T) {
	logs := potatolog.NewMemoryLogReaderWriter()
	h, err := home.FromConfig(config.Default(config.Dark), 0, zerolog.New(logs))
	require.NoError(t, err)

	assert.Equal(t, []string{"FrontDoor", "HomeAlarm", "LivingRoom", "MainThermo"}, h.DeviceNames())
	assert.Equal(t, config.DefaultHistory, h.Dispatcher.Cap())
	assert.Len(t, h.Dispatcher.Slots(), 9)

	d := h.Dispatcher
	require.NoError(t, d.ExecuteSlot("1"))
	require.NoError(t, d.ExecuteSlot("5"))
	require.NoError(t, d.ExecuteSlot("3"))
	require.NoError(t, d.Undo())
	require.NoError(t, d.Undo())
	require.NoError(t, d.ExecuteSlot("10"))
	require.NoError(t, d.Undo())

	assert.Equal(t, []string{
		"LivingRoom: ON",
		"MainThermo: 24°C",
		"FrontDoor: OPEN",
		"FrontDoor: CLOSED",
		"MainThermo: 22°C",
		"LivingRoom: ON",
		"MainThermo: 20°C",
		"HomeAlarm: ARMED",
		"HomeAlarm: DISARMED",
		"MainThermo: 22°C",
		"LivingRoom: OFF",
	}, deviceMessages(logs))

	require.Len(t, d.History(), 1)
	assert.Equal(t, "LightOnCommand(LivingRoom)", d.History()[0].Explain)
}

func deviceMessages(logs *potatolog.MemoryLogReaderWriter) []string {
	var result []string
	for _, e := range logs.Get() {
		if _, ok := e["device"]; ok {
			result = append(result, e["message"].(string))
		}
	}
	return result
}

func TestHistoryOverride(t *testing.T) {
	h, err := home.FromConfig(config.Default(config.Dark), 2, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, h.Dispatcher.Cap())
}

func TestBuild(t *testing.T) {
	h, err := home.FromConfig(config.Config{
		Devices: []config.Device{
			{Kind: device.KindThermostat, Name: "T"},
			{Kind: device.KindLight, Name: "L"},
		},
	}, 0, zerolog.Nop())
	require.NoError(t, err)
	thermo := h.Devices["T"].(*device.Thermostat)
	assert.Equal(t, device.DefaultTemperature, thermo.Temperature())

	t.Run("args decoding", func(t *testing.T) {
		a, err := h.Build(config.CommandSpec{Device: "T", Op: "increase", Args: map[string]any{"delta": "3"}})
		require.NoError(t, err)
		require.NoError(t, a.Do())
		assert.Equal(t, 25, thermo.Temperature())
		require.NoError(t, a.Undo())

		a, err = h.Build(config.CommandSpec{Device: "T", Op: "Decrease"})
		require.NoError(t, err)
		assert.Equal(t, "ThermostatDecreaseCommand(T, 1)", a.Explain(), "delta defaults to 1")
	})

	t.Run("set", func(t *testing.T) {
		a, err := h.Build(config.CommandSpec{Device: "T", Op: "set", Args: map[string]any{"temperature": "19"}})
		require.NoError(t, err)
		assert.False(t, a.Undoable())
		assert.Equal(t, "ThermostatSetCommand(T, 19)", a.Explain())

		require.NoError(t, a.Do())
		assert.Equal(t, 19, thermo.Temperature())

		h.Dispatcher.Assign("set", a)
		require.NoError(t, h.Dispatcher.ExecuteSlot("set"))
		assert.Equal(t, 0, h.Dispatcher.Len(), "set is not recorded")

		require.NoError(t, device.ThermostatSet(thermo, device.DefaultTemperature).Do())
	})

	t.Run("nested macro with rollback", func(t *testing.T) {
		a, err := h.Build(config.CommandSpec{
			Name:     "outer",
			Rollback: true,
			Macro: []config.CommandSpec{
				{Device: "L", Op: "on"},
				{Macro: []config.CommandSpec{{Device: "T", Op: "increase"}}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "outer", a.Explain())
		assert.True(t, a.Undoable())
	})

	invalid := map[string]config.CommandSpec{
		"unknown device":  {Device: "X", Op: "on"},
		"unknown op":      {Device: "L", Op: "dim"},
		"bad args":        {Device: "T", Op: "increase", Args: map[string]any{"delta": "lots"}},
		"unused args":     {Device: "T", Op: "increase", Args: map[string]any{"speed": 1}},
		"negative delta":  {Device: "T", Op: "increase", Args: map[string]any{"delta": -1}},
		"set without arg": {Device: "T", Op: "set"},
		"bad macro step":  {Macro: []config.CommandSpec{{Device: "L", Op: "on"}, {Device: "L", Op: "blink"}}},
	}
	for name, spec := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := h.Build(spec)
			assert.ErrorIs(t, err, home.ErrInvalidBinding)
		})
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := map[string]config.Config{
		"unknown kind":   {Devices: []config.Device{{Kind: "Toaster", Name: "x"}}},
		"missing name":   {Devices: []config.Device{{Kind: device.KindLight}}},
		"duplicate name": {Devices: []config.Device{{Kind: device.KindLight, Name: "a"}, {Kind: device.KindDoor, Name: "a"}}},
		"bad slot":       {Slots: map[string]config.CommandSpec{"1": {Device: "nope", Op: "on"}}},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := home.FromConfig(cfg, 0, zerolog.Nop())
			assert.ErrorIs(t, err, home.ErrInvalidBinding)
		})
	}
}
