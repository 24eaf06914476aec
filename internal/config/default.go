package config

// DefaultHistory is the default history capacity.
const DefaultHistory = 10

func intPtr(i int) *int { return &i }

// Default returns the default configuration with the default colorscheme for
// the given type (light or dark).
//
// The default home has a light, a door, a thermostat and an alarm, with slots
// 1 through 8 bound to their operations and slot 10 bound to a macro.
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		History: DefaultHistory,
		Devices: []Device{
			{Kind: "Light", Name: "LivingRoom"},
			{Kind: "Door", Name: "FrontDoor"},
			{Kind: "Thermostat", Name: "MainThermo", Initial: intPtr(22)},
			{Kind: "Alarm", Name: "HomeAlarm"},
		},
		Slots: map[string]CommandSpec{
			"1": {Device: "LivingRoom", Op: "on"},
			"2": {Device: "LivingRoom", Op: "off"},
			"3": {Device: "FrontDoor", Op: "open"},
			"4": {Device: "FrontDoor", Op: "close"},
			"5": {Device: "MainThermo", Op: "increase", Args: map[string]any{"delta": 2}},
			"6": {Device: "MainThermo", Op: "decrease", Args: map[string]any{"delta": 2}},
			"7": {Device: "HomeAlarm", Op: "arm"},
			"8": {Device: "HomeAlarm", Op: "disarm"},
			"10": {Macro: []CommandSpec{
				{Device: "LivingRoom", Op: "on"},
				{Device: "MainThermo", Op: "decrease", Args: map[string]any{"delta": 2}},
				{Device: "HomeAlarm", Op: "arm"},
			}},
		},
		Remote: Remote{
			Keys: map[string]string{
				"1": "1", "2": "2", "3": "3", "4": "4",
				"5": "5", "6": "6", "7": "7", "8": "8",
				"0": "10",
			},
			Undo:    "u",
			History: "h",
			Quit:    "q",
		},
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			TitleBox:          Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#e0e0e0", Style: &FontStyle{}},
			DeviceActive:      Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			DeviceInactive:    Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{}},
			ThermostatCold:    Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			ThermostatHot:     Styling{Fg: "#000000", Bg: "#ffaaaa", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		TitleBox:          Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		DeviceActive:      Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		DeviceInactive:    Styling{Fg: "#c0c0c0", Bg: "#202020", Style: &FontStyle{}},
		ThermostatCold:    Styling{Fg: "#ffffff", Bg: "#0067ab", Style: &FontStyle{}},
		ThermostatHot:     Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
	}
}
