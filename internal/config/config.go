package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${HOMECMD_HOME}/config.yaml'.
type Config struct {
	History    int                    `yaml:"history"`
	Devices    []Device               `yaml:"devices"`
	Slots      map[string]CommandSpec `yaml:"slots"`
	Remote     Remote                 `yaml:"remote"`
	Stylesheet Stylesheet             `yaml:"stylesheet"`
}

// A Device as defined in a config file.
// Initial is only meaningful for thermostats (the initial temperature).
type Device struct {
	Kind    string `yaml:"kind"`
	Name    string `yaml:"name"`
	Initial *int   `yaml:"initial,omitempty"`
}

// CommandSpec describes what a slot is bound to.
//
// It is either a single device operation (Device, Op and optionally Args),
// or a macro (Macro, optionally Name and Rollback), whose steps are again
// CommandSpecs.
//
// Example:
//
//	slots:
//	  "5":
//	    device: MainThermo
//	    op: increase
//	    args: { delta: 2 }
//	  "10":
//	    macro:
//	      - { device: LivingRoom, op: on }
//	      - { device: HomeAlarm, op: arm }
type CommandSpec struct {
	Device string         `yaml:"device,omitempty"`
	Op     string         `yaml:"op,omitempty"`
	Args   map[string]any `yaml:"args,omitempty"`

	Name     string        `yaml:"name,omitempty"`
	Macro    []CommandSpec `yaml:"macro,omitempty"`
	Rollback bool          `yaml:"rollback,omitempty"`
}

// IsMacro returns whether the spec describes a macro.
func (s CommandSpec) IsMacro() bool {
	return len(s.Macro) > 0 || (s.Device == "" && s.Op == "")
}

// Remote is the key configuration of the interactive remote.
// Keys maps keyspecs (e.g. "1", "<c-a>", "gl") to slots.
type Remote struct {
	Keys    map[string]string `yaml:"keys"`
	Undo    string            `yaml:"undo"`
	History string            `yaml:"history"`
	Quit    string            `yaml:"quit"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	TitleBox          Styling `yaml:"title-box"`
	Status            Styling `yaml:"status"`
	Help              Styling `yaml:"help"`
	DeviceActive      Styling `yaml:"device-active"`
	DeviceInactive    Styling `yaml:"device-inactive"`
	ThermostatCold    Styling `yaml:"thermostat-cold"`
	ThermostatHot     Styling `yaml:"thermostat-hot"`
	LogDefault        Styling `yaml:"log-default"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.History != 0 {
		result.History = augment.History
	}

	// slots refer to devices by name, so custom devices require custom slots
	if len(augment.Devices) > 0 {
		result.Devices = augment.Devices
		result.Slots = map[string]CommandSpec{}
	}
	if len(augment.Slots) > 0 {
		result.Slots = augment.Slots
	}

	result.Remote = base.Remote.augmentWith(augment.Remote)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Remote) augmentWith(augment Remote) Remote {
	result := base

	if len(augment.Keys) > 0 {
		result.Keys = augment.Keys
	}
	if augment.Undo != "" {
		result.Undo = augment.Undo
	}
	if augment.History != "" {
		result.History = augment.History
	}
	if augment.Quit != "" {
		result.Quit = augment.Quit
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.TitleBox.overwriteIfDefined(augment.TitleBox)
	result.Status.overwriteIfDefined(augment.Status)
	result.Help.overwriteIfDefined(augment.Help)
	result.DeviceActive.overwriteIfDefined(augment.DeviceActive)
	result.DeviceInactive.overwriteIfDefined(augment.DeviceInactive)
	result.ThermostatCold.overwriteIfDefined(augment.ThermostatCold)
	result.ThermostatHot.overwriteIfDefined(augment.ThermostatHot)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		if s.Style == nil {
			s.Style = &FontStyle{}
		}
		s.Style.Bold = augment.Style.Bold
		s.Style.Italic = augment.Style.Italic
		s.Style.Underlined = augment.Style.Underlined
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
