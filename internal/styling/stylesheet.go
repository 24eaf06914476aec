package styling

import (
	"fmt"

	"github.com/ja-he/homecmd/internal/config"
)

// Stylesheet represents all styles used by the remote for rendering.
type Stylesheet struct {
	Normal   DrawStyling
	TitleBox DrawStyling
	Status   DrawStyling
	Help     DrawStyling

	DeviceActive   DrawStyling
	DeviceInactive DrawStyling

	Thermostat TemperatureScale

	LogDefault        DrawStyling
	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	var err error
	stylesheet := Stylesheet{}

	for _, s := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, cfg.Normal},
		{"title-box", &stylesheet.TitleBox, cfg.TitleBox},
		{"status", &stylesheet.Status, cfg.Status},
		{"help", &stylesheet.Help, cfg.Help},
		{"device-active", &stylesheet.DeviceActive, cfg.DeviceActive},
		{"device-inactive", &stylesheet.DeviceInactive, cfg.DeviceInactive},
		{"log-default", &stylesheet.LogDefault, cfg.LogDefault},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, cfg.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, cfg.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, cfg.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, cfg.LogEntryTypeDebug},
	} {
		*s.target, err = StyleFromConfig(s.source)
		if err != nil {
			return nil, fmt.Errorf("stylesheet entry '%s': %w", s.name, err)
		}
	}

	stylesheet.Thermostat, err = NewTemperatureScale(cfg.ThermostatCold, cfg.ThermostatHot)
	if err != nil {
		return nil, fmt.Errorf("stylesheet thermostat scale: %w", err)
	}

	return &stylesheet, nil
}

// StyleFromConfig returns the styling defined by the given config styling.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}
	if cfg.Style != nil {
		style.bold = cfg.Style.Bold
		style.italic = cfg.Style.Italic
		style.underlined = cfg.Style.Underlined
	}
	return style, nil
}

// LogLevelStyle returns the styling for a log entry of the given level.
func (s *Stylesheet) LogLevelStyle(level string) DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return s.LogEntryTypeError
	case "warn":
		return s.LogEntryTypeWarn
	case "info":
		return s.LogEntryTypeInfo
	case "debug", "trace":
		return s.LogEntryTypeDebug
	default:
		return s.LogDefault
	}
}
