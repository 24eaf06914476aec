package styling

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/homecmd/internal/config"
)

// Bounds of the temperature scale in degrees Celsius; temperatures outside
// are styled like the respective bound.
const (
	ColdTemperature = 16
	HotTemperature  = 28
)

// TemperatureScale styles temperatures by blending between a cold and a hot
// styling.
type TemperatureScale struct {
	coldFg, coldBg colorful.Color
	hotFg, hotBg   colorful.Color
}

// NewTemperatureScale returns the scale between the given stylings.
func NewTemperatureScale(cold, hot config.Styling) (TemperatureScale, error) {
	c, err := StyleFromHex(cold.Fg, cold.Bg)
	if err != nil {
		return TemperatureScale{}, err
	}
	h, err := StyleFromHex(hot.Fg, hot.Bg)
	if err != nil {
		return TemperatureScale{}, err
	}
	return TemperatureScale{coldFg: c.fg, coldBg: c.bg, hotFg: h.fg, hotBg: h.bg}, nil
}

// Style returns the styling for the given temperature.
func (s TemperatureScale) Style(temperature int) DrawStyling {
	t := float64(temperature-ColdTemperature) / float64(HotTemperature-ColdTemperature)
	switch {
	case t <= 0:
		return StyleFromColors(s.coldFg, s.coldBg)
	case t >= 1:
		return StyleFromColors(s.hotFg, s.hotBg)
	}
	return StyleFromColors(
		s.coldFg.BlendLab(s.hotFg, t),
		s.coldBg.BlendLab(s.hotBg, t),
	)
}
