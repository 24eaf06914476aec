// Package tui provides the interactive remote control, a terminal UI which
// executes slots on key presses and shows device states, history and log.
package tui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/control/action"
	"github.com/ja-he/homecmd/internal/control/dispatch"
	"github.com/ja-he/homecmd/internal/device"
	"github.com/ja-he/homecmd/internal/home"
	"github.com/ja-he/homecmd/internal/input"
	"github.com/ja-he/homecmd/internal/potatolog"
	"github.com/ja-he/homecmd/internal/styling"
)

// Remote is the remote control UI for a home.
type Remote struct {
	screen *ScreenHandler
	home   *home.Home
	keys   *input.Tree
	logs   potatolog.LogReader
	styles *styling.Stylesheet

	status string
	quit   bool
}

// NewRemote returns a remote for the home, with keys bound as configured.
func NewRemote(
	screen *ScreenHandler,
	h *home.Home,
	keys config.Remote,
	logs potatolog.LogReader,
	styles *styling.Stylesheet,
) (*Remote, error) {
	r := &Remote{
		screen: screen,
		home:   h,
		logs:   logs,
		styles: styles,
		status: "ready",
	}

	mapping := map[input.Keyspec]action.Action{}
	for keyspec, slot := range keys.Keys {
		mapping[input.Keyspec(keyspec)] = r.slotAction(dispatch.Slot(slot))
	}
	controls := []struct {
		keyspec string
		action  action.Action
	}{
		{keys.Undo, action.NewSimple(func() string { return "undo" }, r.undo)},
		{keys.History, action.NewSimple(func() string { return "show history" }, r.showHistory)},
		{keys.Quit, action.NewSimple(func() string { return "quit" }, func() error { r.quit = true; return nil })},
	}
	for _, c := range controls {
		if c.keyspec == "" {
			continue
		}
		if _, taken := mapping[input.Keyspec(c.keyspec)]; taken {
			return nil, fmt.Errorf("key '%s' is bound twice", c.keyspec)
		}
		mapping[input.Keyspec(c.keyspec)] = c.action
	}

	tree, err := input.ConstructInputTree(mapping)
	if err != nil {
		return nil, fmt.Errorf("invalid remote key bindings: %w", err)
	}
	r.keys = tree

	return r, nil
}

func (r *Remote) slotAction(slot dispatch.Slot) action.Action {
	return action.NewSimple(
		func() string {
			if a, ok := r.home.Dispatcher.Lookup(slot); ok {
				return fmt.Sprintf("[%s] %s", slot, a.Explain())
			}
			return fmt.Sprintf("[%s] (unassigned)", slot)
		},
		func() error {
			err := r.home.Dispatcher.ExecuteSlot(slot)
			if err != nil {
				r.status = err.Error()
			} else {
				r.status = fmt.Sprintf("executed slot %s", slot)
			}
			return err
		},
	)
}

func (r *Remote) undo() error {
	err := r.home.Dispatcher.Undo()
	switch {
	case errors.Is(err, dispatch.ErrHistoryEmpty):
		r.status = "nothing to undo"
	case err != nil:
		r.status = err.Error()
	default:
		r.status = "undone"
	}
	return err
}

func (r *Remote) showHistory() error {
	r.status = fmt.Sprintf("%d entries in history", len(r.home.Dispatcher.ShowHistory()))
	return nil
}

// Status returns the status line text, i.E. the outcome of the last key
// action.
func (r *Remote) Status() string { return r.status }

// HandleEvent processes a single screen event.
// Returns whether the remote should quit.
func (r *Remote) HandleEvent(ev tcell.Event) (quit bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if !r.keys.ProcessInput(input.KeyFromEvent(e)) {
			r.status = fmt.Sprintf("no binding for '%s'", keyName(e))
		}
	case *tcell.EventResize:
		r.screen.NeedsSync()
	}
	return r.quit
}

func keyName(e *tcell.EventKey) string {
	if e.Key() == tcell.KeyRune {
		return string(e.Rune())
	}
	return e.Name()
}

// Run draws and handles events until quit.
func (r *Remote) Run() {
	for !r.quit {
		r.Draw()
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		r.HandleEvent(ev)
	}
}

// Draw renders the remote to the screen.
func (r *Remote) Draw() {
	w, h := r.screen.Dimensions()
	r.screen.Clear()
	r.screen.DrawBox(0, 0, w, h, r.styles.Normal)

	r.screen.DrawBox(0, 0, w, 1, r.styles.TitleBox)
	r.screen.DrawText(1, 0, w-2, r.styles.TitleBox, "homecmd remote")

	half := w / 2
	row := r.drawDevices(0, 2, half)
	r.drawHelp(0, row+1, half, h-row-3)

	row = r.drawHistory(half, 2, w-half)
	r.drawLog(half, row+1, w-half, h-row-3)

	r.screen.DrawBox(0, h-1, w, 1, r.styles.Status)
	r.screen.DrawText(1, h-1, w-2, r.styles.Status, r.status)

	r.screen.Show()
}

func (r *Remote) drawDevices(x, y, w int) int {
	r.screen.DrawText(x+1, y, w-2, r.styles.Normal.Bolded(), "Devices")
	y++
	for _, name := range r.home.DeviceNames() {
		dev := r.home.Devices[name]
		r.screen.DrawText(x+1, y, w-2, r.styles.Normal, fmt.Sprintf("%-12s %-10s", dev.Kind(), name))
		r.screen.DrawText(x+25, y, w-26, r.deviceStyle(dev), " "+dev.Status()+" ")
		y++
	}
	return y
}

func (r *Remote) deviceStyle(dev device.Device) styling.DrawStyling {
	var active bool
	switch d := dev.(type) {
	case *device.Light:
		active = d.IsOn()
	case *device.Door:
		active = d.IsOpen()
	case *device.Alarm:
		active = d.IsArmed()
	case *device.Thermostat:
		return r.styles.Thermostat.Style(d.Temperature())
	}
	if active {
		return r.styles.DeviceActive
	}
	return r.styles.DeviceInactive
}

func (r *Remote) drawHelp(x, y, w, h int) {
	r.screen.DrawText(x+1, y, w-2, r.styles.Normal.Bolded(), "Keys")
	help := r.keys.GetHelp()
	keyspecs := make([]string, 0, len(help))
	for k := range help {
		keyspecs = append(keyspecs, string(k))
	}
	sort.Strings(keyspecs)
	for i, k := range keyspecs {
		if i+1 >= h {
			return
		}
		r.screen.DrawText(x+1, y+1+i, w-2, r.styles.Help, fmt.Sprintf("%-6s %s", k, help[input.Keyspec(k)]))
	}
}

func (r *Remote) drawHistory(x, y, w int) int {
	d := r.home.Dispatcher
	entries := d.History()
	r.screen.DrawText(x+1, y, w-2, r.styles.Normal.Bolded(), fmt.Sprintf("History (%d/%d)", len(entries), d.Cap()))
	y++
	for _, e := range entries {
		r.screen.DrawText(x+1, y, w-2, r.styles.Normal, e.String())
		y++
	}
	return y
}

func (r *Remote) drawLog(x, y, w, h int) {
	r.screen.DrawText(x+1, y, w-2, r.styles.Normal.Bolded(), "Log")
	if h <= 1 {
		return
	}
	for i, entry := range r.logs.Tail(h - 1) {
		level, _ := entry["level"].(string)
		msg, _ := entry["message"].(string)
		r.screen.DrawText(x+1, y+1+i, 5, r.styles.LogLevelStyle(level), fmt.Sprintf("%-5s", level))
		r.screen.DrawText(x+7, y+1+i, w-8, r.styles.LogDefault, msg)
	}
}
