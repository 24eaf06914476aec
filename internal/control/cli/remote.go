package cli

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/home"
	"github.com/ja-he/homecmd/internal/potatolog"
	"github.com/ja-he/homecmd/internal/styling"
	"github.com/ja-he/homecmd/internal/tui"
)

// RemoteCommand contains flags for the `remote` command line command, for
// `go-flags` to parse command line args into.
type RemoteCommand struct {
	Theme   string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	History int    `short:"H" long:"history" description:"history capacity (overrides config)" value-name:"<n>"`

	LogOpts
}

// Execute executes the remote command.
// (This gets called by `go-flags` when `remote` is provided on the command
// line)
func (command *RemoteCommand) Execute(args []string) error {
	theme := config.Dark
	if command.Theme == "light" {
		theme = config.Light
	}

	cfg, err := loadConfig(theme)
	if err != nil {
		return err
	}

	// the terminal belongs to the remote, so logs only go to memory (shown in
	// the log pane) and the optional file
	logger, closeLog, err := command.logger(&potatolog.GlobalMemoryLogReaderWriter)
	if err != nil {
		return err
	}
	defer closeLog()

	h, err := home.FromConfig(cfg, command.History, logger)
	if err != nil {
		return err
	}

	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	screenHandler, err := tui.NewScreenHandler(screen)
	if err != nil {
		return err
	}
	defer screenHandler.Fini()

	remote, err := tui.NewRemote(screenHandler, h, cfg.Remote, &potatolog.GlobalMemoryLogReaderWriter, stylesheet)
	if err != nil {
		return err
	}

	// logs from here on would garble the screen
	log.Logger = logger

	remote.Run()
	return nil
}
