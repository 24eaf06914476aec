package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ja-he/homecmd/internal/beverage"
	"github.com/ja-he/homecmd/internal/chat"
	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/control/dispatch"
	"github.com/ja-he/homecmd/internal/home"
)

// DemoCommand contains flags for the `demo` command line command, for
// `go-flags` to parse command line args into.
type DemoCommand struct {
	LogOpts
}

// Execute executes the demo command.
// (This gets called by `go-flags` when `demo` is provided on the command line)
func (command *DemoCommand) Execute(args []string) error {
	logger, closeLog, err := command.logger(zerolog.ConsoleWriter{Out: os.Stderr})
	if err != nil {
		return err
	}
	defer closeLog()

	return runDemo(os.Stdin, os.Stdout, logger)
}

// runDemo runs the remote control, beverage and chat demonstrations against
// the default home. Answers to prompts are read from in.
func runDemo(in io.Reader, out io.Writer, logger zerolog.Logger) error {
	prompter := beverage.NewPrompter(in, out)

	fmt.Fprintln(out, "=== remote control ===")
	h, err := home.FromConfig(config.Default(config.Dark), 0, logger)
	if err != nil {
		return err
	}
	demoRemote(h.Dispatcher, prompter)

	fmt.Fprintln(out, "=== beverages ===")
	for _, r := range []beverage.Recipe{beverage.Tea{Prompter: prompter}, beverage.Coffee{Prompter: prompter}} {
		beverage.Prepare(r, logger)
	}

	fmt.Fprintln(out, "=== chat ===")
	demoChat(logger)

	return nil
}

func demoRemote(d *dispatch.Dispatcher, prompter *beverage.Prompter) {
	for _, slot := range []dispatch.Slot{"1", "5", "3"} {
		d.ExecuteSlot(slot)
	}
	d.Undo()
	d.Undo()

	d.ExecuteSlot("10")
	d.Undo()

	d.ShowHistory()

	for d.Len() > 0 && prompter.Confirm("Undo more?") {
		d.Undo()
	}
}

func demoChat(logger zerolog.Logger) {
	mediator := chat.NewRoomMediator()

	alice := chat.NewUser("Alice", mediator, logger)
	bob := chat.NewUser("Bob", mediator, logger)
	ann := chat.NewUser("Ann", mediator, logger)

	alice.Join("general")
	bob.Join("general")
	ann.Join("random")

	alice.SendToRoom("general", "Hello everyone!")
	bob.SendToRoom("general", "Hi Alice!")

	alice.SendPrivate(bob, "Hi! This is a private message.")

	if err := bob.SendToRoom("random", "Am I in random?"); errors.Is(err, chat.ErrNotMember) {
		logger.Warn().Err(err).Msg("Bob can't send to random")
	}

	ann.Join("general")
	ann.SendToRoom("general", "Now I'm here too.")

	bob.Leave("general")
	alice.SendToRoom("general", "Bob left?")

	logger.Info().Strs("rooms", mediator.ListRooms()).Msg("rooms")
}
