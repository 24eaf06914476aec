// Package cli provides the command-line interface for homecmd.
package cli

// CommandLineOpts contains all commands and global flags, for `go-flags` to
// parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	RunCommand     RunCommand     `command:"run" description:"execute a sequence of slots, undos and history listings" subcommands-optional:"true"`
	DemoCommand    DemoCommand    `command:"demo" description:"run the smart home, beverage and chat demonstrations" subcommands-optional:"true"`
	RemoteCommand  RemoteCommand  `command:"remote" description:"interactive remote control" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

// Opts holds the parsed command line options.
var Opts CommandLineOpts
