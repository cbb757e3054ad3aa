package setup

import (
	"errors"

	"github.com/spf13/pflag"
)

var errTooManyArguments = errors.New("too many arguments: expected at most one config path")

// Options holds the parsed admin-setup command line.
type Options struct {
	// ConfigPath is the JSON config file of the deployed server.
	ConfigPath string
	// Password skips the interactive prompt when set.
	Password string
	// NoPause disables the final "press any key" wait.
	NoPause bool
}

// ParseArgs parses `[config-path] [--password P] [--no-pause]`.
func ParseArgs(args []string) (Options, error) {
	var opts Options

	fs := pflag.NewFlagSet("admin-setup", pflag.ContinueOnError)
	fs.StringVar(&opts.Password, "password", "", "new password of the admin user (prompted when empty)")
	fs.BoolVar(&opts.NoPause, "no-pause", false, "exit without waiting for a key press")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.ConfigPath = fs.Arg(0)
	default:
		return Options{}, errTooManyArguments
	}

	return opts, nil
}
