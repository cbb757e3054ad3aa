package client

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-forms-auth/internal/config"
)

// TokenEnv names the variable holding the session token of earlier logins.
const TokenEnv = "FORMS_AUTH_TOKEN"

const defaultServerAddress = "localhost:8080"

var errMissingCommand = errors.New("missing command")

// Options holds the global flags. Command is the first positional argument
// and Args everything after it.
type Options struct {
	Server  config.Server
	Token   string
	Command string
	Args    []string
}

// ParseArgs parses `[global flags] <command> [command args]`. getenv
// supplies the default of --token.
func ParseArgs(args []string, getenv func(string) string) (Options, error) {
	var opts Options

	fs := pflag.NewFlagSet("forms-auth-client", pflag.ContinueOnError)
	// flags after the command name belong to the command
	fs.SetInterspersed(false)
	fs.StringVarP(&opts.Server.HTTPAddress, "server", "s", defaultServerAddress, "server address [scheme://]host:port")
	fs.StringVar(&opts.Server.BaseRoute, "base-route", config.DefaultBaseRoute, "path prefix of the authentication API")
	fs.DurationVar(&opts.Server.RequestTimeout, "timeout", config.DefaultRequestTimeout, "request timeout")
	fs.StringVar(&opts.Token, "token", getenv(TokenEnv), "session token (env "+TokenEnv+")")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() == 0 {
		return Options{}, errMissingCommand
	}

	opts.Command = fs.Arg(0)
	opts.Args = fs.Args()[1:]
	return opts, nil
}
