package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-forms-auth/internal/adapter"
	"github.com/MKhiriev/go-forms-auth/internal/client"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/setup"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := client.ParseArgs(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: client [--server addr] [--base-route r] [--timeout d] [--token t] <command>")
		fmt.Fprintln(os.Stderr, client.Usage())
		return 2
	}

	log := logger.NewLoggerTo("forms-auth-client", os.Stderr, zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth, err := adapter.NewHTTPAuthClient(opts.Server, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 1
	}
	auth.SetToken(opts.Token)

	passwords := func(ctx context.Context, userName string) (string, error) {
		return setup.NewPasswordPrompt(os.Stdin, os.Stderr, userName).ReadPassword(ctx)
	}

	if err = client.New(auth, passwords, os.Stdout).Run(ctx, opts.Command, opts.Args); err != nil {
		var respErr *adapter.ResponseError
		if errors.As(err, &respErr) && respErr.UserMessage != "" {
			fmt.Fprintln(os.Stderr, "ERROR:", respErr.UserMessage)
		} else {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		return 1
	}
	return 0
}
