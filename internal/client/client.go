// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-forms-auth/internal/adapter"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrLoginFailed       = errors.New("login failed: wrong user name or password, or the account is locked")
	ErrPasswordUnchanged = errors.New("password not changed: wrong old password or the account is locked")
	ErrResetRejected     = errors.New("password not reset: invalid or expired token")
)

// PasswordReader asks for the new password of userName.
type PasswordReader func(ctx context.Context, userName string) (string, error)

// App runs one client command against the server.
type App struct {
	auth      adapter.AuthClient
	passwords PasswordReader
	out       io.Writer
}

func New(auth adapter.AuthClient, passwords PasswordReader, out io.Writer) *App {
	return &App{auth: auth, passwords: passwords, out: out}
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"login":                {"login <user> [--password P] [--remember]", (*App).login},
	"logout":               {"logout", (*App).logout},
	"set-password":         {"set-password <user> [--password P] [--ignore-policy]", (*App).setPassword},
	"change-password":      {"change-password --old-password P --new-password P", (*App).changePassword},
	"unlock":               {"unlock <user>", (*App).unlock},
	"generate-reset-token": {"generate-reset-token <user>", (*App).generateResetToken},
	"send-reset-token":     {"send-reset-token <user> [--info key=value,...]", (*App).sendResetToken},
	"reset-password":       {"reset-password <user> <token> [--password P]", (*App).resetPassword},
	"version":              {"version", (*App).version},
}

// Usage lists the commands, one per line.
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		lines = append(lines, "  "+cmd.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Run executes the named command with its arguments.
func (a *App) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd.run(a, ctx, args)
}

// ── Commands ──

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	password := fs.String("password", "", "password")
	remember := fs.Bool("remember", false, "persistent session cookie")
	userName, err := parseOne(fs, args, "user")
	if err != nil {
		return err
	}

	ok, err := a.auth.Login(ctx, userName, *password, *remember)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLoginFailed
	}

	fmt.Fprintln(a.out, a.auth.Token())
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := parseNone(newFlagSet("logout"), args); err != nil {
		return err
	}
	return a.auth.Logout(ctx)
}

func (a *App) setPassword(ctx context.Context, args []string) error {
	fs := newFlagSet("set-password")
	password := fs.String("password", "", "new password (prompted when empty)")
	ignorePolicy := fs.Bool("ignore-policy", false, "skip the password strength policy")
	userName, err := parseOne(fs, args, "user")
	if err != nil {
		return err
	}

	if *password == "" {
		if *password, err = a.passwords(ctx, userName); err != nil {
			return err
		}
	}
	return a.auth.SetPassword(ctx, userName, *password, *ignorePolicy)
}

func (a *App) changePassword(ctx context.Context, args []string) error {
	fs := newFlagSet("change-password")
	oldPassword := fs.String("old-password", "", "current password")
	newPassword := fs.String("new-password", "", "new password")
	if err := parseNone(fs, args); err != nil {
		return err
	}

	ok, err := a.auth.ChangeMyPassword(ctx, *oldPassword, *newPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPasswordUnchanged
	}
	return nil
}

func (a *App) unlock(ctx context.Context, args []string) error {
	userName, err := parseOne(newFlagSet("unlock"), args, "user")
	if err != nil {
		return err
	}
	return a.auth.UnlockUser(ctx, userName)
}

func (a *App) generateResetToken(ctx context.Context, args []string) error {
	userName, err := parseOne(newFlagSet("generate-reset-token"), args, "user")
	if err != nil {
		return err
	}

	token, err := a.auth.GeneratePasswordResetToken(ctx, userName)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) sendResetToken(ctx context.Context, args []string) error {
	fs := newFlagSet("send-reset-token")
	info := fs.StringToString("info", nil, "additional client info passed to the delivery plugin")
	userName, err := parseOne(fs, args, "user")
	if err != nil {
		return err
	}
	return a.auth.SendPasswordResetToken(ctx, userName, *info)
}

func (a *App) resetPassword(ctx context.Context, args []string) error {
	fs := newFlagSet("reset-password")
	password := fs.String("password", "", "new password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("reset-password: expected <user> <token>, got %d arguments", fs.NArg())
	}
	userName, token := fs.Arg(0), fs.Arg(1)

	if *password == "" {
		var err error
		if *password, err = a.passwords(ctx, userName); err != nil {
			return err
		}
	}

	before := a.auth.Token()
	ok, err := a.auth.ResetPassword(ctx, userName, token, *password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrResetRejected
	}

	// the automatic login is best effort
	if session := a.auth.Token(); session != "" && session != before {
		fmt.Fprintln(a.out, session)
	}
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := parseNone(newFlagSet("version"), args); err != nil {
		return err
	}

	v, err := a.auth.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

// ── Arguments ──

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseOne(fs *pflag.FlagSet, args []string, what string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return "", fmt.Errorf("%s: expected <%s>", fs.Name(), what)
	}
	return fs.Arg(0), nil
}

func parseNone(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	return nil
}
