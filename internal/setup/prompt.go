// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/MKhiriev/go-forms-auth/internal/service"
)

var (
	errCanceled      = service.NewUserError("User pressed the escape key.")
	errEmptyPassword = service.NewUserError("The password may not be empty.")
)

// PasswordPrompt reads the new admin password from the console.
type PasswordPrompt struct {
	in       io.Reader
	out      io.Writer
	userName string
}

func NewPasswordPrompt(in io.Reader, out io.Writer, userName string) *PasswordPrompt {
	return &PasswordPrompt{in: in, out: out, userName: userName}
}

// ReadPassword shows a masked input when in is a terminal and reads a single
// line otherwise. A blank password is rejected.
func (p *PasswordPrompt) ReadPassword(ctx context.Context) (string, error) {
	var (
		password string
		err      error
	)
	if isTerminal(p.in) {
		password, err = p.readMasked(ctx)
	} else {
		password, err = p.readLine()
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(password) == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

func (p *PasswordPrompt) readMasked(ctx context.Context) (string, error) {
	program := tea.NewProgram(newPasswordModel(p.userName),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", errCanceled
		}
		return "", fmt.Errorf("password prompt: %w", err)
	}

	m := final.(passwordModel)
	if m.canceled {
		return "", errCanceled
	}
	return m.input.Value(), nil
}

func (p *PasswordPrompt) readLine() (string, error) {
	fmt.Fprint(p.out, promptText(p.userName))

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprintln(p.out)

	return strings.TrimRight(line, "\r\n"), nil
}

func promptText(userName string) string {
	return fmt.Sprintf("Enter new password for user '%s': ", userName)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// passwordModel is a single masked textinput. Enter submits, esc and ctrl+c
// cancel.
type passwordModel struct {
	userName  string
	input     textinput.Model
	submitted bool
	canceled  bool
}

func newPasswordModel(userName string) passwordModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{userName: userName, input: input}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	line := promptStyle.Render(promptText(m.userName)) + m.input.View()
	if m.submitted || m.canceled {
		return line + "\n"
	}
	return line + "\n" + helpStyle.Render("enter: confirm • esc: cancel") + "\n"
}
