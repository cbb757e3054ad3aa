package setup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m passwordModel, text string) passwordModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(passwordModel)
	}
	return m
}

func TestPasswordModel_TypingIsMasked(t *testing.T) {
	m := typeText(t, newPasswordModel("admin"), "abc")

	assert.Equal(t, "abc", m.input.Value())
	view := m.View()
	assert.Contains(t, view, "Enter new password for user 'admin': ")
	assert.Contains(t, view, "***")
	assert.NotContains(t, view, "abc")
}

func TestPasswordModel_Backspace(t *testing.T) {
	m := typeText(t, newPasswordModel("admin"), "abcd")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(passwordModel)

	assert.Equal(t, "abc", m.input.Value())
}

func TestPasswordModel_EnterSubmits(t *testing.T) {
	m := typeText(t, newPasswordModel("admin"), "pwd")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(passwordModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.submitted)
	assert.False(t, m.canceled)
}

func TestPasswordModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := typeText(t, newPasswordModel("admin"), "pwd")

		next, cmd := m.Update(tea.KeyMsg{Type: key})
		m = next.(passwordModel)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.canceled)
	}
}

func TestPasswordPrompt_ReadsLineWhenNotTerminal(t *testing.T) {
	// ── Arrange ──
	out := &bytes.Buffer{}
	prompt := NewPasswordPrompt(strings.NewReader("S3cret!\r\nignored\n"), out, "admin")

	// ── Act ──
	password, err := prompt.ReadPassword(context.Background())

	// ── Assert ──
	require.NoError(t, err)
	assert.Equal(t, "S3cret!", password)
	assert.Contains(t, out.String(), "Enter new password for user 'admin': ")
}

func TestPasswordPrompt_LastLineWithoutNewline(t *testing.T) {
	prompt := NewPasswordPrompt(strings.NewReader("pwd"), &bytes.Buffer{}, "admin")

	password, err := prompt.ReadPassword(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "pwd", password)
}

func TestPasswordPrompt_EmptyPassword(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n"} {
		prompt := NewPasswordPrompt(strings.NewReader(input), &bytes.Buffer{}, "admin")

		_, err := prompt.ReadPassword(context.Background())

		assert.ErrorIs(t, err, errEmptyPassword, "input %q", input)
	}
}
