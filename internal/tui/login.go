// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders two text inputs
// (username and password) and dispatches an async sign-in command on form submission.
// On success a [SignInResult] carrying the session is produced and handled by [RootModel]
// to finish the flow.
//
// Wrong passwords and unknown usernames count as failed attempts. Once maxAttempts
// attempts failed the form is reset and the user is sent back to the menu.
type LoginModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs      []textinput.Model
	focus       int
	submitting  bool
	errMsg      string
	status      string
	failures    int
	maxAttempts int
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, vault service.VaultService, maxAttempts int) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &LoginModel{
		ctx:         ctx,
		vault:       vault,
		inputs:      []textinput.Model{loginInput, passwordInput},
		maxAttempts: maxAttempts,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterSuccessNotice] prefills the username of the new account.
//   - [SignInResult] clears submitting state; on failure counts the attempt.
//   - esc returns to the menu.
//   - tab and shift+tab move the focus.
//   - enter validates inputs and dispatches the async sign-in command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.resetForm()
		m.status = "account " + msg.Username + " created, enter the master password"
		m.inputs[0].SetValue(msg.Username)
		m.setFocus(1)
		return m, nil
	case SignInResult:
		return m.handleResult(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if username == "" || pass == "" {
				m.errMsg = app.MsgRequiredFields
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSignIn(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) handleResult(result SignInResult) (tea.Model, tea.Cmd) {
	m.submitting = false
	if result.Session != nil {
		return m, nil
	}

	m.errMsg = humanizeError(result.Status, result.Err)
	m.inputs[1].SetValue("")

	switch result.Status {
	case models.StatusInvalidInput, models.StatusNotFound:
		m.failures++
	default:
		return m, nil
	}

	if m.failures >= m.maxAttempts {
		attempts := m.failures
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: SignInLockedNotice{Attempts: attempts}}
		}
	}

	m.errMsg = fmt.Sprintf("%s (attempts left: %d)", m.errMsg, m.maxAttempts-m.failures)
	m.setFocus(1)
	return m, nil
}

// View implements [tea.Model]. Renders the sign-in form as a two-column table with
// username and password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(statusLine(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdSignIn(username, pass string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		session, status, err := vault.SignIn(ctx, username, pass)
		return SignInResult{
			Session:  session,
			Status:   status,
			Err:      err,
			Username: username,
		}
	}
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.failures = 0
	m.submitting = false
	m.errMsg = ""
	m.status = ""
	m.setFocus(0)
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
