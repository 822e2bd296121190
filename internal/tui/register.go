// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the account creation screen. It collects
// a username and the master password twice. Policy violations reported by the vault
// are listed inline; on success the user is sent to the sign-in page with the
// username prefilled.
type RegisterModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with username, password and
// repeated password inputs.
func NewRegisterModel(ctx context.Context, vault service.VaultService) *RegisterModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "at least 15 characters"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		vault:  vault,
		inputs: []textinput.Model{username, password, repeat},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if msg.Status != models.StatusSuccess {
			m.errMsg = humanizeError(msg.Status, msg.Err)
			return m, nil
		}
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: RegisterSuccessNotice{Username: msg.Username}}
		}
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
			repeat := m.inputs[2].Value()

			if username == "" || pass == "" || repeat == "" {
				m.errMsg = app.MsgRequiredFields
				return m, nil
			}
			if pass != repeat {
				m.errMsg = app.MsgPasswordsDoNotMatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼───────────────────────────────────\n")
	b.WriteString("Username         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Password: 15+ characters, upper and lower case letters, a digit and one of " + validators.SpecialCharacters))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, pass string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		status, err := vault.CreateAccount(ctx, username, pass)
		return RegisterResult{
			Status:   status,
			Err:      err,
			Username: username,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
	m.errMsg = ""
	m.setFocus(0)
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
