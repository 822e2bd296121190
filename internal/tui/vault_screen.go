// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type vaultMode int

const (
	modeList vaultMode = iota
	modeAdd
	modeQuery
	modePick
	modeDetail
	modeConfirmRemove
	modeRename
	modeConfirmDeleteAccount
)

// pickPurpose tells what happens to the record chosen on the picker screen.
type pickPurpose int

const (
	pickView pickPurpose = iota
	pickRemove
)

// vaultModel is the screen of a signed-in account. It lists the decrypted
// credentials and drives every account-scoped vault operation.
type vaultModel struct {
	ctx     context.Context
	vault   service.VaultService
	session *service.Session
	cfg     config.App

	mode     vaultMode
	items    []models.CredentialView
	idx      int
	revealed bool
	loading  bool
	busy     bool
	status   string
	errMsg   string

	addInputs []textinput.Model
	addFocus  int

	// query holds the service name on the find/remove prompt and the new
	// username on the rename prompt.
	query textinput.Model

	purpose     pickPurpose
	serviceName string
	matches     []models.CredentialView
	pickInput   textinput.Model
	pickAnswer  string

	detail         models.CredentialView
	detailRevealed bool

	// clipboardSecret is the last value copied and not yet wiped.
	clipboardSecret string

	logout bool
}

func newVaultModel(ctx context.Context, vault service.VaultService, session *service.Session, cfg config.App) vaultModel {
	serviceName := textinput.New()
	serviceName.Placeholder = "service name"
	serviceName.CharLimit = 128
	serviceName.Width = 40

	login := textinput.New()
	login.Placeholder = "login (optional)"
	login.CharLimit = 256
	login.Width = 40

	secret := textinput.New()
	secret.Placeholder = "secret"
	secret.CharLimit = 1024
	secret.Width = 40
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	query := textinput.New()
	query.CharLimit = 128
	query.Width = 40

	pick := textinput.New()
	pick.Placeholder = "number or " + service.CancelToken
	pick.CharLimit = 16
	pick.Width = 20

	return vaultModel{
		ctx:       ctx,
		vault:     vault,
		session:   session,
		cfg:       cfg,
		loading:   true,
		addInputs: []textinput.Model{serviceName, login, secret},
		query:     query,
		pickInput: pick,
	}
}

func (m vaultModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadItems())
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = describeErr(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.revealed = false
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case matchesLoadedMsg:
		return m.handleMatches(msg)

	case itemSavedMsg:
		m.busy = false
		if msg.status != models.StatusSuccess {
			m.errMsg = humanizeError(msg.status, msg.err)
			return m, nil
		}
		m.resetAddForm()
		m.mode = modeList
		m.errMsg = ""
		m.status = "credential saved"
		return m, m.cmdLoadItems()

	case itemViewedMsg:
		m.busy = false
		switch msg.status {
		case models.StatusSuccess:
			m.detail = msg.view
			m.detailRevealed = false
			m.mode = modeDetail
			m.errMsg = ""
		case models.StatusCancelled:
			m.toList(app.MsgCancelled)
		default:
			m.toList("")
			m.errMsg = humanizeError(msg.status, msg.err)
		}
		return m, nil

	case itemDeletedMsg:
		m.busy = false
		switch msg.status {
		case models.StatusSuccess:
			m.toList("credential removed")
			return m, m.cmdLoadItems()
		case models.StatusCancelled:
			m.toList(app.MsgCancelled)
		default:
			m.toList("")
			m.errMsg = humanizeError(msg.status, msg.err)
		}
		return m, nil

	case accountRenamedMsg:
		m.busy = false
		if msg.status != models.StatusSuccess {
			m.errMsg = humanizeError(msg.status, msg.err)
			return m, nil
		}
		m.toList("account renamed to " + msg.username)
		return m, nil

	case accountRemovedMsg:
		m.busy = false
		if msg.status != models.StatusSuccess {
			m.toList("")
			m.errMsg = humanizeError(msg.status, msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.clipboardSecret = msg.secret
		m.errMsg = ""
		if m.cfg.ClipboardTTL <= 0 {
			m.status = "secret copied to clipboard"
			return m, nil
		}
		m.status = "secret copied to clipboard, cleared in " + m.cfg.ClipboardTTL.String()
		return m, expireClipboard(msg.secret, m.cfg.ClipboardTTL)

	case clipboardExpiredMsg:
		if msg.secret != m.clipboardSecret {
			return m, nil
		}
		return m, cmdWipeClipboard(msg.secret)

	case clipboardWipedMsg:
		m.clipboardSecret = ""
		if msg.wiped {
			m.status = "clipboard cleared"
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m vaultModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.handleAddKey(msg)
	case modeQuery:
		return m.handleQueryKey(msg)
	case modePick:
		return m.handlePickKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeConfirmRemove:
		return m.handleConfirmRemoveKey(msg)
	case modeRename:
		return m.handleRenameKey(msg)
	case modeConfirmDeleteAccount:
		return m.handleConfirmDeleteAccountKey(msg)
	}

	return m.handleListKey(msg)
}

func (m vaultModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.revealed = false
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
			m.revealed = false
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.revealed = !m.revealed
		}
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.copySecret(item)
	case key.Matches(msg, keys.newItem):
		m.clearMessages()
		m.resetAddForm()
		m.mode = modeAdd
		return m, textinput.Blink
	case key.Matches(msg, keys.find):
		return m.startQuery(pickView)
	case key.Matches(msg, keys.delete):
		return m.startQuery(pickRemove)
	case key.Matches(msg, keys.rename):
		m.clearMessages()
		m.query.Placeholder = "new username"
		m.query.SetValue(m.session.Account().Username)
		m.query.CursorEnd()
		m.query.Focus()
		m.mode = modeRename
		return m, textinput.Blink
	case key.Matches(msg, keys.deleteAccount):
		m.clearMessages()
		m.mode = modeConfirmDeleteAccount
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m vaultModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.resetAddForm()
		m.toList("")
		return m, nil
	case key.Matches(msg, keys.tab):
		m.setAddFocus(m.addFocus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setAddFocus(m.addFocus - 1)
		return m, nil
	case key.Matches(msg, keys.enter):
		serviceName := strings.TrimSpace(m.addInputs[0].Value())
		secret := m.addInputs[2].Value()
		if serviceName == "" || secret == "" {
			m.errMsg = "service name and secret are required"
			return m, nil
		}

		var login *string
		if v := strings.TrimSpace(m.addInputs[1].Value()); v != "" {
			login = &v
		}

		m.errMsg = ""
		m.busy = true
		return m, m.cmdAdd(serviceName, login, secret)
	}

	return m.updateFocusedInput(msg)
}

func (m vaultModel) startQuery(purpose pickPurpose) (tea.Model, tea.Cmd) {
	m.clearMessages()
	m.purpose = purpose
	m.query.Placeholder = "service name"
	m.query.SetValue("")
	if item, ok := m.current(); ok {
		m.query.SetValue(item.ServiceName)
		m.query.CursorEnd()
	}
	m.query.Focus()
	m.mode = modeQuery
	return m, textinput.Blink
}

func (m vaultModel) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.query.Blur()
		m.toList("")
		return m, nil
	case key.Matches(msg, keys.enter):
		serviceName := strings.TrimSpace(m.query.Value())
		if serviceName == "" {
			m.errMsg = "service name is required"
			return m, nil
		}
		m.query.Blur()
		m.errMsg = ""
		m.busy = true
		return m, m.cmdFindMatches(m.purpose, serviceName)
	}

	return m.updateFocusedInput(msg)
}

// handleMatches routes the lookup result: nothing matched, exactly one record
// needs no picker, several records open the picker screen.
func (m vaultModel) handleMatches(msg matchesLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.toList("")
		m.errMsg = describeErr(msg.err)
		return m, nil
	}

	m.purpose = msg.purpose
	m.serviceName = msg.serviceName
	m.matches = msg.matches

	switch len(msg.matches) {
	case 0:
		m.toList("")
		m.errMsg = app.MsgNoMatches
		return m, nil
	case 1:
		m.pickAnswer = "1"
		return m.proceedWithPick()
	}

	m.pickInput.SetValue("")
	m.pickInput.Focus()
	m.mode = modePick
	return m, textinput.Blink
}

func (m vaultModel) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.pickInput.Blur()
		m.toList(app.MsgCancelled)
		return m, nil
	case key.Matches(msg, keys.enter):
		answer := m.pickInput.Value()
		selection := service.ResolveSelection(len(m.matches), answer)
		switch selection.Kind {
		case service.SelectionInvalid:
			m.errMsg = selection.Reason
			m.pickInput.SetValue("")
			return m, nil
		case service.SelectionCancelled:
			m.pickInput.Blur()
			m.toList(app.MsgCancelled)
			return m, nil
		}
		m.pickInput.Blur()
		m.errMsg = ""
		m.pickAnswer = answer
		return m.proceedWithPick()
	}

	return m.updateFocusedInput(msg)
}

func (m vaultModel) proceedWithPick() (tea.Model, tea.Cmd) {
	if m.purpose == pickRemove {
		m.mode = modeConfirmRemove
		return m, nil
	}
	m.busy = true
	return m, m.cmdView(m.serviceName, service.PickFromInput(m.pickAnswer))
}

func (m vaultModel) handleConfirmRemoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		return m, m.cmdRemove(m.serviceName, service.PickFromInput(m.pickAnswer))
	case key.Matches(msg, keys.no):
		m.toList(app.MsgCancelled)
	}
	return m, nil
}

func (m vaultModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = models.CredentialView{}
		m.toList("")
	case key.Matches(msg, keys.enter):
		m.detailRevealed = !m.detailRevealed
	case key.Matches(msg, keys.copy):
		return m.copySecret(m.detail)
	}
	return m, nil
}

func (m vaultModel) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.query.Blur()
		m.toList("")
		return m, nil
	case key.Matches(msg, keys.enter):
		username := strings.TrimSpace(m.query.Value())
		if username == "" {
			m.errMsg = app.MsgRequiredFields
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdRename(username)
	}

	return m.updateFocusedInput(msg)
}

func (m vaultModel) handleConfirmDeleteAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		return m, m.cmdRemoveAccount()
	case key.Matches(msg, keys.no):
		m.toList(app.MsgCancelled)
	}
	return m, nil
}

func (m vaultModel) copySecret(item models.CredentialView) (tea.Model, tea.Cmd) {
	if m.cfg.DisableClipboard {
		m.errMsg = app.MsgClipboardDisabled
		return m, nil
	}
	if item.Err != nil {
		m.errMsg = app.MsgIntegrityFailure
		return m, nil
	}
	return m, cmdCopy(item.Secret)
}

// updateFocusedInput forwards non-key messages (cursor blink) and typed keys
// to the input of the current mode.
func (m vaultModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	case modeQuery, modeRename:
		m.query, cmd = m.query.Update(msg)
	case modePick:
		m.pickInput, cmd = m.pickInput.Update(msg)
	}
	return m, cmd
}

func (m vaultModel) current() (models.CredentialView, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CredentialView{}, false
	}
	return m.items[m.idx], true
}

func (m *vaultModel) toList(status string) {
	m.mode = modeList
	m.status = status
	m.errMsg = ""
	m.matches = nil
	m.pickAnswer = ""
	m.serviceName = ""
}

func (m *vaultModel) clearMessages() {
	m.status = ""
	m.errMsg = ""
}

func (m *vaultModel) resetAddForm() {
	for i := range m.addInputs {
		m.addInputs[i].SetValue("")
	}
	m.setAddFocus(0)
}

func (m *vaultModel) setAddFocus(i int) {
	m.addInputs[m.addFocus].Blur()
	m.addFocus = (i + len(m.addInputs)) % len(m.addInputs)
	m.addInputs[m.addFocus].Focus()
}
