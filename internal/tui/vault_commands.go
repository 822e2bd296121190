package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

func (m vaultModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		items, err := vault.ListCredentials(ctx, session)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdAdd(serviceName string, login *string, secret string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		status, err := vault.AddCredential(ctx, session, serviceName, login, secret)
		return itemSavedMsg{status: status, err: err}
	}
}

func (m vaultModel) cmdFindMatches(purpose pickPurpose, serviceName string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		matches, err := vault.FindCredentialsByService(ctx, session, serviceName)
		return matchesLoadedMsg{purpose: purpose, serviceName: serviceName, matches: matches, err: err}
	}
}

func (m vaultModel) cmdView(serviceName string, pick service.Picker) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		view, status, err := vault.ViewCredential(ctx, session, serviceName, pick)
		return itemViewedMsg{view: view, status: status, err: err}
	}
}

func (m vaultModel) cmdRemove(serviceName string, pick service.Picker) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		status, err := vault.RemoveCredential(ctx, session, serviceName, pick)
		return itemDeletedMsg{status: status, err: err}
	}
}

func (m vaultModel) cmdRename(username string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		status, err := vault.RenameAccount(ctx, session, username)
		return accountRenamedMsg{username: username, status: status, err: err}
	}
}

func (m vaultModel) cmdRemoveAccount() tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	session := m.session

	return func() tea.Msg {
		status, err := vault.RemoveAccount(ctx, session)
		return accountRemovedMsg{status: status, err: err}
	}
}
