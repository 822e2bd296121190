package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	listHotKeys = "n: add │ f: find │ d: remove │ enter: reveal │ c: copy │ r: rename │ X: delete account │ l: sign out │ q: quit"

	serviceColWidth = 24
	loginColWidth   = 20
)

func (m vaultModel) View() string {
	switch m.mode {
	case modeAdd:
		return m.viewAdd()
	case modeQuery:
		return m.viewQuery()
	case modePick:
		return m.viewPick()
	case modeDetail:
		return m.viewDetail()
	case modeConfirmRemove:
		return m.viewConfirmRemove()
	case modeRename:
		return m.viewRename()
	case modeConfirmDeleteAccount:
		return m.viewConfirmDeleteAccount()
	}

	return m.viewList()
}

func (m vaultModel) viewList() string {
	title := "VAULT: " + m.session.Account().Username

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading credentials...\n")
		return renderPage(title, strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	m.writeMessages(&b)

	if len(m.items) == 0 {
		b.WriteString("No credentials yet\n")
		return renderPage(title, strings.TrimRight(b.String(), "\n"), listHotKeys)
	}

	b.WriteString("  #   │ " + padRight("Service", serviceColWidth) + " │ " + padRight("Login", loginColWidth) + " │ Secret\n")
	b.WriteString("──────┼─" + strings.Repeat("─", serviceColWidth) + "─┼─" + strings.Repeat("─", loginColWidth) + "─┼────────────────\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		b.WriteString(fmt.Sprintf(
			"%s %-3d │ %s │ %s │ %s\n",
			cursor,
			i+1,
			padRight(fitText(item.ServiceName, serviceColWidth), serviceColWidth),
			padRight(fitText(item.DisplayLogin(), loginColWidth), loginColWidth),
			renderSecret(item, i == m.idx && m.revealed),
		))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), listHotKeys)
}

func renderSecret(item models.CredentialView, revealed bool) string {
	switch {
	case item.Err != nil:
		return errorStyle.Render(app.MsgIntegrityFailure)
	case revealed:
		return item.Secret
	default:
		return maskedStyle.Render(secretMask)
	}
}

func (m vaultModel) viewAdd() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Service   │ [" + m.addInputs[0].View() + "]\n")
	b.WriteString("Login     │ [" + m.addInputs[1].View() + "]\n")
	b.WriteString("Secret    │ [" + m.addInputs[2].View() + "]\n")

	if m.busy {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	return renderPage("NEW CREDENTIAL", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m vaultModel) viewQuery() string {
	title := "FIND CREDENTIAL"
	if m.purpose == pickRemove {
		title = "REMOVE CREDENTIAL"
	}

	var b strings.Builder
	b.WriteString("Service  │ [" + m.query.View() + "]\n")
	if m.busy {
		b.WriteString("\nSearching...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ enter: search")
}

// viewPick renders the candidate table for an ambiguous service name.
// Secrets are never shown here: the login identifier tells records apart.
func (m vaultModel) viewPick() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d credentials match %q:\n\n", len(m.matches), m.serviceName))
	b.WriteString("  #  │ Login\n")
	b.WriteString("─────┼──────────────────────────────\n")
	for _, c := range service.Candidates(m.matches) {
		b.WriteString(fmt.Sprintf("  %-3d│ %s\n", c.Index, c.Label))
	}

	b.WriteString("\nChoice │ [" + m.pickInput.View() + "]\n")
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	hotKeys := fmt.Sprintf("1-%d: choose │ %s: withdraw │ enter: confirm", len(m.matches), service.CancelToken)
	return renderPage("SELECT CREDENTIAL", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m vaultModel) viewDetail() string {
	var b strings.Builder
	m.writeMessages(&b)

	secret := secretMask
	if m.detailRevealed {
		secret = m.detail.Secret
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Service   │ " + m.detail.ServiceName + "\n")
	b.WriteString("Login     │ " + m.detail.DisplayLogin() + "\n")
	b.WriteString("Secret    │ " + secret + "\n")

	return renderPage("CREDENTIAL", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: reveal/hide │ c: copy")
}

func (m vaultModel) viewConfirmRemove() string {
	login := models.NotAvailable
	if i := m.chosenIndex(); i >= 0 {
		login = m.matches[i].DisplayLogin()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Remove the credential for %q (login: %s)?\n", m.serviceName, login))
	if m.busy {
		b.WriteString("\nRemoving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	return renderPage("CONFIRM REMOVAL", strings.TrimRight(b.String(), "\n"), "y: remove │ n/esc: keep")
}

func (m vaultModel) viewRename() string {
	var b strings.Builder
	b.WriteString("Current   │ " + m.session.Account().Username + "\n")
	b.WriteString("New name  │ [" + m.query.View() + "]\n")
	if m.busy {
		b.WriteString("\nRenaming...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	return renderPage("RENAME ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: cancel │ enter: rename")
}

func (m vaultModel) viewConfirmDeleteAccount() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Delete account %q and all of its %d credentials?\n", m.session.Account().Username, len(m.items)))
	b.WriteString("This cannot be undone.\n")
	if m.busy {
		b.WriteString("\nDeleting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorLine(m.errMsg) + "\n")
	}

	return renderPage("DELETE ACCOUNT", strings.TrimRight(b.String(), "\n"), "y: delete │ n/esc: keep")
}

// chosenIndex resolves the stored picker answer against the matches, -1 when
// it does not name a candidate.
func (m vaultModel) chosenIndex() int {
	selection := service.ResolveSelection(len(m.matches), m.pickAnswer)
	if selection.Kind != service.SelectionChosen {
		return -1
	}
	return selection.Index
}

func (m vaultModel) writeMessages(b *strings.Builder) {
	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(statusLine(m.status))
		b.WriteString("\n\n")
	}
}
