package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page: sign in, create an account or leave.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
	errMsg string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Sign in", page: pageLogin},
			{title: "Create account", page: pageRegister},
			{title: "Exit"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignInLockedNotice:
		m.status = ""
		m.errMsg = fmt.Sprintf("%s (%d)", app.MsgTooManyAttempts, msg.Attempts)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.quit):
			return m, func() tea.Msg { return quitRequest{} }
		case key.Matches(msg, keys.enter):
			m.errMsg = ""
			item := m.items[m.idx]
			if item.page == "" {
				return m, func() tea.Msg { return quitRequest{} }
			}
			return m, func() tea.Msg { return NavigateTo{Page: item.page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(statusLine(m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(padRight("ID", idColWidth) + " │ " + padRight("Action", actionColWidth) + "\n")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(padRight(idCell, idColWidth) + " │ " + item.title + "\n")
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
