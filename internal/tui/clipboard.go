package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Swapped in tests: the real clipboard needs a display server.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

func cmdCopy(secret string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(secret); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{secret: secret}
	}
}

func expireClipboard(secret string, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clipboardExpiredMsg{secret: secret}
	})
}

func cmdWipeClipboard(secret string) tea.Cmd {
	return func() tea.Msg {
		return clipboardWipedMsg{wiped: wipeClipboard(secret)}
	}
}

// wipeClipboard clears the clipboard only if it still holds secret, so a
// value the user copied elsewhere in the meantime survives.
func wipeClipboard(secret string) bool {
	if secret == "" {
		return false
	}
	current, err := readClipboard()
	if err != nil || current != secret {
		return false
	}
	return writeClipboard("") == nil
}
