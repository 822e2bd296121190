package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	uiDivider  = "──────────────────────────────────────────────────────"
	secretMask = "********"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func errorLine(msg string) string {
	return errorStyle.Render("Error: ") + msg
}

func statusLine(msg string) string {
	return okStyle.Render("OK: ") + msg
}

// padRight pads v with spaces up to width terminal cells.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
