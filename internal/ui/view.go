package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/weatherpane/internal/logtail"
)

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()

	var body string
	switch m.overlay {
	case overlayHelp:
		body = m.renderHelp(styles)
	case overlayLogs:
		body = m.renderLogs(styles)
	default:
		body = m.renderWidget(styles)
	}

	if m.width == 0 {
		return body
	}
	if !m.fullscreen {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

// renderWidget draws the temperature above the icon, then the caption and
// footer.
func (m Model) renderWidget(styles Styles) string {
	text := m.loop.Label().Text()
	temperature, ok := bigText(text)
	if !ok {
		temperature = text
	}

	icon := m.renderer.Blank()
	condition := " "
	if entry, visible := m.loop.Catalog().Visible(); visible {
		if rendered, err := m.renderer.Render(entry); err == nil {
			icon = rendered
		}
		condition = caption(entry.ID)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Temperature.Render(temperature),
		"",
		icon,
		styles.Caption.Render(condition),
		"",
		m.renderFooter(styles),
	)
}

func (m Model) renderFooter(styles Styles) string {
	status := "waiting for weather"
	if updated := m.loop.LastUpdated(); !updated.IsZero() {
		status = "updated " + updated.Format("15:04:05")
	}
	return styles.Footer.Render(
		styles.MutedText.Render(status) +
			styles.FaintText.Render("  •  ") +
			m.help.View(m.keys),
	)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("theme: %s", m.theme.Name)))
	return styles.Overlay.Render(b.String())
}

// renderLogs renders the log overlay.
func (m Model) renderLogs(styles Styles) string {
	title := styles.AccentText.Bold(true).Render("Log") +
		styles.FaintText.Render("  "+m.logPath)
	return styles.Overlay.Render(title + "\n\n" + m.logView.View())
}

// refreshLogs reloads the tail of the log file into the log viewport.
func (m *Model) refreshLogs() {
	atBottom := m.logView.AtBottom()

	if m.logPath == "" {
		m.logView.SetContent("logging to file is disabled")
		return
	}

	var content string
	entries, err := logtail.ReadEntries(m.logPath, logOverlayLines)
	switch {
	case err != nil:
		content = err.Error()
	case len(entries) == 0:
		content = "log is empty"
	default:
		content = formatEntries(entries, m.theme.Styles())
	}

	m.logView.SetContent(content)
	if atBottom {
		m.logView.GotoBottom()
	}
}

func (m *Model) resizeLogView() {
	// Overlay border and padding take 6 columns and 4 rows, the title 2 more.
	m.logView.Width = max(20, m.width-10)
	m.logView.Height = max(5, m.height-10)
}

// formatEntries renders parsed log records one per line.
func formatEntries(entries []logtail.Entry, styles Styles) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		if !e.Time.IsZero() {
			b.WriteString(styles.FaintText.Render(e.Time.Format("15:04:05")))
			b.WriteByte(' ')
		}
		if e.Level != "" {
			b.WriteString(styles.LevelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level)))
			b.WriteByte(' ')
		}
		b.WriteString(styles.Text.Render(e.Message))
		for _, a := range e.Attrs {
			b.WriteByte(' ')
			b.WriteString(styles.MutedText.Render(a.Key + "=" + a.Value))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
