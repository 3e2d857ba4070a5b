package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View composes the whole frame. The screen lock is held for the duration
// so controller goroutines never mutate mid-paint.
func (m *Model) View() string {
	m.scr.mu.Lock()
	defer m.scr.mu.Unlock()

	var body string
	if m.scr.surface == surfaceLogin {
		body = m.viewLogin()
	} else {
		body = m.viewMain()
	}

	if overlay := m.viewOverlay(); overlay != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, overlay)
	}
	return body
}

// --- login surface ---

func (m *Model) viewLogin() string {
	st := m.styles

	form := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Fleet Manager"),
		"",
		"Username  "+m.scr.username.View(),
		"Password  "+m.scr.password.View(),
		"",
		st.Key.Render("enter")+st.Desc.Render(" login")+"  "+
			st.Key.Render("tab")+st.Desc.Render(" switch field")+"  "+
			st.Key.Render("ctrl+c")+st.Desc.Render(" quit"),
	)
	box := st.PanelBox.Render(form)
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

// --- main surface ---

func (m *Model) viewMain() string {
	st := m.styles
	s := m.scr

	welcome := fmt.Sprintf("Welcome %s (%s)", s.session.Username, s.session.Role)
	header := st.Title.Render("Fleet Manager") + "  " + st.Muted.Render(welcome)

	search := "Search: " + s.search.View()

	left := lipgloss.JoinVertical(lipgloss.Left, m.viewTable(), "", m.viewForm())
	right := lipgloss.JoinVertical(lipgloss.Left, m.viewStats(), "", m.viewCharts())

	var content string
	if m.width >= 100 {
		leftW := m.width * 3 / 5
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(leftW).Render(left),
			lipgloss.NewStyle().Width(m.width-leftW).Render(right),
		)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, "", content, m.viewCommandBar())
}

func (m *Model) viewTable() string {
	st := m.styles
	s := m.scr

	var b strings.Builder
	b.WriteString(st.Header.Render(fmt.Sprintf("  %-6s %-16s %-12s %s", "ID", "LICENSE", "TOOL", "STATUS")))
	b.WriteByte('\n')

	if len(s.vehicles) == 0 {
		b.WriteString(st.Muted.Render("  No vehicles."))
		return b.String()
	}

	for i, v := range s.vehicles {
		marker := " "
		if i == s.cursor {
			marker = "▸"
		}
		line := fmt.Sprintf("%s %-6d %-16s %-12s %s", marker, v.ID, v.LicenseNumber, v.ToolCode, v.Status)
		if v.ID == s.activeID && s.activeID != 0 {
			line = st.ActiveRow.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')

		// The history panel is a synthetic row directly beneath its owner.
		if s.history != nil && s.history.vehicleID == v.ID {
			b.WriteString(m.viewHistoryPanel())
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewHistoryPanel() string {
	st := m.styles
	h := m.scr.history

	if h.message != "" {
		return st.PanelBox.Render(st.Muted.Italic(true).Render(h.message))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("היסטוריית רכב:"))
	for i, e := range h.entries {
		line := fmt.Sprintf("%s | סטטוס: %s", e.Timestamp, e.Status)
		if i == 0 {
			// Most recent entry first; highlighted for quick scanning.
			line = st.LatestItem.Render(line)
		}
		b.WriteByte('\n')
		b.WriteString("  " + line)
	}
	return st.PanelBox.Render(b.String())
}

func (m *Model) viewForm() string {
	st := m.styles
	s := m.scr

	status := ""
	if len(s.statuses) > 0 {
		status = s.statuses[s.statusIndex]
	}
	statusLine := "◂ " + status + " ▸"
	if m.focus == focusForm && m.field == fieldStatus {
		statusLine = st.ActiveRow.Render(statusLine)
	}

	title := st.Title.Render("Vehicle")
	if !s.controlsEnabled {
		title += " " + st.Disabled.Render("(read-only)")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"License  "+s.license.View(),
		"Tool     "+s.tool.View(),
		"Status   "+statusLine,
	)
	if !s.controlsEnabled {
		form = st.Disabled.Render("Vehicle (read-only)")
	}
	return st.PanelBox.Render(form)
}

func (m *Model) viewStats() string {
	st := m.styles
	s := m.scr

	if s.stats == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("Today's Stats"))
	b.WriteString("\n" + statsList(s.stats.Today, st))
	b.WriteString("\n" + st.Title.Render("Previous Day's Stats"))
	b.WriteString("\n" + statsList(s.stats.Previous, st))
	return b.String()
}

func statsList(counts map[string]int, st Styles) string {
	if len(counts) == 0 {
		return st.Muted.Render("  (none)")
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	for _, label := range labels {
		fmt.Fprintf(&b, "  %s: %d\n", label, counts[label])
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewCharts() string {
	chartW := m.width*2/5 - 4
	if m.width < 100 {
		chartW = m.width - 4
	}

	var parts []string
	if m.scr.statusChart != nil {
		if v := m.scr.statusChart.Render(chartW); v != "" {
			parts = append(parts, v)
		}
	}
	if m.scr.reportsChart != nil {
		if v := m.scr.reportsChart.Render(chartW); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) viewCommandBar() string {
	st := m.styles
	sep := st.Desc.Render(" │ ")

	entry := func(key, desc string) string {
		return st.Key.Render(key) + st.Desc.Render(" "+desc)
	}

	var entries []string
	switch m.focus {
	case focusSearch:
		entries = []string{entry("enter", "apply"), entry("esc", "back")}
	case focusForm:
		entries = []string{entry("tab", "next field"), entry("◂/▸", "status"), entry("esc", "back")}
	default:
		entries = []string{entry("j/k", "nav"), entry("enter", "select"), entry("/", "search")}
		if m.scr.controlsEnabled {
			entries = append(entries,
				entry("e", "edit"), entry("a", "add"), entry("u", "update"), entry("d", "delete"))
		}
		entries = append(entries,
			entry("c", "clear"), entry("x", "clear search"),
			entry("s", "stats"), entry("f", "reports filter"),
			entry("L", "logout"), entry("q", "quit"))
	}

	divider := st.Desc.Render(strings.Repeat("─", max(m.width, 10)))
	return lipgloss.JoinVertical(lipgloss.Left, divider, " "+strings.Join(entries, sep))
}

// --- overlays ---

func (m *Model) viewOverlay() string {
	st := m.styles

	if m.scr.alert != "" {
		return st.AlertBox.Render(m.scr.alert + st.Desc.Render("  (any key)"))
	}

	switch m.modal {
	case modalConfirmDelete:
		return st.AlertBox.Render("Delete this vehicle?  " +
			st.Key.Render("y") + st.Desc.Render(" yes  ") +
			st.Key.Render("n") + st.Desc.Render(" no"))
	case modalDateFilter:
		from, to := m.fromDate, m.toDate
		fromLabel, toLabel := "From", "To"
		if m.dateField == 0 {
			fromLabel = st.Key.Render("From")
		} else {
			toLabel = st.Key.Render("To")
		}
		return st.PanelBox.Render(fmt.Sprintf(
			"Reports date range (YYYY-MM-DD)\n%s: %-10s  %s: %-10s\n%s",
			fromLabel, from, toLabel, to,
			st.Key.Render("enter")+st.Desc.Render(" apply  ")+
				st.Key.Render("tab")+st.Desc.Render(" field  ")+
				st.Key.Render("esc")+st.Desc.Render(" cancel"),
		))
	}
	return ""
}
