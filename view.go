package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var mainContent string
	if m.showPreview {
		fileList := m.renderFileList(m.width / 2)
		preview := m.renderPreview(m.width - m.width/2)
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, fileList, preview)
	} else {
		mainContent = m.renderFileList(m.width)
	}

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		statusBar,
	)
}

func (m *model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	return headerStyle.Render(fmt.Sprintf("burrow — %s", m.session.Dir()))
}

// renderFileList renders the ranked entry list with the cursor highlighted
func (m *model) renderFileList(width int) string {
	availableHeight := m.height - uiOverhead
	if availableHeight < 3 {
		availableHeight = 3
	}

	results := m.session.Results()
	cursor := m.session.Cursor()

	// Keep the cursor visible
	if cursor >= 0 {
		if cursor < m.scrollOffset {
			m.scrollOffset = cursor
		}
		if cursor >= m.scrollOffset+availableHeight {
			m.scrollOffset = cursor - availableHeight + 1
		}
	}
	if m.scrollOffset > len(results) {
		m.scrollOffset = 0
	}

	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("57")).
		Foreground(lipgloss.Color("230"))
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
	dirStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("81")).
		Bold(true)

	maxNameLen := width - 6
	if maxNameLen < 10 {
		maxNameLen = 10
	}

	var items []string
	endIdx := m.scrollOffset + availableHeight
	if endIdx > len(results) {
		endIdx = len(results)
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		entry := m.session.EntryAt(i)

		name := runewidth.Truncate(entry.Name, maxNameLen, "...")
		display := name
		if m.session.Query() != "" && i != cursor {
			display = highlightMatches(name, results[i].Positions)
		}

		marker := "  "
		if entry.IsDir {
			marker = "▸ "
			if i != cursor {
				display = dirStyle.Render(display)
			}
		}

		line := marker + display
		if i == cursor {
			line = selectedStyle.Render(marker + name)
		} else {
			line = normalStyle.Render(line)
		}
		items = append(items, line)
	}

	if len(results) == 0 {
		items = append(items, lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("  no matches"))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width - 2).
		Height(availableHeight)

	return borderStyle.Render(strings.Join(items, "\n"))
}

// renderPreview renders the preview pane from the current scroll offset down
func (m *model) renderPreview(width int) string {
	availableHeight := m.height - uiOverhead
	if availableHeight < 3 {
		availableHeight = 3
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var lines []string
	if m.session.Preview.Loaded() {
		all := m.session.Preview.Lines
		start := m.session.Preview.Offset
		// Offset is unclamped in the core; stop at the last line here
		if start >= len(all) {
			start = len(all) - 1
			if start < 0 {
				start = 0
			}
		}
		end := start + availableHeight
		if end > len(all) {
			end = len(all)
		}
		for _, line := range all[start:end] {
			line = strings.ReplaceAll(line, "\t", "    ")
			lines = append(lines, runewidth.Truncate(line, width-4, "…"))
		}
	} else {
		lines = append(lines, dimStyle.Render("no preview"))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width - 2).
		Height(availableHeight)

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) renderStatusBar() string {
	barStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Padding(0, 1)

	var modeBadge string
	if m.mode == modeInsert {
		modeBadge = modeStyle.Background(lipgloss.Color("105")).Render("INSERT")
	} else {
		modeBadge = modeStyle.Background(lipgloss.Color("114")).Render("NORMAL")
	}

	var middle string
	switch {
	case m.statusMsg != "":
		middle = m.statusMsg
	case m.mode == modeInsert:
		middle = m.searchInput.View()
	case m.session.Query() != "":
		middle = "/" + m.session.Query()
	default:
		middle = "i filter · enter select · y yank · o open · p preview · q quit"
	}

	count := fmt.Sprintf("%d/%d", len(m.session.Results()), m.session.SnapshotSize())

	gap := m.width - lipgloss.Width(modeBadge) - lipgloss.Width(middle) - lipgloss.Width(count) - 4
	if gap < 1 {
		gap = 1
	}

	return barStyle.Render(modeBadge + " " + middle + strings.Repeat(" ", gap) + count)
}

// highlightMatches renders the fuzzy-matched character positions in a name
func highlightMatches(text string, positions []int) string {
	if len(positions) == 0 {
		return text
	}

	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("226")).
		Bold(true)

	matched := make(map[int]bool, len(positions))
	for _, idx := range positions {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(text) {
		if matched[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
