package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mveld/burrow/internal/logger"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minTerminalWidth {
			m.width = minTerminalWidth
		}
		if m.height < minTerminalHeight {
			m.height = minTerminalHeight
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles Normal mode: keys drive navigation and preview
// scrolling, never the query (except Esc, which clears it).
func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key other than a second g breaks the chord
	if key != "g" {
		m.pendingG = false
	}

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "i", "/":
		m.mode = modeInsert
		m.searchInput.Focus()
		return m, nil

	case "j", "down":
		m.session.MoveNext()

	case "k", "up":
		m.session.MovePrev()

	case "h", "left":
		m.session.Preview.ScrollUp()

	case "l", "right":
		m.session.Preview.ScrollDown()

	case "g":
		if m.pendingG {
			m.pendingG = false
			m.session.MoveFirst()
		} else {
			m.pendingG = true
		}

	case "G":
		m.session.MoveLast()

	case "enter":
		return m.activate()

	case "esc":
		m.session.ClearQuery()
		m.searchInput.SetValue("")

	case "p":
		m.showPreview = !m.showPreview

	case "y":
		m.yankSelection()

	case "o":
		return m, m.openSelection()
	}

	return m, nil
}

// updateInsert handles Insert mode: keystrokes edit the query through the
// textinput widget, which is then synced into the session.
func (m *model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.searchInput.Blur()
		return m, nil

	case "enter":
		return m.activate()

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetQuery(m.searchInput.Value())
	return m, cmd
}

// activate resolves the highlighted entry: descend into directories, or
// finish the session with a file selection. Directory read errors surface
// in the status bar and leave the listing untouched.
func (m *model) activate() (tea.Model, tea.Cmd) {
	path, done, err := m.session.Activate()
	if err != nil {
		logger.Error("Navigation failed: %v", err)
		m.setStatus(fmt.Sprintf("Cannot open: %v", err), 3*time.Second)
		return m, nil
	}
	if done {
		m.selected = path
		m.quitting = true
		return m, tea.Quit
	}

	// Navigation cleared the session query; mirror that in the widget
	m.searchInput.SetValue("")
	m.scrollOffset = 0
	return m, nil
}
