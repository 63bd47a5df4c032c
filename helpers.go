package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"github.com/mveld/burrow/internal/logger"
)

// yankSelection copies the highlighted entry's path to the system clipboard
func (m *model) yankSelection() {
	entry, ok := m.session.Selection()
	if !ok {
		return
	}

	if err := clipboard.WriteAll(entry.Path); err != nil {
		logger.Warn("Clipboard write failed: %v", err)
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err), 3*time.Second)
		return
	}
	m.setStatus(fmt.Sprintf("Copied: %s", entry.Path), 2*time.Second)
}

// openSelection opens the highlighted file with the system default opener,
// without leaving the browser
func (m *model) openSelection() tea.Cmd {
	entry, ok := m.session.Selection()
	if !ok || entry.IsDir {
		return nil
	}

	return func() tea.Msg {
		if err := open.Run(entry.Path); err != nil {
			logger.Warn("Open failed for %s: %v", entry.Path, err)
		}
		return nil
	}
}
