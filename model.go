package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mveld/burrow/internal/browser"
	"github.com/mveld/burrow/internal/config"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 10
	uiOverhead        = 7 // header (1) + status (1) + borders (4) + padding (1)
)

type model struct {
	session *browser.Session
	config  *config.Config

	mode        mode
	searchInput textinput.Model
	pendingG    bool // first half of the gg chord

	width        int
	height       int
	scrollOffset int
	showPreview  bool

	statusMsg    string
	statusExpiry time.Time

	selected string // final selection, printed to stdout after the program exits
	quitting bool
}

func newModel(session *browser.Session, cfg *config.Config) *model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "type to filter"
	ti.SetValue(session.Query())

	return &model{
		session:     session,
		config:      cfg,
		mode:        modeNormal,
		searchInput: ti,
		showPreview: cfg.PreviewEnabled,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("burrow")
}

func (m *model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(d)
}
