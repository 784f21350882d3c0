// Package tui is the terminal presentation layer of the saver. It renders
// the status message log and drives the session through keybindings, file
// pickers, and a save-name prompt.
//
// The package is split in the usual Bubble Tea fashion:
//   - model.go:  model structure and program entry
//   - update.go: message handling
//   - view.go:   rendering
//   - styles.go: color palette and styles
//   - keys.go:   keybindings
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amerikrainian/CoG-saver/pkg/config"
	"github.com/amerikrainian/CoG-saver/pkg/logging"
	"github.com/amerikrainian/CoG-saver/pkg/saves"
)

// mode identifies which screen currently owns the keyboard.
type mode int

const (
	modeMain       mode = iota // message log + keybindings
	modeSelectGame             // file picker: choose the live save file
	modeLoadSave               // file picker: choose an archive save
	modeNameSave               // text input: name a new archive save
)

type model struct {
	session  *saves.Session
	settings config.Settings
	log      *logging.Logger
	messages *messageLog

	viewport  viewport.Model
	picker    filepicker.Model
	nameInput textinput.Model
	keys      keyMap
	help      help.Model

	mode   mode
	width  int
	height int
	ready  bool
}

func newModel(session *saves.Session, settings config.Settings, messages *messageLog, log *logging.Logger) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128

	return &model{
		session:   session,
		settings:  settings,
		log:       log,
		messages:  messages,
		nameInput: ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// newPicker builds a file picker rooted at dir. allowedTypes restricts
// selectable files; nil allows everything.
func (m *model) newPicker(dir string, allowedTypes []string) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = allowedTypes
	fp.ShowHidden = m.settings.ShowHidden
	if m.ready {
		fp.Height = m.pickerHeight()
		fp.AutoHeight = false
	}
	return fp
}

func (m *model) pickerHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

// Run attaches the message log to the session, restores the previous
// selection (or selects initialSave when given) so its narration appears on
// screen, and blocks inside the Bubble Tea program until the user quits.
func Run(session *saves.Session, settings config.Settings, log *logging.Logger, initialSave string) error {
	messages := newMessageLog(settings.MaxMessages)
	session.SetNotifier(saves.NotifierFunc(messages.Append))
	if initialSave != "" {
		// Rejection is narrated in the log; the TUI starts unselected.
		_ = session.SelectLiveSave(initialSave)
	} else {
		session.Restore()
	}

	m := newModel(session, settings, messages, log)
	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
