package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amerikrainian/CoG-saver/pkg/saves"
)

// Update implements tea.Model. Uses a pointer receiver so mode transitions
// and component state survive across messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
		m.debugf("quit requested")
		return m, tea.Quit
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(sizeMsg)
	}

	switch m.mode {
	case modeSelectGame, modeLoadSave:
		return m.updatePicker(msg)
	case modeNameSave:
		return m.updateNameInput(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m *model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	viewportWidth := msg.Width - 4
	viewportHeight := msg.Height - 6
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(viewportWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
	}

	m.help.Width = msg.Width
	m.nameInput.Width = msg.Width - 8
	m.picker.Height = m.pickerHeight()
	m.picker.AutoHeight = false
	m.syncViewport()
}

// updateMain handles the message-log screen.
func (m *model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quicksave):
			_ = m.session.QuickSave()
			m.syncViewport()
			return m, nil

		case key.Matches(keyMsg, m.keys.Quickload):
			_ = m.session.QuickLoad()
			m.syncViewport()
			return m, nil

		case key.Matches(keyMsg, m.keys.CreateSave):
			if err := m.session.RequireSelection(); err != nil {
				m.syncViewport()
				return m, nil
			}
			suggested := m.session.SuggestedName()
			m.nameInput.SetValue(suggested)
			m.nameInput.CursorEnd()
			m.mode = modeNameSave
			m.debugf("entering name-save mode, suggested %q", suggested)
			m.syncViewport()
			return m, m.nameInput.Focus()

		case key.Matches(keyMsg, m.keys.LoadSave):
			if err := m.session.RequireSelection(); err != nil {
				m.syncViewport()
				return m, nil
			}
			dir := m.session.ArchiveDir()
			if dir == "" {
				dir = m.settings.StartDir
			}
			m.picker = m.newPicker(dir, []string{saves.Extension})
			m.mode = modeLoadSave
			return m, m.picker.Init()

		case key.Matches(keyMsg, m.keys.SelectGame):
			start := m.settings.StartDir
			if live := m.session.LiveSave(); live != "" {
				start = filepath.Dir(live)
			}
			m.picker = m.newPicker(start, nil)
			m.mode = modeSelectGame
			return m, m.picker.Init()

		case key.Matches(keyMsg, m.keys.CopyPath):
			m.copyArchiveDir()
			m.syncViewport()
			return m, nil

		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// Let the viewport handle scrolling keys and mouse wheel
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updatePicker drives both file picker screens. Esc cancels back to the main
// screen without touching state; a selection feeds the session.
func (m *model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modeMain
		m.syncViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		switch m.mode {
		case modeSelectGame:
			m.debugf("picker chose live save candidate %s", path)
			_ = m.session.SelectLiveSave(path)
		case modeLoadSave:
			m.debugf("picker chose archive save %s", path)
			_ = m.session.LoadArchiveSave(path)
		}
		m.mode = modeMain
		m.syncViewport()
		return m, cmd
	}

	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.messages.Append(fmt.Sprintf("%s is not a %s file", filepath.Base(path), saves.Extension))
		m.syncViewport()
	}

	return m, cmd
}

// updateNameInput drives the save-name prompt. Enter with a non-empty name
// archives the live save under that name; Esc or an empty name cancels.
func (m *model) updateNameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.nameInput.Blur()
			m.mode = modeMain
			m.syncViewport()
			return m, nil

		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			m.nameInput.Blur()
			m.mode = modeMain
			if name == "" {
				m.messages.Append("Save cancelled")
			} else {
				// The save prompt plays the save-dialog's role of fixing up
				// the extension; suggested names contain dots from the
				// timestamp, so suffix-check rather than filepath.Ext.
				target := name
				if !strings.HasSuffix(target, saves.Extension) {
					target += saves.Extension
				}
				if dir := m.session.ArchiveDir(); dir != "" {
					target = filepath.Join(dir, target)
				}
				_ = m.session.CreateArchiveSave(target)
			}
			m.syncViewport()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *model) copyArchiveDir() {
	dir := m.session.ArchiveDir()
	if dir == "" {
		m.messages.Append("No saves directory yet - select a game first")
		return
	}
	if err := clipboard.WriteAll(dir); err != nil {
		m.messages.Append(fmt.Sprintf("Error copying to clipboard: %v", err))
		return
	}
	m.messages.Append(fmt.Sprintf("Copied to clipboard: %s", dir))
}

func (m *model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(logStyle.Render(strings.Join(m.messages.Lines(), "\n")))
	m.viewport.GotoBottom()
}

func (m *model) debugf(format string, v ...interface{}) {
	if m.log != nil {
		m.log.Debugf(format, v...)
	}
}
