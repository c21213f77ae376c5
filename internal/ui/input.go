package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKey(key)
	case ModeConfirm:
		return m.handleConfirmKey(key)
	}
	return m.handleListKey(key)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if m.filterActive {
		if handled, cmd := m.handleFilterKey(msg); handled {
			return cmd
		}
	}
	switch msg.String() {
	case "ctrl+c", "q":
		events.App.Quit("keyboard")
		return tea.Quit
	case "esc", "ctrl+g":
		return m.handleEscape()
	case "up", "ctrl+p":
		if m.list.MoveCursorUp() {
			m.syncViewport()
		}
		return nil
	case "down", "ctrl+n":
		if m.list.MoveCursorDown() {
			m.syncViewport()
		}
		return nil
	case "pgup":
		if m.list.MoveCursorPageUp(m.maxVisibleRows()) {
			m.syncViewport()
		}
		return nil
	case "pgdown":
		if m.list.MoveCursorPageDown(m.maxVisibleRows()) {
			m.syncViewport()
		}
		return nil
	case "home":
		if m.list.MoveCursorHome() {
			m.syncViewport()
		}
		return nil
	case "end":
		if m.list.MoveCursorEnd() {
			m.syncViewport()
		}
		return nil
	case ".":
		if m.list.MoveCursorToCurrent() {
			m.syncViewport()
		}
		return nil
	case "/":
		m.filterActive = true
		return nil
	case " ", "tab":
		return m.toggleMarkAtPoint()
	case "u":
		if count := m.marks.Len(); count > 0 {
			m.marks.Clear()
			events.Series.MarksCleared(count)
		}
		return nil
	case "v":
		active := m.list.SetAnchor()
		events.Series.RangeAnchor(m.list.Anchor, active)
		return nil
	case "enter":
		if cmd, ok := m.registry.ByKey("enter"); ok {
			return m.startCommand(cmd)
		}
		return nil
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		if cmd, ok := m.registry.ByKey(string(msg.Runes)); ok {
			return m.startCommand(cmd)
		}
	}
	return nil
}

// handleEscape unwinds transient state one layer at a time: the filter
// first, then the range anchor, then the console itself.
func (m *Model) handleEscape() tea.Cmd {
	if m.filterActive || m.list.Filter != "" {
		m.filterActive = false
		before := m.list.FilterCursorPos()
		m.list.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.syncViewport()
		return nil
	}
	if m.list.Anchor != "" {
		m.list.ClearAnchor()
		events.Series.RangeAnchor("", false)
		return nil
	}
	events.App.Quit("escape")
	return tea.Quit
}

func (m *Model) toggleMarkAtPoint() tea.Cmd {
	name := m.list.CurrentName()
	if name == "" {
		return nil
	}
	m.marks.Toggle(name)
	events.Series.Mark(name, m.marks.Contains(name))
	if m.list.MoveCursorDown() {
		m.syncViewport()
	}
	return nil
}

// handleFilterKey edits the incremental filter while it has focus. Keys
// it does not consume fall through to the list bindings so navigation
// still works mid-filter.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+u":
		if m.list.Filter == "" {
			return false, nil
		}
		before := m.list.FilterCursorPos()
		m.list.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.syncViewport()
		return true, nil
	case "ctrl+w":
		before := m.list.FilterCursorPos()
		if !m.list.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.syncViewport()
		return true, nil
	case "ctrl+a":
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorStart() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		return true, nil
	case "ctrl+e":
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorEnd() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		return true, nil
	case "enter":
		m.filterActive = false
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.list.FilterCursorPos()
		if !m.list.DeleteFilterRuneBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.syncViewport()
		return true, nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyRunes:
		if msg.Alt {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeyLeft:
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorRuneBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		return true, nil
	case tea.KeyRight:
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorRuneForward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	before := m.list.FilterCursorPos()
	if !m.list.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport()
	return true
}
