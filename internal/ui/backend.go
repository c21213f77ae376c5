package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/backend"
	"github.com/tohojo/stgit-console/internal/logging/events"
	"github.com/tohojo/stgit-console/internal/stgit"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds one poll result into the stores and the list.
// A parse failure keeps the last good series on screen and surfaces the
// error; an uninitialized branch clears the list instead.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		var parseErr *stgit.ParseError
		if errors.As(evt.Err, &parseErr) {
			events.Series.ParseFailed(parseErr)
			m.errMsg = parseErr.Error()
			return
		}
		var invErr *stgit.InvocationError
		if evt.Kind == backend.KindSeries && errors.As(evt.Err, &invErr) {
			// The series query fails on a branch without stack metadata;
			// treat that as "not initialized" rather than an error.
			m.series.SetInitialized(false)
			m.series.SetSeries(stgit.Series{})
			m.list.UpdateEntries(nil)
			m.syncViewport()
			return
		}
		m.errMsg = evt.Err.Error()
		return
	}
	res := m.disp.Handle(evt)
	if res.SeriesUpdated {
		series := m.series.Series()
		m.list.UpdateEntries(series.Entries)
		m.syncViewport()
		events.Series.Refreshed(m.series.Branch(), len(series.Entries))
		if m.errMsg != "" {
			m.errMsg = ""
		}
	}
}
