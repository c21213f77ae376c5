package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/backend"
	"github.com/tohojo/stgit-console/internal/data/dispatcher"
	"github.com/tohojo/stgit-console/internal/marks"
	"github.com/tohojo/stgit-console/internal/menu"
	"github.com/tohojo/stgit-console/internal/state"
	"github.com/tohojo/stgit-console/internal/stgit"
	"github.com/tohojo/stgit-console/internal/theme"
	uistate "github.com/tohojo/stgit-console/internal/ui/state"
)

// Mode distinguishes what the keyboard currently drives: the patch list,
// a free-text prompt, or a yes/no confirmation.
type Mode int

const (
	ModeList Mode = iota
	ModePrompt
	ModeConfirm
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the UI-facing runtime configuration.
type Options struct {
	ShowPatchNames  bool
	IndexOnly       bool
	ConfirmStageAll bool
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
}

// Model implements the Bubble Tea model for the patch stack console.
type Model struct {
	list    *uistate.List
	marks   *marks.Store
	mode    Mode
	prompt  *promptState
	confirm *confirmState
	pending *pendingCommand

	loading      bool
	pendingVerb  string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	filterActive bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	opts     Options
	runner   *stgit.Runner
	backend  *backend.Watcher
	series   state.SeriesStore
	disp     *dispatcher.Dispatcher
	registry *menu.Registry

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over the given runner and watcher.
func NewModel(runner *stgit.Runner, watcher *backend.Watcher, opts Options) *Model {
	series := state.NewSeriesStore()
	m := &Model{
		list:     uistate.NewList(nil),
		marks:    marks.NewStore(),
		mode:     ModeList,
		opts:     opts,
		runner:   runner,
		backend:  watcher,
		series:   series,
		disp:     dispatcher.New(series),
		registry: menu.BuildRegistry(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(actionMsg{}):         m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(backgroundDoneMsg{}): m.handleBackgroundDoneMsg,
		reflect.TypeOf(showResultMsg{}):     m.handleShowResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

// maxVisibleRows returns the number of patch rows that fit between the
// header and the bottom bar.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 4 // header, blank, status, filter prompt
	if m.opts.ShowFooter {
		reserved += 2
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		return ""
	}
	return m.infoMsg
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}
