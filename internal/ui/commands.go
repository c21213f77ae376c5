package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/logging/events"
	"github.com/tohojo/stgit-console/internal/menu"
	"github.com/tohojo/stgit-console/internal/selection"
	"github.com/tohojo/stgit-console/internal/stgit"
)

// pendingCommand tracks one command through its interactive pipeline:
// target resolution, the optional free-text input, and any confirmation
// steps, until the engine invocation is dispatched.
type pendingCommand struct {
	cmd     menu.Command
	req     selection.Request
	patches []string
	opts    menu.Options

	inputDone    bool
	stageAllDone bool
	spillDone    bool
	remoteDone   bool
	remoteUpdate bool
}

// actionMsg wraps the outcome of an engine invocation. done is non-nil
// for background invocations and fires when the subprocess exits.
type actionMsg struct {
	result menu.ActionResult
	done   <-chan error
}

type backgroundDoneMsg struct {
	verb string
	err  error
}

type showResultMsg struct {
	patch string
	id    string
	err   error
}

func (m *Model) selectionContext() selection.Context {
	return selection.Context{
		Range:  m.list.Range(),
		Point:  m.list.CurrentName(),
		Marks:  m.marks,
		Series: m.series.Series(),
	}
}

// startCommand begins the pipeline for a command key press.
func (m *Model) startCommand(cmd menu.Command) tea.Cmd {
	if m.loading {
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	m.pending = &pendingCommand{cmd: cmd, req: cmd.Policy.Request()}

	res, err := selection.Resolve(m.pending.req, m.selectionContext())
	if err != nil {
		if errors.Is(err, selection.ErrNoneSelected) && cmd.Policy.AllowEmpty {
			return m.continuePending()
		}
		m.pending = nil
		m.errMsg = err.Error()
		return nil
	}
	if res.Prompt != nil {
		m.openPatchPrompt(res.Prompt)
		return nil
	}
	m.pending.patches = res.Patches
	return m.continuePending()
}

// continuePending advances the pipeline after each interactive step and
// dispatches the invocation once nothing more needs asking.
func (m *Model) continuePending() tea.Cmd {
	p := m.pending
	if p == nil {
		return nil
	}
	if p.cmd.ID == menu.ShowID {
		return m.dispatchShow()
	}
	if p.cmd.Input.Prompt != "" && !p.inputDone {
		m.openInputPrompt()
		return nil
	}
	switch p.cmd.ID {
	case "refresh":
		p.opts.IndexOnly = m.opts.IndexOnly
		if !p.opts.IndexOnly && m.opts.ConfirmStageAll && !p.stageAllDone && m.runner.IndexEmpty() {
			m.openConfirm(confirmStageAll, "Index is empty; refresh will include all worktree changes. Continue?")
			return nil
		}
	case "delete":
		if !p.spillDone {
			files, err := menu.DeleteFiles(m.runner, p.patches)
			if err != nil {
				m.failPending(err)
				return nil
			}
			if len(files) > 0 {
				m.openConfirm(confirmSpill, fmt.Sprintf("Spill the contents of %d changed file(s) back into the worktree?", len(files)))
				return nil
			}
			p.spillDone = true
		}
	case "rebase":
		opts, err := menu.PlanRebase(stgit.BranchInfo{
			Name:     m.series.Branch(),
			Upstream: m.series.Upstream(),
			Remote:   m.series.Remote(),
		})
		if err != nil {
			m.failPending(err)
			return nil
		}
		p.opts.Target = opts.Target
		if remote := m.series.Remote(); remote != "" && !p.remoteDone {
			m.openConfirm(confirmRemoteUpdate, fmt.Sprintf("Fetch %s before rebasing?", remote))
			return nil
		}
	}

	inv, err := menu.Build(p.cmd, p.opts, p.patches)
	if err != nil {
		m.failPending(err)
		return nil
	}
	remote := ""
	if p.cmd.ID == "rebase" && p.remoteUpdate {
		remote = m.series.Remote()
	}
	m.pending = nil
	if !inv.Background {
		m.loading = true
	}
	m.pendingVerb = inv.Verb
	events.Command.Dispatch(inv.Verb, inv.Patches)
	return m.executeCmd(inv, remote)
}

// executeCmd runs the invocation off the UI goroutine. When a remote is
// given, its fetch is issued first; the rebase only depends on the fetch
// having been started, so its completion is not awaited.
func (m *Model) executeCmd(inv menu.Invocation, remote string) tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		if remote != "" {
			if _, err := runner.UpdateRemote(remote); err != nil {
				return actionMsg{result: menu.ActionResult{Verb: inv.Verb, Err: err}}
			}
		}
		result, done := menu.Run(runner, inv)
		return actionMsg{result: result, done: done}
	}
}

func (m *Model) dispatchShow() tea.Cmd {
	p := m.pending
	if len(p.patches) == 0 {
		m.failPending(selection.ErrNoneSelected)
		return nil
	}
	patch := p.patches[0]
	m.pending = nil
	m.loading = true
	runner := m.runner
	return func() tea.Msg {
		id, err := runner.CommitID(patch)
		return showResultMsg{patch: patch, id: id, err: err}
	}
}

func (m *Model) failPending(err error) {
	verb := ""
	if m.pending != nil {
		verb = m.pending.cmd.Verb
	}
	m.pending = nil
	m.mode = ModeList
	m.errMsg = err.Error()
	events.Command.Error(verb, err)
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	action, ok := msg.(actionMsg)
	if !ok {
		return nil
	}
	result := action.result
	m.loading = false
	m.pendingVerb = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Command.Error(result.Verb, result.Err)
		m.refreshBackend()
		return nil
	}
	if result.Background {
		events.Command.Background(result.Verb)
		m.setInfo(fmt.Sprintf("stg %s running", result.Verb))
		if action.done != nil {
			verb := result.Verb
			done := action.done
			return func() tea.Msg {
				return backgroundDoneMsg{verb: verb, err: <-done}
			}
		}
		return nil
	}
	events.Command.Success(result.Verb, result.Info)
	if m.opts.Verbose && result.Info != "" {
		m.setInfo(result.Info)
	}
	m.refreshBackend()
	return nil
}

func (m *Model) handleBackgroundDoneMsg(msg tea.Msg) tea.Cmd {
	doneMsg, ok := msg.(backgroundDoneMsg)
	if !ok {
		return nil
	}
	if doneMsg.err != nil {
		m.errMsg = fmt.Sprintf("stg %s: %s", doneMsg.verb, doneMsg.err)
		events.Command.Error(doneMsg.verb, doneMsg.err)
	} else {
		events.Command.Success(doneMsg.verb, "")
		if m.opts.Verbose {
			m.setInfo(fmt.Sprintf("stg %s finished", doneMsg.verb))
		}
	}
	m.refreshBackend()
	return nil
}

func (m *Model) handleShowResultMsg(msg tea.Msg) tea.Cmd {
	show, ok := msg.(showResultMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if show.err != nil {
		m.errMsg = show.err.Error()
		return nil
	}
	m.setInfo(fmt.Sprintf("%s %s", show.patch, show.id))
	return nil
}

func (m *Model) refreshBackend() {
	if m.backend != nil {
		m.backend.Refresh()
	}
}
