package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/logging/events"
	"github.com/tohojo/stgit-console/internal/selection"
)

// promptStage distinguishes the two free-text prompts a command may open:
// the patch-name fallback from selection, then the command's own input
// (a new patch name, a cover letter path).
type promptStage int

const (
	stagePatch promptStage = iota
	stageInput
)

type promptState struct {
	stage    promptStage
	title    string
	value    string
	optional bool
}

type confirmKind int

const (
	confirmStageAll confirmKind = iota
	confirmSpill
	confirmRemoteUpdate
)

type confirmState struct {
	kind    confirmKind
	message string
}

func (m *Model) openPatchPrompt(p *selection.Prompt) {
	m.mode = ModePrompt
	m.prompt = &promptState{stage: stagePatch, title: p.Message}
	events.Command.PromptOpened(m.pending.cmd.Verb, p.Message)
}

func (m *Model) openInputPrompt() {
	input := m.pending.cmd.Input
	m.mode = ModePrompt
	m.prompt = &promptState{stage: stageInput, title: input.Prompt, optional: input.Optional}
	events.Command.PromptOpened(m.pending.cmd.Verb, input.Prompt)
}

func (m *Model) openConfirm(kind confirmKind, message string) {
	m.mode = ModeConfirm
	m.confirm = &confirmState{kind: kind, message: message}
	events.Command.ConfirmOpened(m.pending.cmd.Verb, message)
}

func (m *Model) cancelPending(reason string) {
	if m.pending != nil {
		events.Command.PromptCancelled(m.pending.cmd.Verb)
	}
	m.pending = nil
	m.prompt = nil
	m.confirm = nil
	m.mode = ModeList
	if reason != "" {
		m.setInfo(reason)
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	if m.prompt == nil || m.pending == nil {
		m.mode = ModeList
		return nil
	}
	switch msg.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		m.cancelPending("cancelled")
		return nil
	case tea.KeyEnter:
		return m.submitPrompt()
	case tea.KeyBackspace, tea.KeyCtrlH:
		if runes := []rune(m.prompt.value); len(runes) > 0 {
			m.prompt.value = string(runes[:len(runes)-1])
		}
		return nil
	case tea.KeyCtrlU:
		m.prompt.value = ""
		return nil
	case tea.KeySpace:
		m.prompt.value += " "
		return nil
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.prompt.value += string(msg.Runes)
		return nil
	}
	return nil
}

func (m *Model) submitPrompt() tea.Cmd {
	prompt := m.prompt
	m.prompt = nil
	m.mode = ModeList
	switch prompt.stage {
	case stagePatch:
		patches, err := selection.Answer(m.pending.req, m.selectionContext(), prompt.value)
		if err != nil {
			m.cancelPending("")
			m.errMsg = err.Error()
			return nil
		}
		m.pending.patches = patches
		return m.continuePending()
	case stageInput:
		if prompt.value == "" && !prompt.optional {
			m.cancelPending("")
			m.errMsg = prompt.title + " is required"
			return nil
		}
		m.pending.opts.Input = prompt.value
		m.pending.inputDone = true
		return m.continuePending()
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm == nil || m.pending == nil {
		m.mode = ModeList
		return nil
	}
	switch msg.String() {
	case "y", "Y", "enter":
		return m.resolveConfirm(true)
	case "n", "N":
		return m.resolveConfirm(false)
	case "esc", "ctrl+c", "ctrl+g":
		m.cancelPending("cancelled")
		return nil
	}
	return nil
}

func (m *Model) resolveConfirm(accepted bool) tea.Cmd {
	confirm := m.confirm
	m.confirm = nil
	m.mode = ModeList
	switch confirm.kind {
	case confirmStageAll:
		if !accepted {
			m.cancelPending("refresh cancelled")
			return nil
		}
		m.pending.stageAllDone = true
		return m.continuePending()
	case confirmSpill:
		m.pending.opts.Spill = accepted
		m.pending.spillDone = true
		return m.continuePending()
	case confirmRemoteUpdate:
		m.pending.remoteUpdate = accepted
		m.pending.remoteDone = true
		return m.continuePending()
	}
	return nil
}
