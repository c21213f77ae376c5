package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the model without a running program. Tests feed key and
// backend messages through Send; any command a handler returns is executed
// inline, so multi-step flows (invocation, background wait, re-sync) run
// to completion before Send returns.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and runs the resulting commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.dispatch(msg)
}

func (h *Harness) dispatch(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.runCmd(cmd)
}

// runCmd executes a command chain synchronously. Update batches its
// commands, so a batch is unpacked and each member run in order; cursor
// blink ticks come back as messages with no handler and end their chain.
func (h *Harness) runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, member := range batch {
			h.runCmd(member)
		}
		return
	}
	h.dispatch(msg)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
