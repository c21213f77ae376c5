// Package menu defines the command set of the console: one Command spec
// per engine verb, carrying its key binding, selection policy, and prompt
// wiring. The UI resolves targets through the selection resolver using the
// policy declared here, then hands the resolved patches to Build.
package menu

import (
	"fmt"

	"github.com/tohojo/stgit-console/internal/selection"
	"github.com/tohojo/stgit-console/internal/stgit"
)

// Policy declares which selection sources a command consumes. AllowEmpty
// marks commands that run without any target (whole-stack verbs, and
// refresh which defaults to the topmost patch).
type Policy struct {
	UseRange     bool
	UseMarks     bool
	UsePoint     bool
	RequireExact bool
	Prompt       string
	AllowEmpty   bool
}

// Request translates the policy into a resolver request.
func (p Policy) Request() selection.Request {
	return selection.Request{
		UseRange:     p.UseRange,
		UseMarks:     p.UseMarks,
		UsePoint:     p.UsePoint,
		RequireExact: p.RequireExact,
		Prompt:       p.Prompt,
	}
}

// Input describes a command's secondary free-text prompt (a new patch
// name, a cover letter path), opened after target resolution.
type Input struct {
	Prompt   string
	Optional bool
}

// Command describes one console command.
type Command struct {
	ID         string
	Verb       string
	Key        string
	Label      string
	Policy     Policy
	Input      Input
	Background bool
}

// ActionResult communicates the outcome of executing a command.
type ActionResult struct {
	Verb       string
	Info       string
	Err        error
	Background bool
}

// PreconditionError reports a check that failed before the engine was
// invoked; the command aborts without spawning a subprocess.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// ShowID is the one command that queries instead of mutating; the UI
// resolves it to a commit id rather than an engine invocation.
const ShowID = "show"

// Commands returns the console command set in palette order.
func Commands() []Command {
	return []Command{
		{
			ID: "init", Verb: stgit.VerbInit, Key: "i", Label: "initialize patch stack",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "new", Verb: stgit.VerbNew, Key: "n", Label: "new patch",
			Policy:     Policy{AllowEmpty: true},
			Input:      Input{Prompt: "Patch name (optional)", Optional: true},
			Background: true,
		},
		{
			ID: "edit", Verb: stgit.VerbEdit, Key: "e", Label: "edit patch description",
			Policy:     Policy{UsePoint: true, RequireExact: true, Prompt: "Edit patch"},
			Background: true,
		},
		{
			ID: "float", Verb: stgit.VerbFloat, Key: "f", Label: "float patches to the top",
			Policy: Policy{UseRange: true, UseMarks: true, UsePoint: true, RequireExact: true, Prompt: "Float patch"},
		},
		{
			ID: "rename", Verb: stgit.VerbRename, Key: "R", Label: "rename patch",
			Policy: Policy{UsePoint: true, RequireExact: true, Prompt: "Rename patch"},
			Input:  Input{Prompt: "New name"},
		},
		{
			ID: "sink", Verb: stgit.VerbSink, Key: "s", Label: "sink patches down the stack",
			Policy: Policy{UseRange: true, UseMarks: true, UsePoint: true, RequireExact: true, Prompt: "Sink patch"},
		},
		{
			ID: "commit", Verb: stgit.VerbCommit, Key: "c", Label: "commit patches permanently",
			Policy: Policy{UseRange: true, UseMarks: true, UsePoint: true, RequireExact: true, Prompt: "Commit patch"},
		},
		{
			ID: "uncommit", Verb: stgit.VerbUncommit, Key: "C", Label: "uncommit into a new patch",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "refresh", Verb: stgit.VerbRefresh, Key: "r", Label: "refresh patch from changes",
			Policy: Policy{UsePoint: true, AllowEmpty: true},
		},
		{
			ID: "repair", Verb: stgit.VerbRepair, Key: "p", Label: "repair stack metadata",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "rebase", Verb: stgit.VerbRebase, Key: "b", Label: "rebase stack onto upstream",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "delete", Verb: stgit.VerbDelete, Key: "k", Label: "delete patches",
			Policy: Policy{UseRange: true, UseMarks: true, UsePoint: true, RequireExact: true, Prompt: "Delete patch"},
		},
		{
			ID: "goto", Verb: stgit.VerbGoto, Key: "g", Label: "go to patch",
			Policy: Policy{UsePoint: true, RequireExact: true, Prompt: "Goto patch"},
		},
		{
			ID: "undo", Verb: stgit.VerbUndo, Key: "z", Label: "undo last stack operation",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "redo", Verb: stgit.VerbRedo, Key: "Z", Label: "redo undone stack operation",
			Policy: Policy{AllowEmpty: true},
		},
		{
			ID: "mail", Verb: stgit.VerbMail, Key: "M", Label: "send patches as mail",
			Policy:     Policy{UseRange: true, UseMarks: true, UsePoint: true, RequireExact: true, Prompt: "Mail patch"},
			Input:      Input{Prompt: "Cover letter path (optional)", Optional: true},
			Background: true,
		},
		{
			ID: ShowID, Verb: "", Key: "enter", Label: "show patch commit",
			Policy: Policy{UsePoint: true, RequireExact: true, Prompt: "Show patch"},
		},
	}
}

// Registry exposes command lookup by ID and key binding.
type Registry struct {
	ordered []Command
	byID    map[string]Command
	byKey   map[string]Command
}

// BuildRegistry constructs the registry from the command set.
func BuildRegistry() *Registry {
	commands := Commands()
	r := &Registry{
		ordered: commands,
		byID:    make(map[string]Command, len(commands)),
		byKey:   make(map[string]Command, len(commands)),
	}
	for _, cmd := range commands {
		if _, dup := r.byID[cmd.ID]; dup {
			panic(fmt.Sprintf("duplicate command id %q", cmd.ID))
		}
		if _, dup := r.byKey[cmd.Key]; dup {
			panic(fmt.Sprintf("duplicate command key %q", cmd.Key))
		}
		r.byID[cmd.ID] = cmd
		r.byKey[cmd.Key] = cmd
	}
	return r
}

// Ordered returns the commands in palette order.
func (r *Registry) Ordered() []Command {
	return r.ordered
}

// ByID locates a command by identifier.
func (r *Registry) ByID(id string) (Command, bool) {
	cmd, ok := r.byID[id]
	return cmd, ok
}

// ByKey locates a command by key binding.
func (r *Registry) ByKey(key string) (Command, bool) {
	cmd, ok := r.byKey[key]
	return cmd, ok
}
