package menu

import (
	"fmt"
	"strings"

	"github.com/tohojo/stgit-console/internal/argv"
	"github.com/tohojo/stgit-console/internal/stgit"
)

// Invocation is one fully assembled engine call.
type Invocation struct {
	Verb       string
	Args       []string
	Patches    []string
	Background bool
}

// Options carries the per-invocation inputs gathered by the UI: the
// secondary prompt answer and the outcomes of any confirmation flows.
type Options struct {
	Input     string
	Spill     bool
	IndexOnly bool
	Target    string
}

// Build assembles the engine invocation for a command over the resolved
// patch list. Commands whose policy forbids empty targets never reach
// this with an empty list; whole-stack verbs ignore it.
func Build(cmd Command, opts Options, patches []string) (Invocation, error) {
	inv := Invocation{Verb: cmd.Verb, Background: cmd.Background}
	switch cmd.ID {
	case "init", "repair", "undo", "redo", "uncommit":
	case "new":
		if name := strings.TrimSpace(opts.Input); name != "" {
			inv.Args = argv.Flatten(argv.Lit(name))
		}
	case "edit", "float", "sink", "commit", "delete":
		inv.Patches = patches
		if cmd.ID == "delete" {
			inv.Args = argv.Flatten(argv.If(opts.Spill, "--spill"))
		}
	case "goto":
		if len(patches) != 1 {
			return Invocation{}, fmt.Errorf("goto needs exactly one patch, got %d", len(patches))
		}
		inv.Patches = patches
	case "rename":
		if len(patches) != 1 {
			return Invocation{}, fmt.Errorf("rename needs exactly one patch, got %d", len(patches))
		}
		newName := strings.TrimSpace(opts.Input)
		if newName == "" {
			return Invocation{}, fmt.Errorf("rename needs a new patch name")
		}
		inv.Args = argv.Flatten(argv.Strings(patches[0], newName))
	case "refresh":
		node := argv.Group(
			argv.If(opts.IndexOnly, "--index"),
			argv.If(len(patches) == 1, "--patch", first(patches)),
		)
		inv.Args = argv.Flatten(node)
	case "rebase":
		if strings.TrimSpace(opts.Target) == "" {
			return Invocation{}, &PreconditionError{Reason: "no upstream configured for this branch"}
		}
		inv.Args = argv.Flatten(argv.Lit(opts.Target))
	case "mail":
		inv.Patches = patches
		node := argv.Group(
			argv.If(strings.TrimSpace(opts.Input) != "",
				"--cover="+strings.TrimSpace(opts.Input), argv.AutoRecipientsFlag),
		)
		args, err := argv.PrepareMailArgs(argv.Flatten(node))
		if err != nil {
			return Invocation{}, err
		}
		inv.Args = args
	default:
		return Invocation{}, fmt.Errorf("no invocation for command %q", cmd.ID)
	}
	return inv, nil
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// Run executes the invocation through the runner and wraps the outcome.
// Background invocations return immediately with Background set; the
// caller re-synchronises once the completion channel fires.
func Run(r *stgit.Runner, inv Invocation) (ActionResult, <-chan error) {
	if inv.Background {
		done, err := r.Start(inv.Verb, inv.Args, inv.Patches)
		if err != nil {
			return ActionResult{Verb: inv.Verb, Err: err}, nil
		}
		return ActionResult{Verb: inv.Verb, Background: true, Info: fmt.Sprintf("stg %s started", inv.Verb)}, done
	}
	output, err := r.Run(inv.Verb, inv.Args, inv.Patches)
	if err != nil {
		return ActionResult{Verb: inv.Verb, Err: err}, nil
	}
	info := strings.TrimSpace(output)
	if info == "" {
		info = fmt.Sprintf("stg %s finished", inv.Verb)
	}
	return ActionResult{Verb: inv.Verb, Info: info}, nil
}

// PlanRebase checks the rebase precondition and prepares its target. The
// returned remote is non-empty when an update-remote confirmation should
// precede the rebase.
func PlanRebase(info stgit.BranchInfo) (Options, error) {
	if strings.TrimSpace(info.Upstream) == "" {
		return Options{}, &PreconditionError{Reason: fmt.Sprintf("branch %s has no configured upstream", info.Name)}
	}
	return Options{Target: info.Upstream}, nil
}

// DeleteFiles collects the union of files touched by the patches slated
// for deletion, preserving first-seen order. A non-empty result prompts
// the user about spilling the contents back into the worktree.
func DeleteFiles(r *stgit.Runner, patches []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, patch := range patches {
		patchFiles, err := r.PatchFiles(patch)
		if err != nil {
			return nil, err
		}
		for _, file := range patchFiles {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}
	return files, nil
}
