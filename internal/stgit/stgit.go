package stgit

import (
	"fmt"
	"os/exec"
	"strings"
)

// Verbs understood by the engine. The console never invents verbs beyond
// this set; anything else is a programming error caught in menu wiring.
const (
	VerbInit     = "init"
	VerbNew      = "new"
	VerbEdit     = "edit"
	VerbFloat    = "float"
	VerbRename   = "rename"
	VerbSink     = "sink"
	VerbCommit   = "commit"
	VerbUncommit = "uncommit"
	VerbRefresh  = "refresh"
	VerbRepair   = "repair"
	VerbRebase   = "rebase"
	VerbDelete   = "delete"
	VerbGoto     = "goto"
	VerbUndo     = "undo"
	VerbRedo     = "redo"
	VerbMail     = "mail"
)

const defaultExecutable = "stg"

// InvocationError reports a non-zero engine exit. Patch-stack mutation is
// not safely idempotent, so invocations are never retried; the failure is
// surfaced with the captured diagnostic output and left to the user.
type InvocationError struct {
	Verb     string
	ExitCode int
	Output   string
}

func (e *InvocationError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("stg %s exited with status %d", e.Verb, e.ExitCode)
	}
	return fmt.Sprintf("stg %s exited with status %d: %s", e.Verb, e.ExitCode, out)
}

// Runner invokes the external patch-stack engine. Dir scopes every
// invocation to one repository; Executable overrides the engine binary name.
type Runner struct {
	Executable string
	Dir        string
}

// NewRunner returns a Runner for the given repository directory. An empty
// executable falls back to "stg".
func NewRunner(executable, dir string) *Runner {
	if strings.TrimSpace(executable) == "" {
		executable = defaultExecutable
	}
	return &Runner{Executable: executable, Dir: dir}
}

// Argv assembles the full argument vector for a verb: flattened arguments
// first, then a "--" separator and the target patch names when present.
func Argv(verb string, args, patches []string) []string {
	argv := make([]string, 0, len(args)+len(patches)+2)
	argv = append(argv, verb)
	argv = append(argv, args...)
	if len(patches) > 0 {
		argv = append(argv, "--")
		argv = append(argv, patches...)
	}
	return argv
}

func (r *Runner) command(argv []string) *exec.Cmd {
	cmd := exec.Command(r.Executable, argv...)
	cmd.Dir = r.Dir
	return cmd
}

// Run executes a verb synchronously and returns the captured output. A
// non-zero exit is returned as *InvocationError carrying the diagnostics.
func (r *Runner) Run(verb string, args, patches []string) (string, error) {
	argv := Argv(verb, args, patches)
	output, err := r.command(argv).CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &InvocationError{Verb: verb, ExitCode: exitErr.ExitCode(), Output: string(output)}
		}
		return "", fmt.Errorf("invoke %s %s: %w", r.Executable, verb, err)
	}
	return string(output), nil
}

// Start launches a verb without waiting for it and reports completion on the
// returned channel. Used for verbs that open an editor or perform network
// I/O: input stays live and the series re-sync is deferred until the task
// signals done.
func (r *Runner) Start(verb string, args, patches []string) (<-chan error, error) {
	argv := Argv(verb, args, patches)
	cmd := r.command(argv)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s %s: %w", r.Executable, verb, err)
	}
	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if exitErr, ok := err.(*exec.ExitError); ok {
			err = &InvocationError{Verb: verb, ExitCode: exitErr.ExitCode()}
		}
		done <- err
		close(done)
	}()
	return done, nil
}
