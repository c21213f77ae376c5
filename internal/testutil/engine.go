// Package testutil provides a scriptable stand-in for the patch-stack
// engine so package tests can exercise real subprocess plumbing without
// a working stg installation.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/tohojo/stgit-console/internal/stgit"
)

// FakeEngine writes the script as an executable engine in a fresh temp
// directory and returns a runner bound to it. The script sees the full
// argument vector of each invocation ($1 is the verb).
func FakeEngine(t *testing.T, script string) *stgit.Runner {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine scripts require a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "stg")
	body := "#!/bin/sh\n" + script
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("failed to write fake engine: %v", err)
	}
	return &stgit.Runner{Executable: path, Dir: dir}
}

// LoggingEngine is a FakeEngine that records every invocation's argument
// vector, one line per call, in the returned log file. Extra script lines
// run after the logging line.
func LoggingEngine(t *testing.T, extra string) (*stgit.Runner, string) {
	t.Helper()
	script := `echo "$@" >> "$(dirname "$0")/calls.log"`
	if extra != "" {
		script += "\n" + extra
	}
	runner := FakeEngine(t, script)
	return runner, filepath.Join(runner.Dir, "calls.log")
}

// InitGitRepo turns dir into a git repository, skipping the test when git
// is not installed.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	cmd := exec.Command("git", "init", "-q")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git init: %v (%s)", err, out)
	}
}
