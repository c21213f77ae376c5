package stgit

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func fakeEngine(t *testing.T, script string) string {
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
	return path
}

func TestArgvAppendsPatchesAfterSeparator(t *testing.T) {
	argv := Argv(VerbDelete, []string{"--spill"}, []string{"a", "b"})
	expected := []string{"delete", "--spill", "--", "a", "b"}
	if !reflect.DeepEqual(argv, expected) {
		t.Fatalf("unexpected argv %v", argv)
	}
}

func TestArgvOmitsSeparatorWithoutPatches(t *testing.T) {
	argv := Argv(VerbUndo, nil, nil)
	if !reflect.DeepEqual(argv, []string{"undo"}) {
		t.Fatalf("unexpected argv %v", argv)
	}
}

func TestRunnerRunCapturesOutput(t *testing.T) {
	engine := fakeEngine(t, `echo "+ first # one"`)
	runner := NewRunner(engine, t.TempDir())
	output, err := runner.Run("series", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "first") {
		t.Fatalf("expected captured output, got %q", output)
	}
}

func TestRunnerRunSurfacesExitStatus(t *testing.T) {
	engine := fakeEngine(t, "echo 'stg: no patches applied' >&2\nexit 2")
	runner := NewRunner(engine, t.TempDir())
	_, err := runner.Run(VerbRefresh, nil, nil)
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *InvocationError, got %v", err)
	}
	if invErr.ExitCode != 2 {
		t.Fatalf("expected exit code 2, got %d", invErr.ExitCode)
	}
	if !strings.Contains(invErr.Error(), "no patches applied") {
		t.Fatalf("expected diagnostics in error, got %q", invErr.Error())
	}
}

func TestRunnerStartSignalsCompletion(t *testing.T) {
	engine := fakeEngine(t, "exit 0")
	runner := NewRunner(engine, t.TempDir())
	done, err := runner.Start(VerbEdit, nil, []string{"p1"})
	if err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
}

func TestRunnerStartReportsFailure(t *testing.T) {
	engine := fakeEngine(t, "exit 3")
	runner := NewRunner(engine, t.TempDir())
	done, err := runner.Start(VerbMail, nil, nil)
	if err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	var invErr *InvocationError
	if !errors.As(<-done, &invErr) {
		t.Fatalf("expected *InvocationError from background wait")
	}
	if invErr.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", invErr.ExitCode)
	}
}

func TestFetchSeriesParsesListing(t *testing.T) {
	engine := fakeEngine(t, `printf '+ one # first\n> two # second\n- three # third\n'`)
	runner := NewRunner(engine, t.TempDir())
	series, err := runner.FetchSeries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series.Entries))
	}
	if series.Current() != "two" {
		t.Fatalf("expected current two, got %q", series.Current())
	}
}

func TestPatchFilesSplitsLines(t *testing.T) {
	engine := fakeEngine(t, `printf 'src/a.go\nsrc/b.go\n'`)
	runner := NewRunner(engine, t.TempDir())
	files, err := runner.PatchFiles("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"src/a.go", "src/b.go"}) {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestPatchFilesEmptyOutput(t *testing.T) {
	engine := fakeEngine(t, "exit 0")
	runner := NewRunner(engine, t.TempDir())
	files, err := runner.PatchFiles("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Fatalf("expected no files, got %v", files)
	}
}

func TestNewRunnerDefaultsExecutable(t *testing.T) {
	runner := NewRunner("", "/repo")
	if runner.Executable != "stg" {
		t.Fatalf("expected stg default, got %q", runner.Executable)
	}
}
