package ui

import (
	"strings"
	"testing"

	"github.com/tohojo/stgit-console/internal/backend"
	"github.com/tohojo/stgit-console/internal/stgit"
	"github.com/tohojo/stgit-console/internal/testutil"
)

func newTestHarness(t *testing.T, script string) *Harness {
	t.Helper()
	runner := testutil.FakeEngine(t, script)
	model := NewModel(runner, nil, Options{ShowPatchNames: true, Verbose: true})
	model.width = 80
	model.height = 24
	return NewHarness(model)
}

func testSeries(names ...string) stgit.Series {
	entries := make([]stgit.PatchEntry, len(names))
	for i, name := range names {
		state := stgit.StateApplied
		if i == len(names)-1 {
			state = stgit.StateUnapplied
		}
		entries[i] = stgit.PatchEntry{Name: name, State: state, Description: "subject " + name}
	}
	return stgit.Series{Entries: entries}
}

func seedSeries(h *Harness, series stgit.Series) {
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSeries, Data: series}})
}

func seedBranch(h *Harness, info stgit.BranchInfo) {
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindBranch, Data: info}})
}

func TestSeriesEventPopulatesList(t *testing.T) {
	h := newTestHarness(t, "exit 0")
	seedSeries(h, testSeries("p1", "p2", "p3"))
	m := h.Model()
	if len(m.list.Entries) != 3 {
		t.Fatalf("list has %d entries", len(m.list.Entries))
	}
	if !m.series.Initialized() {
		t.Fatalf("series marked uninitialized")
	}
}

func TestParseErrorKeepsLastGoodSeries(t *testing.T) {
	h := newTestHarness(t, "exit 0")
	seedSeries(h, testSeries("p1", "p2"))
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSeries,
		Err:  &stgit.ParseError{LineNo: 1, Line: "- p2 # msg", Code: ' '},
	}})
	m := h.Model()
	if len(m.list.Entries) != 2 {
		t.Fatalf("list lost entries on parse failure: %d", len(m.list.Entries))
	}
	if m.errMsg == "" {
		t.Fatalf("parse failure not surfaced")
	}
}

func TestEngineFailureMarksUninitialized(t *testing.T) {
	h := newTestHarness(t, "exit 0")
	seedSeries(h, testSeries("p1"))
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSeries,
		Err:  &stgit.InvocationError{Verb: "series", ExitCode: 2},
	}})
	m := h.Model()
	if m.series.Initialized() {
		t.Fatalf("series still marked initialized")
	}
	if len(m.list.Entries) != 0 {
		t.Fatalf("list not cleared: %d entries", len(m.list.Entries))
	}
}

func TestBranchEventFeedsHeader(t *testing.T) {
	h := newTestHarness(t, "exit 0")
	seedBranch(h, stgit.BranchInfo{Name: "topic", Upstream: "origin/topic", Remote: "origin"})
	view := h.View()
	if !strings.Contains(view, "topic") || !strings.Contains(view, "origin/topic") {
		t.Fatalf("header missing branch context:\n%s", view)
	}
}

func TestViewShowsPatchRows(t *testing.T) {
	h := newTestHarness(t, "exit 0")
	seedSeries(h, testSeries("fix-parser", "add-cache"))
	view := h.View()
	if !strings.Contains(view, "fix-parser") || !strings.Contains(view, "subject add-cache") {
		t.Fatalf("patch rows missing:\n%s", view)
	}
}

func TestViewHidesNamesWhenDisabled(t *testing.T) {
	runner := testutil.FakeEngine(t, "exit 0")
	model := NewModel(runner, nil, Options{ShowPatchNames: false})
	model.width = 80
	model.height = 24
	h := NewHarness(model)
	seedSeries(h, stgit.Series{Entries: []stgit.PatchEntry{
		{Name: "fix-parser", State: stgit.StateCurrent, Description: "rework the tokenizer"},
	}})
	view := h.View()
	if strings.Contains(view, "fix-parser") {
		t.Fatalf("patch name rendered despite show-patch-names=false:\n%s", view)
	}
	if !strings.Contains(view, "rework the tokenizer") {
		t.Fatalf("description missing:\n%s", view)
	}
}
