package stgit

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseSeriesWellFormed(t *testing.T) {
	input := "" +
		" + first # base cleanup\n" +
		"0> second # wip refactor\n" +
		" - third # pending\n" +
		" ! fourth # parked\n"
	series, err := ParseSeries(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(series.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(series.Entries))
	}
	expected := []PatchEntry{
		{Name: "first", State: StateApplied, Empty: false, Description: "base cleanup"},
		{Name: "second", State: StateCurrent, Empty: true, Description: "wip refactor"},
		{Name: "third", State: StateUnapplied, Empty: false, Description: "pending"},
		{Name: "fourth", State: StateHidden, Empty: false, Description: "parked"},
	}
	// Only a blank in column 0 means non-empty; "0" marks an empty patch.
	if !reflect.DeepEqual(series.Entries, expected) {
		t.Fatalf("unexpected entries:\ngot  %#v\nwant %#v", series.Entries, expected)
	}
	if series.Current() != "second" {
		t.Fatalf("expected current patch second, got %q", series.Current())
	}
}

func TestParseSeriesEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n"} {
		series, err := ParseSeries(input)
		if err != nil {
			t.Fatalf("empty input %q must parse: %v", input, err)
		}
		if len(series.Entries) != 0 {
			t.Fatalf("expected empty series for %q, got %d entries", input, len(series.Entries))
		}
	}
}

func TestParseSeriesLengthMatchesLineCount(t *testing.T) {
	lines := []string{
		" + a # one",
		" + b # two",
		" > c # three",
		" - d # four",
	}
	series, err := ParseSeries(strings.Join(lines, "\n") + "\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(series.Entries) != len(lines) {
		t.Fatalf("expected %d entries, got %d", len(lines), len(series.Entries))
	}
	for i, entry := range series.Entries {
		switch entry.State {
		case StateCurrent, StateApplied, StateUnapplied, StateHidden:
		default:
			t.Fatalf("entry %d has impossible state %v", i, entry.State)
		}
	}
}

func TestParseSeriesUnknownStateCode(t *testing.T) {
	_, err := ParseSeries(" + good # fine\n ? bad # broken\n")
	if err == nil {
		t.Fatalf("expected parse error for unknown state code")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Code != '?' {
		t.Fatalf("expected offending code '?', got %q", string(parseErr.Code))
	}
	if parseErr.LineNo != 2 {
		t.Fatalf("expected line 2, got %d", parseErr.LineNo)
	}
	if !strings.Contains(parseErr.Error(), "?") {
		t.Fatalf("error must name the offending code: %q", parseErr.Error())
	}
}

func TestParseSeriesSpaceStateCodeIsInvalid(t *testing.T) {
	// "-  p2 # msg2": empty marker "-", state code " ". A literal space is
	// not one of the four recognized codes.
	_, err := ParseSeries("+> p1 # msg1\n-  p2 # msg2\n")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Code != ' ' {
		t.Fatalf("expected offending code space, got %q", string(parseErr.Code))
	}
}

func TestParseSeriesFirstLineOfSpecExample(t *testing.T) {
	series, err := ParseSeries("+> p1 # msg1\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	entry := series.Entries[0]
	if entry.Name != "p1" || entry.State != StateCurrent || !entry.Empty || entry.Description != "msg1" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestParseSeriesWithoutDescription(t *testing.T) {
	series, err := ParseSeries(" + bare\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if series.Entries[0].Name != "bare" || series.Entries[0].Description != "" {
		t.Fatalf("unexpected entry %#v", series.Entries[0])
	}
}

func TestCanonicalOrder(t *testing.T) {
	series, err := ParseSeries(" + A # a\n + B # b\n > C # c\n - D # d\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got := series.CanonicalOrder([]string{"C", "A"})
	if !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("expected [A C], got %v", got)
	}
	if got := series.CanonicalOrder([]string{"D", "D", "B"}); !reflect.DeepEqual(got, []string{"B", "D"}) {
		t.Fatalf("expected duplicates collapsed into [B D], got %v", got)
	}
	if got := series.CanonicalOrder([]string{"gone"}); got != nil {
		t.Fatalf("expected unknown names dropped, got %v", got)
	}
	if got := series.CanonicalOrder(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestSeriesContainsAndNames(t *testing.T) {
	series, err := ParseSeries(" > one # x\n - two # y\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !series.Contains("two") || series.Contains("three") {
		t.Fatalf("membership lookup broken")
	}
	if !reflect.DeepEqual(series.Names(), []string{"one", "two"}) {
		t.Fatalf("unexpected names %v", series.Names())
	}
}
