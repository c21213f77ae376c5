package state

import (
	"testing"
)

func TestFilterNarrowsByName(t *testing.T) {
	l := NewList(entries("fix-parser", "add-cache", "fix-logging"))
	l.SetFilter("fix", 3)
	if len(l.Entries) != 2 {
		t.Fatalf("filtered to %d entries", len(l.Entries))
	}
	for _, entry := range l.Entries {
		if entry.Name != "fix-parser" && entry.Name != "fix-logging" {
			t.Fatalf("unexpected entry %q", entry.Name)
		}
	}
}

func TestFilterFallsBackToDescription(t *testing.T) {
	l := NewList(entries("p1", "p2"))
	l.SetFilter("subject p2", 10)
	if len(l.Entries) != 1 || l.Entries[0].Name != "p2" {
		t.Fatalf("description fallback failed: %v", l.Entries)
	}
}

func TestClearingFilterRestoresCursor(t *testing.T) {
	l := NewList(entries("p1", "p2", "p3"))
	l.Cursor = 2
	l.SetFilter("p1", 2)
	if l.CurrentName() != "p1" {
		t.Fatalf("filter cursor on %q", l.CurrentName())
	}
	l.SetFilter("", 0)
	if l.CurrentName() != "p3" {
		t.Fatalf("cursor restored to %q", l.CurrentName())
	}
}

func TestFilterEditing(t *testing.T) {
	l := NewList(entries("p1", "p2"))
	l.InsertFilterText("p2")
	if l.Filter != "p2" || l.FilterCursorPos() != 2 {
		t.Fatalf("filter %q cursor %d", l.Filter, l.FilterCursorPos())
	}
	l.DeleteFilterRuneBackward()
	if l.Filter != "p" {
		t.Fatalf("filter %q", l.Filter)
	}
	l.InsertFilterText("1 extra")
	l.DeleteFilterWordBackward()
	if l.Filter != "p1 " {
		t.Fatalf("filter %q", l.Filter)
	}
	l.MoveFilterCursorStart()
	if l.FilterCursorPos() != 0 {
		t.Fatalf("cursor %d", l.FilterCursorPos())
	}
	l.MoveFilterCursorEnd()
	if l.FilterCursorPos() != 3 {
		t.Fatalf("cursor %d", l.FilterCursorPos())
	}
}

func TestBestMatchPrefersExactThenPrefix(t *testing.T) {
	rows := entries("parse", "p", "parser-fix")
	if idx := BestMatchIndex(rows, "p"); idx != 1 {
		t.Fatalf("exact match index %d", idx)
	}
	if idx := BestMatchIndex(rows, "parser"); idx != 2 {
		t.Fatalf("prefix match index %d", idx)
	}
}
