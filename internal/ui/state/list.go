// Package state holds the patch list view state: cursor position, fuzzy
// filter, viewport offset, and the visual range anchor. Mark membership is
// deliberately not kept here; marks live in their own store and survive
// refreshes independently of what the list displays.
package state

import (
	"github.com/tohojo/stgit-console/internal/stgit"
)

// List is the navigable view over the patch series. Entries holds the
// rows currently displayed (after filtering); Full holds the complete
// series in canonical order.
type List struct {
	Entries        []stgit.PatchEntry
	Full           []stgit.PatchEntry
	Filter         string
	FilterCursor   int
	Cursor         int
	Anchor         string
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a list over the given series entries.
func NewList(entries []stgit.PatchEntry) *List {
	l := &List{Cursor: -1, LastCursor: -1}
	l.UpdateEntries(entries)
	return l
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []stgit.PatchEntry) []stgit.PatchEntry {
	dup := make([]stgit.PatchEntry, len(entries))
	copy(dup, entries)
	return dup
}

// IndexOf returns the display index of the named patch, or -1.
func (l *List) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, entry := range l.Entries {
		if entry.Name == name {
			return i
		}
	}
	return -1
}

// CurrentName returns the patch name under the cursor, or "" when the
// list is empty or the cursor is out of range.
func (l *List) CurrentName() string {
	if l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return ""
	}
	return l.Entries[l.Cursor].Name
}

// UpdateEntries replaces the backing series, keeping the cursor on the
// same patch when it survives the refresh and dropping a range anchor
// whose patch disappeared.
func (l *List) UpdateEntries(entries []stgit.PatchEntry) {
	keep := l.CurrentName()
	prevOffset := l.ViewportOffset
	l.Full = CloneEntries(entries)
	l.cleanupAnchor()
	l.applyFilter()
	if len(l.Entries) == 0 {
		l.ViewportOffset = 0
		return
	}
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	if prevOffset < 0 || prevOffset > len(l.Entries)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
