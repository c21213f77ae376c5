package stgit

import (
	"fmt"
	"strings"
)

// PatchState classifies a patch within the series.
type PatchState int

const (
	StateCurrent PatchState = iota
	StateApplied
	StateUnapplied
	StateHidden
)

// String returns the human-readable state name.
func (s PatchState) String() string {
	switch s {
	case StateCurrent:
		return "current"
	case StateApplied:
		return "applied"
	case StateUnapplied:
		return "unapplied"
	case StateHidden:
		return "hidden"
	}
	return fmt.Sprintf("PatchState(%d)", int(s))
}

// Glyph returns the single-character state code used by the engine.
func (s PatchState) Glyph() string {
	switch s {
	case StateCurrent:
		return ">"
	case StateApplied:
		return "+"
	case StateUnapplied:
		return "-"
	case StateHidden:
		return "!"
	}
	return "?"
}

// PatchEntry is one parsed series line. Entries are immutable snapshots;
// a refresh replaces the whole series rather than mutating entries in place.
type PatchEntry struct {
	Name        string
	State       PatchState
	Empty       bool
	Description string
}

// Series is the ordered patch sequence as reported by the engine, bottom of
// the stack first. The position of the current patch marks the boundary
// between applied and unapplied patches.
type Series struct {
	Entries []PatchEntry
}

// ParseError reports a series line that violates the engine's output
// contract. The engine output is otherwise trusted, so this is fatal to the
// parse attempt that produced it.
type ParseError struct {
	LineNo int
	Line   string
	Code   byte
}

func (e *ParseError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("series line %d: unrecognized state code %q in %q", e.LineNo, string(e.Code), e.Line)
	}
	return fmt.Sprintf("series line %d: malformed entry %q", e.LineNo, e.Line)
}

const descriptionSeparator = "# "

// ParseSeries turns the engine's series listing into an ordered Series.
// Each line carries an empty marker, a one-character state code, the patch
// name, and an optional description after a literal "# " separator. Zero
// lines is a valid empty series. A malformed line aborts the remaining
// parse; already-parsed entries are discarded along with the error.
func ParseSeries(text string) (Series, error) {
	var series Series
	if strings.TrimSpace(text) == "" {
		return series, nil
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	series.Entries = make([]PatchEntry, 0, len(lines))
	for i, line := range lines {
		entry, err := parseSeriesLine(i+1, line)
		if err != nil {
			return Series{}, err
		}
		series.Entries = append(series.Entries, entry)
	}
	return series, nil
}

func parseSeriesLine(lineNo int, line string) (PatchEntry, error) {
	if len(line) < 3 {
		return PatchEntry{}, &ParseError{LineNo: lineNo, Line: line}
	}
	empty := line[0]
	code := line[1]
	rest := strings.TrimLeft(line[2:], " \t")
	if rest == "" {
		return PatchEntry{}, &ParseError{LineNo: lineNo, Line: line}
	}
	state, err := stateForCode(lineNo, line, code)
	if err != nil {
		return PatchEntry{}, err
	}
	name := rest
	description := ""
	if idx := strings.Index(rest, descriptionSeparator); idx >= 0 {
		name = strings.TrimSpace(rest[:idx])
		description = strings.TrimSpace(rest[idx+len(descriptionSeparator):])
	}
	if name == "" {
		return PatchEntry{}, &ParseError{LineNo: lineNo, Line: line}
	}
	return PatchEntry{
		Name:        name,
		State:       state,
		Empty:       empty != ' ',
		Description: description,
	}, nil
}

func stateForCode(lineNo int, line string, code byte) (PatchState, error) {
	switch code {
	case '>':
		return StateCurrent, nil
	case '+':
		return StateApplied, nil
	case '-':
		return StateUnapplied, nil
	case '!':
		return StateHidden, nil
	}
	return 0, &ParseError{LineNo: lineNo, Line: line, Code: code}
}

// Names returns the patch names in series order.
func (s Series) Names() []string {
	names := make([]string, 0, len(s.Entries))
	for _, entry := range s.Entries {
		names = append(names, entry.Name)
	}
	return names
}

// Contains reports whether a patch with the given name is in the series.
func (s Series) Contains(name string) bool {
	for _, entry := range s.Entries {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// Current returns the name of the topmost applied patch, or "" when no
// patch is applied.
func (s Series) Current() string {
	for _, entry := range s.Entries {
		if entry.State == StateCurrent {
			return entry.Name
		}
	}
	return ""
}

// CanonicalOrder reorders an arbitrary subset of patch names into series
// order, dropping names the series does not know and collapsing duplicates.
// Commands whose semantics depend on relative patch order (sink, float,
// commit) use this to turn the unordered mark set into a stable sequence.
func (s Series) CanonicalOrder(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	ordered := make([]string, 0, len(wanted))
	for _, entry := range s.Entries {
		if _, ok := wanted[entry.Name]; ok {
			ordered = append(ordered, entry.Name)
			delete(wanted, entry.Name)
		}
	}
	return ordered
}
