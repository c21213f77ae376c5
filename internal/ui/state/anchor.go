package state

// SetAnchor drops the range anchor on the patch under the cursor. A
// second call on the same patch clears it.
func (l *List) SetAnchor() bool {
	name := l.CurrentName()
	if name == "" {
		return false
	}
	if l.Anchor == name {
		l.Anchor = ""
		return false
	}
	l.Anchor = name
	return true
}

// ClearAnchor drops the range anchor.
func (l *List) ClearAnchor() {
	l.Anchor = ""
}

// HasRange reports whether an active range exists: an anchor is set and
// both endpoints are present in the full series.
func (l *List) HasRange() bool {
	return len(l.Range()) > 0
}

// Range returns the contiguous run of patch names between the anchor and
// the cursor, inclusive, in series order. The span is computed over the
// full series rather than the filtered view, so it never skips patches a
// filter happens to hide. Returns nil when no anchor is set or either
// endpoint is gone.
func (l *List) Range() []string {
	if l.Anchor == "" {
		return nil
	}
	cursor := l.CurrentName()
	if cursor == "" {
		return nil
	}
	lo := l.fullIndexOf(l.Anchor)
	hi := l.fullIndexOf(cursor)
	if lo < 0 || hi < 0 {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	names := make([]string, 0, hi-lo+1)
	for _, entry := range l.Full[lo : hi+1] {
		names = append(names, entry.Name)
	}
	return names
}

// InRange reports whether the named patch falls inside the active range.
func (l *List) InRange(name string) bool {
	for _, n := range l.Range() {
		if n == name {
			return true
		}
	}
	return false
}

func (l *List) fullIndexOf(name string) int {
	for i, entry := range l.Full {
		if entry.Name == name {
			return i
		}
	}
	return -1
}

func (l *List) cleanupAnchor() {
	if l.Anchor == "" {
		return
	}
	if l.fullIndexOf(l.Anchor) < 0 {
		l.Anchor = ""
	}
}
