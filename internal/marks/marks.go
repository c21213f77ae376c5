// Package marks holds the persistent multi-select mark set for one open
// series view. The store is an explicit session object handed to the
// selection resolver and command dispatch, never package-level state. Marks
// survive series refreshes and are deliberately not reconciled against the
// parser output: a mark naming a deleted patch is a benign no-op downstream.
package marks

// Store is a set of marked patch names. The zero value is usable.
type Store struct {
	names map[string]struct{}
}

// NewStore returns an empty mark store.
func NewStore() *Store {
	return &Store{names: make(map[string]struct{})}
}

// Contains reports whether the given patch name is marked.
func (s *Store) Contains(name string) bool {
	if s == nil || s.names == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

// Add marks the given names. Marking an already-marked name is a no-op.
func (s *Store) Add(names ...string) {
	s.ensure()
	for _, name := range names {
		if name == "" {
			continue
		}
		s.names[name] = struct{}{}
	}
}

// Remove unmarks the given names. Removing an unmarked name is a no-op.
func (s *Store) Remove(names ...string) {
	if s == nil || s.names == nil {
		return
	}
	for _, name := range names {
		delete(s.names, name)
	}
}

// Toggle flips mark membership per name: absent names are added, present
// names removed. This is per-name, not a global inversion of the set.
func (s *Store) Toggle(names ...string) {
	s.ensure()
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.names[name]; ok {
			delete(s.names, name)
		} else {
			s.names[name] = struct{}{}
		}
	}
}

// Clear drops every mark.
func (s *Store) Clear() {
	if s == nil || len(s.names) == 0 {
		return
	}
	for name := range s.names {
		delete(s.names, name)
	}
}

// Names returns the marked names in unspecified order. Callers that need
// stack order run the result through Series.CanonicalOrder.
func (s *Store) Names() []string {
	if s == nil || len(s.names) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	return names
}

// Len returns the number of marked names.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

func (s *Store) ensure() {
	if s.names == nil {
		s.names = make(map[string]struct{})
	}
}
