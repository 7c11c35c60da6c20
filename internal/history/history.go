package history

import "vicimap/internal/feature"

// Store keeps committed snapshots with a cursor. The editor hands it a
// new snapshot per finished interaction; the core never reaches in.
type Store struct {
	snapshots []feature.Snapshot
	cursor    int
}

// New returns a store seeded with the initial working state.
func New(initial feature.Snapshot) *Store {
	return &Store{snapshots: []feature.Snapshot{initial.Clone()}}
}

// Commit records a new state. Anything on the redo side of the cursor is
// discarded.
func (s *Store) Commit(snap feature.Snapshot) {
	s.snapshots = append(s.snapshots[:s.cursor+1], snap.Clone())
	s.cursor = len(s.snapshots) - 1
}

// Undo steps back and returns the previous snapshot, or false at the
// beginning of history. The returned snapshot is a copy; mutating it does
// not corrupt the store.
func (s *Store) Undo() (feature.Snapshot, bool) {
	if s.cursor == 0 {
		return feature.Snapshot{}, false
	}
	s.cursor--
	return s.snapshots[s.cursor].Clone(), true
}

// Redo steps forward after an undo.
func (s *Store) Redo() (feature.Snapshot, bool) {
	if s.cursor >= len(s.snapshots)-1 {
		return feature.Snapshot{}, false
	}
	s.cursor++
	return s.snapshots[s.cursor].Clone(), true
}

// CanUndo reports whether Undo would succeed.
func (s *Store) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Store) CanRedo() bool { return s.cursor < len(s.snapshots)-1 }
