// Package store holds the entity collections of the active event in memory.
//
// Every read returns copies, so callers must re-read after a mutation instead of
// holding on to records.
package store

import (
	"sync"

	"weddingplanner/internal/domain"
)

// Store is the sole owner of guest, table, vendor, task and visitor records for one event.
type Store struct {
	mu       sync.RWMutex
	guests   collection[domain.Guest]
	tables   collection[domain.Table]
	vendors  collection[domain.Vendor]
	tasks    collection[domain.Task]
	visitors []domain.Viewer
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		guests:  newCollection[domain.Guest]("guest"),
		tables:  newCollection[domain.Table]("table"),
		vendors: newCollection[domain.Vendor]("vendor"),
		tasks:   newCollection[domain.Task]("task"),
	}
}

// Load replaces every collection with the snapshot. Repeated ids keep their first
// position and the last value.
func (s *Store) Load(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	for _, g := range snap.Guests {
		s.guests.put(g.ID, g)
	}
	for _, t := range snap.Tables {
		s.tables.put(t.ID, t)
	}
	for _, v := range snap.Vendors {
		s.vendors.put(v.ID, v)
	}
	for _, t := range snap.Tasks {
		s.tasks.put(t.ID, t)
	}
	s.visitors = append([]domain.Viewer(nil), snap.Visitors...)
}

// Clear empties all collections and the visitor log in one step.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.guests.reset()
	s.tables.reset()
	s.vendors.reset()
	s.tasks.reset()
	s.visitors = nil
}

// Snapshot returns a consistent copy of all collections.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Guests:   s.guests.list(),
		Tables:   s.tables.list(),
		Vendors:  s.vendors.list(),
		Tasks:    s.tasks.list(),
		Visitors: append([]domain.Viewer{}, s.visitors...),
	}
}

func (s *Store) AddGuest(g domain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.add(g.ID, g)
}

// UpdateGuest applies fn to the stored guest. If fn returns an error the record is unchanged.
func (s *Store) UpdateGuest(id string, fn func(*domain.Guest) error) (domain.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.update(id, fn)
}

func (s *Store) RemoveGuest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.remove(id)
}

func (s *Store) Guest(id string) (domain.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guests.get(id)
}

func (s *Store) Guests() []domain.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guests.list()
}

func (s *Store) AddTable(t domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.add(t.ID, t)
}

func (s *Store) Table(id string) (domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables.get(id)
}

func (s *Store) Tables() []domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables.list()
}

func (s *Store) AddVendor(v domain.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendors.add(v.ID, v)
}

func (s *Store) UpdateVendor(id string, fn func(*domain.Vendor) error) (domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendors.update(id, fn)
}

func (s *Store) RemoveVendor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendors.remove(id)
}

func (s *Store) Vendor(id string) (domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendors.get(id)
}

func (s *Store) Vendors() []domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendors.list()
}

func (s *Store) AddTask(t domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.add(t.ID, t)
}

func (s *Store) UpdateTask(id string, fn func(*domain.Task) error) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.update(id, fn)
}

func (s *Store) RemoveTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.remove(id)
}

func (s *Store) Task(id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.get(id)
}

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.list()
}

// AppendVisit records a login. The visitor log is append-only.
func (s *Store) AppendVisit(v domain.Viewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitors = append(s.visitors, v)
}

func (s *Store) Visitors() []domain.Viewer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Viewer{}, s.visitors...)
}
