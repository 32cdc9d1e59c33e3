// Package dataset loads the three source datasets (session registry,
// location registry, facility GeoJSON layer) and publishes them as an
// immutable in-memory snapshot.
package dataset

import (
	"sync/atomic"
	"time"

	"github.com/city-rec/dropin-cli/internal/model"
)

// Snapshot is one read-only view of all loaded data. Nothing mutates a
// snapshot after it is published; reloads build a fresh one.
type Snapshot struct {
	Sessions      []model.Session
	Locations     []model.Location
	Facilities    []model.Facility
	FacilityIndex map[string]model.Facility
	LoadedAt      time.Time
}

// Store holds the current snapshot behind an atomic pointer. Hot reloads
// swap the whole snapshot; queries in flight keep reading the one they
// started with.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store seeded with the given snapshot.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Replace publishes a new snapshot atomically.
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}
