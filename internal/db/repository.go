package db

import (
	"errors"

	"github.com/nboyer/gymlog/internal/models"
)

// ErrNotFound is returned when no session matches a lookup.
var ErrNotFound = errors.New("session not found")

// Repository is the CRUD layer over the stored session list. Every
// mutation is a whole-list read-modify-write: load all sessions, change
// one entry, save all sessions back.
type Repository struct {
	store *SessionStore
}

// NewRepository creates a Repository over the given store.
func NewRepository(store *SessionStore) *Repository {
	return &Repository{store: store}
}

// All returns every stored session.
func (r *Repository) All() ([]models.Session, error) {
	return r.store.LoadAll()
}

// FindByID returns the session with the given id, or ErrNotFound.
// The returned value is a snapshot; mutating it changes nothing until
// it is passed back through Upsert.
func (r *Repository) FindByID(id string) (*models.Session, error) {
	sessions, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			s := sessions[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// FindByDateAndStatus returns the first session matching date and
// status, or ErrNotFound. Used to detect planning conflicts.
func (r *Repository) FindByDateAndStatus(date string, status models.Status) (*models.Session, error) {
	sessions, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Date == date && sessions[i].Status == status {
			s := sessions[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// Upsert replaces the entry whose id matches, or appends when none
// matches, and persists immediately.
func (r *Repository) Upsert(session models.Session) error {
	sessions, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}
	return r.store.SaveAll(sessions)
}

// Delete removes the session with the given id. Deleting an id that is
// not present is a no-op, not an error.
func (r *Repository) Delete(id string) error {
	sessions, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.store.SaveAll(kept)
}
