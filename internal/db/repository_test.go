package db

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nboyer/gymlog/internal/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(NewSessionStore(newMemKV()))
}

// TestUpsertInsertAndReplace verifies that Upsert appends unknown ids
// and replaces known ones in place.
func TestUpsertInsertAndReplace(t *testing.T) {
	repo := newTestRepo(t)

	s := sampleSessions()[0]
	if err := repo.Upsert(s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d sessions, want 1", len(all))
	}

	s.Type = "Shoulders"
	if err := repo.Upsert(s); err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}

	all, err = repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d sessions after replace, want 1", len(all))
	}
	if all[0].Type != "Shoulders" {
		t.Errorf("type = %q, want %q", all[0].Type, "Shoulders")
	}
}

// TestFindByID covers both the hit and the ErrNotFound miss.
func TestFindByID(t *testing.T) {
	repo := newTestRepo(t)
	for _, s := range sampleSessions() {
		if err := repo.Upsert(s); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	found, err := repo.FindByID("b2")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Type != "Full Body" {
		t.Errorf("type = %q, want %q", found.Type, "Full Body")
	}

	if _, err := repo.FindByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(nope) = %v, want ErrNotFound", err)
	}
}

// TestFindByIDReturnsSnapshot verifies that mutating a found session
// does not leak into the store before Upsert.
func TestFindByIDReturnsSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Upsert(sampleSessions()[0]); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	found, err := repo.FindByID("a1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	found.Status = models.StatusCompleted

	stored, err := repo.FindByID("a1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Status != models.StatusPlanned {
		t.Errorf("stored status = %q, want planned; mutation leaked through", stored.Status)
	}
}

// TestFindByDateAndStatus verifies conflict lookups by date+status.
func TestFindByDateAndStatus(t *testing.T) {
	repo := newTestRepo(t)
	for _, s := range sampleSessions() {
		if err := repo.Upsert(s); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	found, err := repo.FindByDateAndStatus("2025-06-01", models.StatusPlanned)
	if err != nil {
		t.Fatalf("FindByDateAndStatus: %v", err)
	}
	if found.ID != "a1" {
		t.Errorf("id = %q, want a1", found.ID)
	}

	// Same date, wrong status
	if _, err := repo.FindByDateAndStatus("2025-06-01", models.StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("wrong-status lookup = %v, want ErrNotFound", err)
	}
}

// TestDelete verifies the hard delete and that deleting an unknown id
// leaves the stored list untouched.
func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	for _, s := range sampleSessions() {
		if err := repo.Upsert(s); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	if err := repo.Delete("a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID("a1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted session still found: %v", err)
	}

	before, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if err := repo.Delete("never-existed"); err != nil {
		t.Fatalf("Delete unknown id: %v", err)
	}
	after, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("deleting an unknown id changed the list:\nbefore %+v\nafter  %+v", before, after)
	}
}
