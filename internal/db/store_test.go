package db

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nboyer/gymlog/internal/models"
)

// memKV is an in-memory KV for tests that don't need sqlite.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func sampleSessions() []models.Session {
	return []models.Session{
		{
			ID:     "a1",
			Date:   "2025-06-01",
			Type:   "Legs",
			Status: models.StatusPlanned,
			Exercises: []models.Exercise{
				{Name: "Squat", Series: []models.Series{{}, {}, {}}},
			},
		},
		{
			ID:     "b2",
			Date:   "2025-05-20",
			Type:   "Full Body",
			Status: models.StatusCompleted,
			Exercises: []models.Exercise{
				{Name: "Deadlift", Series: []models.Series{
					{Reps: intPtr(5), Weight: floatPtr(100), Rest: intPtr(120)},
				}},
			},
		},
	}
}

// TestLoadAllEmpty verifies that a store with no data yields an empty
// list, not an error.
func TestLoadAllEmpty(t *testing.T) {
	store := NewSessionStore(newMemKV())

	sessions, err := store.LoadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want 0", len(sessions))
	}
}

// TestSaveLoadRoundTrip verifies that saving then loading reproduces an
// equivalent list, nulls included.
func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewSessionStore(newMemKV())
	want := sampleSessions()

	if err := store.SaveAll(want); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	got, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}

	// Saving what was just loaded must be a no-op in content terms.
	if err := store.SaveAll(got); err != nil {
		t.Fatalf("second SaveAll: %v", err)
	}
	again, err := store.LoadAll()
	if err != nil {
		t.Fatalf("second LoadAll: %v", err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("save-load-save changed the data:\ngot  %+v\nwant %+v", again, want)
	}
}

// TestSaveAllOverwrites verifies that SaveAll fully replaces prior
// content instead of merging.
func TestSaveAllOverwrites(t *testing.T) {
	store := NewSessionStore(newMemKV())

	if err := store.SaveAll(sampleSessions()); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	if err := store.SaveAll([]models.Session{}); err != nil {
		t.Fatalf("SaveAll empty: %v", err)
	}

	sessions, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions after overwrite with empty list, want 0", len(sessions))
	}
}

// TestLoadAllCorrupt verifies the fail-fast choice: malformed stored
// data surfaces as an error rather than being treated as empty.
func TestLoadAllCorrupt(t *testing.T) {
	kv := newMemKV()
	kv.data[sessionsKey] = "{not json"
	store := NewSessionStore(kv)

	if _, err := store.LoadAll(); err == nil {
		t.Error("expected an error for corrupt stored data, got nil")
	}
}

// TestGormKV exercises the real sqlite-backed KV: absent key, set,
// get, overwrite.
func TestGormKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := Initialize(path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer Close()

	kv := NewKV()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := kv.Get("k"); err != nil || !ok || v != "v1" {
		t.Errorf("Get(k) = %q ok=%v err=%v, want \"v1\" ok=true err=nil", v, ok, err)
	}

	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := kv.Get("k"); v != "v2" {
		t.Errorf("Get(k) after overwrite = %q, want \"v2\"", v)
	}
}
