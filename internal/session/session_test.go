package session

import (
	"testing"

	"github.com/nboyer/gymlog/internal/db"
)

// memKV keeps the engines' tests off sqlite; the db package covers the
// real store.
type memKV struct {
	data map[string]string
}

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func newTestRepo(t *testing.T) *db.Repository {
	t.Helper()
	return db.NewRepository(db.NewSessionStore(&memKV{data: make(map[string]string)}))
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
