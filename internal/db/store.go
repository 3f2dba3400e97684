package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nboyer/gymlog/internal/models"
)

// sessionsKey is the single key all session data lives under. The value
// is the JSON-encoded session list, the same shape the app has always
// stored.
const sessionsKey = "gym_sessions"

// Record is one row of the string key/value table.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// KV is a persistent string store: get/set one value per key.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// gormKV backs KV with the records table.
type gormKV struct {
	db *gorm.DB
}

// NewKV returns a KV over the initialized database.
func NewKV() KV {
	return gormKV{db: DB}
}

func (g gormKV) Get(key string) (string, bool, error) {
	var rec Record
	err := g.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (g gormKV) Set(key, value string) error {
	rec := Record{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

// SessionStore persists the full session list as one JSON value.
// Every save fully overwrites the previous content.
type SessionStore struct {
	kv KV
}

// NewSessionStore creates a SessionStore over the given string store.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// LoadAll returns every stored session, or an empty list when nothing
// has been saved yet. Malformed stored data is an error, not an empty
// list: silently dropping a user's history would be worse than failing.
func (s *SessionStore) LoadAll() ([]models.Session, error) {
	raw, ok, err := s.kv.Get(sessionsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	if !ok {
		return []models.Session{}, nil
	}

	var sessions []models.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, fmt.Errorf("stored session data is corrupt: %w", err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return sessions, nil
}

// SaveAll replaces the stored session list with the given one.
func (s *SessionStore) SaveAll(sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	return s.kv.Set(sessionsKey, string(raw))
}
