package session

import (
	"sort"
	"strings"
	"time"

	"github.com/nboyer/gymlog/internal/db"
	"github.com/nboyer/gymlog/internal/models"
)

// Filter narrows the session list. Zero values match everything:
// empty Date matches all dates, empty Type matches all types
// (otherwise a case-insensitive substring match), empty Status matches
// planned and completed alike.
type Filter struct {
	Date   string
	Type   string
	Status models.Status
}

// Query produces display-ready session lists.
type Query struct {
	repo *db.Repository
}

// NewQuery creates a Query over the given repository.
func NewQuery(repo *db.Repository) *Query {
	return &Query{repo: repo}
}

// List returns the sessions matching f, most recent date first.
func (q *Query) List(f Filter) ([]models.Session, error) {
	sessions, err := q.repo.All()
	if err != nil {
		return nil, err
	}
	return Apply(f, sessions), nil
}

// Apply filters and orders sessions: all filters must match (AND),
// then date descending, planned before completed on equal dates,
// stable otherwise.
func Apply(f Filter, sessions []models.Session) []models.Session {
	typeNeedle := strings.ToLower(strings.TrimSpace(f.Type))

	matched := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Date != "" && s.Date != f.Date {
			continue
		}
		if typeNeedle != "" && !strings.Contains(strings.ToLower(s.Type), typeNeedle) {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		matched = append(matched, s)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		di, dj := parseDate(matched[i].Date), parseDate(matched[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return matched[i].Status == models.StatusPlanned && matched[j].Status == models.StatusCompleted
	})

	return matched
}

// parseDate reads a stored date as a calendar date. Dates are written
// zero-padded, but non-padded ones still compare correctly rather than
// falling back to string order.
func parseDate(date string) time.Time {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t
	}
	if t, err := time.Parse("2006-1-2", date); err == nil {
		return t
	}
	return time.Time{}
}
