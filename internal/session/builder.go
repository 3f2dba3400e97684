package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nboyer/gymlog/internal/db"
	"github.com/nboyer/gymlog/internal/models"
)

// PlannedExercise is one exercise to plan: a name and how many sets
// the user intends to perform.
type PlannedExercise struct {
	Name string
	Sets int
}

// CreateRequest holds the data needed to plan a new session.
type CreateRequest struct {
	Date      string // ISO calendar date, YYYY-MM-DD
	Type      string
	Exercises []PlannedExercise
}

// ConfirmReplace is asked before an existing planned session on the
// same date is replaced. Returning false keeps the existing session.
type ConfirmReplace func(existing models.Session) bool

// Builder plans new sessions, enforcing at most one planned session
// per date.
type Builder struct {
	repo *db.Repository
}

// NewBuilder creates a Builder over the given repository.
func NewBuilder(repo *db.Repository) *Builder {
	return &Builder{repo: repo}
}

// Create validates req, materializes the planned sets and persists a
// new session with status planned. When a planned session already
// exists for the same date, confirm decides: replace it (the old id is
// gone for good) or abort with ErrReplaceDeclined.
func (b *Builder) Create(req CreateRequest, confirm ConfirmReplace) (*models.Session, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	exercises := make([]models.Exercise, 0, len(req.Exercises))
	for _, pe := range req.Exercises {
		series := make([]models.Series, pe.Sets)
		exercises = append(exercises, models.Exercise{
			Name:   strings.TrimSpace(pe.Name),
			Series: series,
		})
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Type:      strings.TrimSpace(req.Type),
		Status:    models.StatusPlanned,
		Exercises: exercises,
	}

	existing, err := b.repo.FindByDateAndStatus(req.Date, models.StatusPlanned)
	switch {
	case err == nil:
		if confirm == nil || !confirm(*existing) {
			return nil, ErrReplaceDeclined
		}
		if err := b.repo.Delete(existing.ID); err != nil {
			return nil, err
		}
	case !errors.Is(err, db.ErrNotFound):
		return nil, err
	}

	if err := b.repo.Upsert(session); err != nil {
		return nil, err
	}
	return &session, nil
}

func validateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.Date) == "" {
		return &ValidationError{Field: "date", Msg: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &ValidationError{Field: "date", Msg: "not a valid YYYY-MM-DD date"}
	}
	if strings.TrimSpace(req.Type) == "" {
		return &ValidationError{Field: "type", Msg: "session type is required"}
	}
	if len(req.Exercises) == 0 {
		return &ValidationError{Field: "exercises", Msg: "at least one exercise is required"}
	}
	for _, pe := range req.Exercises {
		if strings.TrimSpace(pe.Name) == "" {
			return &ValidationError{Field: "exercises", Msg: "exercise name must not be empty"}
		}
		if pe.Sets < 1 {
			return &ValidationError{Field: "exercises", Msg: "planned set count must be at least 1"}
		}
	}
	return nil
}
