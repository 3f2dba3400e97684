package session

import (
	"github.com/nboyer/gymlog/internal/db"
	"github.com/nboyer/gymlog/internal/models"
)

// SeriesResult is one performed set as entered by the user. Reps and
// Weight are required for a valid completion; Rest stays optional.
type SeriesResult struct {
	Reps   *int
	Weight *float64
	Rest   *int
}

// ExerciseResult carries the performed sets for one exercise. Names
// come from the plan and pass through untouched; the set count may
// have grown if the user added extra sets while training.
type ExerciseResult struct {
	Name   string
	Series []SeriesResult
}

// Completer fills a planned session with actual performance and moves
// it to completed. The transition is one-way.
type Completer struct {
	repo *db.Repository
}

// NewCompleter creates a Completer over the given repository.
func NewCompleter(repo *db.Repository) *Completer {
	return &Completer{repo: repo}
}

// Complete validates results and replaces the planned session's
// exercises with them, setting status to completed. On any invalid set
// the whole submission is rejected and nothing is persisted.
func (c *Completer) Complete(id string, results []ExerciseResult) (*models.Session, error) {
	planned, err := c.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if planned.Status != models.StatusPlanned {
		return nil, ErrAlreadyCompleted
	}

	if err := validateResults(results); err != nil {
		return nil, err
	}

	exercises := make([]models.Exercise, 0, len(results))
	for _, er := range results {
		series := make([]models.Series, 0, len(er.Series))
		for _, sr := range er.Series {
			series = append(series, models.Series{
				Reps:   sr.Reps,
				Weight: sr.Weight,
				Rest:   sr.Rest,
			})
		}
		exercises = append(exercises, models.Exercise{Name: er.Name, Series: series})
	}

	// New value from the snapshot; the stored entry only changes on
	// Upsert.
	completed := *planned
	completed.Exercises = exercises
	completed.Status = models.StatusCompleted

	if err := c.repo.Upsert(completed); err != nil {
		return nil, err
	}
	return &completed, nil
}

func validateResults(results []ExerciseResult) error {
	if len(results) == 0 {
		return &IncompleteDataError{Exercise: "session", Set: 0, Msg: "no exercises submitted"}
	}
	for _, er := range results {
		if len(er.Series) == 0 {
			return &IncompleteDataError{Exercise: er.Name, Set: 0, Msg: "at least one set is required"}
		}
		for i, sr := range er.Series {
			switch {
			case sr.Reps == nil:
				return &IncompleteDataError{Exercise: er.Name, Set: i + 1, Msg: "reps are required"}
			case *sr.Reps < 0:
				return &IncompleteDataError{Exercise: er.Name, Set: i + 1, Msg: "reps must not be negative"}
			case sr.Weight == nil:
				return &IncompleteDataError{Exercise: er.Name, Set: i + 1, Msg: "weight is required"}
			case *sr.Weight < 0:
				return &IncompleteDataError{Exercise: er.Name, Set: i + 1, Msg: "weight must not be negative"}
			case sr.Rest != nil && *sr.Rest < 0:
				return &IncompleteDataError{Exercise: er.Name, Set: i + 1, Msg: "rest must not be negative"}
			}
		}
	}
	return nil
}
