package models

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusPlanned || s == StatusCompleted
}

// Session is a single gym session: planned first, completed later.
// The JSON field names are the on-disk format, so changing a tag
// changes what existing databases decode to.
type Session struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // ISO calendar date, YYYY-MM-DD
	Type      string     `json:"type"`
	Status    Status     `json:"status"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one exercise within a session, with its sets in
// performed order.
type Exercise struct {
	Name   string   `json:"name"`
	Series []Series `json:"series"`
}

// Series is one set of an exercise. Nil means not yet recorded;
// a completed session has non-nil Reps and Weight on every set,
// Rest stays optional.
type Series struct {
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
	Rest   *int     `json:"rest"` // seconds
}
