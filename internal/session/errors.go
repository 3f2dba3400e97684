package session

import (
	"errors"
	"fmt"
)

// ErrReplaceDeclined means the user chose to keep an existing planned
// session instead of replacing it. Nothing was persisted; callers
// treat it as a quiet abort, not a failure.
var ErrReplaceDeclined = errors.New("replace declined")

// ErrAlreadyCompleted means a completion was attempted on a session
// that is no longer planned. The planned -> completed transition is
// one-way; deleting the session is the only way back.
var ErrAlreadyCompleted = errors.New("session already completed")

// ValidationError reports an invalid field on session creation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// IncompleteDataError reports a set with missing or invalid reps or
// weight in a completion submission. Set is 1-based, matching what the
// user sees on the form.
type IncompleteDataError struct {
	Exercise string
	Set      int
	Msg      string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("%s, set %d: %s", e.Exercise, e.Set, e.Msg)
}
