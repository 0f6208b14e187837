package domain

import (
	"context"
	"errors"
)

// Domain errors mapped to HTTP status codes by the delivery layer.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("already signed up for this activity")
	ErrNotRegistered     = errors.New("not registered for this activity")
	ErrActivityFull      = errors.New("activity is full")
)

// Activity represents an extracurricular activity with a capacity-bounded
// roster of participant emails. Activities are identified by name.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns capacity minus current roster size. It is deliberately
// not clamped at zero: an over-subscribed roster yields a negative value,
// passed through to clients as-is.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsRegistered reports whether email is on the roster.
func (a *Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// ActivityRepository defines storage operations for activities. Participant
// order is preserved: Register appends, Unregister removes in place.
type ActivityRepository interface {
	List(ctx context.Context) ([]*Activity, error)
	GetByName(ctx context.Context, name string) (*Activity, error)
	Register(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// ActivityService defines the signup operations exposed over HTTP.
type ActivityService interface {
	// List returns all activities ordered by name.
	List(ctx context.Context) ([]*Activity, error)
	// Signup registers email for the named activity and returns the
	// confirmation message. Fails with ErrNotFound, ErrAlreadyRegistered,
	// or ErrActivityFull.
	Signup(ctx context.Context, activity, email string) (string, error)
	// Unregister removes email from the named activity and returns the
	// confirmation message. Fails with ErrNotFound or ErrNotRegistered.
	Unregister(ctx context.Context, activity, email string) (string, error)
}
