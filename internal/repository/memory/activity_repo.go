package memory

import (
	"context"
	"sort"
	"sync"

	"activityboard/internal/domain"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository returns an in-memory ActivityRepository holding the
// given activities. The backing store is process-local; state resets on
// restart.
func NewActivityRepository(activities []*domain.Activity) domain.ActivityRepository {
	m := make(map[string]*domain.Activity, len(activities))
	for _, a := range activities {
		m[a.Name] = cloneActivity(a)
	}
	return &activityRepository{activities: m}
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*domain.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		list = append(list, cloneActivity(a))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneActivity(a), nil
}

func (r *activityRepository) Register(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	if a.IsRegistered(email) {
		return domain.ErrAlreadyRegistered
	}
	// Capacity is re-checked under the write lock so concurrent signups
	// cannot over-fill the last spot.
	if a.SpotsLeft() <= 0 {
		return domain.ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *activityRepository) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}

// cloneActivity copies an activity so callers never share the stored
// participant slice.
func cloneActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}
