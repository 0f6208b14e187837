package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"activityboard/internal/domain"
)

func testActivities() []*domain.Activity {
	return []*domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Create paintings and digital art projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{},
		},
	}
}

func TestActivityRepository_List_SortedByName(t *testing.T) {
	repo := NewActivityRepository(testActivities())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Art Studio", list[0].Name)
	require.Equal(t, "Chess Club", list[1].Name)
}

func TestActivityRepository_List_ReturnsCopies(t *testing.T) {
	repo := NewActivityRepository(testActivities())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	for _, a := range list {
		if a.Name == "Chess Club" {
			a.Participants[0] = "mutated@mergington.edu"
		}
	}

	got, err := repo.GetByName(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu"}, got.Participants)
}

func TestActivityRepository_GetByName_NotFound(t *testing.T) {
	repo := NewActivityRepository(testActivities())

	_, err := repo.GetByName(context.Background(), "Underwater Basket Weaving")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepository_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{"new participant", "Chess Club", "alex@mergington.edu", nil},
		{"duplicate", "Chess Club", "michael@mergington.edu", domain.ErrAlreadyRegistered},
		{"unknown activity", "Robotics", "alex@mergington.edu", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewActivityRepository(testActivities())
			err := repo.Register(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := repo.GetByName(ctx, tt.activity)
			require.NoError(t, err)
			require.Contains(t, got.Participants, tt.email)
			// Order is preserved: new signups go to the end.
			require.Equal(t, tt.email, got.Participants[len(got.Participants)-1])
		})
	}
}

func TestActivityRepository_Register_Full(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(testActivities())

	require.NoError(t, repo.Register(ctx, "Chess Club", "alex@mergington.edu"))
	err := repo.Register(ctx, "Chess Club", "late@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityFull)

	got, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, got.Participants, got.MaxParticipants)
}

func TestActivityRepository_Register_ConcurrentLastSpot(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository([]*domain.Activity{
		{
			Name:            "Chess Club",
			MaxParticipants: 1,
			Participants:    []string{},
		},
	})

	const attempts = 50
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Register(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		}(i)
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, domain.ErrActivityFull)
		}
	}
	require.Equal(t, 1, succeeded)

	got, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, got.Participants, 1)
}

func TestActivityRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{"registered participant", "Chess Club", "michael@mergington.edu", nil},
		{"not registered", "Chess Club", "ghost@mergington.edu", domain.ErrNotRegistered},
		{"unknown activity", "Robotics", "michael@mergington.edu", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewActivityRepository(testActivities())
			err := repo.Unregister(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := repo.GetByName(ctx, tt.activity)
			require.NoError(t, err)
			require.NotContains(t, got.Participants, tt.email)
		})
	}
}

func TestActivityRepository_UnregisterTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(testActivities())

	require.NoError(t, repo.Unregister(ctx, "Chess Club", "michael@mergington.edu"))
	err := repo.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestSeed(t *testing.T) {
	activities := Seed()
	require.Len(t, activities, 9)

	byName := make(map[string]*domain.Activity, len(activities))
	for _, a := range activities {
		byName[a.Name] = a
	}
	require.Contains(t, byName, "Chess Club")
	require.Contains(t, byName, "Programming Class")
	require.Contains(t, byName, "Gym Class")
	require.Equal(t, 12, byName["Chess Club"].MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, byName["Chess Club"].Participants)
	require.Empty(t, byName["Basketball Team"].Participants)
}
