package memory

import "activityboard/internal/domain"

// Seed returns the initial set of Mergington High School activities.
func Seed() []*domain.Activity {
	return []*domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for intramural and league play",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Soccer Club",
			Description:     "Play recreational and competitive soccer matches",
			Schedule:        "Wednesdays and Saturdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{},
		},
		{
			Name:            "Art Studio",
			Description:     "Create paintings, sculptures, and digital art projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{},
		},
		{
			Name:            "Debate Team",
			Description:     "Compete in debate competitions and develop speaking skills",
			Schedule:        "Tuesdays, 4:30 PM - 6:00 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
		{
			Name:            "Science Club",
			Description:     "Explore scientific experiments and STEM projects",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
	}
}
