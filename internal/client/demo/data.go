// Package demo holds the sample data shown when the backend is unavailable
// and the CLI falls back to the offline experience.
package demo

import (
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// Users returns the sample directory shown instead of live search results.
func Users() []models.User {
	return []models.User{
		{
			ID:            "demo-u1",
			FullName:      "Maya Chen",
			Email:         "maya@example.com",
			Location:      "Berlin",
			SkillsOffered: []string{"Photography", "Photo Editing"},
			SkillsWanted:  []string{"Spanish", "Guitar"},
			Availability:  []string{"Weekends"},
		},
		{
			ID:            "demo-u2",
			FullName:      "Liam O'Connor",
			Email:         "liam@example.com",
			Location:      "Dublin",
			SkillsOffered: []string{"Guitar", "Music Theory"},
			SkillsWanted:  []string{"Python"},
			Availability:  []string{"Evenings"},
		},
		{
			ID:            "demo-u3",
			FullName:      "Sofia Rossi",
			Email:         "sofia@example.com",
			Location:      "Milan",
			SkillsOffered: []string{"Italian", "Cooking"},
			SkillsWanted:  []string{"Photography"},
			Availability:  []string{"Weekends", "Evenings"},
		},
	}
}

// SwapRequests returns the sample request list for the offline experience.
func SwapRequests() []models.SwapRequest {
	return []models.SwapRequest{
		{
			ID:           "demo-r1",
			FromUserID:   "demo-u2",
			ToUserID:     "demo-user",
			OfferedSkill: "Guitar",
			WantedSkill:  "JavaScript",
			Availability: []string{"Evenings"},
			Message:      "Happy to trade weekly lessons.",
			Status:       models.SwapStatusPending,
			CreatedAt:    time.Now().Add(-48 * time.Hour),
		},
	}
}
