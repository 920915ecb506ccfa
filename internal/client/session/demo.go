package session

import "github.com/skillswap/skillswap-cli/internal/client/models"

// demoUserID is fixed so that repeated degradations produce identical
// persisted state.
const demoUserID = "demo-user"

// NewDemoUser synthesizes the local identity used when the backend is
// unavailable. The submitted email is kept so the demo session still looks
// like the person who tried to log in.
func NewDemoUser(email string) models.User {
	return models.User{
		ID:            demoUserID,
		FullName:      "Demo User",
		Email:         email,
		Location:      "San Francisco, CA",
		SkillsOffered: []string{"React", "JavaScript", "Node.js"},
		SkillsWanted:  []string{"Python", "UI/UX Design"},
		Availability:  []string{"Weekends", "Evenings"},
	}
}
