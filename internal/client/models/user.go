// Package models defines the canonical client-side data shapes for SkillSwap
// and the normalization of the backend's wire formats into them.
package models

// User is the canonical profile shape used everywhere in the client.
// It is also the shape serialized into persisted session storage.
type User struct {
	ID             string   `json:"id"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Location       string   `json:"location,omitempty"`
	SkillsOffered  []string `json:"skillsOffered"`
	SkillsWanted   []string `json:"skillsWanted"`
	Availability   []string `json:"availability"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched
// when merged; it doubles as the body of the profile update call, where nil
// fields are omitted.
type ProfileUpdate struct {
	FullName       *string  `json:"fullName,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Location       *string  `json:"location,omitempty"`
	SkillsOffered  []string `json:"skillsOffered,omitempty"`
	SkillsWanted   []string `json:"skillsWanted,omitempty"`
	Availability   []string `json:"availability,omitempty"`
	ProfilePicture *string  `json:"profilePicture,omitempty"`
}

// Apply merges the update into u, field by field.
func (p ProfileUpdate) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.SkillsOffered != nil {
		u.SkillsOffered = p.SkillsOffered
	}
	if p.SkillsWanted != nil {
		u.SkillsWanted = p.SkillsWanted
	}
	if p.Availability != nil {
		u.Availability = p.Availability
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
}
