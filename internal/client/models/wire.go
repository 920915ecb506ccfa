package models

// WireUser mirrors the user object as the backend actually sends it. The
// backend has historically used more than one field name for the same
// concept, so the wire shape carries the alternates and Canonical picks one.
//
// Precedence (first non-empty wins): fullName over name, id over _id.
type WireUser struct {
	ID             string   `json:"id"`
	MongoID        string   `json:"_id"`
	FullName       string   `json:"fullName"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Location       string   `json:"location"`
	SkillsOffered  []string `json:"skillsOffered"`
	SkillsWanted   []string `json:"skillsWanted"`
	Availability   []string `json:"availability"`
	ProfilePicture string   `json:"profilePicture"`
}

// Canonical converts a wire user into the canonical User shape.
func (w WireUser) Canonical() User {
	u := User{
		ID:             firstNonEmpty(w.ID, w.MongoID),
		FullName:       firstNonEmpty(w.FullName, w.Name),
		Email:          w.Email,
		Location:       w.Location,
		SkillsOffered:  w.SkillsOffered,
		SkillsWanted:   w.SkillsWanted,
		Availability:   w.Availability,
		ProfilePicture: w.ProfilePicture,
	}
	if u.SkillsOffered == nil {
		u.SkillsOffered = []string{}
	}
	if u.SkillsWanted == nil {
		u.SkillsWanted = []string{}
	}
	if u.Availability == nil {
		u.Availability = []string{}
	}
	return u
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
