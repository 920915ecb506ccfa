package models

import "time"

// SwapRequestStatus values accepted by the backend.
const (
	SwapStatusPending  = "pending"
	SwapStatusAccepted = "accepted"
	SwapStatusRejected = "rejected"
)

// SwapRequest is one proposed skill exchange between two users.
type SwapRequest struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"fromUserId"`
	ToUserID     string    `json:"toUserId"`
	OfferedSkill string    `json:"offeredSkill"`
	WantedSkill  string    `json:"wantedSkill"`
	Availability []string  `json:"availability"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewSwapRequest is the payload for creating a swap request.
type NewSwapRequest struct {
	ToUserID     string   `json:"toUserId"`
	OfferedSkill string   `json:"offeredSkill"`
	WantedSkill  string   `json:"wantedSkill"`
	Availability []string `json:"availability"`
	Message      string   `json:"message,omitempty"`
}

// WireSwapRequest mirrors the backend's swap request object (id vs _id).
type WireSwapRequest struct {
	ID           string    `json:"id"`
	MongoID      string    `json:"_id"`
	FromUserID   string    `json:"fromUserId"`
	ToUserID     string    `json:"toUserId"`
	OfferedSkill string    `json:"offeredSkill"`
	WantedSkill  string    `json:"wantedSkill"`
	Availability []string  `json:"availability"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (w WireSwapRequest) Canonical() SwapRequest {
	r := SwapRequest{
		ID:           firstNonEmpty(w.ID, w.MongoID),
		FromUserID:   w.FromUserID,
		ToUserID:     w.ToUserID,
		OfferedSkill: w.OfferedSkill,
		WantedSkill:  w.WantedSkill,
		Availability: w.Availability,
		Message:      w.Message,
		Status:       firstNonEmpty(w.Status, SwapStatusPending),
		CreatedAt:    w.CreatedAt,
	}
	if r.Availability == nil {
		r.Availability = []string{}
	}
	return r
}
