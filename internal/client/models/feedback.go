package models

import "time"

// Feedback is a rating left for a user after a completed swap.
type Feedback struct {
	ID            string    `json:"id"`
	FromUserID    string    `json:"fromUserId"`
	ToUserID      string    `json:"toUserId"`
	SwapRequestID string    `json:"swapRequestId"`
	Skill         string    `json:"skill"`
	Rating        int       `json:"rating"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewFeedback is the payload for submitting feedback.
type NewFeedback struct {
	ToUserID      string `json:"toUserId"`
	SwapRequestID string `json:"swapRequestId"`
	Skill         string `json:"skill"`
	Rating        int    `json:"rating"`
	Message       string `json:"message"`
}

// WireFeedback mirrors the backend's feedback object (id vs _id).
type WireFeedback struct {
	ID            string    `json:"id"`
	MongoID       string    `json:"_id"`
	FromUserID    string    `json:"fromUserId"`
	ToUserID      string    `json:"toUserId"`
	SwapRequestID string    `json:"swapRequestId"`
	Skill         string    `json:"skill"`
	Rating        int       `json:"rating"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (w WireFeedback) Canonical() Feedback {
	return Feedback{
		ID:            firstNonEmpty(w.ID, w.MongoID),
		FromUserID:    w.FromUserID,
		ToUserID:      w.ToUserID,
		SwapRequestID: w.SwapRequestID,
		Skill:         w.Skill,
		Rating:        w.Rating,
		Message:       w.Message,
		CreatedAt:     w.CreatedAt,
	}
}
