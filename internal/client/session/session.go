// Package session is the single source of truth for "am I logged in, as
// whom, and in what mode". State is held in an explicitly constructed Store
// and written through to persistent storage on every mutation, so a reload
// immediately after any operation observes the new state.
package session

import "github.com/skillswap/skillswap-cli/internal/client/models"

// Mode is the session's operating mode. Exactly one of the three holds at
// any time. Demo is represented explicitly here rather than by comparing the
// token against the sentinel; the sentinel survives only in storage.
type Mode int

const (
	// ModeAnonymous: no session.
	ModeAnonymous Mode = iota

	// ModeAuthenticated: a real backend-issued credential is held.
	ModeAuthenticated

	// ModeDemo: a degraded, backend-less session with a fabricated local
	// identity. No backend calls are attempted in this mode.
	ModeDemo
)

func (m Mode) String() string {
	switch m {
	case ModeAuthenticated:
		return "authenticated"
	case ModeDemo:
		return "demo"
	default:
		return "anonymous"
	}
}

// Session is a snapshot of the current authentication state.
// User is present if and only if Mode is not ModeAnonymous.
type Session struct {
	Token string
	User  *models.User
	Mode  Mode
}
