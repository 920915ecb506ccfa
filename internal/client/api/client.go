// Package api is the gateway to the SkillSwap backend. It turns every
// outbound call into exactly one canonical outcome, attaches the bearer
// credential, and refuses to put demo sessions on the wire.
package api

import (
	"context"
	"io"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// CredentialSource supplies the gateway with the current credential state.
// The session store implements it.
type CredentialSource interface {
	// Token returns the bearer credential, or "" when there is nothing to
	// attach (anonymous or demo session).
	Token() string

	// IsDemo reports whether the current session is a demo session, in which
	// case authenticated calls must be short-circuited before any I/O.
	IsDemo() bool
}

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	FullName      string   `json:"fullName"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Location      string   `json:"location,omitempty"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  []string `json:"availability"`
}

// Gateway is the full backend surface consumed by the client.
//
// Methods never retry; a failure is terminal for that call and is returned
// as a typed error (see errors.go). Cancellation is the caller's context.
type Gateway interface {
	// Auth endpoints. Login and Signup return the issued token and the
	// canonical user profile.
	Signup(ctx context.Context, req SignupRequest) (string, models.User, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error

	// Profile and user search.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	UploadProfilePicture(ctx context.Context, filename string, image io.Reader) (string, error)
	SearchUsers(ctx context.Context, skill string) ([]models.User, error)

	// Swap requests.
	SendSwapRequest(ctx context.Context, req models.NewSwapRequest) (models.SwapRequest, error)
	SwapRequests(ctx context.Context) ([]models.SwapRequest, error)
	UpdateSwapRequestStatus(ctx context.Context, requestID, status string) (models.SwapRequest, error)
	DeleteSwapRequest(ctx context.Context, requestID string) error

	// Feedback.
	SubmitFeedback(ctx context.Context, fb models.NewFeedback) (models.Feedback, error)
	Feedback(ctx context.Context) ([]models.Feedback, error)

	// Ping checks backend reachability. Any HTTP response, whatever the
	// status, counts as reachable.
	Ping(ctx context.Context) error
}
