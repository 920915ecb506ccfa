// Package services contains the application services of the SkillSwap
// client. This file defines authentication: login/signup with degradation to
// demo mode when the backend is absent, and the password flows.
package services

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// Outcome is the terminal state of one authentication attempt. An attempt
// makes exactly one request; there are no automatic retries, the user must
// resubmit.
type Outcome int

const (
	// OutcomeRejected: an error was surfaced and the session did not change.
	OutcomeRejected Outcome = iota

	// OutcomeAuthenticated: a real session was established.
	OutcomeAuthenticated

	// OutcomeDemoFallback: the backend was unavailable and a synthetic demo
	// session was established instead.
	OutcomeDemoFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeDemoFallback:
		return "demo-fallback"
	default:
		return "rejected"
	}
}

// AuthService drives the login/signup state machine and the password flows.
//
// Contract:
//   - Login, Signup: one attempt against the backend; unavailable-class
//     failures degrade to a demo session, credential rejections never do.
//   - ForgotPassword, ResetPassword, ChangePassword: pass-through with typed
//     errors.
//   - Logout: terminates the session and clears persisted state.
type AuthService interface {
	Login(ctx context.Context, email, password string) (Outcome, error)
	Signup(ctx context.Context, req api.SignupRequest) (Outcome, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	Logout(ctx context.Context) error
}

type authService struct {
	gw    api.Gateway
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// session store.
func NewAuthService(gw api.Gateway, store *session.Store, log logging.Logger) AuthService {
	return &authService{gw: gw, store: store, log: log}
}

// Login authenticates against the backend. On success the session is
// established with the issued token. If the failure class means the backend
// is absent (unreachable, missing route, server error), the attempt is
// absorbed into a demo session carrying the submitted email. Unauthorized
// and malformed-response failures are surfaced with no session change.
func (a *authService) Login(ctx context.Context, email, password string) (Outcome, error) {
	token, user, err := a.gw.Login(ctx, email, password)
	if err == nil {
		if err := a.store.Establish(ctx, token, user); err != nil {
			return OutcomeRejected, err
		}
		a.log.Info(ctx, "login succeeded", "user", user.ID)
		return OutcomeAuthenticated, nil
	}

	if api.BackendAbsent(err) {
		a.log.Warn(ctx, "backend not available during login, falling back to demo", "error", err)
		if _, derr := a.store.DegradeToDemo(ctx, email); derr != nil {
			return OutcomeRejected, derr
		}
		return OutcomeDemoFallback, nil
	}

	return OutcomeRejected, err
}

// Signup mirrors Login: a created account establishes a session from the
// returned token, and an absent backend degrades to demo.
func (a *authService) Signup(ctx context.Context, req api.SignupRequest) (Outcome, error) {
	token, user, err := a.gw.Signup(ctx, req)
	if err == nil {
		if err := a.store.Establish(ctx, token, user); err != nil {
			return OutcomeRejected, err
		}
		a.log.Info(ctx, "signup succeeded", "user", user.ID)
		return OutcomeAuthenticated, nil
	}

	if api.BackendAbsent(err) {
		a.log.Warn(ctx, "backend not available during signup, falling back to demo", "error", err)
		if _, derr := a.store.DegradeToDemo(ctx, req.Email); derr != nil {
			return OutcomeRejected, derr
		}
		return OutcomeDemoFallback, nil
	}

	return OutcomeRejected, err
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	return a.gw.ForgotPassword(ctx, email)
}

func (a *authService) ResetPassword(ctx context.Context, resetToken, password string) error {
	return a.gw.ResetPassword(ctx, resetToken, password)
}

func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return a.gw.ChangePassword(ctx, currentPassword, newPassword)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Terminate(ctx)
}
