package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

func setupStore(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	store := session.NewStore(db, discardLogger())
	store.Initialize(context.Background())
	return store
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeGateway implements api.Gateway for unit tests. Zero-value methods
// succeed with empty results; set the Err/Ret fields to steer behavior.
type fakeGateway struct {
	LoginToken string
	LoginUser  models.User
	LoginErr   error
	LoginCalls int

	SignupToken string
	SignupUser  models.User
	SignupErr   error

	ForgotErr error
	ResetErr  error
	ChangeErr error

	UpdateProfileRet  models.User
	UpdateProfileErr  error
	LastProfileUpdate models.ProfileUpdate

	UploadURL string
	UploadErr error

	SearchRet []models.User
	SearchErr error

	SendRet models.SwapRequest
	SendErr error

	ListRet []models.SwapRequest
	ListErr error

	UpdateStatusRet models.SwapRequest
	UpdateStatusErr error
	LastStatus      string

	DeleteErr error

	FeedbackRet    models.Feedback
	FeedbackErr    error
	FeedbackLstRet []models.Feedback
	FeedbackLstErr error

	PingErr error
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (string, models.User, error) {
	f.LoginCalls++
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeGateway) Signup(ctx context.Context, req api.SignupRequest) (string, models.User, error) {
	return f.SignupToken, f.SignupUser, f.SignupErr
}

func (f *fakeGateway) ForgotPassword(ctx context.Context, email string) error { return f.ForgotErr }

func (f *fakeGateway) ResetPassword(ctx context.Context, resetToken, password string) error {
	return f.ResetErr
}

func (f *fakeGateway) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return f.ChangeErr
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	f.LastProfileUpdate = update
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeGateway) UploadProfilePicture(ctx context.Context, filename string, image io.Reader) (string, error) {
	return f.UploadURL, f.UploadErr
}

func (f *fakeGateway) SearchUsers(ctx context.Context, skill string) ([]models.User, error) {
	return f.SearchRet, f.SearchErr
}

func (f *fakeGateway) SendSwapRequest(ctx context.Context, req models.NewSwapRequest) (models.SwapRequest, error) {
	return f.SendRet, f.SendErr
}

func (f *fakeGateway) SwapRequests(ctx context.Context) ([]models.SwapRequest, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeGateway) UpdateSwapRequestStatus(ctx context.Context, requestID, status string) (models.SwapRequest, error) {
	f.LastStatus = status
	return f.UpdateStatusRet, f.UpdateStatusErr
}

func (f *fakeGateway) DeleteSwapRequest(ctx context.Context, requestID string) error {
	return f.DeleteErr
}

func (f *fakeGateway) SubmitFeedback(ctx context.Context, fb models.NewFeedback) (models.Feedback, error) {
	return f.FeedbackRet, f.FeedbackErr
}

func (f *fakeGateway) Feedback(ctx context.Context) ([]models.Feedback, error) {
	return f.FeedbackLstRet, f.FeedbackLstErr
}

func (f *fakeGateway) Ping(ctx context.Context) error { return f.PingErr }
