package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func loggedInStore(t *testing.T) (*fakeGateway, ProfileService, func() models.User) {
	t.Helper()
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Establish(ctx, "tok-1", models.User{
		ID: "u1", FullName: "Ada", Email: "ada@example.com", Location: "London",
	}))

	gw := &fakeGateway{}
	return gw, NewProfileService(gw, store, discardLogger()), func() models.User {
		return *store.Current().User
	}
}

func TestProfileUpdate_ServerCanonicalViewWins(t *testing.T) {
	gw, svc, current := loggedInStore(t)
	gw.UpdateProfileRet = models.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com", Location: "Paris"}

	loc := "Paris"
	updated, err := svc.Update(context.Background(), models.ProfileUpdate{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "Paris", updated.Location)
	require.Equal(t, "Ada Lovelace", current().FullName)
}

func TestProfileUpdate_FailureLeavesStateUntouched(t *testing.T) {
	gw, svc, current := loggedInStore(t)
	gw.UpdateProfileErr = api.ErrServerError

	loc := "Paris"
	_, err := svc.Update(context.Background(), models.ProfileUpdate{Location: &loc})
	require.ErrorIs(t, err, api.ErrServerError)
	require.Equal(t, "London", current().Location)
}

func TestProfileUpdate_DemoSession_LocalOnly(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	_, err := store.DegradeToDemo(ctx, "a@b.com")
	require.NoError(t, err)

	gw := &fakeGateway{UpdateProfileErr: api.ErrDemoModeDisabled}
	svc := NewProfileService(gw, store, discardLogger())

	loc := "Paris"
	updated, err := svc.Update(ctx, models.ProfileUpdate{Location: &loc})
	require.NoError(t, err, "demo updates are local and must not hit the gateway")
	require.Equal(t, "Paris", updated.Location)
	require.Equal(t, "Paris", store.Current().User.Location)
}

func TestUploadPicture_PersistsReturnedURL(t *testing.T) {
	gw, svc, current := loggedInStore(t)
	gw.UploadURL = "https://cdn.example.com/u1.png"

	imageURL, err := svc.UploadPicture(context.Background(), "u1.png", strings.NewReader("img"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/u1.png", imageURL)
	require.Equal(t, imageURL, current().ProfilePicture)
}

func TestUploadPicture_FailureDoesNotTouchProfile(t *testing.T) {
	gw, svc, current := loggedInStore(t)
	gw.UploadErr = api.ErrNetworkUnreachable

	_, err := svc.UploadPicture(context.Background(), "u1.png", strings.NewReader("img"))
	require.ErrorIs(t, err, api.ErrNetworkUnreachable)
	require.Empty(t, current().ProfilePicture)
}
