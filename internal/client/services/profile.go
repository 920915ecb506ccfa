package services

import (
	"context"
	"io"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// ProfileService manages the current user's profile.
type ProfileService interface {
	// Update applies a partial profile change. Demo sessions are updated
	// locally only; real sessions go through the backend first, and a failed
	// call leaves both in-memory and persisted state untouched.
	Update(ctx context.Context, partial models.ProfileUpdate) (models.User, error)

	// UploadPicture stores a new profile picture and returns its URL.
	UploadPicture(ctx context.Context, filename string, image io.Reader) (string, error)
}

type profileService struct {
	gw    api.Gateway
	store *session.Store
	log   logging.Logger
}

func NewProfileService(gw api.Gateway, store *session.Store, log logging.Logger) ProfileService {
	return &profileService{gw: gw, store: store, log: log}
}

func (p *profileService) Update(ctx context.Context, partial models.ProfileUpdate) (models.User, error) {
	if p.store.IsDemo() {
		if err := p.store.Update(ctx, partial); err != nil {
			return models.User{}, err
		}
		return *p.store.Current().User, nil
	}

	updated, err := p.gw.UpdateProfile(ctx, partial)
	if err != nil {
		return models.User{}, err
	}

	// The backend's canonical view wins over the local merge.
	snap := p.store.Current()
	if err := p.store.Establish(ctx, snap.Token, updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (p *profileService) UploadPicture(ctx context.Context, filename string, image io.Reader) (string, error) {
	imageURL, err := p.gw.UploadProfilePicture(ctx, filename, image)
	if err != nil {
		return "", err
	}

	if err := p.store.Update(ctx, models.ProfileUpdate{ProfilePicture: &imageURL}); err != nil {
		return "", err
	}
	return imageURL, nil
}
