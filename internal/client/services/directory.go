package services

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// DirectoryService searches other users by skill.
type DirectoryService interface {
	Search(ctx context.Context, skill string) ([]models.User, error)
}

type directoryService struct {
	gw api.Gateway
}

func NewDirectoryService(gw api.Gateway) DirectoryService {
	return &directoryService{gw: gw}
}

func (d *directoryService) Search(ctx context.Context, skill string) ([]models.User, error) {
	return d.gw.SearchUsers(ctx, skill)
}

// FeedbackService submits and lists post-swap feedback.
type FeedbackService interface {
	Submit(ctx context.Context, fb models.NewFeedback) (models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackService struct {
	gw api.Gateway
}

func NewFeedbackService(gw api.Gateway) FeedbackService {
	return &feedbackService{gw: gw}
}

func (f *feedbackService) Submit(ctx context.Context, fb models.NewFeedback) (models.Feedback, error) {
	return f.gw.SubmitFeedback(ctx, fb)
}

func (f *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return f.gw.Feedback(ctx)
}
