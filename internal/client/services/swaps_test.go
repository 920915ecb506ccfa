package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func TestSwapService_AcceptRejectMapToStatuses(t *testing.T) {
	gw := &fakeGateway{UpdateStatusRet: models.SwapRequest{ID: "r1"}}
	svc := NewSwapService(gw)
	ctx := context.Background()

	_, err := svc.Accept(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, models.SwapStatusAccepted, gw.LastStatus)

	_, err = svc.Reject(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, models.SwapStatusRejected, gw.LastStatus)
}

func TestSwapService_ErrorsPassThroughUntouched(t *testing.T) {
	gw := &fakeGateway{ListErr: api.ErrDemoModeDisabled}
	svc := NewSwapService(gw)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, api.ErrDemoModeDisabled)
}

func TestFeedbackService_Submit(t *testing.T) {
	gw := &fakeGateway{FeedbackRet: models.Feedback{ID: "f1", Rating: 5}}
	svc := NewFeedbackService(gw)

	fb, err := svc.Submit(context.Background(), models.NewFeedback{
		ToUserID: "u2", SwapRequestID: "r1", Skill: "Go", Rating: 5, Message: "great",
	})
	require.NoError(t, err)
	require.Equal(t, "f1", fb.ID)
}

func TestDirectoryService_Search(t *testing.T) {
	gw := &fakeGateway{SearchRet: []models.User{{ID: "u2", FullName: "Grace"}}}
	svc := NewDirectoryService(gw)

	users, err := svc.Search(context.Background(), "COBOL")
	require.NoError(t, err)
	require.Len(t, users, 1)
}
