package services

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// SwapService manages skill-swap requests. Failures are returned to the
// caller untouched; the CLI decides whether to show offline demo data.
type SwapService interface {
	Send(ctx context.Context, req models.NewSwapRequest) (models.SwapRequest, error)
	List(ctx context.Context) ([]models.SwapRequest, error)
	Accept(ctx context.Context, requestID string) (models.SwapRequest, error)
	Reject(ctx context.Context, requestID string) (models.SwapRequest, error)
	Cancel(ctx context.Context, requestID string) error
}

type swapService struct {
	gw api.Gateway
}

func NewSwapService(gw api.Gateway) SwapService {
	return &swapService{gw: gw}
}

func (s *swapService) Send(ctx context.Context, req models.NewSwapRequest) (models.SwapRequest, error) {
	return s.gw.SendSwapRequest(ctx, req)
}

func (s *swapService) List(ctx context.Context) ([]models.SwapRequest, error) {
	return s.gw.SwapRequests(ctx)
}

func (s *swapService) Accept(ctx context.Context, requestID string) (models.SwapRequest, error) {
	return s.gw.UpdateSwapRequestStatus(ctx, requestID, models.SwapStatusAccepted)
}

func (s *swapService) Reject(ctx context.Context, requestID string) (models.SwapRequest, error) {
	return s.gw.UpdateSwapRequestStatus(ctx, requestID, models.SwapStatusRejected)
}

func (s *swapService) Cancel(ctx context.Context, requestID string) error {
	return s.gw.DeleteSwapRequest(ctx, requestID)
}
