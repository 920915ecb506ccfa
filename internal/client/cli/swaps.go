package cli

import (
	"context"
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/client/demo"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func (a *App) SendSwap(ctx context.Context) {
	req := models.NewSwapRequest{}

	var err error
	if req.ToUserID, err = GetSimpleText(a.reader, "User id to swap with", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.OfferedSkill, err = GetSimpleText(a.reader, "Skill you offer", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.WantedSkill, err = GetSimpleText(a.reader, "Skill you want", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.Availability, err = GetList(a.reader, "Availability", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.Message, err = GetSimpleText(a.reader, "Message (optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	created, err := a.swaps.Send(ctx, req)
	if err != nil {
		if offlineFallback(err) {
			fmt.Fprintf(a.out, "Note: %v, the request was not sent\n", err)
			return
		}
		fmt.Fprintf(a.out, "Could not send the request: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Swap request %s sent (%s for %s).\n", created.ID, created.OfferedSkill, created.WantedSkill)
}

func (a *App) Requests(ctx context.Context) {
	requests, err := a.swaps.List(ctx)
	if err != nil {
		if !offlineFallback(err) {
			fmt.Fprintf(a.out, "Could not load requests: %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "Note: %v, showing offline demo data\n", err)
		requests = demo.SwapRequests()
	}

	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No swap requests.")
		return
	}
	for _, r := range requests {
		fmt.Fprintf(a.out, "%s  [%s] %s for %s from %s\n", r.ID, r.Status, r.OfferedSkill, r.WantedSkill, r.FromUserID)
		if r.Message != "" {
			fmt.Fprintf(a.out, "    %q\n", r.Message)
		}
	}
}

func (a *App) Accept(ctx context.Context) {
	a.respond(ctx, true)
}

func (a *App) Reject(ctx context.Context) {
	a.respond(ctx, false)
}

func (a *App) respond(ctx context.Context, accept bool) {
	requestID, err := GetSimpleText(a.reader, "Request id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	var updated models.SwapRequest
	if accept {
		updated, err = a.swaps.Accept(ctx, requestID)
	} else {
		updated, err = a.swaps.Reject(ctx, requestID)
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not update the request: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Request %s is now %s.\n", updated.ID, updated.Status)
}

func (a *App) CancelRequest(ctx context.Context) {
	requestID, err := GetSimpleText(a.reader, "Request id to cancel", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.swaps.Cancel(ctx, requestID); err != nil {
		fmt.Fprintf(a.out, "Could not cancel the request: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Request cancelled.")
}
