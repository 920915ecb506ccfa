package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func (a *App) LeaveFeedback(ctx context.Context) {
	fb := models.NewFeedback{}

	var err error
	if fb.ToUserID, err = GetSimpleText(a.reader, "User id the feedback is for", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if fb.SwapRequestID, err = GetSimpleText(a.reader, "Swap request id", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if fb.Skill, err = GetSimpleText(a.reader, "Skill that was taught", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	rating, err := GetSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if fb.Rating, err = strconv.Atoi(rating); err != nil {
		fmt.Fprintln(a.out, "Rating must be a number between 1 and 5.")
		return
	}

	if fb.Message, err = GetSimpleText(a.reader, "Message", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	created, err := a.feedback.Submit(ctx, fb)
	if err != nil {
		if offlineFallback(err) {
			fmt.Fprintf(a.out, "Note: %v, the feedback was not sent\n", err)
			return
		}
		fmt.Fprintf(a.out, "Could not submit feedback: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Thanks! Feedback %s recorded.\n", created.ID)
}

func (a *App) Ratings(ctx context.Context) {
	list, err := a.feedback.List(ctx)
	if err != nil {
		if !offlineFallback(err) {
			fmt.Fprintf(a.out, "Could not load feedback: %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "Note: %v, nothing to show offline\n", err)
		return
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No feedback yet.")
		return
	}
	for _, fb := range list {
		fmt.Fprintf(a.out, "%s  %d/5 for %s: %s\n", fb.ID, fb.Rating, fb.Skill, fb.Message)
	}
}
