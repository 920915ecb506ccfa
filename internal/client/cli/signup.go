package cli

import (
	"context"
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/services"
	"github.com/skillswap/skillswap-cli/internal/common"
)

func (a *App) Signup(ctx context.Context) {
	req := api.SignupRequest{}

	var err error
	if req.FullName, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if req.Location, err = GetSimpleText(a.reader, "Location (optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.SkillsOffered, err = GetList(a.reader, "Skills you offer", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.SkillsWanted, err = GetList(a.reader, "Skills you want", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if req.Availability, err = GetList(a.reader, "Availability", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	outcome, err := a.auth.Signup(ctx, req)
	switch outcome {
	case services.OutcomeAuthenticated:
		fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", a.store.Current().User.FullName)
	case services.OutcomeDemoFallback:
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Backend server not available. Continuing in demo mode with sample data.")
	default:
		fmt.Fprintf(a.out, "Signup failed: %v\n", err)
	}
}
