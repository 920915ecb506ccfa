package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/services"
	"github.com/skillswap/skillswap-cli/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	outcome, err := a.auth.Login(ctx, email, string(password))
	switch outcome {
	case services.OutcomeAuthenticated:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.store.Current().User.FullName)
	case services.OutcomeDemoFallback:
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Backend server not available. Continuing in demo mode with sample data.")
	default:
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Login failed: check your email and password.")
			return
		}
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
	}
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}
