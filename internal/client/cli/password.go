package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/common"
)

func (a *App) ForgotPassword(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintf(a.out, "Could not request a reset: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "If the address is registered, a reset link has been sent.")
}

func (a *App) ResetPassword(ctx context.Context) {
	resetToken, err := GetSimpleText(a.reader, "Reset token (from the email link)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out, "New password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ResetPassword(ctx, resetToken, string(password)); err != nil {
		fmt.Fprintf(a.out, "Could not reset the password: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Password reset. You can log in now.")
}

func (a *App) ChangePassword(ctx context.Context) {
	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(current)

	next, err := GetPassword(a.out, "New password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(next)

	if err := a.auth.ChangePassword(ctx, string(current), string(next)); err != nil {
		if errors.Is(err, api.ErrDemoModeDisabled) {
			fmt.Fprintln(a.out, "Password changes are not available in demo mode.")
			return
		}
		fmt.Fprintf(a.out, "Could not change the password: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Password changed.")
}
