package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context)
	Login(ctx context.Context)
	ForgotPassword(ctx context.Context)
	ResetPassword(ctx context.Context)
	Whoami(ctx context.Context)
	EditProfile(ctx context.Context)
	UploadPhoto(ctx context.Context)
	Browse(ctx context.Context)
	SendSwap(ctx context.Context)
	Requests(ctx context.Context)
	Accept(ctx context.Context)
	Reject(ctx context.Context)
	CancelRequest(ctx context.Context)
	LeaveFeedback(ctx context.Context)
	Ratings(ctx context.Context)
	ChangePassword(ctx context.Context)
	Logout(ctx context.Context)
}

// runREPL reads a line from scanner, parses the first token as the command,
// and dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Handlers print their own errors; the loop stays resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "skillswap [%s]> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, profile, photo, browse, swap, requests, accept, reject, cancel, feedback, ratings, passwd, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, forgot, reset, exit")
			}
		case "exit", "quit":
			return
		case "signup":
			a.Signup(ctx)
		case "login":
			a.Login(ctx)
		case "forgot":
			a.ForgotPassword(ctx)
		case "reset":
			a.ResetPassword(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "profile":
			a.EditProfile(ctx)
		case "photo":
			a.UploadPhoto(ctx)
		case "browse":
			a.Browse(ctx)
		case "swap":
			a.SendSwap(ctx)
		case "requests":
			a.Requests(ctx)
		case "accept":
			a.Accept(ctx)
		case "reject":
			a.Reject(ctx)
		case "cancel":
			a.CancelRequest(ctx)
		case "feedback":
			a.LeaveFeedback(ctx)
		case "ratings":
			a.Ratings(ctx)
		case "passwd":
			a.ChangePassword(ctx)
		case "logout":
			a.Logout(ctx)
		default:
			fmt.Fprintf(w, "Unknown command: %s (try \"help\")\n", cmd)
		}
	}
}

// Root starts the REPL on stdin/stdout with a prompt showing connectivity
// and session state.
func (a *App) Root(ctx context.Context) {
	scanner := bufio.NewScanner(a.reader)
	statusFn := func() string {
		return fmt.Sprintf("%s, %s", a.Mode, a.store.Mode())
	}
	runREPL(ctx, a, statusFn, scanner, a.out)
}
