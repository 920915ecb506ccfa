package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/demo"
	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// offlineFallback reports whether err is one of the failure classes the
// non-auth flows present as an offline note with sample data instead of a
// blocking error.
func offlineFallback(err error) bool {
	return api.BackendAbsent(err) || errors.Is(err, api.ErrDemoModeDisabled)
}

func (a *App) Browse(ctx context.Context) {
	skill, err := GetSimpleText(a.reader, "Skill to search for (empty for everyone)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	users, err := a.directory.Search(ctx, skill)
	if err != nil {
		if !offlineFallback(err) {
			fmt.Fprintf(a.out, "Search failed: %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "Note: %v, showing offline demo data\n", err)
		users = demo.Users()
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return
	}
	for _, u := range users {
		a.printUser(u)
	}
}

func (a *App) printUser(u models.User) {
	fmt.Fprintf(a.out, "%s  %s (%s)\n", u.ID, u.FullName, u.Location)
	fmt.Fprintf(a.out, "    offers: %s | wants: %s | available: %s\n",
		strings.Join(u.SkillsOffered, ", "),
		strings.Join(u.SkillsWanted, ", "),
		strings.Join(u.Availability, ", "))
}
