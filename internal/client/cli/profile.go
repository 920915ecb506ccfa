package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
)

func (a *App) Whoami(ctx context.Context) {
	snap := a.store.Current()
	if snap.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	u := snap.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.FullName, u.Email)
	if u.Location != "" {
		fmt.Fprintf(a.out, "  location:  %s\n", u.Location)
	}
	fmt.Fprintf(a.out, "  offers:    %s\n", strings.Join(u.SkillsOffered, ", "))
	fmt.Fprintf(a.out, "  wants:     %s\n", strings.Join(u.SkillsWanted, ", "))
	fmt.Fprintf(a.out, "  available: %s\n", strings.Join(u.Availability, ", "))
	fmt.Fprintf(a.out, "  session:   %s\n", snap.Mode)

	if snap.Mode == session.ModeDemo {
		fmt.Fprintln(a.out, "  note:      demo identity, nothing is sent to the backend")
		return
	}
	if claims := a.store.Claims(); claims != nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			fmt.Fprintf(a.out, "  expires:   %s\n", exp.Format(time.RFC1123))
		}
	}
}

// EditProfile prompts for each profile field; empty input keeps the current
// value.
func (a *App) EditProfile(ctx context.Context) {
	cur := a.store.Current().User
	if cur == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	update := models.ProfileUpdate{}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Full name [%s]", cur.FullName), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if name != "" {
		update.FullName = &name
	}

	location, err := GetSimpleText(a.reader, fmt.Sprintf("Location [%s]", cur.Location), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if location != "" {
		update.Location = &location
	}

	offered, err := GetList(a.reader, fmt.Sprintf("Skills you offer [%s]", strings.Join(cur.SkillsOffered, ", ")), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	update.SkillsOffered = offered

	wanted, err := GetList(a.reader, fmt.Sprintf("Skills you want [%s]", strings.Join(cur.SkillsWanted, ", ")), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	update.SkillsWanted = wanted

	availability, err := GetList(a.reader, fmt.Sprintf("Availability [%s]", strings.Join(cur.Availability, ", ")), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	update.Availability = availability

	updated, err := a.profile.Update(ctx, update)
	if err != nil {
		fmt.Fprintf(a.out, "Profile update failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Profile saved for %s.\n", updated.FullName)
}

func (a *App) UploadPhoto(ctx context.Context) {
	path, err := GetSimpleText(a.reader, "Path to image file", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	imageURL, err := a.profile.UploadPicture(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Profile picture updated: %s\n", imageURL)
}
