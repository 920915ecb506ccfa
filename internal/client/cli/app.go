// Package cli is the terminal front end of the SkillSwap client: a REPL over
// the application services, plus the online-status watcher.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/config"
	"github.com/skillswap/skillswap-cli/internal/client/services"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/client/storage"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// Mode is the CLI's view of backend reachability, shown in the prompt.
// It is display state only; the session store is the source of truth for
// authentication state.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	store     *session.Store
	auth      services.AuthService
	profile   services.ProfileService
	swaps     services.SwapService
	feedback  services.FeedbackService
	directory services.DirectoryService
	gateway   api.Gateway
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	Mode      Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db, log)
	store.Initialize(ctx)

	gw := api.NewRESTClient(c.BaseURL, store, log)

	return &App{
		config:    c,
		db:        db,
		store:     store,
		auth:      services.NewAuthService(gw, store, log),
		profile:   services.NewProfileService(gw, store, log),
		swaps:     services.NewSwapService(gw),
		feedback:  services.NewFeedbackService(gw),
		directory: services.NewDirectoryService(gw),
		gateway:   gw,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		Mode:      ModeOnline,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.Mode() != session.ModeAnonymous
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher periodically probes backend reachability and
// flips the displayed mode. Demo sessions are never probed: a demo session
// must not cause any backend traffic, so the watcher idles until the
// session leaves demo mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.store.IsDemo() {
				a.setMode(ModeOffline)
				continue
			}

			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.gateway.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
