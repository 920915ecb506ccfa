package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/repositories/metadata"
	"github.com/skillswap/skillswap-cli/internal/common"
	"github.com/skillswap/skillswap-cli/internal/dbx"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// Store owns the session and its persistence. It is constructed once and
// passed by reference; lifecycle is Initialize → mutations → Terminate.
//
// The client runs single-threaded, so the store does no locking. Two
// concurrent Establish calls simply resolve last-write-wins on storage.
type Store struct {
	db  *sql.DB
	log logging.Logger
	cur Session
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Initialize reconstructs the session from persisted storage. It never
// signals an error: a missing, partial, or undecodable payload degrades to
// the anonymous state, so a crash mid-write can only fail open to
// logged-out, never to a corrupt logged-in session.
//
// A persisted sentinel token restores a demo session without any backend
// validation of the stored user payload.
func (s *Store) Initialize(ctx context.Context) {
	s.cur = Session{}

	repo := s.repo()

	token, err := repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted token, starting logged out", "error", err)
		return
	}
	userData, err := repo.Get(ctx, common.UserDataKey)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted user, starting logged out", "error", err)
		return
	}

	// Token and user are one logical unit: missing either means no session.
	if len(token) == 0 || len(userData) == 0 {
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "persisted user payload undecodable, starting logged out", "error", err)
		return
	}

	s.cur = Session{Token: string(token), User: &user, Mode: modeForToken(string(token))}
	s.log.Debug(ctx, "session restored", "mode", s.cur.Mode.String(), "user", user.ID)
}

// Establish persists the token and user as one transaction and replaces any
// prior session. A sentinel-valued token yields a demo session.
func (s *Store) Establish(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("session: cannot establish with empty token")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: serialize user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserDataKey, data)
	})
	if err != nil {
		return fmt.Errorf("session: persist: %w", err)
	}

	s.cur = Session{Token: token, User: &user, Mode: modeForToken(token)}
	return nil
}

// DegradeToDemo persists the sentinel token and a locally synthesized user
// carrying the given email. Idempotent: repeating it yields identical
// persisted state. Callers must only invoke it for failure classes meaning
// "backend absent", never for a credential rejection.
func (s *Store) DegradeToDemo(ctx context.Context, email string) (models.User, error) {
	user := NewDemoUser(email)
	if err := s.Establish(ctx, common.DemoToken, user); err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "backend unavailable, degraded to demo session", "email", email)
	return user, nil
}

// Update merges the partial change into the current user and re-persists.
// No-op when no session exists. On a persistence failure neither the stored
// nor the in-memory profile changes.
func (s *Store) Update(ctx context.Context, partial models.ProfileUpdate) error {
	if s.cur.User == nil {
		return nil
	}

	updated := *s.cur.User
	partial.Apply(&updated)

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("session: serialize user: %w", err)
	}
	if err := s.repo().Set(ctx, common.UserDataKey, data); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}

	s.cur.User = &updated
	return nil
}

// Terminate clears the session and removes the persisted entries.
func (s *Store) Terminate(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.AuthTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserDataKey)
	})
	if err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}

	s.cur = Session{}
	return nil
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	snap := s.cur
	if s.cur.User != nil {
		u := *s.cur.User
		snap.User = &u
	}
	return snap
}

func (s *Store) Mode() Mode { return s.cur.Mode }

// IsDemo implements api.CredentialSource.
func (s *Store) IsDemo() bool { return s.cur.Mode == ModeDemo }

// Token implements api.CredentialSource. Demo sessions expose an empty
// token so the sentinel is never sent to the backend.
func (s *Store) Token() string {
	if s.cur.Mode != ModeAuthenticated {
		return ""
	}
	return s.cur.Token
}

// Claims decodes the JWT claims of a real session token without verifying
// the signature; the client holds no key and only uses claims for display
// (e.g. expiry in whoami). Returns nil claims for demo or anonymous
// sessions, or when the token is not a JWT.
func (s *Store) Claims() jwt.MapClaims {
	if s.cur.Mode != ModeAuthenticated {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.cur.Token, claims); err != nil {
		return nil
	}
	return claims
}

func modeForToken(token string) Mode {
	if token == common.DemoToken {
		return ModeDemo
	}
	return ModeAuthenticated
}
