// Package session holds the client's authentication state and mirrors it
// into durable storage on every change.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roomatch/roomatch-cli/internal/client/models"
	"github.com/roomatch/roomatch-cli/internal/client/repositories/metadata"
	"github.com/roomatch/roomatch-cli/internal/dbx"
	"github.com/roomatch/roomatch-cli/internal/logging"
)

// Durable storage keys. "token" keeps the raw credential, "auth" the full
// serialized session; both are written and removed together.
const (
	KeyToken = "token"
	KeyAuth  = "auth"
)

// Store is the single owner of the current Session. The in-memory copy and
// the durable copy may only diverge within one Set/Clear call.
type Store struct {
	db      *sql.DB
	log     logging.Logger
	current models.Session
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Current returns the session as of the last Set/Clear/Rehydrate.
func (s *Store) Current() models.Session {
	return s.current
}

// Rehydrate loads the persisted session, if any. It runs once at startup,
// before the first render, so the initial route is decided on the real
// state. A missing or unparseable record leaves the store unauthenticated;
// token freshness is not checked (a stale token fails on the next API call).
func (s *Store) Rehydrate(ctx context.Context) error {
	data, err := s.repo(s.db).Get(ctx, KeyAuth)
	if err != nil {
		return fmt.Errorf("session rehydrate: %w", err)
	}
	if data == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(ctx, "stored session is unreadable, starting unauthenticated", "error", err)
		return nil
	}

	sess.Normalize()
	s.current = sess
	return nil
}

// Set replaces the session wholesale and mirrors it to durable storage.
// Both keys are written in one transaction; on failure the in-memory state
// is left untouched.
func (s *Store) Set(ctx context.Context, sess models.Session) error {
	sess.Normalize()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyAuth, data)
	})
	if err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	s.current = sess
	return nil
}

// Clear logs out: both durable keys are removed in one transaction and the
// in-memory session is reset, regardless of prior state.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyAuth)
	})
	if err != nil {
		return fmt.Errorf("session clear: %w", err)
	}

	s.current = models.Session{}
	return nil
}
