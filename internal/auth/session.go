package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
)

// SessionKey is the store key holding the single admin session record.
const SessionKey = "lactohub_admin_session"

type session struct {
	LoggedInAt time.Time `json:"loggedInAt"`
	LastSeen   time.Time `json:"lastSeen"`
}

// Sessions tracks the one admin login in the store and expires it after a
// period of inactivity.
type Sessions struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewSessions(store storage.Store, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Sessions{store: store, ttl: ttl, now: time.Now}
}

// Login verifies the credentials and records a fresh session.
func (s *Sessions) Login(ctx context.Context, v Verifier, id, password string) error {
	if !v.Verify(id, password) {
		return ErrInvalidCredentials
	}
	now := s.now()
	data, err := json.Marshal(session{LoggedInAt: now, LastSeen: now})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Save(ctx, SessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Check reports whether an unexpired session exists, and refreshes its
// last-seen time so activity keeps the session alive.
func (s *Sessions) Check(ctx context.Context) (bool, error) {
	data, err := s.store.Load(ctx, SessionKey)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	var sess session
	if err := json.Unmarshal(data, &sess); err != nil {
		return false, fmt.Errorf("decode session: %w", err)
	}

	now := s.now()
	if now.Sub(sess.LastSeen) > s.ttl {
		_ = s.store.Delete(ctx, SessionKey)
		return false, nil
	}

	sess.LastSeen = now
	refreshed, err := json.Marshal(sess)
	if err != nil {
		return false, fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Save(ctx, SessionKey, refreshed); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	return true, nil
}

// Logout drops the session record.
func (s *Sessions) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, SessionKey)
}
