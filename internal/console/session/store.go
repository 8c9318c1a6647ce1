package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/medichannel/admincli/internal/common"
	"github.com/medichannel/admincli/internal/console/storage"
	"github.com/medichannel/admincli/internal/logging"
)

// Authenticator performs the network part of a login. The API client
// implements it; tests substitute a fake.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*Session, error)
}

// Store is the single source of truth for "who is logged in". It owns the
// persisted session fields exclusively; every other component reads through
// its accessors.
type Store struct {
	mu       sync.Mutex
	storage  storage.Storage
	auth     Authenticator
	log      logging.Logger
	current  *Session
	loginGen uint64
}

func NewStore(st storage.Storage, auth Authenticator, log logging.Logger) *Store {
	return &Store{storage: st, auth: auth, log: log.With("component", "session")}
}

// Initialize loads the persisted session, if any. It never fails: missing or
// partial storage simply leaves the store unauthenticated.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make(map[string]string, len(sessionKeys))
	for _, key := range sessionKeys {
		v, err := s.storage.Get(ctx, key)
		if err != nil {
			s.current = nil
			return
		}
		values[key] = v
	}

	s.current = &Session{
		ID:     values[KeyID],
		UserID: values[KeyUserID],
		Name:   values[KeyName],
		Email:  values[KeyEmail],
		Role:   values[KeyRole],
		Token:  values[KeyToken],
	}
	s.log.Info(ctx, "restored session", "email", s.current.Email)
}

// Login authenticates against the backend and, on success, persists the
// session and populates the in-memory state.
//
// A response with a role other than RoleAdmin fails with common.ErrNotAdmin
// even though transport-level authentication succeeded; nothing is persisted
// in that case. If another Login was started while this one was in flight,
// the stale result is discarded and common.ErrSuperseded is returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loginGen++
	gen := s.loginGen
	s.mu.Unlock()

	sess, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if sess.Role != RoleAdmin {
		return common.ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.loginGen {
		return common.ErrSuperseded
	}

	if err := s.persist(ctx, sess); err != nil {
		// Half-written state is worse than none; clear everything.
		s.removeAll(ctx)
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = sess
	s.log.Info(ctx, "logged in", "email", sess.Email, "role", sess.Role)
	return nil
}

// Logout clears the in-memory session and removes every persisted field.
// It is idempotent and has no network effect.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.removeAll(ctx)
}

// IsAuthenticated reports whether an in-memory session is populated.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Token returns the bearer token of the active session, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) persist(ctx context.Context, sess *Session) error {
	values := map[string]string{
		KeyToken:  sess.Token,
		KeyName:   sess.Name,
		KeyEmail:  sess.Email,
		KeyID:     sess.ID,
		KeyRole:   sess.Role,
		KeyUserID: sess.UserID,
	}
	for _, key := range sessionKeys {
		if err := s.storage.Set(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) removeAll(ctx context.Context) {
	for _, key := range sessionKeys {
		if err := s.storage.Remove(ctx, key); err != nil {
			s.log.Warn(ctx, "failed to remove session field", "key", key, "error", err.Error())
		}
	}
}
