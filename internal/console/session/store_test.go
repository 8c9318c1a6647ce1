package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichannel/admincli/internal/common"
	"github.com/medichannel/admincli/internal/console/storage"
	"github.com/medichannel/admincli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAuth implements Authenticator. The optional hook runs before the
// result is returned, which lets tests interleave a second login.
type fakeAuth struct {
	sess  *Session
	err   error
	hook  func()
	calls int
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	f.calls++
	if f.hook != nil {
		hook := f.hook
		f.hook = nil
		hook()
	}
	if f.err != nil {
		return nil, f.err
	}
	s := *f.sess
	s.Email = email
	return &s, nil
}

func adminSession() *Session {
	return &Session{
		ID:     "7",
		UserID: "USR-7",
		Name:   "Admin User",
		Email:  "admin@example.com",
		Role:   RoleAdmin,
		Token:  "token-abc",
	}
}

func requireNoStoredKeys(t *testing.T, st storage.Storage) {
	t.Helper()
	for _, key := range sessionKeys {
		_, err := st.Get(context.Background(), key)
		require.ErrorIs(t, err, common.ErrNotFound, "key %q should not be persisted", key)
	}
}

func TestInitialize_EmptyStorage(t *testing.T) {
	store := NewStore(storage.NewMemory(), &fakeAuth{}, testLogger())
	store.Initialize(context.Background())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())
	assert.Equal(t, "", store.Token())
}

func TestInitialize_PartialStorageIsUnauthenticated(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, KeyToken, "token-abc"))
	require.NoError(t, st.Set(ctx, KeyEmail, "admin@example.com"))
	require.NoError(t, st.Set(ctx, KeyRole, RoleAdmin))

	store := NewStore(st, &fakeAuth{}, testLogger())
	store.Initialize(ctx)
	assert.False(t, store.IsAuthenticated())
}

func TestLogin_RoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	store := NewStore(st, &fakeAuth{sess: adminSession()}, testLogger())

	require.NoError(t, store.Login(ctx, "admin@example.com", "secret"))
	require.True(t, store.IsAuthenticated())

	// Simulate a restart: a fresh store over the same storage.
	restored := NewStore(st, &fakeAuth{}, testLogger())
	restored.Initialize(ctx)

	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, store.Current(), restored.Current())
	assert.Equal(t, "token-abc", restored.Token())
}

func TestLogin_NonAdminRoleFailsAndPersistsNothing(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	sess := adminSession()
	sess.Role = "Doctor"
	store := NewStore(st, &fakeAuth{sess: sess}, testLogger())

	err := store.Login(ctx, "doc@example.com", "secret")
	require.ErrorIs(t, err, common.ErrNotAdmin)
	assert.False(t, store.IsAuthenticated())
	requireNoStoredKeys(t, st)
}

func TestLogin_TransportErrorPersistsNothing(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	store := NewStore(st, &fakeAuth{err: errors.New("invalid credentials")}, testLogger())

	err := store.Login(ctx, "admin@example.com", "wrongpass")
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
	requireNoStoredKeys(t, st)
}

func TestLogin_StaleResultIsDiscarded(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	auth := &fakeAuth{sess: adminSession()}
	store := NewStore(st, auth, testLogger())

	// While the first login is in flight, a second one starts and finishes.
	var secondErr error
	auth.hook = func() {
		secondErr = store.Login(ctx, "second@example.com", "secret")
	}

	firstErr := store.Login(ctx, "first@example.com", "secret")

	require.NoError(t, secondErr)
	require.ErrorIs(t, firstErr, common.ErrSuperseded)
	require.True(t, store.IsAuthenticated())
	assert.Equal(t, "second@example.com", store.Current().Email)
}

func TestLogout_ClearsStateAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	store := NewStore(st, &fakeAuth{sess: adminSession()}, testLogger())

	require.NoError(t, store.Login(ctx, "admin@example.com", "secret"))
	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	requireNoStoredKeys(t, st)

	// Logging out while logged out is a no-op.
	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())

	restored := NewStore(st, &fakeAuth{}, testLogger())
	restored.Initialize(ctx)
	assert.False(t, restored.IsAuthenticated())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenValid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid token", "", true}, // filled in below
		{"expired token", "", false},
		{"malformed token", "not-a-jwt", false},
	}
	tests[0].token = signedToken(t, time.Now().Add(time.Hour))
	tests[1].token = signedToken(t, time.Now().Add(-time.Hour))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess := adminSession()
			sess.Token = tc.token
			store := NewStore(storage.NewMemory(), &fakeAuth{sess: sess}, testLogger())
			require.NoError(t, store.Login(ctx, "admin@example.com", "secret"))
			assert.Equal(t, tc.want, store.TokenValid())
		})
	}

	t.Run("logged out", func(t *testing.T) {
		store := NewStore(storage.NewMemory(), &fakeAuth{}, testLogger())
		assert.False(t, store.TokenValid())
	})
}
