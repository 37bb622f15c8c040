// ABOUTME: Tests for session login, logout, and restore-from-storage
// ABOUTME: Uses a fake auth client and the in-memory KV store
package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/models"
	"github.com/kindredhq/kindred/store"
)

type fakeAuthClient struct {
	state models.AuthState
	err   error
	calls int
}

func (f *fakeAuthClient) Login(_ context.Context, _ api.LoginRequest) (models.AuthState, error) {
	f.calls++
	return f.state, f.err
}

func (f *fakeAuthClient) Register(_ context.Context, _ api.RegisterRequest) (models.AuthState, error) {
	f.calls++
	return f.state, f.err
}

func okClient() *fakeAuthClient {
	return &fakeAuthClient{state: models.AuthState{
		User:  models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"},
		Token: "tok-123",
	}}
}

func TestLoginPersistsAndRestores(t *testing.T) {
	kv := store.NewMemoryKV()

	s := New(kv, okClient())
	require.NoError(t, s.Login(context.Background(), "ada@example.com", "pw"))
	assert.Equal(t, "tok-123", s.Token())

	// Simulated process restart: a fresh store over the same KV.
	s2 := New(kv, okClient())
	assert.True(t, s2.IsAuthenticated())
	assert.Equal(t, "tok-123", s2.Token())
	u, ok := s2.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", u.Email)
}

func TestLoginFailureLeavesPriorStateUntouched(t *testing.T) {
	kv := store.NewMemoryKV()
	s := New(kv, okClient())
	require.NoError(t, s.Login(context.Background(), "ada@example.com", "pw"))

	s.client = &fakeAuthClient{err: &api.Error{Message: "Invalid credentials"}}
	err := s.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, "tok-123", s.Token(), "prior session must survive a failed login")
}

func TestValidationPrecedesNetwork(t *testing.T) {
	fc := okClient()
	s := New(store.NewMemoryKV(), fc)

	err := s.Login(context.Background(), "", "pw")
	require.Error(t, err)
	err = s.Login(context.Background(), "ada@example.com", "")
	require.Error(t, err)
	assert.Zero(t, fc.calls, "no network call may happen before validation passes")
}

func TestLogoutClearsEverything(t *testing.T) {
	kv := store.NewMemoryKV()
	s := New(kv, okClient())
	require.NoError(t, s.Login(context.Background(), "ada@example.com", "pw"))

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	_, err := kv.Get(store.KeyAuthState)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Logout when already logged out is a no-op, not an error.
	s.Logout()
}

func TestMalformedStoredSessionFailsSafe(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Put(store.KeyAuthState, []byte(`{not json`)))

	s := New(kv, okClient())
	assert.False(t, s.IsAuthenticated())
}

func TestRegisterPersists(t *testing.T) {
	kv := store.NewMemoryKV()
	s := New(kv, okClient())
	require.NoError(t, s.Register(context.Background(), "ada@example.com", "pw", "Ada"))
	assert.True(t, s.IsAuthenticated())
}

func TestServerErrorPassesThrough(t *testing.T) {
	s := New(store.NewMemoryKV(), &fakeAuthClient{err: errors.New("Login failed")})
	err := s.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}
