// ABOUTME: Session store holding the authenticated user and bearer token
// ABOUTME: Persists auth state to local storage and restores it on startup
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/models"
	"github.com/kindredhq/kindred/store"
)

// AuthClient is the slice of the API client the session needs.
type AuthClient interface {
	Login(ctx context.Context, req api.LoginRequest) (models.AuthState, error)
	Register(ctx context.Context, req api.RegisterRequest) (models.AuthState, error)
}

// Store gates all protected views: token presence is the sole
// authorization check client-side; the server validates the token itself.
type Store struct {
	kv     store.KV
	client AuthClient

	mu    sync.RWMutex
	state *models.AuthState
}

// New constructs a session store and restores any prior session from
// local storage. Malformed stored data is treated as logged-out rather
// than raised.
func New(kv store.KV, client AuthClient) *Store {
	s := &Store{kv: kv, client: client}
	s.restore()
	return s
}

// SetClient wires the API client after construction. The client needs
// Token as its token source, so the session has to exist first.
func (s *Store) SetClient(client AuthClient) {
	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
}

func (s *Store) restore() {
	raw, err := s.kv.Get(store.KeyAuthState)
	if err != nil {
		return
	}
	var state models.AuthState
	if err := json.Unmarshal(raw, &state); err != nil || state.Token == "" {
		log.Debug().Msg("discarding unreadable stored session")
		return
	}
	s.state = &state
}

// Login authenticates and persists the session. Required fields are
// checked before any network call. Prior state is untouched on failure.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	state, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.adopt(state)
}

// Register creates an account and persists the resulting session.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	state, err := s.client.Register(ctx, api.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}
	return s.adopt(state)
}

func (s *Store) adopt(state models.AuthState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Put(store.KeyAuthState, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.mu.Lock()
	s.state = &state
	s.mu.Unlock()
	return nil
}

// Logout clears both the in-memory state and the persisted entry
// unconditionally. No network call is made.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = nil
	s.mu.Unlock()
	if err := s.kv.Delete(store.KeyAuthState); err != nil {
		log.Warn().Err(err).Msg("failed to clear stored session")
	}
}

// Token returns the current bearer token, or "" when logged out. It
// satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.Token
}

// CurrentUser returns the authenticated user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return models.User{}, false
	}
	return s.state.User, true
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool { return s.Token() != "" }
