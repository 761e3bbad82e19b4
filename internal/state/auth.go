package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/rs/zerolog"
)

const sessionSnapshot = "session"

// session is the persisted shape of an authenticated customer session.
type session struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthStore holds the customer session: the bearer token and the signed-in
// user. The token is persisted so a restart can restore the session.
type AuthStore struct {
	client *Client
	files  *FileStore
	logger zerolog.Logger

	mu   sync.RWMutex
	user *model.User
}

// NewAuthStore creates an auth store.
func NewAuthStore(client *Client, files *FileStore, logger zerolog.Logger) *AuthStore {
	return &AuthStore{
		client: client,
		files:  files,
		logger: logger.With().Str("state", "auth").Logger(),
	}
}

// Login authenticates against the API and persists the session.
func (s *AuthStore) Login(ctx context.Context, email, password string) (*model.User, error) {
	var resp model.AuthResponse
	err := s.client.Post(ctx, "/api/auth/login", &model.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, s.establish(&resp)
}

// Register creates an account and persists the resulting session.
func (s *AuthStore) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	var resp model.AuthResponse
	err := s.client.Post(ctx, "/api/auth/register", &model.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, s.establish(&resp)
}

// Logout drops the session locally. No server call is made; the token
// simply expires.
func (s *AuthStore) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.client.SetToken("")

	if err := s.files.Remove(sessionSnapshot); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	return nil
}

// Restore loads a persisted session and validates the token against the
// profile endpoint. An expired or missing session leaves the store signed
// out without error.
func (s *AuthStore) Restore(ctx context.Context) (*model.User, error) {
	var sess session
	if err := s.files.Load(sessionSnapshot, &sess); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	if sess.Token == "" {
		return nil, nil
	}

	s.client.SetToken(sess.Token)

	var user model.User
	if err := s.client.Get(ctx, "/api/auth/profile", &user); err != nil {
		s.logger.Debug().Err(err).Msg("persisted session rejected, signing out")
		return nil, s.Logout()
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// User returns the signed-in user, or nil.
func (s *AuthStore) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in.
func (s *AuthStore) IsAuthenticated() bool {
	return s.User() != nil
}

func (s *AuthStore) establish(resp *model.AuthResponse) error {
	s.mu.Lock()
	s.user = resp.User
	s.mu.Unlock()
	s.client.SetToken(resp.Token)

	err := s.files.Save(sessionSnapshot, session{Token: resp.Token, User: resp.User})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
