package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/rs/zerolog"
)

const adminSnapshot = "admin_session"

// adminSession is the persisted shape of a back-office session.
type adminSession struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// AdminStore holds the back-office session and fetches dashboard data.
// Admin tokens are shorter-lived than customer tokens, so a rejected call
// simply requires logging in again.
type AdminStore struct {
	client *Client
	files  *FileStore
	logger zerolog.Logger

	mu    sync.RWMutex
	admin *model.Admin
}

// NewAdminStore creates an admin store.
func NewAdminStore(client *Client, files *FileStore, logger zerolog.Logger) *AdminStore {
	return &AdminStore{
		client: client,
		files:  files,
		logger: logger.With().Str("state", "admin").Logger(),
	}
}

// Login authenticates against the back-office login endpoint and persists
// the session.
func (s *AdminStore) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	var resp model.AuthResponse
	err := s.client.Post(ctx, "/api/admin/login", &model.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.admin = resp.Admin
	s.mu.Unlock()
	s.client.SetToken(resp.Token)

	if err := s.files.Save(adminSnapshot, adminSession{Token: resp.Token, Admin: resp.Admin}); err != nil {
		return nil, fmt.Errorf("failed to persist admin session: %w", err)
	}
	return resp.Admin, nil
}

// Logout drops the admin session locally.
func (s *AdminStore) Logout() error {
	s.mu.Lock()
	s.admin = nil
	s.mu.Unlock()
	s.client.SetToken("")

	if err := s.files.Remove(adminSnapshot); err != nil {
		return fmt.Errorf("failed to drop admin session: %w", err)
	}
	return nil
}

// FetchStats loads the dashboard counters.
func (s *AdminStore) FetchStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.client.Get(ctx, "/api/admin/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return &stats, nil
}

// Admin returns the signed-in admin, or nil.
func (s *AdminStore) Admin() *model.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}
