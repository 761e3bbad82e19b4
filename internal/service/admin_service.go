package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/auth"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	tokens    *auth.TokenIssuer
	logger    zerolog.Logger
}

// NewAdminService creates a new back-office service.
func NewAdminService(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	tokens *auth.TokenIssuer,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		tokens:    tokens,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// Login verifies admin credentials and returns a 24h token.
func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("login request is nil")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", email).Msg("failed admin login attempt")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("admin_id", admin.ID.String()).Msg("admin logged in")

	return &model.AuthResponse{Token: token, Admin: admin}, nil
}

// Bootstrap creates the configured admin account when none exists.
func (s *adminService) Bootstrap(ctx context.Context, email, name, password string) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	s.logger.Info().Str("email", admin.Email).Msg("bootstrap admin created")
	return nil
}

// DashboardStats returns the aggregate dashboard figures.
func (s *adminService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// ListUsers lists customer accounts.
func (s *adminService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a customer account.
func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if err == model.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}

// clampLimit bounds a page size to [1, 100] with a default of 20.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
