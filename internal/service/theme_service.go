package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// themeService implements ThemeService.
type themeService struct {
	themeRepo repository.ThemeRepository
	logger    zerolog.Logger
}

// NewThemeService creates a new theme service.
func NewThemeService(themeRepo repository.ThemeRepository, logger zerolog.Logger) ThemeService {
	return &themeService{
		themeRepo: themeRepo,
		logger:    logger.With().Str("service", "theme").Logger(),
	}
}

// GetAll retrieves all themes.
func (s *themeService) GetAll(ctx context.Context) ([]model.Theme, error) {
	themes, err := s.themeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get themes: %w", err)
	}
	return themes, nil
}

// GetByID retrieves a theme.
func (s *themeService) GetByID(ctx context.Context, id uuid.UUID) (*model.Theme, error) {
	theme, err := s.themeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, model.ErrThemeNotFound
	}
	return theme, nil
}

// Create adds a theme.
func (s *themeService) Create(ctx context.Context, req *model.ThemeRequest) (*model.Theme, error) {
	if req == nil {
		return nil, fmt.Errorf("theme request is nil")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Theme name is required")
	}

	theme := &model.Theme{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Preview:     req.Preview,
		Layout:      req.Layout,
		IsPremium:   req.IsPremium,
		CreatedAt:   time.Now(),
	}

	if err := s.themeRepo.Create(ctx, theme); err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}

	s.logger.Info().Str("theme_id", theme.ID.String()).Str("name", theme.Name).Msg("theme created")

	return theme, nil
}

// Update overwrites a theme.
func (s *themeService) Update(ctx context.Context, id uuid.UUID, req *model.ThemeRequest) (*model.Theme, error) {
	if req == nil {
		return nil, fmt.Errorf("theme request is nil")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Theme name is required")
	}

	theme := &model.Theme{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Preview:     req.Preview,
		Layout:      req.Layout,
		IsPremium:   req.IsPremium,
	}

	if err := s.themeRepo.Update(ctx, theme); err != nil {
		if err == model.ErrThemeNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}

	return theme, nil
}

// Delete removes a theme.
func (s *themeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.themeRepo.Delete(ctx, id); err != nil {
		if err == model.ErrThemeNotFound {
			return err
		}
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	return nil
}
