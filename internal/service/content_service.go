package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contentService implements ContentService.
type contentService struct {
	contentRepo repository.ContentRepository
	themeRepo   repository.ThemeRepository
	nfcBaseURL  string
	logger      zerolog.Logger
}

// NewContentService creates a new order content service. nfcBaseURL is the
// public origin that published content pages are served from.
func NewContentService(
	contentRepo repository.ContentRepository,
	themeRepo repository.ThemeRepository,
	nfcBaseURL string,
	logger zerolog.Logger,
) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		themeRepo:   themeRepo,
		nfcBaseURL:  strings.TrimRight(nfcBaseURL, "/"),
		logger:      logger.With().Str("service", "content").Logger(),
	}
}

// Get retrieves the content bound to an order. When nothing has been
// uploaded yet an empty unpublished record is returned.
func (s *contentService) Get(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error) {
	content, err := s.contentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order content: %w", err)
	}

	if content == nil {
		return &model.OrderContent{OrderID: orderID}, nil
	}

	return content, nil
}

// AddMedia attaches a media item, lazily creating the content record on the
// first upload. Rejected once the content is published.
func (s *contentService) AddMedia(ctx context.Context, orderID uuid.UUID, req *model.MediaItemRequest) (*model.MediaItem, error) {
	if err := validateMediaRequest(req); err != nil {
		return nil, err
	}

	if err := s.ensureUnpublished(ctx, orderID); err != nil {
		return nil, err
	}

	if err := s.contentRepo.Ensure(ctx, orderID); err != nil {
		return nil, fmt.Errorf("failed to add media: %w", err)
	}

	item := &model.MediaItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Duration:  req.Duration,
		CreatedAt: time.Now(),
	}

	if err := s.contentRepo.AddMedia(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add media: %w", err)
	}

	s.logger.Debug().
		Str("order_id", orderID.String()).
		Str("media_id", item.ID.String()).
		Str("type", item.Type).
		Msg("media item added")

	return item, nil
}

// UpdateMedia overwrites a media item.
func (s *contentService) UpdateMedia(ctx context.Context, orderID, mediaID uuid.UUID, req *model.MediaItemRequest) error {
	if err := validateMediaRequest(req); err != nil {
		return err
	}

	if err := s.ensureUnpublished(ctx, orderID); err != nil {
		return err
	}

	item := &model.MediaItem{
		ID:        mediaID,
		OrderID:   orderID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Duration:  req.Duration,
	}

	if err := s.contentRepo.UpdateMedia(ctx, item); err != nil {
		if err == model.ErrMediaNotFound {
			return err
		}
		return fmt.Errorf("failed to update media: %w", err)
	}

	return nil
}

// RemoveMedia detaches a media item.
func (s *contentService) RemoveMedia(ctx context.Context, orderID, mediaID uuid.UUID) error {
	if err := s.ensureUnpublished(ctx, orderID); err != nil {
		return err
	}

	if err := s.contentRepo.RemoveMedia(ctx, orderID, mediaID); err != nil {
		if err == model.ErrMediaNotFound {
			return err
		}
		return fmt.Errorf("failed to remove media: %w", err)
	}

	return nil
}

// SelectTheme records the presentation theme for the order.
func (s *contentService) SelectTheme(ctx context.Context, orderID, themeID uuid.UUID) error {
	theme, err := s.themeRepo.GetByID(ctx, themeID)
	if err != nil {
		return fmt.Errorf("failed to select theme: %w", err)
	}
	if theme == nil {
		return model.ErrThemeNotFound
	}

	if err := s.ensureUnpublished(ctx, orderID); err != nil {
		return err
	}

	if err := s.contentRepo.Ensure(ctx, orderID); err != nil {
		return fmt.Errorf("failed to select theme: %w", err)
	}

	if err := s.contentRepo.SetTheme(ctx, orderID, themeID); err != nil {
		return fmt.Errorf("failed to select theme: %w", err)
	}

	return nil
}

// UpdateCustomizations overwrites the customization map.
func (s *contentService) UpdateCustomizations(ctx context.Context, orderID uuid.UUID, customizations map[string]string) error {
	if err := s.ensureUnpublished(ctx, orderID); err != nil {
		return err
	}

	if err := s.contentRepo.Ensure(ctx, orderID); err != nil {
		return fmt.Errorf("failed to update customizations: %w", err)
	}

	if err := s.contentRepo.SetCustomizations(ctx, orderID, customizations); err != nil {
		return fmt.Errorf("failed to update customizations: %w", err)
	}

	return nil
}

// Publish freezes the content and assigns its public NFC URL. The URL is
// derived deterministically from the order ID, so publishing is idempotent.
// Content with no media items may still be published.
func (s *contentService) Publish(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error) {
	if err := s.contentRepo.Ensure(ctx, orderID); err != nil {
		return nil, fmt.Errorf("failed to publish content: %w", err)
	}

	nfcURL := s.NFCURLFor(orderID)
	if err := s.contentRepo.Publish(ctx, orderID, nfcURL); err != nil {
		return nil, fmt.Errorf("failed to publish content: %w", err)
	}

	content, err := s.contentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to publish content: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("nfc_url", nfcURL).
		Msg("content published")

	return content, nil
}

// NFCURLFor returns the tap-to-view URL for an order.
func (s *contentService) NFCURLFor(orderID uuid.UUID) string {
	return fmt.Sprintf("%s/nfc/%s", s.nfcBaseURL, orderID)
}

// ensureUnpublished rejects mutations on published content.
func (s *contentService) ensureUnpublished(ctx context.Context, orderID uuid.UUID) error {
	content, err := s.contentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to check content state: %w", err)
	}
	if content != nil && content.IsPublished {
		return model.ErrContentPublished
	}
	return nil
}

func validateMediaRequest(req *model.MediaItemRequest) error {
	if req == nil {
		return fmt.Errorf("media item request is nil")
	}
	if !model.ValidMediaType(req.Type) {
		return model.NewDomainError(model.ErrCodeMissingField,
			fmt.Sprintf("Unsupported media type: %s", req.Type))
	}
	if req.Content == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Media content is required")
	}
	return nil
}
