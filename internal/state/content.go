package state

import (
	"context"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContentStore edits the NFC content of a single order through the API.
// Unlike the cart there is no local draft: every mutation is a server call,
// and mutations re-fetch the content so callers always see server state.
type ContentStore struct {
	client  *Client
	orderID uuid.UUID
	logger  zerolog.Logger
}

// NewContentStore creates a content store bound to one order.
func NewContentStore(client *Client, orderID uuid.UUID, logger zerolog.Logger) *ContentStore {
	return &ContentStore{
		client:  client,
		orderID: orderID,
		logger:  logger.With().Str("state", "content").Str("order_id", orderID.String()).Logger(),
	}
}

// Get fetches the order's current content.
func (s *ContentStore) Get(ctx context.Context) (*model.OrderContent, error) {
	var content model.OrderContent
	if err := s.client.Get(ctx, s.path(""), &content); err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return &content, nil
}

// AddMedia appends a media item and returns the stored item.
func (s *ContentStore) AddMedia(ctx context.Context, req *model.MediaItemRequest) (*model.MediaItem, error) {
	var item model.MediaItem
	if err := s.client.Post(ctx, s.path("/media"), req, &item); err != nil {
		return nil, fmt.Errorf("failed to add media: %w", err)
	}
	return &item, nil
}

// UpdateMedia replaces an existing media item and returns the refreshed
// content.
func (s *ContentStore) UpdateMedia(ctx context.Context, mediaID uuid.UUID, req *model.MediaItemRequest) (*model.OrderContent, error) {
	if err := s.client.Put(ctx, s.path("/media/"+mediaID.String()), req, nil); err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}
	return s.Get(ctx)
}

// RemoveMedia deletes a media item and returns the refreshed content.
func (s *ContentStore) RemoveMedia(ctx context.Context, mediaID uuid.UUID) (*model.OrderContent, error) {
	if err := s.client.Delete(ctx, s.path("/media/"+mediaID.String()), nil); err != nil {
		return nil, fmt.Errorf("failed to remove media: %w", err)
	}
	return s.Get(ctx)
}

// SelectTheme binds a display theme to the order's content.
func (s *ContentStore) SelectTheme(ctx context.Context, themeID uuid.UUID) (*model.OrderContent, error) {
	body := map[string]string{"themeId": themeID.String()}
	if err := s.client.Put(ctx, s.path("/theme"), body, nil); err != nil {
		return nil, fmt.Errorf("failed to select theme: %w", err)
	}
	return s.Get(ctx)
}

// SetCustomizations replaces the content's customization map.
func (s *ContentStore) SetCustomizations(ctx context.Context, customizations map[string]string) (*model.OrderContent, error) {
	if err := s.client.Put(ctx, s.path("/customizations"), customizations, nil); err != nil {
		return nil, fmt.Errorf("failed to set customizations: %w", err)
	}
	return s.Get(ctx)
}

// Publish freezes the content and returns it with the assigned tap-to-view
// URL. Published content rejects further edits.
func (s *ContentStore) Publish(ctx context.Context) (*model.OrderContent, error) {
	var content model.OrderContent
	if err := s.client.Post(ctx, s.path("/publish"), nil, &content); err != nil {
		return nil, fmt.Errorf("failed to publish content: %w", err)
	}
	s.logger.Info().Str("nfc_url", content.NFCURL).Msg("content published")
	return &content, nil
}

func (s *ContentStore) path(suffix string) string {
	return "/api/content/" + s.orderID.String() + suffix
}
