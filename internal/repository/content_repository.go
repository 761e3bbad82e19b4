package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// contentRepository implements the ContentRepository interface using PostgreSQL.
type contentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewContentRepository creates a new PostgreSQL-backed content repository.
func NewContentRepository(pool *pgxpool.Pool, logger zerolog.Logger) ContentRepository {
	return &contentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "content").Logger(),
	}
}

// GetByOrderID retrieves the content record and its media items for an order.
func (r *contentRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error) {
	query := `
		SELECT order_id, selected_theme_id, customizations, is_published, nfc_url, updated_at
		FROM order_contents
		WHERE order_id = $1
	`

	var c model.OrderContent
	var customizations []byte
	var nfcURL *string
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&c.OrderID, &c.SelectedThemeID, &customizations, &c.IsPublished, &nfcURL, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query order content")
		return nil, fmt.Errorf("failed to query order content: %w", err)
	}

	if nfcURL != nil {
		c.NFCURL = *nfcURL
	}
	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &c.Customizations); err != nil {
			return nil, fmt.Errorf("failed to decode customizations: %w", err)
		}
	}

	itemsQuery := `
		SELECT id, order_id, type, title, content, thumbnail, duration, created_at
		FROM media_items
		WHERE order_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query media items")
		return nil, fmt.Errorf("failed to query media items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m model.MediaItem
		if err := rows.Scan(&m.ID, &m.OrderID, &m.Type, &m.Title, &m.Content, &m.Thumbnail, &m.Duration, &m.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan media item row")
			return nil, fmt.Errorf("failed to scan media item: %w", err)
		}
		c.MediaItems = append(c.MediaItems, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating media item rows")
		return nil, fmt.Errorf("error iterating media items: %w", err)
	}

	return &c, nil
}

// Ensure creates an empty content record for the order if none exists.
func (r *contentRepository) Ensure(ctx context.Context, orderID uuid.UUID) error {
	query := `
		INSERT INTO order_contents (order_id, customizations, is_published, updated_at)
		VALUES ($1, '{}', FALSE, $2)
		ON CONFLICT (order_id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, orderID, time.Now()); err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to ensure order content")
		return fmt.Errorf("failed to ensure order content: %w", err)
	}

	return nil
}

// AddMedia inserts a media item.
func (r *contentRepository) AddMedia(ctx context.Context, item *model.MediaItem) error {
	query := `
		INSERT INTO media_items (id, order_id, type, title, content, thumbnail, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.OrderID, item.Type, item.Title, item.Content, item.Thumbnail, item.Duration, item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", item.OrderID.String()).Msg("failed to add media item")
		return fmt.Errorf("failed to add media item: %w", err)
	}

	return nil
}

// UpdateMedia overwrites a media item.
func (r *contentRepository) UpdateMedia(ctx context.Context, item *model.MediaItem) error {
	query := `
		UPDATE media_items
		SET type = $3, title = $4, content = $5, thumbnail = $6, duration = $7
		WHERE id = $1 AND order_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		item.ID, item.OrderID, item.Type, item.Title, item.Content, item.Thumbnail, item.Duration)
	if err != nil {
		r.logger.Error().Err(err).Str("media_id", item.ID.String()).Msg("failed to update media item")
		return fmt.Errorf("failed to update media item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrMediaNotFound
	}

	return nil
}

// RemoveMedia deletes a media item from an order's content.
func (r *contentRepository) RemoveMedia(ctx context.Context, orderID, mediaID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM media_items WHERE id = $1 AND order_id = $2`, mediaID, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("media_id", mediaID.String()).Msg("failed to remove media item")
		return fmt.Errorf("failed to remove media item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrMediaNotFound
	}

	return nil
}

// SetTheme records the selected theme for an order's content.
func (r *contentRepository) SetTheme(ctx context.Context, orderID, themeID uuid.UUID) error {
	query := `
		UPDATE order_contents
		SET selected_theme_id = $2, updated_at = $3
		WHERE order_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, orderID, themeID, time.Now())
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to set theme")
		return fmt.Errorf("failed to set theme: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrContentNotFound
	}

	return nil
}

// SetCustomizations overwrites the customization map.
func (r *contentRepository) SetCustomizations(ctx context.Context, orderID uuid.UUID, customizations map[string]string) error {
	encoded, err := json.Marshal(customizations)
	if err != nil {
		return fmt.Errorf("failed to encode customizations: %w", err)
	}

	query := `
		UPDATE order_contents
		SET customizations = $2, updated_at = $3
		WHERE order_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, orderID, encoded, time.Now())
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to set customizations")
		return fmt.Errorf("failed to set customizations: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrContentNotFound
	}

	return nil
}

// Publish marks the content published and records its NFC URL.
func (r *contentRepository) Publish(ctx context.Context, orderID uuid.UUID, nfcURL string) error {
	query := `
		UPDATE order_contents
		SET is_published = TRUE, nfc_url = $2, updated_at = $3
		WHERE order_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, orderID, nfcURL, time.Now())
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to publish content")
		return fmt.Errorf("failed to publish content: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrContentNotFound
	}

	r.logger.Info().
		Str("order_id", orderID.String()).
		Str("nfc_url", nfcURL).
		Msg("order content published")

	return nil
}
