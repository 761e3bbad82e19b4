package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// themeRepository implements the ThemeRepository interface using PostgreSQL.
// The layout document is stored as a JSONB column.
type themeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewThemeRepository creates a new PostgreSQL-backed theme repository.
func NewThemeRepository(pool *pgxpool.Pool, logger zerolog.Logger) ThemeRepository {
	return &themeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "theme").Logger(),
	}
}

func scanTheme(row pgx.Row) (*model.Theme, error) {
	var t model.Theme
	var layout []byte
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Preview, &layout, &t.IsPremium, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(layout, &t.Layout); err != nil {
		return nil, fmt.Errorf("failed to decode theme layout: %w", err)
	}
	return &t, nil
}

// GetAll retrieves all themes ordered by name.
func (r *themeRepository) GetAll(ctx context.Context) ([]model.Theme, error) {
	query := `
		SELECT id, name, description, preview, layout, is_premium, created_at
		FROM themes
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query themes")
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	var themes []model.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan theme row")
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, *t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating theme rows")
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}

	return themes, nil
}

// GetByID retrieves a theme by ID.
func (r *themeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Theme, error) {
	query := `
		SELECT id, name, description, preview, layout, is_premium, created_at
		FROM themes
		WHERE id = $1
	`

	t, err := scanTheme(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("theme_id", id.String()).Msg("failed to query theme")
		return nil, fmt.Errorf("failed to query theme: %w", err)
	}

	return t, nil
}

// Create inserts a new theme.
func (r *themeRepository) Create(ctx context.Context, theme *model.Theme) error {
	layout, err := json.Marshal(theme.Layout)
	if err != nil {
		return fmt.Errorf("failed to encode theme layout: %w", err)
	}

	query := `
		INSERT INTO themes (id, name, description, preview, layout, is_premium, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		theme.ID, theme.Name, theme.Description, theme.Preview, layout, theme.IsPremium, theme.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", theme.Name).Msg("failed to create theme")
		return fmt.Errorf("failed to create theme: %w", err)
	}

	return nil
}

// Update overwrites an existing theme.
func (r *themeRepository) Update(ctx context.Context, theme *model.Theme) error {
	layout, err := json.Marshal(theme.Layout)
	if err != nil {
		return fmt.Errorf("failed to encode theme layout: %w", err)
	}

	query := `
		UPDATE themes
		SET name = $2, description = $3, preview = $4, layout = $5, is_premium = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		theme.ID, theme.Name, theme.Description, theme.Preview, layout, theme.IsPremium)
	if err != nil {
		r.logger.Error().Err(err).Str("theme_id", theme.ID.String()).Msg("failed to update theme")
		return fmt.Errorf("failed to update theme: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrThemeNotFound
	}

	return nil
}

// Delete removes a theme.
func (r *themeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("theme_id", id.String()).Msg("failed to delete theme")
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrThemeNotFound
	}

	return nil
}
