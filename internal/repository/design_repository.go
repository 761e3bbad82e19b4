package repository

import (
	"context"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// designOrderRepository implements the DesignOrderRepository interface using PostgreSQL.
type designOrderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDesignOrderRepository creates a new PostgreSQL-backed design order repository.
func NewDesignOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) DesignOrderRepository {
	return &designOrderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "design_order").Logger(),
	}
}

const designOrderColumns = `id, user_id, product_type, material, description, image_url,
		status, payment_status, price, created_at, updated_at`

func scanDesignOrder(row pgx.Row) (*model.DesignOrder, error) {
	var d model.DesignOrder
	err := row.Scan(&d.ID, &d.UserID, &d.ProductType, &d.Material, &d.Description,
		&d.ImageURL, &d.Status, &d.PaymentStatus, &d.Price, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new design order.
func (r *designOrderRepository) Create(ctx context.Context, order *model.DesignOrder) error {
	query := `
		INSERT INTO design_orders (id, user_id, product_type, material, description, image_url,
			status, payment_status, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID, order.UserID, order.ProductType, order.Material, order.Description,
		order.ImageURL, order.Status, order.PaymentStatus, order.Price, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("design_order_id", order.ID.String()).Msg("failed to create design order")
		return fmt.Errorf("failed to create design order: %w", err)
	}

	return nil
}

// GetByID retrieves a design order by ID.
func (r *designOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.DesignOrder, error) {
	query := `SELECT ` + designOrderColumns + ` FROM design_orders WHERE id = $1`

	d, err := scanDesignOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("design_order_id", id.String()).Msg("failed to query design order")
		return nil, fmt.Errorf("failed to query design order: %w", err)
	}

	return d, nil
}

// ListByUser retrieves design orders submitted by a user, newest first.
func (r *designOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DesignOrder, error) {
	query := `SELECT ` + designOrderColumns + ` FROM design_orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query design orders")
		return nil, fmt.Errorf("failed to query design orders: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// ListAll retrieves design orders across all users with pagination.
func (r *designOrderRepository) ListAll(ctx context.Context, limit, offset int) ([]model.DesignOrder, error) {
	query := `SELECT ` + designOrderColumns + ` FROM design_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query design orders")
		return nil, fmt.Errorf("failed to query design orders: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *designOrderRepository) collect(rows pgx.Rows) ([]model.DesignOrder, error) {
	var orders []model.DesignOrder
	for rows.Next() {
		d, err := scanDesignOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan design order row")
			return nil, fmt.Errorf("failed to scan design order: %w", err)
		}
		orders = append(orders, *d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating design order rows")
		return nil, fmt.Errorf("error iterating design orders: %w", err)
	}

	return orders, nil
}

// Update overwrites the mutable fields of a design order.
func (r *designOrderRepository) Update(ctx context.Context, order *model.DesignOrder) error {
	query := `
		UPDATE design_orders
		SET status = $2, payment_status = $3, price = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		order.ID, order.Status, order.PaymentStatus, order.Price, order.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("design_order_id", order.ID.String()).Msg("failed to update design order")
		return fmt.Errorf("failed to update design order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}
