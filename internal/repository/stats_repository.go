package repository

import (
	"context"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// statsRepository implements the StatsRepository interface using PostgreSQL.
type statsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatsRepository creates a new PostgreSQL-backed stats repository.
func NewStatsRepository(pool *pgxpool.Pool, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stats").Logger(),
	}
}

// Dashboard computes the dashboard aggregates in a single round trip.
func (r *statsRepository) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM design_orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM order_contents WHERE is_published),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status <> 'cancelled')
	`

	var stats model.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.PendingDesignOrders,
		&stats.PublishedContents,
		&stats.TotalRevenue,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dashboard stats")
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}

	return &stats, nil
}
