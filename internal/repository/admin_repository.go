package repository

import (
	"context"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// adminRepository implements the AdminRepository interface using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

// GetByEmail retrieves an admin by email.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM admins
		WHERE email = $1
	`

	var a model.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &a, nil
}

// Count returns the number of admin records.
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count admins")
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// Create inserts a new admin record.
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	query := `
		INSERT INTO admins (id, email, name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Email, admin.Name, admin.PasswordHash, admin.Role, admin.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("email", admin.Email).Msg("failed to create admin")
		return fmt.Errorf("failed to create admin: %w", err)
	}

	r.logger.Info().Str("email", admin.Email).Msg("admin created")
	return nil
}
