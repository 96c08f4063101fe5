package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *Author) error {
	query := `
		INSERT INTO authors (id, name, country, birth_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Name, a.Country, a.BirthDate, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}

	return nil
}
