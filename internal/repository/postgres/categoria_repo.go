package postgres

import (
	"context"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoriaRepository implements domain.CategoriaRepository using PostgreSQL
type CategoriaRepository struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository creates a new CategoriaRepository
func NewCategoriaRepository(pool *pgxpool.Pool) *CategoriaRepository {
	return &CategoriaRepository{pool: pool}
}

// GetByID retrieves a categoria by its identifier
func (r *CategoriaRepository) GetByID(id int64) (*domain.Categoria, error) {
	ctx := context.Background()

	var c domain.Categoria
	err := r.pool.QueryRow(ctx, `SELECT id, nome FROM categoria WHERE id = $1`, id).
		Scan(&c.ID, &c.Nome)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoriaNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetAll lists every categoria ordered by name
func (r *CategoriaRepository) GetAll() ([]*domain.Categoria, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT id, nome FROM categoria ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Categoria
	for rows.Next() {
		var c domain.Categoria
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
