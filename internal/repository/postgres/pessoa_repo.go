package postgres

import (
	"context"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PessoaRepository implements domain.PessoaRepository using PostgreSQL
type PessoaRepository struct {
	pool *pgxpool.Pool
}

// NewPessoaRepository creates a new PessoaRepository
func NewPessoaRepository(pool *pgxpool.Pool) *PessoaRepository {
	return &PessoaRepository{pool: pool}
}

// GetByID retrieves a pessoa by its identifier
func (r *PessoaRepository) GetByID(id int64) (*domain.Pessoa, error) {
	ctx := context.Background()

	var p domain.Pessoa
	err := r.pool.QueryRow(ctx, `SELECT id, nome, ativo FROM pessoa WHERE id = $1`, id).
		Scan(&p.ID, &p.Nome, &p.Ativo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPessoaNotFound
		}
		return nil, err
	}
	return &p, nil
}
