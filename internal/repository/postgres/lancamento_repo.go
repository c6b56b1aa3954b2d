package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LancamentoRepository implements domain.LancamentoRepository using PostgreSQL
type LancamentoRepository struct {
	pool *pgxpool.Pool
}

// NewLancamentoRepository creates a new LancamentoRepository
func NewLancamentoRepository(pool *pgxpool.Pool) *LancamentoRepository {
	return &LancamentoRepository{pool: pool}
}

const lancamentoColumns = `id, descricao, valor, data_vencimento, data_pagamento, tipo,
	categoria_id, pessoa_id, observacao, anexo, url_anexo, created_at, updated_at`

// Create inserts a new lancamento; the store assigns the identifier.
func (r *LancamentoRepository) Create(l *domain.Lancamento) (*domain.Lancamento, error) {
	ctx := context.Background()

	valor, err := decimalToPgNumeric(l.Valor)
	if err != nil {
		return nil, fmt.Errorf("invalid valor: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO lancamento (descricao, valor, data_vencimento, data_pagamento, tipo,
			categoria_id, pessoa_id, observacao, anexo, url_anexo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+lancamentoColumns,
		l.Descricao, valor, dateOf(l.DataVencimento), optionalDate(l.DataPagamento),
		string(l.Tipo), l.CategoriaID, l.PessoaID,
		optionalText(l.Observacao), optionalText(l.Anexo), optionalText(l.URLAnexo))

	return scanLancamento(row)
}

// GetByID retrieves a lancamento by its identifier. Absence is reported as
// domain.ErrLancamentoNotFound, never as a nil result.
func (r *LancamentoRepository) GetByID(id int64) (*domain.Lancamento, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT `+lancamentoColumns+` FROM lancamento WHERE id = $1`, id)

	l, err := scanLancamento(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrLancamentoNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update replaces the full record for the given identifier.
func (r *LancamentoRepository) Update(l *domain.Lancamento) (*domain.Lancamento, error) {
	ctx := context.Background()

	valor, err := decimalToPgNumeric(l.Valor)
	if err != nil {
		return nil, fmt.Errorf("invalid valor: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE lancamento
		SET descricao = $2, valor = $3, data_vencimento = $4, data_pagamento = $5,
			tipo = $6, categoria_id = $7, pessoa_id = $8, observacao = $9,
			anexo = $10, url_anexo = $11, updated_at = now()
		WHERE id = $1
		RETURNING `+lancamentoColumns,
		l.ID, l.Descricao, valor, dateOf(l.DataVencimento), optionalDate(l.DataPagamento),
		string(l.Tipo), l.CategoriaID, l.PessoaID,
		optionalText(l.Observacao), optionalText(l.Anexo), optionalText(l.URLAnexo))

	updated, err := scanLancamento(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrLancamentoNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a lancamento. Zero affected rows maps to
// domain.ErrLancamentoNotFound so callers can translate it to a 404.
func (r *LancamentoRepository) Delete(id int64) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM lancamento WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLancamentoNotFound
	}
	return nil
}

// Search returns a page of full lancamento records matching the filter.
func (r *LancamentoRepository) Search(filter *domain.LancamentoFilter) (*domain.PaginatedLancamentos, error) {
	ctx := context.Background()

	where, args := buildFilter(filter)
	page, pageSize, offset := pagination(filter)

	var totalItems int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM lancamento`+where, args...).Scan(&totalItems); err != nil {
		return nil, err
	}

	orderBy, err := orderClause(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM lancamento%s%s LIMIT %d OFFSET %d`,
		lancamentoColumns, where, orderBy, pageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Lancamento, 0, pageSize)
	for rows.Next() {
		l, err := scanLancamento(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.PaginatedLancamentos{
		Data:       result,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, pageSize),
	}, nil
}

// SearchResumo returns the same entry set as Search for an identical filter,
// restricted to the projection fields and joined with categoria/pessoa names.
func (r *LancamentoRepository) SearchResumo(filter *domain.LancamentoFilter) (*domain.PaginatedResumos, error) {
	ctx := context.Background()

	where, args := buildFilter(filter)
	page, pageSize, offset := pagination(filter)

	var totalItems int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM lancamento l`+strings.ReplaceAll(where, "lancamento.", "l."), args...).Scan(&totalItems); err != nil {
		return nil, err
	}

	orderBy, err := orderClause(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.descricao, l.valor, l.data_vencimento, l.data_pagamento, l.tipo,
			c.nome AS categoria, p.nome AS pessoa
		FROM lancamento l
		JOIN categoria c ON c.id = l.categoria_id
		JOIN pessoa p ON p.id = l.pessoa_id
		%s%s LIMIT %d OFFSET %d`,
		strings.ReplaceAll(where, "lancamento.", "l."), orderBy, pageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.ResumoLancamento, 0, pageSize)
	for rows.Next() {
		resumo, err := scanResumo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, resumo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.PaginatedResumos{
		Data:       result,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, pageSize),
	}, nil
}

// AggregateByCategoria returns totals grouped by categoria for due dates
// within [inicio, fim].
func (r *LancamentoRepository) AggregateByCategoria(inicio, fim time.Time) ([]*domain.CategoriaEstatistica, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT c.nome, coalesce(sum(l.valor), 0)
		FROM lancamento l
		JOIN categoria c ON c.id = l.categoria_id
		WHERE l.data_vencimento BETWEEN $1 AND $2
		GROUP BY c.nome
		ORDER BY c.nome`,
		dateOf(inicio), dateOf(fim))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.CategoriaEstatistica
	for rows.Next() {
		var nome string
		var total pgtype.Numeric
		if err := rows.Scan(&nome, &total); err != nil {
			return nil, err
		}
		result = append(result, &domain.CategoriaEstatistica{
			Categoria: nome,
			Total:     pgNumericToDecimal(total),
		})
	}
	return result, rows.Err()
}

// AggregateByDia returns totals grouped by tipo and due date for due dates
// within [inicio, fim].
func (r *LancamentoRepository) AggregateByDia(inicio, fim time.Time) ([]*domain.DiaEstatistica, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT tipo, data_vencimento, coalesce(sum(valor), 0)
		FROM lancamento
		WHERE data_vencimento BETWEEN $1 AND $2
		GROUP BY tipo, data_vencimento
		ORDER BY data_vencimento, tipo`,
		dateOf(inicio), dateOf(fim))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.DiaEstatistica
	for rows.Next() {
		var tipo string
		var dia pgtype.Date
		var total pgtype.Numeric
		if err := rows.Scan(&tipo, &dia, &total); err != nil {
			return nil, err
		}
		result = append(result, &domain.DiaEstatistica{
			Tipo:  domain.TipoLancamento(tipo),
			Dia:   dia.Time,
			Total: pgNumericToDecimal(total),
		})
	}
	return result, rows.Err()
}

// AggregateByPessoa returns totals grouped by pessoa and tipo for due dates
// within [inicio, fim]. Feeds the per-person statement.
func (r *LancamentoRepository) AggregateByPessoa(inicio, fim time.Time) ([]*domain.PessoaEstatistica, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT p.nome, l.tipo, coalesce(sum(l.valor), 0)
		FROM lancamento l
		JOIN pessoa p ON p.id = l.pessoa_id
		WHERE l.data_vencimento BETWEEN $1 AND $2
		GROUP BY p.nome, l.tipo
		ORDER BY p.nome, l.tipo`,
		dateOf(inicio), dateOf(fim))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.PessoaEstatistica
	for rows.Next() {
		var nome, tipo string
		var total pgtype.Numeric
		if err := rows.Scan(&nome, &tipo, &total); err != nil {
			return nil, err
		}
		result = append(result, &domain.PessoaEstatistica{
			Pessoa: nome,
			Tipo:   domain.TipoLancamento(tipo),
			Total:  pgNumericToDecimal(total),
		})
	}
	return result, rows.Err()
}

// buildFilter renders the WHERE clause for the filter with positional args.
func buildFilter(filter *domain.LancamentoFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	var clauses []string
	var args []any

	if filter.Descricao != nil && *filter.Descricao != "" {
		args = append(args, "%"+*filter.Descricao+"%")
		clauses = append(clauses, fmt.Sprintf("lancamento.descricao ILIKE $%d", len(args)))
	}
	if filter.DataVencimentoDe != nil {
		args = append(args, dateOf(*filter.DataVencimentoDe))
		clauses = append(clauses, fmt.Sprintf("lancamento.data_vencimento >= $%d", len(args)))
	}
	if filter.DataVencimentoAte != nil {
		args = append(args, dateOf(*filter.DataVencimentoAte))
		clauses = append(clauses, fmt.Sprintf("lancamento.data_vencimento <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(filter *domain.LancamentoFilter) (string, error) {
	sort := ""
	if filter != nil {
		sort = filter.Sort
	}
	column, descending, err := domain.ParseSort(sort)
	if err != nil {
		return "", err
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction), nil
}

func pagination(filter *domain.LancamentoFilter) (page, pageSize, offset int32) {
	page = 1
	pageSize = int32(domain.DefaultPageSize)

	if filter != nil {
		if filter.Page > 0 {
			page = filter.Page
		}
		if filter.PageSize > 0 {
			pageSize = filter.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}
	return page, pageSize, (page - 1) * pageSize
}

func totalPages(totalItems int64, pageSize int32) int32 {
	pages := int32(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		pages++
	}
	return pages
}

func scanLancamento(row pgx.Row) (*domain.Lancamento, error) {
	var (
		l              domain.Lancamento
		valor          pgtype.Numeric
		dataVencimento pgtype.Date
		dataPagamento  pgtype.Date
		tipo           string
		observacao     pgtype.Text
		anexo          pgtype.Text
		urlAnexo       pgtype.Text
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := row.Scan(&l.ID, &l.Descricao, &valor, &dataVencimento, &dataPagamento, &tipo,
		&l.CategoriaID, &l.PessoaID, &observacao, &anexo, &urlAnexo, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	l.Valor = pgNumericToDecimal(valor)
	l.DataVencimento = dataVencimento.Time
	l.Tipo = domain.TipoLancamento(tipo)
	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time
	if dataPagamento.Valid {
		l.DataPagamento = &dataPagamento.Time
	}
	if observacao.Valid {
		l.Observacao = &observacao.String
	}
	if anexo.Valid {
		l.Anexo = &anexo.String
	}
	if urlAnexo.Valid {
		l.URLAnexo = &urlAnexo.String
	}
	return &l, nil
}

func scanResumo(row pgx.Row) (*domain.ResumoLancamento, error) {
	var (
		resumo         domain.ResumoLancamento
		valor          pgtype.Numeric
		dataVencimento pgtype.Date
		dataPagamento  pgtype.Date
		tipo           string
	)

	err := row.Scan(&resumo.ID, &resumo.Descricao, &valor, &dataVencimento, &dataPagamento,
		&tipo, &resumo.Categoria, &resumo.Pessoa)
	if err != nil {
		return nil, err
	}

	resumo.Valor = pgNumericToDecimal(valor)
	resumo.DataVencimento = dataVencimento.Time
	resumo.Tipo = domain.TipoLancamento(tipo)
	if dataPagamento.Valid {
		resumo.DataPagamento = &dataPagamento.Time
	}
	return &resumo, nil
}
