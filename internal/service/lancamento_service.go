package service

import (
	"strings"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/dindinapp/dindin-backend/internal/util"
	"github.com/shopspring/decimal"
)

// LancamentoService applies the existence-checking business rules around the
// entry store; everything else is a direct pass-through.
type LancamentoService struct {
	lancamentoRepo domain.LancamentoRepository
	categoriaRepo  domain.CategoriaRepository
	pessoaRepo     domain.PessoaRepository
}

// NewLancamentoService creates a new LancamentoService
func NewLancamentoService(lancamentoRepo domain.LancamentoRepository, categoriaRepo domain.CategoriaRepository, pessoaRepo domain.PessoaRepository) *LancamentoService {
	return &LancamentoService{
		lancamentoRepo: lancamentoRepo,
		categoriaRepo:  categoriaRepo,
		pessoaRepo:     pessoaRepo,
	}
}

// LancamentoInput holds the caller-supplied fields of a lancamento
type LancamentoInput struct {
	ID             int64
	Descricao      string
	Valor          decimal.Decimal
	DataVencimento time.Time
	DataPagamento  *time.Time
	Tipo           domain.TipoLancamento
	CategoriaID    int64
	PessoaID       int64
	Observacao     *string
	Anexo          *string
	URLAnexo       *string
}

// Save inserts a lancamento, or replaces the existing record when the input
// carries an identifier. A populated identifier that matches no existing
// record fails with ErrLancamentoNotFound before any write happens, so a
// client-supplied id can never cause a silent insert.
func (s *LancamentoService) Save(input LancamentoInput) (*domain.Lancamento, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	lancamento := inputToLancamento(&input)

	if input.ID != 0 {
		if _, err := s.FindOne(input.ID); err != nil {
			return nil, err
		}
		return s.lancamentoRepo.Update(lancamento)
	}

	return s.lancamentoRepo.Create(lancamento)
}

// FindOne fetches a lancamento by identifier. Absence surfaces as
// ErrLancamentoNotFound, never as a nil result.
func (s *LancamentoService) FindOne(id int64) (*domain.Lancamento, error) {
	return s.lancamentoRepo.GetByID(id)
}

// Update replaces the mutable fields of an existing lancamento. The stored
// identifier and creation timestamp are preserved.
func (s *LancamentoService) Update(id int64, input LancamentoInput) (*domain.Lancamento, error) {
	existing, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(&input); err != nil {
		return nil, err
	}

	existing.Descricao = strings.TrimSpace(input.Descricao)
	existing.Valor = input.Valor
	existing.DataVencimento = input.DataVencimento
	existing.DataPagamento = input.DataPagamento
	existing.Tipo = input.Tipo
	existing.CategoriaID = input.CategoriaID
	existing.PessoaID = input.PessoaID
	existing.Observacao = input.Observacao
	existing.Anexo = input.Anexo
	existing.URLAnexo = input.URLAnexo

	return s.lancamentoRepo.Update(existing)
}

// Delete removes a lancamento; the store's zero-rows result propagates as
// ErrLancamentoNotFound for the handler to translate.
func (s *LancamentoService) Delete(id int64) error {
	return s.lancamentoRepo.Delete(id)
}

// List returns a page of full lancamento records matching the filter
func (s *LancamentoService) List(filter *domain.LancamentoFilter) (*domain.PaginatedLancamentos, error) {
	return s.lancamentoRepo.Search(filter)
}

// ListResumo returns a page of resumo projections matching the filter
func (s *LancamentoService) ListResumo(filter *domain.LancamentoFilter) (*domain.PaginatedResumos, error) {
	return s.lancamentoRepo.SearchResumo(filter)
}

// PorCategoria returns totals aggregated by categoria for the month of the
// reference date
func (s *LancamentoService) PorCategoria(mesReferencia time.Time) ([]*domain.CategoriaEstatistica, error) {
	inicio, fim := util.MonthBounds(mesReferencia)
	return s.lancamentoRepo.AggregateByCategoria(inicio, fim)
}

// PorDia returns totals aggregated by tipo and due date for the month of the
// reference date
func (s *LancamentoService) PorDia(mesReferencia time.Time) ([]*domain.DiaEstatistica, error) {
	inicio, fim := util.MonthBounds(mesReferencia)
	return s.lancamentoRepo.AggregateByDia(inicio, fim)
}

// validate enforces the lancamento validation contract: required fields, the
// closed tipo set, and live categoria/pessoa references.
func (s *LancamentoService) validate(input *LancamentoInput) error {
	descricao := strings.TrimSpace(input.Descricao)
	if descricao == "" {
		return domain.ErrDescricaoRequired
	}
	if len(descricao) > domain.MaxDescricaoLength {
		return domain.ErrDescricaoTooLong
	}

	if input.Valor.LessThanOrEqual(decimal.Zero) {
		return domain.ErrValorRequired
	}

	if input.DataVencimento.IsZero() {
		return domain.ErrDataVencimentoRequired
	}

	if !input.Tipo.IsValid() {
		return domain.ErrInvalidTipo
	}

	if input.Observacao != nil && len(*input.Observacao) > domain.MaxObservacaoLength {
		return domain.ErrObservacaoTooLong
	}

	if _, err := s.categoriaRepo.GetByID(input.CategoriaID); err != nil {
		return domain.ErrCategoriaNotFound
	}

	pessoa, err := s.pessoaRepo.GetByID(input.PessoaID)
	if err != nil {
		return domain.ErrPessoaNotFound
	}
	if !pessoa.Ativo {
		return domain.ErrPessoaInativa
	}

	return nil
}

func inputToLancamento(input *LancamentoInput) *domain.Lancamento {
	return &domain.Lancamento{
		ID:             input.ID,
		Descricao:      strings.TrimSpace(input.Descricao),
		Valor:          input.Valor,
		DataVencimento: input.DataVencimento,
		DataPagamento:  input.DataPagamento,
		Tipo:           input.Tipo,
		CategoriaID:    input.CategoriaID,
		PessoaID:       input.PessoaID,
		Observacao:     input.Observacao,
		Anexo:          input.Anexo,
		URLAnexo:       input.URLAnexo,
	}
}
