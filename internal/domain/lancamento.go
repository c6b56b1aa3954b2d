package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TipoLancamento string

const (
	TipoReceita TipoLancamento = "RECEITA"
	TipoDespesa TipoLancamento = "DESPESA"
)

// IsValid reports whether the tipo is one of the closed set.
func (t TipoLancamento) IsValid() bool {
	return t == TipoReceita || t == TipoDespesa
}

// Lancamento is a single ledger entry (income or expense). Categoria and
// pessoa are referenced by explicit foreign keys; their names are only joined
// into the resumo projection.
type Lancamento struct {
	ID             int64           `json:"id"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento"`
	DataPagamento  *time.Time      `json:"dataPagamento,omitempty"`
	Tipo           TipoLancamento  `json:"tipo"`
	CategoriaID    int64           `json:"categoriaId"`
	PessoaID       int64           `json:"pessoaId"`
	Observacao     *string         `json:"observacao,omitempty"`
	Anexo          *string         `json:"anexo,omitempty"`
	URLAnexo       *string         `json:"urlAnexo,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ResumoLancamento is the reduced read-only projection used by list views
// requested with the "resumo" query discriminator.
type ResumoLancamento struct {
	ID             int64           `json:"id"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento"`
	DataPagamento  *time.Time      `json:"dataPagamento,omitempty"`
	Tipo           TipoLancamento  `json:"tipo"`
	Categoria      string          `json:"categoria"`
	Pessoa         string          `json:"pessoa"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// LancamentoFilter carries per-request query criteria plus pagination. It is
// never persisted.
type LancamentoFilter struct {
	Descricao         *string
	DataVencimentoDe  *time.Time
	DataVencimentoAte *time.Time
	Page              int32
	PageSize          int32
	Sort              string
}

type PaginatedLancamentos struct {
	Data       []*Lancamento `json:"data"`
	Page       int32         `json:"page"`
	PageSize   int32         `json:"pageSize"`
	TotalItems int64         `json:"totalItems"`
	TotalPages int32         `json:"totalPages"`
}

type PaginatedResumos struct {
	Data       []*ResumoLancamento `json:"data"`
	Page       int32               `json:"page"`
	PageSize   int32               `json:"pageSize"`
	TotalItems int64               `json:"totalItems"`
	TotalPages int32               `json:"totalPages"`
}

// CategoriaEstatistica is a derived aggregation row: total per category.
type CategoriaEstatistica struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

// DiaEstatistica is a derived aggregation row: total per tipo per day.
type DiaEstatistica struct {
	Tipo  TipoLancamento  `json:"tipo"`
	Dia   time.Time       `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// PessoaEstatistica feeds the per-person statement: total per pessoa per tipo
// within a date range.
type PessoaEstatistica struct {
	Pessoa string          `json:"pessoa"`
	Tipo   TipoLancamento  `json:"tipo"`
	Total  decimal.Decimal `json:"total"`
}

// Anexo is the transient result of an attachment upload: the generated storage
// key and a retrievable URL. It is not a domain entity.
type Anexo struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
}

type LancamentoRepository interface {
	Create(lancamento *Lancamento) (*Lancamento, error)
	GetByID(id int64) (*Lancamento, error)
	Update(lancamento *Lancamento) (*Lancamento, error)
	Delete(id int64) error
	Search(filter *LancamentoFilter) (*PaginatedLancamentos, error)
	SearchResumo(filter *LancamentoFilter) (*PaginatedResumos, error)
	AggregateByCategoria(inicio, fim time.Time) ([]*CategoriaEstatistica, error)
	AggregateByDia(inicio, fim time.Time) ([]*DiaEstatistica, error)
	AggregateByPessoa(inicio, fim time.Time) ([]*PessoaEstatistica, error)
}
