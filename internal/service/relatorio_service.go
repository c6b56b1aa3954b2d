package service

import (
	"errors"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/dindinapp/dindin-backend/internal/report"
)

var ErrPeriodoInvalido = errors.New("fim must not be before inicio")

// RelatorioService orchestrates statement generation: aggregate per pessoa
// over the period, hand the rows to the generator. No caching, every call
// regenerates the report.
type RelatorioService struct {
	lancamentoRepo domain.LancamentoRepository
	generator      report.Generator
}

// NewRelatorioService creates a new RelatorioService
func NewRelatorioService(lancamentoRepo domain.LancamentoRepository, generator report.Generator) *RelatorioService {
	return &RelatorioService{
		lancamentoRepo: lancamentoRepo,
		generator:      generator,
	}
}

// PorPessoa renders the PDF statement for due dates within [inicio, fim]
func (s *RelatorioService) PorPessoa(inicio, fim time.Time) ([]byte, error) {
	if fim.Before(inicio) {
		return nil, ErrPeriodoInvalido
	}

	rows, err := s.lancamentoRepo.AggregateByPessoa(inicio, fim)
	if err != nil {
		return nil, err
	}

	return s.generator.GeneratePorPessoa(inicio, fim, rows)
}
