package testutil

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockLancamentoRepository is a map-backed implementation of
// domain.LancamentoRepository. Resumo projections resolve categoria and pessoa
// names through the Categorias and Pessoas maps.
type MockLancamentoRepository struct {
	Lancamentos map[int64]*domain.Lancamento
	Categorias  map[int64]string
	Pessoas     map[int64]string
	NextID      int64
	CreateFn    func(lancamento *domain.Lancamento) (*domain.Lancamento, error)
	UpdateFn    func(lancamento *domain.Lancamento) (*domain.Lancamento, error)
}

// NewMockLancamentoRepository creates a new MockLancamentoRepository
func NewMockLancamentoRepository() *MockLancamentoRepository {
	return &MockLancamentoRepository{
		Lancamentos: make(map[int64]*domain.Lancamento),
		Categorias:  make(map[int64]string),
		Pessoas:     make(map[int64]string),
		NextID:      1,
	}
}

// Create stores a new lancamento and assigns it the next identifier
func (m *MockLancamentoRepository) Create(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	if m.CreateFn != nil {
		return m.CreateFn(lancamento)
	}
	stored := *lancamento
	stored.ID = m.NextID
	m.NextID++
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.Lancamentos[stored.ID] = &stored
	return &stored, nil
}

// GetByID retrieves a lancamento by ID
func (m *MockLancamentoRepository) GetByID(id int64) (*domain.Lancamento, error) {
	if lancamento, ok := m.Lancamentos[id]; ok {
		copied := *lancamento
		return &copied, nil
	}
	return nil, domain.ErrLancamentoNotFound
}

// Update overwrites an existing lancamento
func (m *MockLancamentoRepository) Update(lancamento *domain.Lancamento) (*domain.Lancamento, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(lancamento)
	}
	if _, ok := m.Lancamentos[lancamento.ID]; !ok {
		return nil, domain.ErrLancamentoNotFound
	}
	stored := *lancamento
	stored.UpdatedAt = time.Now()
	m.Lancamentos[stored.ID] = &stored
	return &stored, nil
}

// Delete removes a lancamento by ID
func (m *MockLancamentoRepository) Delete(id int64) error {
	if _, ok := m.Lancamentos[id]; !ok {
		return domain.ErrLancamentoNotFound
	}
	delete(m.Lancamentos, id)
	return nil
}

// Search returns the filtered, paginated lancamentos ordered by ID
func (m *MockLancamentoRepository) Search(filter *domain.LancamentoFilter) (*domain.PaginatedLancamentos, error) {
	matched := m.match(filter)
	total := int64(len(matched))
	page := paginate(matched, filter)

	data := make([]*domain.Lancamento, len(page))
	for i, lancamento := range page {
		copied := *lancamento
		data[i] = &copied
	}

	return &domain.PaginatedLancamentos{
		Data:       data,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// SearchResumo returns the filtered, paginated resumo projection
func (m *MockLancamentoRepository) SearchResumo(filter *domain.LancamentoFilter) (*domain.PaginatedResumos, error) {
	matched := m.match(filter)
	total := int64(len(matched))
	page := paginate(matched, filter)

	data := make([]*domain.ResumoLancamento, len(page))
	for i, l := range page {
		data[i] = &domain.ResumoLancamento{
			ID:             l.ID,
			Descricao:      l.Descricao,
			Valor:          l.Valor,
			DataVencimento: l.DataVencimento,
			DataPagamento:  l.DataPagamento,
			Tipo:           l.Tipo,
			Categoria:      m.Categorias[l.CategoriaID],
			Pessoa:         m.Pessoas[l.PessoaID],
		}
	}

	return &domain.PaginatedResumos{
		Data:       data,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// AggregateByCategoria sums valor per categoria name for due dates in the range
func (m *MockLancamentoRepository) AggregateByCategoria(inicio, fim time.Time) ([]*domain.CategoriaEstatistica, error) {
	totals := make(map[string]decimal.Decimal)
	for _, l := range m.Lancamentos {
		if l.DataVencimento.Before(inicio) || l.DataVencimento.After(fim) {
			continue
		}
		nome := m.Categorias[l.CategoriaID]
		totals[nome] = totals[nome].Add(l.Valor)
	}

	names := make([]string, 0, len(totals))
	for nome := range totals {
		names = append(names, nome)
	}
	sort.Strings(names)

	result := make([]*domain.CategoriaEstatistica, len(names))
	for i, nome := range names {
		result[i] = &domain.CategoriaEstatistica{Categoria: nome, Total: totals[nome]}
	}
	return result, nil
}

// AggregateByDia sums valor per tipo per due date for due dates in the range
func (m *MockLancamentoRepository) AggregateByDia(inicio, fim time.Time) ([]*domain.DiaEstatistica, error) {
	type key struct {
		tipo domain.TipoLancamento
		dia  string
	}
	totals := make(map[key]decimal.Decimal)
	for _, l := range m.Lancamentos {
		if l.DataVencimento.Before(inicio) || l.DataVencimento.After(fim) {
			continue
		}
		k := key{tipo: l.Tipo, dia: l.DataVencimento.Format("2006-01-02")}
		totals[k] = totals[k].Add(l.Valor)
	}

	keys := make([]key, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].dia != keys[j].dia {
			return keys[i].dia < keys[j].dia
		}
		return keys[i].tipo < keys[j].tipo
	})

	result := make([]*domain.DiaEstatistica, len(keys))
	for i, k := range keys {
		dia, _ := time.Parse("2006-01-02", k.dia)
		result[i] = &domain.DiaEstatistica{Tipo: k.tipo, Dia: dia, Total: totals[k]}
	}
	return result, nil
}

// AggregateByPessoa sums valor per pessoa per tipo for due dates in the range
func (m *MockLancamentoRepository) AggregateByPessoa(inicio, fim time.Time) ([]*domain.PessoaEstatistica, error) {
	type key struct {
		pessoa string
		tipo   domain.TipoLancamento
	}
	totals := make(map[key]decimal.Decimal)
	for _, l := range m.Lancamentos {
		if l.DataVencimento.Before(inicio) || l.DataVencimento.After(fim) {
			continue
		}
		k := key{pessoa: m.Pessoas[l.PessoaID], tipo: l.Tipo}
		totals[k] = totals[k].Add(l.Valor)
	}

	keys := make([]key, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pessoa != keys[j].pessoa {
			return keys[i].pessoa < keys[j].pessoa
		}
		return keys[i].tipo < keys[j].tipo
	})

	result := make([]*domain.PessoaEstatistica, len(keys))
	for i, k := range keys {
		result[i] = &domain.PessoaEstatistica{Pessoa: k.pessoa, Tipo: k.tipo, Total: totals[k]}
	}
	return result, nil
}

// AddLancamento stores a lancamento directly (helper for tests)
func (m *MockLancamentoRepository) AddLancamento(lancamento *domain.Lancamento) {
	m.Lancamentos[lancamento.ID] = lancamento
	if lancamento.ID >= m.NextID {
		m.NextID = lancamento.ID + 1
	}
}

func (m *MockLancamentoRepository) match(filter *domain.LancamentoFilter) []*domain.Lancamento {
	matched := make([]*domain.Lancamento, 0, len(m.Lancamentos))
	for _, l := range m.Lancamentos {
		if filter.Descricao != nil && !strings.Contains(strings.ToLower(l.Descricao), strings.ToLower(*filter.Descricao)) {
			continue
		}
		if filter.DataVencimentoDe != nil && l.DataVencimento.Before(*filter.DataVencimentoDe) {
			continue
		}
		if filter.DataVencimentoAte != nil && l.DataVencimento.After(*filter.DataVencimentoAte) {
			continue
		}
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func paginate(matched []*domain.Lancamento, filter *domain.LancamentoFilter) []*domain.Lancamento {
	start := int((filter.Page - 1) * filter.PageSize)
	if start >= len(matched) {
		return nil
	}
	end := start + int(filter.PageSize)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}

func totalPages(total int64, pageSize int32) int32 {
	if pageSize <= 0 {
		return 0
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return int32(pages)
}

// MockCategoriaRepository is a map-backed implementation of
// domain.CategoriaRepository
type MockCategoriaRepository struct {
	Categorias map[int64]*domain.Categoria
}

// NewMockCategoriaRepository creates a new MockCategoriaRepository
func NewMockCategoriaRepository() *MockCategoriaRepository {
	return &MockCategoriaRepository{Categorias: make(map[int64]*domain.Categoria)}
}

// GetByID retrieves a categoria by ID
func (m *MockCategoriaRepository) GetByID(id int64) (*domain.Categoria, error) {
	if categoria, ok := m.Categorias[id]; ok {
		return categoria, nil
	}
	return nil, domain.ErrCategoriaNotFound
}

// GetAll returns all categorias ordered by ID
func (m *MockCategoriaRepository) GetAll() ([]*domain.Categoria, error) {
	result := make([]*domain.Categoria, 0, len(m.Categorias))
	for _, categoria := range m.Categorias {
		result = append(result, categoria)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// AddCategoria adds a categoria to the mock repository (helper for tests)
func (m *MockCategoriaRepository) AddCategoria(categoria *domain.Categoria) {
	m.Categorias[categoria.ID] = categoria
}

// MockPessoaRepository is a map-backed implementation of
// domain.PessoaRepository
type MockPessoaRepository struct {
	Pessoas map[int64]*domain.Pessoa
}

// NewMockPessoaRepository creates a new MockPessoaRepository
func NewMockPessoaRepository() *MockPessoaRepository {
	return &MockPessoaRepository{Pessoas: make(map[int64]*domain.Pessoa)}
}

// GetByID retrieves a pessoa by ID
func (m *MockPessoaRepository) GetByID(id int64) (*domain.Pessoa, error) {
	if pessoa, ok := m.Pessoas[id]; ok {
		return pessoa, nil
	}
	return nil, domain.ErrPessoaNotFound
}

// AddPessoa adds a pessoa to the mock repository (helper for tests)
func (m *MockPessoaRepository) AddPessoa(pessoa *domain.Pessoa) {
	m.Pessoas[pessoa.ID] = pessoa
}

// MockAnexoRepository is an in-memory implementation of
// storage.AnexoRepository
type MockAnexoRepository struct {
	Objects   map[string][]byte
	UploadErr error
}

// NewMockAnexoRepository creates a new MockAnexoRepository
func NewMockAnexoRepository() *MockAnexoRepository {
	return &MockAnexoRepository{Objects: make(map[string][]byte)}
}

// Upload stores the object bytes in memory
func (m *MockAnexoRepository) Upload(ctx context.Context, objectKey string, data io.Reader, contentType string, size int64) error {
	if m.UploadErr != nil {
		return m.UploadErr
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.Objects[objectKey] = buf
	return nil
}

// Delete removes the object from memory
func (m *MockAnexoRepository) Delete(ctx context.Context, objectKey string) error {
	delete(m.Objects, objectKey)
	return nil
}

// URLFor returns a deterministic fake URL for the key
func (m *MockAnexoRepository) URLFor(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.local/%s", objectKey), nil
}

// MockGenerator records statement generation calls and returns canned bytes
type MockGenerator struct {
	Calls  int
	Output []byte
	Err    error
}

// GeneratePorPessoa implements report.Generator
func (m *MockGenerator) GeneratePorPessoa(inicio, fim time.Time, rows []*domain.PessoaEstatistica) ([]byte, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Output != nil {
		return m.Output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}
