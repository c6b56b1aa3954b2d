package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/dindinapp/dindin-backend/internal/service"
	"github.com/dindinapp/dindin-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LancamentoHandler exposes the ledger as a REST resource
type LancamentoHandler struct {
	lancamentoService *service.LancamentoService
	anexoService      *service.AnexoService
	relatorioService  *service.RelatorioService
}

// NewLancamentoHandler creates a new LancamentoHandler
func NewLancamentoHandler(lancamentoService *service.LancamentoService, anexoService *service.AnexoService, relatorioService *service.RelatorioService) *LancamentoHandler {
	return &LancamentoHandler{
		lancamentoService: lancamentoService,
		anexoService:      anexoService,
		relatorioService:  relatorioService,
	}
}

// LancamentoRequest represents the create/update request body
type LancamentoRequest struct {
	Descricao      string  `json:"descricao"`
	Valor          string  `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	DataPagamento  *string `json:"dataPagamento,omitempty"`
	Tipo           string  `json:"tipo"`
	CategoriaID    int64   `json:"categoriaId"`
	PessoaID       int64   `json:"pessoaId"`
	Observacao     *string `json:"observacao,omitempty"`
	Anexo          *string `json:"anexo,omitempty"`
	URLAnexo       *string `json:"urlAnexo,omitempty"`
}

// LancamentoResponse represents a lancamento in API responses
type LancamentoResponse struct {
	ID             int64   `json:"id"`
	Descricao      string  `json:"descricao"`
	Valor          string  `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	DataPagamento  *string `json:"dataPagamento,omitempty"`
	Tipo           string  `json:"tipo"`
	CategoriaID    int64   `json:"categoriaId"`
	PessoaID       int64   `json:"pessoaId"`
	Observacao     *string `json:"observacao,omitempty"`
	Anexo          *string `json:"anexo,omitempty"`
	URLAnexo       *string `json:"urlAnexo,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ResumoResponse represents the reduced projection in API responses
type ResumoResponse struct {
	ID             int64   `json:"id"`
	Descricao      string  `json:"descricao"`
	Valor          string  `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	DataPagamento  *string `json:"dataPagamento,omitempty"`
	Tipo           string  `json:"tipo"`
	Categoria      string  `json:"categoria"`
	Pessoa         string  `json:"pessoa"`
}

// PaginatedLancamentosResponse represents a page of lancamentos
type PaginatedLancamentosResponse struct {
	Data       []LancamentoResponse `json:"data"`
	Page       int32                `json:"page"`
	PageSize   int32                `json:"pageSize"`
	TotalItems int64                `json:"totalItems"`
	TotalPages int32                `json:"totalPages"`
}

// PaginatedResumosResponse represents a page of resumo projections
type PaginatedResumosResponse struct {
	Data       []ResumoResponse `json:"data"`
	Page       int32            `json:"page"`
	PageSize   int32            `json:"pageSize"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int32            `json:"totalPages"`
}

// AnexoResponse represents the attachment upload result
type AnexoResponse struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
}

// UploadAnexo godoc
// @Summary Upload an attachment
// @Description Store a multipart attachment and return its key and URL
// @Tags lancamentos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param anexo formData file true "Attachment file"
// @Success 200 {object} AnexoResponse
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos/anexo [post]
func (h *LancamentoHandler) UploadAnexo(c echo.Context) error {
	if h.anexoService == nil || !h.anexoService.IsEnabled() {
		return NewServiceUnavailableError(c, "Attachment uploads are disabled (storage not configured)")
	}

	file, err := c.FormFile("anexo")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "anexo", Message: "File is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded anexo")
		return NewInternalError(c, "Failed to process file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded anexo")
		return NewInternalError(c, "Failed to read file")
	}

	anexo, err := h.anexoService.Upload(c.Request().Context(), data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnexoEmpty):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "anexo", Message: "File is empty"},
			})
		case errors.Is(err, service.ErrAnexoTooLarge):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "anexo", Message: "File too large. Maximum size is 10MB"},
			})
		default:
			log.Error().Err(err).Str("filename", file.Filename).Msg("Failed to upload anexo")
			return NewInternalError(c, "Failed to upload anexo")
		}
	}

	log.Info().Str("nome", anexo.Nome).Msg("Anexo uploaded")

	return c.JSON(http.StatusOK, AnexoResponse{Nome: anexo.Nome, URL: anexo.URL})
}

// RelatorioPorPessoa godoc
// @Summary Per-person statement
// @Description Render the PDF statement for a due-date range
// @Tags lancamentos
// @Produce application/pdf
// @Security BearerAuth
// @Param inicio query string true "Start date (YYYY-MM-DD)"
// @Param fim query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos/relatorios/por-pessoa [get]
func (h *LancamentoHandler) RelatorioPorPessoa(c echo.Context) error {
	inicio, err := time.Parse(dateLayout, c.QueryParam("inicio"))
	if err != nil {
		return NewValidationError(c, "Invalid inicio (use YYYY-MM-DD)", []ValidationError{
			{Field: "inicio", Message: "Must be a valid date in YYYY-MM-DD format"},
		})
	}

	fim, err := time.Parse(dateLayout, c.QueryParam("fim"))
	if err != nil {
		return NewValidationError(c, "Invalid fim (use YYYY-MM-DD)", []ValidationError{
			{Field: "fim", Message: "Must be a valid date in YYYY-MM-DD format"},
		})
	}

	pdf, err := h.relatorioService.PorPessoa(inicio, fim)
	if err != nil {
		if errors.Is(err, service.ErrPeriodoInvalido) {
			return NewValidationError(c, "Invalid period", []ValidationError{
				{Field: "fim", Message: "Must not be before inicio"},
			})
		}
		log.Error().Err(err).Msg("Failed to generate relatorio por pessoa")
		return NewInternalError(c, "Failed to generate report")
	}

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// Pesquisar godoc
// @Summary List lancamentos
// @Description Paginated lancamentos with optional filters. The presence of
// @Description the resumo query parameter selects the reduced projection.
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param descricao query string false "Description substring"
// @Param dataVencimentoDe query string false "Due date from (YYYY-MM-DD)"
// @Param dataVencimentoAte query string false "Due date to (YYYY-MM-DD)"
// @Param resumo query string false "Select the resumo projection (presence only)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Items per page" default(20)
// @Param sort query string false "Sort spec: campo[,asc|desc]"
// @Success 200 {object} PaginatedLancamentosResponse
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos [get]
func (h *LancamentoHandler) Pesquisar(c echo.Context) error {
	filter, ok := parseFilter(c)
	if !ok {
		return nil
	}

	// The presence of "resumo", regardless of value, selects the
	// projection variant. It is a routing discriminator, not a flag.
	if c.QueryParams().Has("resumo") {
		return h.pesquisarResumo(c, filter)
	}

	result, err := h.lancamentoService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list lancamentos")
		return NewInternalError(c, "Failed to list lancamentos")
	}

	response := PaginatedLancamentosResponse{
		Data:       make([]LancamentoResponse, len(result.Data)),
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}
	for i, lancamento := range result.Data {
		response.Data[i] = toLancamentoResponse(lancamento)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *LancamentoHandler) pesquisarResumo(c echo.Context, filter *domain.LancamentoFilter) error {
	result, err := h.lancamentoService.ListResumo(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list resumo lancamentos")
		return NewInternalError(c, "Failed to list lancamentos")
	}

	response := PaginatedResumosResponse{
		Data:       make([]ResumoResponse, len(result.Data)),
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}
	for i, resumo := range result.Data {
		response.Data[i] = toResumoResponse(resumo)
	}

	return c.JSON(http.StatusOK, response)
}

// BuscarPorID godoc
// @Summary Fetch a lancamento
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Success 200 {object} LancamentoResponse
// @Failure 404 {object} ProblemDetails
// @Router /lancamentos/{id} [get]
func (h *LancamentoHandler) BuscarPorID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid lancamento ID", nil)
	}

	lancamento, err := h.lancamentoService.FindOne(id)
	if err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			return NewNotFoundError(c, "Lancamento not found")
		}
		log.Error().Err(err).Int64("lancamento_id", id).Msg("Failed to fetch lancamento")
		return NewInternalError(c, "Failed to fetch lancamento")
	}

	return c.JSON(http.StatusOK, toLancamentoResponse(lancamento))
}

// Criar godoc
// @Summary Create a lancamento
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LancamentoRequest true "Lancamento body"
// @Success 201 {object} LancamentoResponse
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos [post]
func (h *LancamentoHandler) Criar(c echo.Context) error {
	input, ok := bindLancamentoInput(c)
	if !ok {
		return nil
	}

	created, err := h.lancamentoService.Save(*input)
	if err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			// Save with a populated identifier requires the record to exist
			return NewNotFoundError(c, "Lancamento not found")
		}
		if writeValidationResponse(c, err) {
			return nil
		}
		log.Error().Err(err).Msg("Failed to create lancamento")
		return NewInternalError(c, "Failed to create lancamento")
	}

	log.Info().Int64("lancamento_id", created.ID).Str("descricao", created.Descricao).Msg("Lancamento created")

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/lancamentos/%d", created.ID))
	return c.JSON(http.StatusCreated, toLancamentoResponse(created))
}

// Atualizar godoc
// @Summary Update a lancamento
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Param request body LancamentoRequest true "Lancamento body"
// @Success 200 {object} LancamentoResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /lancamentos/{id} [put]
func (h *LancamentoHandler) Atualizar(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid lancamento ID", nil)
	}

	input, ok := bindLancamentoInput(c)
	if !ok {
		return nil
	}

	updated, err := h.lancamentoService.Update(id, *input)
	if err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			return NewNotFoundError(c, "Lancamento not found")
		}
		if writeValidationResponse(c, err) {
			return nil
		}
		log.Error().Err(err).Int64("lancamento_id", id).Msg("Failed to update lancamento")
		return NewInternalError(c, "Failed to update lancamento")
	}

	log.Info().Int64("lancamento_id", updated.ID).Msg("Lancamento updated")
	return c.JSON(http.StatusOK, toLancamentoResponse(updated))
}

// Remover godoc
// @Summary Delete a lancamento
// @Tags lancamentos
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /lancamentos/{id} [delete]
func (h *LancamentoHandler) Remover(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid lancamento ID", nil)
	}

	if err := h.lancamentoService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrLancamentoNotFound) {
			return NewNotFoundError(c, "Lancamento not found")
		}
		log.Error().Err(err).Int64("lancamento_id", id).Msg("Failed to delete lancamento")
		return NewInternalError(c, "Failed to delete lancamento")
	}

	log.Info().Int64("lancamento_id", id).Msg("Lancamento deleted")
	return c.NoContent(http.StatusNoContent)
}

// EstatisticaPorCategoria godoc
// @Summary Totals by categoria
// @Description Monthly totals per categoria. Defaults to the current month.
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param mesReferencia query string false "Reference month (YYYY-MM)"
// @Success 200 {array} CategoriaEstatisticaResponse
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos/estatistica/por-categoria [get]
func (h *LancamentoHandler) EstatisticaPorCategoria(c echo.Context) error {
	mesReferencia, ok := parseMesReferencia(c)
	if !ok {
		return nil
	}

	estatisticas, err := h.lancamentoService.PorCategoria(mesReferencia)
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate by categoria")
		return NewInternalError(c, "Failed to aggregate by categoria")
	}

	response := make([]CategoriaEstatisticaResponse, len(estatisticas))
	for i, e := range estatisticas {
		response[i] = CategoriaEstatisticaResponse{
			Categoria: e.Categoria,
			Total:     e.Total.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// EstatisticaPorDia godoc
// @Summary Totals by tipo and day
// @Description Monthly totals per tipo per due date. Defaults to the current month.
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param mesReferencia query string false "Reference month (YYYY-MM)"
// @Success 200 {array} DiaEstatisticaResponse
// @Failure 400 {object} ProblemDetails
// @Router /lancamentos/estatistica/por-dia [get]
func (h *LancamentoHandler) EstatisticaPorDia(c echo.Context) error {
	mesReferencia, ok := parseMesReferencia(c)
	if !ok {
		return nil
	}

	estatisticas, err := h.lancamentoService.PorDia(mesReferencia)
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate by dia")
		return NewInternalError(c, "Failed to aggregate by dia")
	}

	response := make([]DiaEstatisticaResponse, len(estatisticas))
	for i, e := range estatisticas {
		response[i] = DiaEstatisticaResponse{
			Tipo:  string(e.Tipo),
			Dia:   e.Dia.Format(dateLayout),
			Total: e.Total.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CategoriaEstatisticaResponse represents a categoria aggregate row
type CategoriaEstatisticaResponse struct {
	Categoria string `json:"categoria"`
	Total     string `json:"total"`
}

// DiaEstatisticaResponse represents a daily aggregate row
type DiaEstatisticaResponse struct {
	Tipo  string `json:"tipo"`
	Dia   string `json:"dia"`
	Total string `json:"total"`
}

// parseMesReferencia reads the optional mesReferencia query param, falling
// back to the current month. On a malformed value it writes the 400 response
// and reports ok=false.
func parseMesReferencia(c echo.Context) (time.Time, bool) {
	raw := c.QueryParam("mesReferencia")
	if raw == "" {
		return time.Now(), true
	}
	ref, err := util.ParseMesReferencia(raw)
	if err != nil {
		_ = NewValidationError(c, "Invalid mesReferencia (use YYYY-MM)", []ValidationError{
			{Field: "mesReferencia", Message: "Must be a valid month in YYYY-MM format"},
		})
		return time.Time{}, false
	}
	return ref, true
}

// parseFilter builds the LancamentoFilter from query params, rejecting
// malformed dates, pagination values and sort specs before the store is hit.
// On a malformed param it writes the 400 response and reports ok=false.
func parseFilter(c echo.Context) (*domain.LancamentoFilter, bool) {
	filter := &domain.LancamentoFilter{
		Page:     1,
		PageSize: domain.DefaultPageSize,
	}

	if descricao := c.QueryParam("descricao"); descricao != "" {
		filter.Descricao = &descricao
	}

	if de := c.QueryParam("dataVencimentoDe"); de != "" {
		parsed, err := time.Parse(dateLayout, de)
		if err != nil {
			_ = NewValidationError(c, "Invalid dataVencimentoDe format (use YYYY-MM-DD)", nil)
			return nil, false
		}
		filter.DataVencimentoDe = &parsed
	}

	if ate := c.QueryParam("dataVencimentoAte"); ate != "" {
		parsed, err := time.Parse(dateLayout, ate)
		if err != nil {
			_ = NewValidationError(c, "Invalid dataVencimentoAte format (use YYYY-MM-DD)", nil)
			return nil, false
		}
		filter.DataVencimentoAte = &parsed
	}

	if pageStr := c.QueryParam("page"); pageStr != "" {
		page, err := strconv.ParseInt(pageStr, 10, 32)
		if err != nil || page < 1 {
			_ = NewValidationError(c, "Invalid page (must be positive integer)", nil)
			return nil, false
		}
		filter.Page = int32(page)
	}

	if sizeStr := c.QueryParam("size"); sizeStr != "" {
		size, err := strconv.ParseInt(sizeStr, 10, 32)
		if err != nil || size < 1 {
			_ = NewValidationError(c, "Invalid size (must be positive integer)", nil)
			return nil, false
		}
		if size > domain.MaxPageSize {
			size = domain.MaxPageSize
		}
		filter.PageSize = int32(size)
	}

	if sort := c.QueryParam("sort"); sort != "" {
		if _, _, err := domain.ParseSort(sort); err != nil {
			_ = NewValidationError(c, "Invalid sort", []ValidationError{
				{Field: "sort", Message: "Must be campo[,asc|desc] over a sortable column"},
			})
			return nil, false
		}
		filter.Sort = sort
	}

	return filter, true
}

// bindLancamentoInput binds and parses the request body into a service input.
// On a wire-level validation failure it writes the 400 response and reports
// ok=false.
func bindLancamentoInput(c echo.Context) (*service.LancamentoInput, bool) {
	var req LancamentoRequest
	if err := c.Bind(&req); err != nil {
		_ = NewValidationError(c, "Invalid request body", nil)
		return nil, false
	}

	valor, err := decimal.NewFromString(req.Valor)
	if err != nil {
		_ = NewValidationError(c, "Invalid valor", []ValidationError{
			{Field: "valor", Message: "Must be a valid decimal number"},
		})
		return nil, false
	}

	dataVencimento, err := time.Parse(dateLayout, req.DataVencimento)
	if err != nil {
		_ = NewValidationError(c, "Invalid dataVencimento", []ValidationError{
			{Field: "dataVencimento", Message: "Must be in YYYY-MM-DD format"},
		})
		return nil, false
	}

	var dataPagamento *time.Time
	if req.DataPagamento != nil && *req.DataPagamento != "" {
		parsed, err := time.Parse(dateLayout, *req.DataPagamento)
		if err != nil {
			_ = NewValidationError(c, "Invalid dataPagamento", []ValidationError{
				{Field: "dataPagamento", Message: "Must be in YYYY-MM-DD format"},
			})
			return nil, false
		}
		dataPagamento = &parsed
	}

	return &service.LancamentoInput{
		Descricao:      req.Descricao,
		Valor:          valor,
		DataVencimento: dataVencimento,
		DataPagamento:  dataPagamento,
		Tipo:           domain.TipoLancamento(req.Tipo),
		CategoriaID:    req.CategoriaID,
		PessoaID:       req.PessoaID,
		Observacao:     req.Observacao,
		Anexo:          req.Anexo,
		URLAnexo:       req.URLAnexo,
	}, true
}

// validationFields maps service validation errors to field-level messages.
var validationFields = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrDescricaoRequired, "descricao", "Descricao is required"},
	{domain.ErrDescricaoTooLong, "descricao", "Descricao must be 255 characters or less"},
	{domain.ErrValorRequired, "valor", "Valor must be greater than zero"},
	{domain.ErrDataVencimentoRequired, "dataVencimento", "Data de vencimento is required"},
	{domain.ErrInvalidTipo, "tipo", "Tipo must be one of: RECEITA, DESPESA"},
	{domain.ErrObservacaoTooLong, "observacao", "Observacao must be 1000 characters or less"},
	{domain.ErrCategoriaNotFound, "categoriaId", "Categoria not found"},
	{domain.ErrPessoaNotFound, "pessoaId", "Pessoa not found"},
	{domain.ErrPessoaInativa, "pessoaId", "Pessoa is inactive"},
}

// writeValidationResponse writes the 400 response for a service validation
// error. Reports false when the error is not a validation failure.
func writeValidationResponse(c echo.Context, err error) bool {
	for _, v := range validationFields {
		if errors.Is(err, v.err) {
			_ = NewValidationError(c, "Validation failed", []ValidationError{
				{Field: v.field, Message: v.message},
			})
			return true
		}
	}
	return false
}

// Helper function to convert domain.Lancamento to LancamentoResponse
func toLancamentoResponse(l *domain.Lancamento) LancamentoResponse {
	resp := LancamentoResponse{
		ID:             l.ID,
		Descricao:      l.Descricao,
		Valor:          l.Valor.StringFixed(2),
		DataVencimento: l.DataVencimento.Format(dateLayout),
		Tipo:           string(l.Tipo),
		CategoriaID:    l.CategoriaID,
		PessoaID:       l.PessoaID,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
	if l.DataPagamento != nil {
		pagamento := l.DataPagamento.Format(dateLayout)
		resp.DataPagamento = &pagamento
	}
	if l.Observacao != nil {
		resp.Observacao = l.Observacao
	}
	if l.Anexo != nil {
		resp.Anexo = l.Anexo
	}
	if l.URLAnexo != nil {
		resp.URLAnexo = l.URLAnexo
	}
	return resp
}

func toResumoResponse(r *domain.ResumoLancamento) ResumoResponse {
	resp := ResumoResponse{
		ID:             r.ID,
		Descricao:      r.Descricao,
		Valor:          r.Valor.StringFixed(2),
		DataVencimento: r.DataVencimento.Format(dateLayout),
		Tipo:           string(r.Tipo),
		Categoria:      r.Categoria,
		Pessoa:         r.Pessoa,
	}
	if r.DataPagamento != nil {
		pagamento := r.DataPagamento.Format(dateLayout)
		resp.DataPagamento = &pagamento
	}
	return resp
}
