package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/dindinapp/dindin-backend/internal/middleware"
	"github.com/dindinapp/dindin-backend/internal/service"
	"github.com/dindinapp/dindin-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Helper to set up auth context with full permissions
func setupAuthContext(c echo.Context, subject string) {
	setupAuthContextWithClaims(c, subject, []string{
		middleware.PermissionPesquisarLancamento,
		middleware.PermissionCadastrarLancamento,
		middleware.PermissionRemoverLancamento,
	}, "read write")
}

// Helper to set up auth context with specific permissions and scope
func setupAuthContextWithClaims(c echo.Context, subject string, permissions []string, scope string) {
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Permissions: permissions,
			Scope:       scope,
		},
	}
	ctx := context.WithValue(c.Request().Context(), middleware.ClaimsKey, claims)
	ctx = context.WithValue(ctx, middleware.SubjectKey, subject)
	c.SetRequest(c.Request().WithContext(ctx))
}

func setupHandler() (*LancamentoHandler, *testutil.MockLancamentoRepository, *testutil.MockGenerator) {
	lancamentoRepo := testutil.NewMockLancamentoRepository()
	lancamentoRepo.Categorias[1] = "Lazer"
	lancamentoRepo.Pessoas[1] = "Joao Silva"

	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaRepo.AddCategoria(&domain.Categoria{ID: 1, Nome: "Lazer"})

	pessoaRepo := testutil.NewMockPessoaRepository()
	pessoaRepo.AddPessoa(&domain.Pessoa{ID: 1, Nome: "Joao Silva", Ativo: true})

	lancamentoService := service.NewLancamentoService(lancamentoRepo, categoriaRepo, pessoaRepo)
	anexoService := service.NewAnexoService(testutil.NewMockAnexoRepository())
	generator := &testutil.MockGenerator{}
	relatorioService := service.NewRelatorioService(lancamentoRepo, generator)

	return NewLancamentoHandler(lancamentoService, anexoService, relatorioService), lancamentoRepo, generator
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedLancamento(repo *testutil.MockLancamentoRepository) *domain.Lancamento {
	created, _ := repo.Create(&domain.Lancamento{
		Descricao:      "Cinema",
		Valor:          mustDecimal("55.90"),
		DataVencimento: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Tipo:           domain.TipoDespesa,
		CategoriaID:    1,
		PessoaID:       1,
	})
	return created
}

func TestCriar_Returns201WithLocation(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	body := `{"descricao":"Cinema","valor":"55.90","dataVencimento":"2026-08-10","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`
	req := httptest.NewRequest(http.MethodPost, "/lancamentos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.Criar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var response LancamentoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID == 0 {
		t.Error("Expected assigned id in response")
	}
	if response.Valor != "55.90" {
		t.Errorf("Expected valor '55.90', got %s", response.Valor)
	}

	location := rec.Header().Get(echo.HeaderLocation)
	if !strings.HasSuffix(location, "/lancamentos/1") {
		t.Errorf("Expected Location header ending in /lancamentos/1, got %q", location)
	}
}

func TestCriar_ValidationFailureReturns400(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing descricao",
			body:  `{"descricao":"","valor":"10.00","dataVencimento":"2026-08-10","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`,
			field: "descricao",
		},
		{
			name:  "malformed valor",
			body:  `{"descricao":"Cinema","valor":"abc","dataVencimento":"2026-08-10","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`,
			field: "valor",
		},
		{
			name:  "malformed dataVencimento",
			body:  `{"descricao":"Cinema","valor":"10.00","dataVencimento":"10/08/2026","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`,
			field: "dataVencimento",
		},
		{
			name:  "unknown tipo",
			body:  `{"descricao":"Cinema","valor":"10.00","dataVencimento":"2026-08-10","tipo":"TRANSFERENCIA","categoriaId":1,"pessoaId":1}`,
			field: "tipo",
		},
		{
			name:  "unknown categoria",
			body:  `{"descricao":"Cinema","valor":"10.00","dataVencimento":"2026-08-10","tipo":"DESPESA","categoriaId":99,"pessoaId":1}`,
			field: "categoriaId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/lancamentos", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setupAuthContext(c, "auth0|user1")

			if err := handler.Criar(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}

			var problem ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Failed to unmarshal problem details: %v", err)
			}
			if len(problem.Errors) == 0 || problem.Errors[0].Field != tt.field {
				t.Errorf("Expected field error on %q, got %+v", tt.field, problem.Errors)
			}
		})
	}

	if len(repo.Lancamentos) != 0 {
		t.Errorf("Expected no writes on validation failure, found %d records", len(repo.Lancamentos))
	}
}

func TestBuscarPorID(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	created := seedLancamento(repo)

	req := httptest.NewRequest(http.MethodGet, "/lancamentos/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, "auth0|user1")

	if err := handler.BuscarPorID(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response LancamentoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != created.ID || response.Descricao != "Cinema" {
		t.Errorf("Unexpected response %+v", response)
	}
}

func TestBuscarPorID_UnknownReturns404(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/lancamentos/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	setupAuthContext(c, "auth0|user1")

	if err := handler.BuscarPorID(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestAtualizar_UnknownIDReturns404AndCreatesNothing(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()

	body := `{"descricao":"Cinema","valor":"10.00","dataVencimento":"2026-08-10","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`
	req := httptest.NewRequest(http.MethodPut, "/lancamentos/42", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	setupAuthContext(c, "auth0|user1")

	if err := handler.Atualizar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if len(repo.Lancamentos) != 0 {
		t.Error("A failed update must not create a record")
	}
}

func TestAtualizar_ReplacesMutableFields(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	seedLancamento(repo)

	body := `{"descricao":"Teatro","valor":"120.00","dataVencimento":"2026-08-15","tipo":"DESPESA","categoriaId":1,"pessoaId":1}`
	req := httptest.NewRequest(http.MethodPut, "/lancamentos/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, "auth0|user1")

	if err := handler.Atualizar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response LancamentoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != 1 || response.Descricao != "Teatro" || response.Valor != "120.00" {
		t.Errorf("Unexpected response %+v", response)
	}
}

func TestRemover(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	seedLancamento(repo)

	req := httptest.NewRequest(http.MethodDelete, "/lancamentos/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, "auth0|user1")

	if err := handler.Remover(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(repo.Lancamentos) != 0 {
		t.Error("Expected record to be removed")
	}
}

func TestRemover_UnknownReturns404(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	req := httptest.NewRequest(http.MethodDelete, "/lancamentos/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	setupAuthContext(c, "auth0|user1")

	if err := handler.Remover(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestPesquisar_FullProjection(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	seedLancamento(repo)

	req := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.Pesquisar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response PaginatedLancamentosResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Data) != 1 || response.TotalItems != 1 {
		t.Errorf("Expected one record, got %+v", response)
	}
	if response.Data[0].CategoriaID != 1 {
		t.Error("Full projection must expose categoria by id")
	}
}

func TestPesquisar_ResumoDiscriminator(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	seedLancamento(repo)

	// Any presence of the resumo param selects the projection, including an
	// empty value and values that look false.
	for _, query := range []string{"?resumo", "?resumo=", "?resumo=false", "?resumo=0"} {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/lancamentos"+query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setupAuthContext(c, "auth0|user1")

			if err := handler.Pesquisar(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", rec.Code)
			}

			var response PaginatedResumosResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if len(response.Data) != 1 {
				t.Fatalf("Expected one resumo record, got %d", len(response.Data))
			}
			if response.Data[0].Categoria != "Lazer" || response.Data[0].Pessoa != "Joao Silva" {
				t.Errorf("Resumo must join categoria/pessoa names, got %+v", response.Data[0])
			}
		})
	}
}

func TestPesquisar_InvalidSortReturns400(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/lancamentos?sort=createdAt,desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.Pesquisar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestPesquisar_InvalidDateFilterReturns400(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/lancamentos?dataVencimentoDe=10-08-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.Pesquisar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestRelatorioPorPessoa_ReturnsPDF(t *testing.T) {
	e := echo.New()
	handler, repo, generator := setupHandler()
	seedLancamento(repo)

	req := httptest.NewRequest(http.MethodGet, "/lancamentos/relatorios/por-pessoa?inicio=2026-08-01&fim=2026-08-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.RelatorioPorPessoa(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("Expected content type application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("Expected body to start with PDF magic bytes")
	}
	if generator.Calls != 1 {
		t.Errorf("Expected one generator call, got %d", generator.Calls)
	}
}

func TestRelatorioPorPessoa_MalformedPeriodNeverReachesGenerator(t *testing.T) {
	e := echo.New()
	handler, _, generator := setupHandler()

	queries := []string{
		"",
		"?inicio=2026-08-01",
		"?inicio=01/08/2026&fim=2026-08-31",
		"?inicio=2026-08-01&fim=31-08-2026",
	}

	for _, query := range queries {
		req := httptest.NewRequest(http.MethodGet, "/lancamentos/relatorios/por-pessoa"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setupAuthContext(c, "auth0|user1")

		if err := handler.RelatorioPorPessoa(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected status 400, got %d", query, rec.Code)
		}
	}

	if generator.Calls != 0 {
		t.Errorf("Malformed periods must never reach the generator, got %d calls", generator.Calls)
	}
}

func TestUploadAnexo(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("anexo", "recibo.pdf")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 conteudo")); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.UploadAnexo(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response AnexoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !strings.HasPrefix(response.Nome, "anexos/") || !strings.HasSuffix(response.Nome, "_recibo.pdf") {
		t.Errorf("Unexpected object key %q", response.Nome)
	}
	if response.URL == "" {
		t.Error("Expected a retrievable URL")
	}
}

func TestUploadAnexo_MissingFileReturns400(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.UploadAnexo(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUploadAnexo_StorageDisabledReturns503(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()
	handler.anexoService = nil

	req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.UploadAnexo(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestEstatisticaPorCategoria_InvalidMesReferenciaReturns400(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/lancamentos/estatistica/por-categoria?mesReferencia=08-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.EstatisticaPorCategoria(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestEstatisticaPorDia(t *testing.T) {
	e := echo.New()
	handler, repo, _ := setupHandler()
	seedLancamento(repo)

	req := httptest.NewRequest(http.MethodGet, "/lancamentos/estatistica/por-dia?mesReferencia=2026-08", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user1")

	if err := handler.EstatisticaPorDia(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []DiaEstatisticaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 || response[0].Dia != "2026-08-10" || response[0].Total != "55.90" {
		t.Errorf("Unexpected response %+v", response)
	}
}
