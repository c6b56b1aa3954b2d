package handler

import (
	"github.com/dindinapp/dindin-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. Every lancamento route declares its
// required permission and scope up front; the pair is enforced before the
// handler body runs. Rate limiting is keyed by the JWT subject, so it runs
// after authentication.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, lancamentoHandler *LancamentoHandler, categoriaHandler *CategoriaHandler, pessoaHandler *PessoaHandler) {
	// Lancamento routes (protected)
	lancamentos := e.Group("/lancamentos")
	lancamentos.Use(authMiddleware.Authenticate())
	lancamentos.Use(middleware.RateLimitMiddleware(rateLimiter))

	lancamentos.GET("", lancamentoHandler.Pesquisar,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	lancamentos.GET("/estatistica/por-categoria", lancamentoHandler.EstatisticaPorCategoria,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	lancamentos.GET("/estatistica/por-dia", lancamentoHandler.EstatisticaPorDia,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	lancamentos.GET("/relatorios/por-pessoa", lancamentoHandler.RelatorioPorPessoa,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	lancamentos.GET("/:id", lancamentoHandler.BuscarPorID,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	lancamentos.POST("", lancamentoHandler.Criar,
		middleware.RequirePermission(middleware.PermissionCadastrarLancamento, middleware.ScopeWrite))
	lancamentos.POST("/anexo", lancamentoHandler.UploadAnexo,
		middleware.RequirePermission(middleware.PermissionCadastrarLancamento, middleware.ScopeWrite))
	lancamentos.PUT("/:id", lancamentoHandler.Atualizar,
		middleware.RequirePermission(middleware.PermissionCadastrarLancamento, middleware.ScopeWrite))
	lancamentos.DELETE("/:id", lancamentoHandler.Remover,
		middleware.RequirePermission(middleware.PermissionRemoverLancamento, middleware.ScopeWrite))

	// Categoria routes (protected)
	categorias := e.Group("/categorias")
	categorias.Use(authMiddleware.Authenticate())
	categorias.Use(middleware.RateLimitMiddleware(rateLimiter))
	categorias.GET("", categoriaHandler.Listar,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
	categorias.GET("/:id", categoriaHandler.BuscarPorID,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))

	// Pessoa routes (protected)
	pessoas := e.Group("/pessoas")
	pessoas.Use(authMiddleware.Authenticate())
	pessoas.Use(middleware.RateLimitMiddleware(rateLimiter))
	pessoas.GET("/:id", pessoaHandler.BuscarPorID,
		middleware.RequirePermission(middleware.PermissionPesquisarLancamento, middleware.ScopeRead))
}
