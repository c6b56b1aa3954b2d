package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoriaHandler exposes categoria lookups
type CategoriaHandler struct {
	categoriaRepo domain.CategoriaRepository
}

// NewCategoriaHandler creates a new CategoriaHandler
func NewCategoriaHandler(categoriaRepo domain.CategoriaRepository) *CategoriaHandler {
	return &CategoriaHandler{categoriaRepo: categoriaRepo}
}

// CategoriaResponse represents a categoria in API responses
type CategoriaResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Listar godoc
// @Summary List categorias
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CategoriaResponse
// @Router /categorias [get]
func (h *CategoriaHandler) Listar(c echo.Context) error {
	categorias, err := h.categoriaRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categorias")
		return NewInternalError(c, "Failed to list categorias")
	}

	response := make([]CategoriaResponse, len(categorias))
	for i, categoria := range categorias {
		response[i] = CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome}
	}
	return c.JSON(http.StatusOK, response)
}

// BuscarPorID godoc
// @Summary Fetch a categoria
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "Categoria ID"
// @Success 200 {object} CategoriaResponse
// @Failure 404 {object} ProblemDetails
// @Router /categorias/{id} [get]
func (h *CategoriaHandler) BuscarPorID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid categoria ID", nil)
	}

	categoria, err := h.categoriaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoriaNotFound) {
			return NewNotFoundError(c, "Categoria not found")
		}
		log.Error().Err(err).Int64("categoria_id", id).Msg("Failed to fetch categoria")
		return NewInternalError(c, "Failed to fetch categoria")
	}

	return c.JSON(http.StatusOK, CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome})
}
