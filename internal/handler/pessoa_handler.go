package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// PessoaHandler exposes pessoa lookups
type PessoaHandler struct {
	pessoaRepo domain.PessoaRepository
}

// NewPessoaHandler creates a new PessoaHandler
func NewPessoaHandler(pessoaRepo domain.PessoaRepository) *PessoaHandler {
	return &PessoaHandler{pessoaRepo: pessoaRepo}
}

// PessoaResponse represents a pessoa in API responses
type PessoaResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}

// BuscarPorID godoc
// @Summary Fetch a pessoa
// @Tags pessoas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pessoa ID"
// @Success 200 {object} PessoaResponse
// @Failure 404 {object} ProblemDetails
// @Router /pessoas/{id} [get]
func (h *PessoaHandler) BuscarPorID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid pessoa ID", nil)
	}

	pessoa, err := h.pessoaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrPessoaNotFound) {
			return NewNotFoundError(c, "Pessoa not found")
		}
		log.Error().Err(err).Int64("pessoa_id", id).Msg("Failed to fetch pessoa")
		return NewInternalError(c, "Failed to fetch pessoa")
	}

	return c.JSON(http.StatusOK, PessoaResponse{ID: pessoa.ID, Nome: pessoa.Nome, Ativo: pessoa.Ativo})
}
