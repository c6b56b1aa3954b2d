package domain

import "errors"

// Domain errors
var (
	ErrLancamentoNotFound     = errors.New("lancamento not found")
	ErrCategoriaNotFound      = errors.New("categoria not found")
	ErrPessoaNotFound         = errors.New("pessoa not found")
	ErrPessoaInativa          = errors.New("pessoa is inactive")
	ErrDescricaoRequired      = errors.New("descricao is required")
	ErrDescricaoTooLong       = errors.New("descricao exceeds maximum length")
	ErrValorRequired          = errors.New("valor must be greater than zero")
	ErrDataVencimentoRequired = errors.New("data de vencimento is required")
	ErrInvalidTipo            = errors.New("invalid tipo")
	ErrInvalidSort            = errors.New("invalid sort column")
	ErrObservacaoTooLong      = errors.New("observacao exceeds maximum length")
)

// Validation constants
const (
	MaxDescricaoLength  = 255
	MaxObservacaoLength = 1000
)
