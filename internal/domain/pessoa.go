package domain

// Pessoa is a read-side reference entity. Inactive pessoas cannot receive new
// lançamentos.
type Pessoa struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}

type PessoaRepository interface {
	GetByID(id int64) (*Pessoa, error)
}
