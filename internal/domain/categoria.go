package domain

// Categoria is a read-side reference entity; lançamentos point at it by ID.
type Categoria struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type CategoriaRepository interface {
	GetByID(id int64) (*Categoria, error)
	GetAll() ([]*Categoria, error)
}
