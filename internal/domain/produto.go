package domain

// Produto представляет собой модель продукта
type Produto struct {
	ID    int64   `json:"id" db:"id"`
	Nome  string  `json:"nome" db:"nome"`
	Marca string  `json:"marca" db:"marca"`
	Preco float64 `json:"preco" db:"preco"`
	Peso  float64 `json:"peso" db:"peso"`
}

// ProdutoInput is the body of a create or full update of a produto.
// Preco and Peso only have to be present: zero and negative values are accepted.
type ProdutoInput struct {
	Nome  string   `json:"nome" validate:"required"`
	Marca string   `json:"marca" validate:"required"`
	Preco *float64 `json:"preco" validate:"required"`
	Peso  *float64 `json:"peso" validate:"required"`
}

// Args returns the column values in table order
func (in ProdutoInput) Args() []any {
	return []any{in.Nome, in.Marca, deref(in.Preco), deref(in.Peso)}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
