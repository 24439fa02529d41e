package domain

// Cliente представляет собой модель клиента
type Cliente struct {
	ID       int64  `json:"id" db:"id"`
	Nome     string `json:"nome" db:"nome"`
	Email    string `json:"email" db:"email"`
	Telefone string `json:"telefone" db:"telefone"`
	Endereco string `json:"endereco" db:"endereco"`
	Cidade   string `json:"cidade" db:"cidade"`
	UF       string `json:"uf" db:"uf"`
}

// ClienteInput is the body of a create or full update of a cliente.
// Every field is required; the identifier is never taken from the body.
type ClienteInput struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
	Endereco string `json:"endereco" validate:"required"`
	Cidade   string `json:"cidade" validate:"required"`
	UF       string `json:"uf" validate:"required"`
}

// Args returns the column values in table order
func (in ClienteInput) Args() []any {
	return []any{in.Nome, in.Email, in.Telefone, in.Endereco, in.Cidade, in.UF}
}
