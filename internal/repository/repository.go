package repository

import (
	"context"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
)

// Repository is the data-access contract of one table. Every method runs exactly one
// statement and returns domain.ErrNotFound when the identifier matches no row, or a
// *domain.DatabaseError when the statement fails.
type Repository[E any, F any] interface {
	GetAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, input F) (E, error)
	Update(ctx context.Context, id int64, input F) (E, error)
	Delete(ctx context.Context, id int64) (E, error)
}

// ClienteRepository интерфейс репозитория клиентов
type ClienteRepository = Repository[domain.Cliente, domain.ClienteInput]

// ProdutoRepository интерфейс репозитория продуктов
type ProdutoRepository = Repository[domain.Produto, domain.ProdutoInput]
