package postgres

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
)

// ProdutoRepository реализация репозитория продуктов через PostgreSQL
type ProdutoRepository = Table[domain.Produto, domain.ProdutoInput]

// NewProdutoRepository создает новый репозиторий продуктов
func NewProdutoRepository(db DB, log *logger.Logger) *ProdutoRepository {
	return NewTable[domain.Produto, domain.ProdutoInput](db, log, "produto",
		"nome", "marca", "preco", "peso")
}
