package postgres

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
)

// ClienteRepository реализация репозитория клиентов через PostgreSQL
type ClienteRepository = Table[domain.Cliente, domain.ClienteInput]

// NewClienteRepository создает новый репозиторий клиентов
func NewClienteRepository(db DB, log *logger.Logger) *ClienteRepository {
	return NewTable[domain.Cliente, domain.ClienteInput](db, log, "cliente",
		"nome", "email", "telefone", "endereco", "cidade", "uf")
}
