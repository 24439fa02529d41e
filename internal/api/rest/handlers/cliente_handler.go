package handlers

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/repository"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
)

// ClienteMessages тексты ответов ресурса /cliente
var ClienteMessages = Messages{
	Resource:     "cliente",
	NotFound:     "Cliente não encontrado.",
	Deleted:      "Cliente com ID %s foi excluído com sucesso.",
	ListFailed:   "Erro ao buscar clientes no banco de dados.",
	GetFailed:    "Erro ao buscar cliente no banco de dados.",
	CreateFailed: "Erro ao criar cliente no banco de dados.",
	UpdateFailed: "Erro ao atualizar cliente no banco de dados.",
	DeleteFailed: "Erro ao excluir cliente do banco de dados.",
}

// ClienteHandler обработчик для клиентов
type ClienteHandler = ResourceHandler[domain.Cliente, domain.ClienteInput]

// NewClienteHandler создает новый обработчик клиентов
func NewClienteHandler(repo repository.ClienteRepository, m *metrics.APIMetrics, log *logger.Logger) *ClienteHandler {
	return NewResourceHandler(repo, ClienteMessages, m, log)
}
