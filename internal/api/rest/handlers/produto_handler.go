package handlers

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/repository"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
)

// ProdutoMessages тексты ответов ресурса /produto
var ProdutoMessages = Messages{
	Resource:     "produto",
	NotFound:     "Produto não encontrado.",
	Deleted:      "Produto com ID %s foi excluído com sucesso.",
	ListFailed:   "Erro ao buscar produtos no banco de dados.",
	GetFailed:    "Erro ao buscar produto no banco de dados.",
	CreateFailed: "Erro ao criar produto no banco de dados.",
	UpdateFailed: "Erro ao atualizar produto no banco de dados.",
	DeleteFailed: "Erro ao excluir produto do banco de dados.",
}

// ProdutoHandler обработчик для продуктов
type ProdutoHandler = ResourceHandler[domain.Produto, domain.ProdutoInput]

// NewProdutoHandler создает новый обработчик продуктов
func NewProdutoHandler(repo repository.ProdutoRepository, m *metrics.APIMetrics, log *logger.Logger) *ProdutoHandler {
	return NewResourceHandler(repo, ProdutoMessages, m, log)
}
