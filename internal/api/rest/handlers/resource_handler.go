package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/repository"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/req"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/res"
	"github.com/gin-gonic/gin"
)

// Messages holds the client-facing texts of one resource
type Messages struct {
	Resource string
	NotFound string
	// Deleted is a format string receiving the path identifier
	Deleted string

	ListFailed   string
	GetFailed    string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
}

// ResourceHandler обработчик CRUD для одной таблицы
type ResourceHandler[E any, F any] struct {
	repo    repository.Repository[E, F]
	msgs    Messages
	metrics *metrics.APIMetrics
	log     *logger.Logger
}

// NewResourceHandler создает новый обработчик ресурса
func NewResourceHandler[E any, F any](repo repository.Repository[E, F], msgs Messages, m *metrics.APIMetrics, log *logger.Logger) *ResourceHandler[E, F] {
	return &ResourceHandler[E, F]{
		repo:    repo,
		msgs:    msgs,
		metrics: m,
		log:     log.With("resource", msgs.Resource),
	}
}

// Register mounts the five CRUD routes on group. The collection routes answer both
// with and without a trailing slash, so POST /cliente/ is not redirected.
func (h *ResourceHandler[E, F]) Register(group *gin.RouterGroup) {
	for _, root := range []string{"", "/"} {
		group.GET(root, h.List)
		group.POST(root, h.Create)
	}
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List возвращает все записи
func (h *ResourceHandler[E, F]) List(c *gin.Context) {
	items, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err, h.msgs.ListFailed)
		return
	}

	h.log.Info("Returned %d %s rows", len(items), h.msgs.Resource)
	h.ok(c, "list", http.StatusOK, items)
}

// Get возвращает запись по ID
func (h *ResourceHandler[E, F]) Get(c *gin.Context) {
	id, err := h.pathID(c)
	if err != nil {
		h.fail(c, "get", err, h.msgs.GetFailed)
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err, h.msgs.GetFailed)
		return
	}

	h.ok(c, "get", http.StatusOK, item)
}

// Create создает новую запись
func (h *ResourceHandler[E, F]) Create(c *gin.Context) {
	input, err := req.HandleBody[F](c.Request.Body)
	if err != nil {
		h.fail(c, "create", err, h.msgs.CreateFailed)
		return
	}

	item, err := h.repo.Create(c.Request.Context(), *input)
	if err != nil {
		h.fail(c, "create", err, h.msgs.CreateFailed)
		return
	}

	h.log.Info("Created %s row", h.msgs.Resource)
	h.ok(c, "create", http.StatusCreated, item)
}

// Update полностью перезаписывает запись по ID
func (h *ResourceHandler[E, F]) Update(c *gin.Context) {
	input, err := req.HandleBody[F](c.Request.Body)
	if err != nil {
		h.fail(c, "update", err, h.msgs.UpdateFailed)
		return
	}

	id, err := h.pathID(c)
	if err != nil {
		h.fail(c, "update", err, h.msgs.UpdateFailed)
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, *input)
	if err != nil {
		h.fail(c, "update", err, h.msgs.UpdateFailed)
		return
	}

	h.log.Info("Updated %s row with ID: %d", h.msgs.Resource, id)
	h.ok(c, "update", http.StatusOK, item)
}

// Delete удаляет запись по ID
func (h *ResourceHandler[E, F]) Delete(c *gin.Context) {
	id, err := h.pathID(c)
	if err != nil {
		h.fail(c, "delete", err, h.msgs.DeleteFailed)
		return
	}

	if _, err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err, h.msgs.DeleteFailed)
		return
	}

	h.log.Info("Deleted %s row with ID: %d", h.msgs.Resource, id)
	h.ok(c, "delete", http.StatusOK, res.MessageResponse{
		Mensagem: fmt.Sprintf(h.msgs.Deleted, c.Param("id")),
	})
}

// pathID parses :id. An identifier that is not an integer cannot match any row.
func (h *ResourceHandler[E, F]) pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q: %w", c.Param("id"), domain.ErrNotFound)
	}
	return id, nil
}

func (h *ResourceHandler[E, F]) ok(c *gin.Context, op string, status int, body any) {
	h.metrics.ResourceOperation(h.msgs.Resource, op, metrics.ResultSuccess)
	res.JsonResponse(c, body, status)
}

// fail answers err with the status chosen by StatusFor. Database causes are logged,
// never sent to the client.
func (h *ResourceHandler[E, F]) fail(c *gin.Context, op string, err error, failure string) {
	status := StatusFor(err)
	h.metrics.ResourceOperation(h.msgs.Resource, op, resultFor(status))

	switch status {
	case http.StatusBadRequest:
		h.log.Warnw("Invalid request", "op", op, "error", err)
		res.Message(c, MissingFieldsMessage, status)
	case http.StatusNotFound:
		h.log.Warnw("Row not found", "op", op, "id", c.Param("id"))
		res.Message(c, h.msgs.NotFound, status)
	default:
		h.log.Errorw("Database operation failed", "op", op, "error", err)
		res.Message(c, failure, status)
	}
}
