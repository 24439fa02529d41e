package res

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse представляет формат JSON-ответа с сообщением.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// JsonResponse отправляет JSON-ответ с заданным статусом.
func JsonResponse(c *gin.Context, data any, status int) {
	c.JSON(status, data)
}

// Message отправляет {"mensagem": ...} с заданным статусом.
func Message(c *gin.Context, msg string, status int) {
	c.JSON(status, MessageResponse{Mensagem: msg})
}
