package httpx

import (
	"strings"

	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID — сквозной идентификатор запроса между cart-service и reservation-api.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen — длиннее не принимаем: значение уходит в логи и заголовки Kafka.
const maxRequestIDLen = 128

// RequestIDMiddleware — берёт X-Request-ID клиента (если он пригоден) или выдаёт новый UUID,
// кладёт его в контекст и возвращает в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}
