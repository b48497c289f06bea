package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
)

// Заголовки аутентифицированной идентичности (их выставляет шлюз перед сервисом).
const (
	HeaderClientID = "X-Client-ID"
	HeaderStoreID  = "X-Store-ID"
)

// IdentityMiddleware — разбирает X-Client-ID / X-Store-ID и кладёт их в контекст.
// Нечисловое или неположительное значение → 400; отсутствие заголовка не ошибка,
// обязательность идентичности решают обработчики.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		clientID, err := headerID(c, HeaderClientID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storeID, err := headerID(c, HeaderStoreID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx = ctxmeta.WithClientID(ctx, clientID)
		ctx = ctxmeta.WithStoreID(ctx, storeID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireClient — прерывает запрос 401, если в контексте нет клиента.
func RequireClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ctxmeta.ClientIDFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": HeaderClientID + " header is required"})
			return
		}
		c.Next()
	}
}

func headerID(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.GetHeader(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &headerError{name: name}
	}
	return id, nil
}

type headerError struct{ name string }

func (e *headerError) Error() string { return "invalid " + e.name + " header" }
