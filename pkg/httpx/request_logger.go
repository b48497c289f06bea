package httpx

import (
	"strconv"
	"time"

	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные маршруты, которые не попадают в журнал запросов.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — middleware журнала запросов: метаданные запроса, трассировки и
// идентичность вызывающего (клиент и/или магазин, если пришли в заголовках).
// Заодно пишет гистограмму длительности по маршруту.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietPaths[route]; quiet {
			return
		}
		metricRoute := route
		if route == "" {
			route = c.Request.URL.Path
			metricRoute = "unmatched"
		}

		ctx := c.Request.Context()
		requestID, _ := ctxmeta.RequestIDFromContext(ctx)
		traceID, _ := ctxmeta.TraceIDFromContext(ctx)
		spanID, _ := ctxmeta.SpanIDFromContext(ctx)
		clientID, _ := ctxmeta.ClientIDFromContext(ctx)
		storeID, _ := ctxmeta.StoreIDFromContext(ctx)

		status := c.Writer.Status()
		took := time.Since(started)
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, metricRoute, strconv.Itoa(status)).
			Observe(took.Seconds())

		logf := log.Infof
		if status >= 500 {
			logf = log.Warnf
		}
		logf(ctx,
			"http %s %s status=%d took=%s bytes=%d client_id=%d store_id=%d ip=%s request_id=%s trace=%s span=%s",
			c.Request.Method, route, status, took, c.Writer.Size(),
			clientID, storeID, c.ClientIP(), requestID, traceID, spanID,
		)
	}
}
