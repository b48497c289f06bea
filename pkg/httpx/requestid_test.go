package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (fromCtx string, resp *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		id, ok := ctxmeta.RequestIDFromContext(c.Request.Context())
		require.True(t, ok, "request id должен лежать в контексте")
		fromCtx = id
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if header != "" {
		req.Header.Set(httpx.HeaderRequestID, header)
	}
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return fromCtx, resp
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{name: "missing header generates uuid"},
		{name: "provided header is kept", header: "cart-42", keepSent: true},
		{name: "blank header generates uuid", header: "   "},
		{name: "oversized header is replaced", header: strings.Repeat("x", 129)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromCtx, resp := serveWithRequestID(t, tt.header)

			got := resp.Header().Get(httpx.HeaderRequestID)
			require.Equal(t, got, fromCtx, "контекст и заголовок ответа должны совпадать")
			if tt.keepSent {
				require.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err, "ожидался сгенерированный UUID, got=%q", got)
		})
	}
}
