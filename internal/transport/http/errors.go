package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

// errorBody — единый формат ошибки API: {"error": "...", "resync_required": true}.
type errorBody struct {
	Error          string `json:"error"`
	ResyncRequired bool   `json:"resync_required,omitempty"`
}

// statusFor — HTTP-код для доменной ошибки.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrStaleAggregate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrReservationLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsTimeout(err):
		return http.StatusGatewayTimeout
	case domain.IsRemote(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError — ответ с ошибкой; 5xx логируются как ошибки, остальное — предупреждением.
func writeError(c *gin.Context, log ports.Logger, op string, err error) {
	code := statusFor(err)
	ctx := c.Request.Context()

	body := errorBody{Error: err.Error(), ResyncRequired: domain.RequiresResync(err)}
	if code == http.StatusInternalServerError {
		log.Errorf(ctx, "%s failed: %v", op, err)
		body.Error = "internal server error"
	} else if code >= http.StatusInternalServerError {
		log.Errorf(ctx, "%s failed status=%d: %v", op, code, err)
	} else {
		log.Warnf(ctx, "%s rejected status=%d: %v", op, code, err)
	}
	c.JSON(code, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: msg})
}
