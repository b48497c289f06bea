package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation — входные данные отклонены локально, до сетевого вызова.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden — 403: идентичность устарела или чужой ресурс; нужна полная ресинхронизация.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrStaleAggregate — закэшированный резерв/позиция больше не существует на сервере.
	ErrStaleAggregate = errors.New("stale aggregate")
	// ErrConflict — конфликт состояния на сервере (например, второй PENDING у клиента).
	ErrConflict = errors.New("conflict")
	// ErrIllegalTransition — переход статуса запрещён машиной состояний.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrReservationLocked — позиции можно менять только пока резерв в PENDING.
	ErrReservationLocked = errors.New("reservation is not pending")
	// ErrInvalidEvent — событие статуса нельзя разобрать или оно некорректно.
	ErrInvalidEvent = errors.New("invalid status event")
)

// NewValidationError — ошибка валидации с пояснением.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// RemoteError — не-2xx ответ репозитория резервов.
type RemoteError struct {
	StatusCode int
	Message    string // сообщение сервера из поля "error"
	Op         string
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Op == "" {
		return fmt.Sprintf("remote error status=%d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: remote error status=%d: %s", e.Op, e.StatusCode, msg)
}

// Unwrap — сопоставляет HTTP-код с доменной ошибкой, чтобы работал errors.Is.
func (e *RemoteError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusForbidden, http.StatusUnauthorized:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return nil
	}
}

// RequiresResync — ошибку нельзя повторять как есть, вызывающему нужен полный FetchActiveCart.
func RequiresResync(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrStaleAggregate)
}

// IsRemote — ошибка пришла от репозитория (любой не-2xx ответ).
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsTimeout — вызов не уложился в дедлайн (контекст или таймаут HTTP-клиента).
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
