package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

// ValidateEventFromJSON — строгий разбор события статуса из JSON и его валидация.
// Любая ошибка оборачивает domain.ErrInvalidEvent.
func ValidateEventFromJSON(ctx context.Context, validator ports.ReservationValidator, raw []byte) (*domain.StatusChangedEvent, error) {
	var event domain.StatusChangedEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", domain.ErrInvalidEvent, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidEvent)
	}
	if err := validator.ValidateEvent(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
